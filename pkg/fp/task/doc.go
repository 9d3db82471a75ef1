// Package task provides Task[T], a deferred asynchronous computation.
//
// A Task is a function that, when called, starts its work on a goroutine and
// returns a *Future for the outcome. Building a Task, or composing Tasks with
// Map and Chain, does no work at all; only calling the final Task does.
//
// Every call starts the work again: a Task does not remember earlier results.
// Once started, work runs to completion. A context passed to Await bounds how
// long the caller waits, not how long the work runs.
//
// A Task fails by returning an error or by panicking. The failure travels to
// the outermost Future; Map and Chain never call their function after it.
package task
