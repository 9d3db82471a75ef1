// Package exercises groups the katas, one subpackage per topic:
//
// - intro: Pipe on a plain value and on an option.Option
// - immutability: in-place mutation against returning new slices
// - piping: the same slice pipeline written with and without fp.Pipe
// - errhandling: error returns against either.Either
// - async: goroutines started eagerly against lazy task.Task values
// - chaining: Chain over Either and over Task
//
// Every subpackage has a runnable counterpart under examples/.
package exercises
