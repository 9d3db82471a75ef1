package fp

import (
	"fmt"

	"github.com/eapache/queue"
)

// Flow is a pipeline assembled at run time. Stages are kept in insertion order
// and applied left to right by Run. A Flow is immutable: Then returns a new Flow.
type Flow struct {
	stages *queue.Queue
}

// NewFlow returns an empty Flow. Running it returns the initial value.
func NewFlow() Flow {
	return Flow{stages: queue.New()}
}

// Then returns a copy of f with stage appended.
func (f Flow) Then(stage func(any) any) Flow {
	next := queue.New()
	for i := 0; i < f.Len(); i++ {
		next.Add(f.stages.Get(i))
	}
	next.Add(stage)
	return Flow{stages: next}
}

// Len returns the number of stages.
func (f Flow) Len() int {
	if f.stages == nil {
		return 0
	}
	return f.stages.Length()
}

// Run threads initial through every stage.
func (f Flow) Run(initial any) any {
	res := initial
	for i := 0; i < f.Len(); i++ {
		res = f.stages.Get(i).(func(any) any)(res)
	}
	return res
}

// Stage adapts a typed function to the untyped Flow boundary. It panics when
// the incoming value is not an A; nil is accepted when A is an interface.
func Stage[A, B any](fn func(A) B) func(any) any {
	return func(in any) any {
		var zero A
		if in == nil && any(zero) == nil {
			// nil is a valid value of an interface-typed A
			return fn(zero)
		}
		a, ok := in.(A)
		if !ok {
			var want A
			panic(fmt.Sprintf("fp: stage expects %T, got %T", want, in))
		}
		return fn(a)
	}
}

// RunAs runs f and asserts the final value to T.
func RunAs[T any](f Flow, initial any) (T, error) {
	out := f.Run(initial)
	res, ok := out.(T)
	if !ok {
		var want T
		return want, fmt.Errorf("fp: flow produced %T, want %T", out, want)
	}
	return res, nil
}
