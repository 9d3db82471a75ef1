// Package list holds slice transformations that never write to their input.
// Each call returns a freshly allocated slice.
package list

// Map returns a new slice with onEach applied to every element of in.
func Map[T, U any](in []T, onEach func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, onEach(v))
	}
	return out
}

// Filter returns a new slice with the elements of in that keep accepts.
func Filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func Reduce[T, A any](in []T, initial A, step func(A, T) A) A {
	acc := initial
	for _, v := range in {
		acc = step(acc, v)
	}
	return acc
}

// MapF is Map in point-free form, ready to be a Pipe stage.
func MapF[T, U any](onEach func(T) U) func([]T) []U {
	return func(in []T) []U {
		return Map(in, onEach)
	}
}

// FilterF is Filter in point-free form, ready to be a Pipe stage.
func FilterF[T any](keep func(T) bool) func([]T) []T {
	return func(in []T) []T {
		return Filter(in, keep)
	}
}
