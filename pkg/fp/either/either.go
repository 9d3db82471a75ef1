package either

import "fmt"

// Either holds a successful value or a failure. The zero value is a Failure
// carrying the zero E; build values with Success or Failure.
type Either[E, T any] struct {
	value     T
	err       E
	isSuccess bool
}

func Success[E, T any](v T) Either[E, T] {
	return Either[E, T]{value: v, isSuccess: true}
}

func Failure[E, T any](e E) Either[E, T] {
	return Either[E, T]{err: e}
}

func (r Either[E, T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Either[E, T]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the successful value and whether r is a Success.
func (r Either[E, T]) Value() (T, bool) {
	return r.value, r.isSuccess
}

// Err returns the failure and whether r is a Failure.
func (r Either[E, T]) Err() (E, bool) {
	return r.err, !r.isSuccess
}

func (r Either[E, T]) GetOrElse(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

// Map is the same-type form of the package level Map.
func (r Either[E, T]) Map(onSuccess func(T) T) Either[E, T] {
	return Map(r, onSuccess)
}

// Chain is the same-type form of the package level Chain.
func (r Either[E, T]) Chain(onSuccess func(T) Either[E, T]) Either[E, T] {
	return Chain(r, onSuccess)
}

func (r Either[E, T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Right(%s)", format(r.value))
	}
	return fmt.Sprintf("Left(%s)", format(r.err))
}

func format(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case error:
		return fmt.Sprintf("%q", x.Error())
	default:
		return fmt.Sprintf("%v", x)
	}
}
