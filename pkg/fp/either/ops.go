package either

import (
	"errors"
)

// ErrUnspecified stands in for a nil error carried by a Failure.
var ErrUnspecified = errors.New("unspecified failure")

// Map applies onSuccess to a successful value. A Failure is returned as is
// and onSuccess is not called.
func Map[E, T, U any](input Either[E, T], onSuccess func(T) U) Either[E, U] {
	if input.isSuccess {
		return Success[E](onSuccess(input.value))
	}
	return Failure[E, U](input.err)
}

// Chain switches a successful value to the Either returned by onSuccess.
// A Failure is returned as is and onSuccess is not called.
func Chain[E, T, U any](input Either[E, T], onSuccess func(T) Either[E, U]) Either[E, U] {
	if input.isSuccess {
		return onSuccess(input.value)
	}
	return Failure[E, U](input.err)
}

func MapError[E, F, T any](input Either[E, T], onFailure func(E) F) Either[F, T] {
	if input.isSuccess {
		return Success[F](input.value)
	}
	return Failure[F, T](onFailure(input.err))
}

// MapF is Map in point-free form, ready to be a Pipe stage.
func MapF[E, T, U any](onSuccess func(T) U) func(Either[E, T]) Either[E, U] {
	return func(input Either[E, T]) Either[E, U] {
		return Map(input, onSuccess)
	}
}

// ChainF is Chain in point-free form, ready to be a Pipe stage.
func ChainF[E, T, U any](onSuccess func(T) Either[E, U]) func(Either[E, T]) Either[E, U] {
	return func(input Either[E, T]) Either[E, U] {
		return Chain(input, onSuccess)
	}
}

// Fold collapses input into a plain value through one of the handlers.
func Fold[E, T, U any](input Either[E, T], onSuccess func(T) U, onFailure func(E) U) U {
	if input.isSuccess {
		return onSuccess(input.value)
	}
	return onFailure(input.err)
}

// Tee runs sideEffect on a successful value and returns input unchanged.
func Tee[E, T any](input Either[E, T], sideEffect func(T)) Either[E, T] {
	if input.isSuccess {
		sideEffect(input.value)
	}
	return input
}

// Validate returns Success(v) when valid reports true, Failure(err) otherwise.
func Validate[E, T any](v T, valid func(T) bool, err E) Either[E, T] {
	if valid(v) {
		return Success[E](v)
	}
	return Failure[E, T](err)
}

// FromResult lifts the usual (value, error) pair.
func FromResult[T any](v T, err error) Either[error, T] {
	if err != nil {
		return Failure[error, T](err)
	}
	return Success[error](v)
}

// ValidateAll runs every validator against v. With breakOnError the first
// failure is returned; otherwise failures are joined in validator order.
func ValidateAll[T any](v T, breakOnError bool, validators ...func(T) Either[error, T]) Either[error, T] {
	var errs []error
	for _, validate := range validators {
		res := validate(v)
		if res.isSuccess {
			continue
		}
		if res.err == nil {
			res = Failure[error, T](ErrUnspecified)
		}
		if breakOnError {
			return res
		}
		errs = append(errs, splitErrors(res.err)...)
	}

	if len(errs) > 0 {
		return Failure[error, T](errors.Join(errs...))
	}
	return Success[error](v)
}

// Errors lists the errors held by a joined error, or err itself.
func Errors(err error) []error {
	return splitErrors(err)
}

func splitErrors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
