// Package errhandling compares returning a Go error with returning an
// either.Either whose failure is part of the value.
package errhandling

import (
	"errors"

	"github.com/ib-77/fpkata/pkg/fp"
	"github.com/ib-77/fpkata/pkg/fp/either"
)

const DivideByZero = "Cannot divide by zero"

var ErrDivideByZero = errors.New(DivideByZero)

// DivideImperative stops at the first problem and hands back an error the
// caller has to check before using the quotient.
func DivideImperative(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Divide returns Success(a / b), or Failure(DivideByZero) when b is 0.
func Divide(a, b float64) either.Either[string, float64] {
	if b == 0 {
		return either.Failure[string, float64](DivideByZero)
	}
	return either.Success[string](a / b)
}

// SafeDivide divides and doubles the quotient. A division failure skips the
// doubling.
func SafeDivide(a, b float64) either.Either[string, float64] {
	return fp.Pipe(Divide(a, b), either.MapF[string](func(q float64) float64 { return q * 2 }))
}

// FromImperative lifts DivideImperative into an Either.
func FromImperative(a, b float64) either.Either[error, float64] {
	q, err := DivideImperative(a, b)
	return either.FromResult(q, err)
}
