// Package option provides Option[T], a value that is either present (Some) or
// absent (None). Absence carries no reason; use either.Either when one is needed.
package option

import (
	"fmt"

	"github.com/ib-77/fpkata/pkg/fp/either"
)

// Option is Some(value) or None. The zero value is None.
type Option[T any] struct {
	value  T
	isSome bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, isSome: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

func (o Option[T]) Value() (T, bool) {
	return o.value, o.isSome
}

func (o Option[T]) GetOrElse(fallback T) T {
	if o.isSome {
		return o.value
	}
	return fallback
}

func (o Option[T]) Map(onSome func(T) T) Option[T] {
	return Map(o, onSome)
}

func (o Option[T]) String() string {
	if o.isSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies onSome to a present value; None is returned without calling it.
func Map[T, U any](input Option[T], onSome func(T) U) Option[U] {
	if input.isSome {
		return Some(onSome(input.value))
	}
	return None[U]()
}

// Chain switches a present value to the Option returned by onSome.
func Chain[T, U any](input Option[T], onSome func(T) Option[U]) Option[U] {
	if input.isSome {
		return onSome(input.value)
	}
	return None[U]()
}

func MapF[T, U any](onSome func(T) U) func(Option[T]) Option[U] {
	return func(input Option[T]) Option[U] {
		return Map(input, onSome)
	}
}

func ChainF[T, U any](onSome func(T) Option[U]) func(Option[T]) Option[U] {
	return func(input Option[T]) Option[U] {
		return Chain(input, onSome)
	}
}

func Fold[T, U any](input Option[T], onSome func(T) U, onNone func() U) U {
	if input.isSome {
		return onSome(input.value)
	}
	return onNone()
}

// ToEither turns None into Failure(onNone).
func ToEither[E, T any](input Option[T], onNone E) either.Either[E, T] {
	if input.isSome {
		return either.Success[E](input.value)
	}
	return either.Failure[E, T](onNone)
}
