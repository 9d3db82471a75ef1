// Package chaining sequences steps that each return a wrapped value: Either
// for validations, Task for dependent asynchronous calls.
package chaining

import (
	"fmt"

	"github.com/ib-77/fpkata/pkg/fp"
	"github.com/ib-77/fpkata/pkg/fp/either"
	"github.com/ib-77/fpkata/pkg/fp/task"
)

const (
	MustBePositive = "Number must be positive"
	MustBeEven     = "Number must be even"
)

func ValidatePositive(n int) either.Either[string, int] {
	return either.Validate(n, func(v int) bool { return v > 0 }, MustBePositive)
}

func ValidateEven(n int) either.Either[string, int] {
	return either.Validate(n, func(v int) bool { return v%2 == 0 }, MustBeEven)
}

func DoubleNumber(n int) either.Either[string, int] {
	return either.Success[string](n * 2)
}

// DoubleIfPositive doubles n, or fails with MustBePositive.
func DoubleIfPositive(n int) either.Either[string, int] {
	return fp.Pipe2(n, ValidatePositive, either.ChainF(DoubleNumber))
}

// TripleIfPositiveAndEven triples n once both validations pass. Validation
// stops at the first failure.
func TripleIfPositiveAndEven(n int) either.Either[string, int] {
	return fp.Pipe3(n,
		ValidatePositive,
		either.ChainF(ValidateEven),
		either.ChainF(func(v int) either.Either[string, int] { return either.Success[string](v * 3) }),
	)
}

func FetchUserID() task.Task[int] {
	return task.Of(10)
}

func FetchUserDetails(userID int) task.Task[string] {
	return task.Of(fmt.Sprintf("User details for ID %d", userID))
}

// FetchAndDisplayUserDetails looks the user up with the id fetched first.
func FetchAndDisplayUserDetails() task.Task[string] {
	return fp.Pipe(FetchUserID(), task.ChainF(FetchUserDetails))
}
