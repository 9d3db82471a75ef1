// Package immutability contrasts changing a slice in place with deriving a
// new one from it.
package immutability

import (
	"github.com/ib-77/fpkata/pkg/fp"
	"github.com/ib-77/fpkata/pkg/fp/list"
)

func addTen(n int) int { return n + 10 }

// AddTenInPlace adds 10 to every element of numbers, overwriting them.
func AddTenInPlace(numbers []int) {
	for i := range numbers {
		numbers[i] = numbers[i] + 10
	}
}

// AddTen returns a new slice; numbers is left as it was.
func AddTen(numbers []int) []int {
	return list.Map(numbers, addTen)
}

// AddTenPiped is AddTen written as a pipeline.
func AddTenPiped(numbers []int) []int {
	return fp.Pipe(numbers, list.MapF(addTen))
}
