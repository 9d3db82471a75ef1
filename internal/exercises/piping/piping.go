// Package piping writes the same slice transformations with nested calls and
// with fp.Pipe.
package piping

import (
	"github.com/ib-77/fpkata/pkg/fp"
	"github.com/ib-77/fpkata/pkg/fp/list"
)

// TraditionalPipeline adds 10 to each number and keeps those >= 15, calling
// each step by hand.
func TraditionalPipeline(numbers []int) []int {
	return list.Filter(list.Map(numbers, func(n int) int { return n + 10 }),
		func(n int) bool { return n >= 15 })
}

// PipedPipeline is TraditionalPipeline expressed with Pipe.
func PipedPipeline(numbers []int) []int {
	return fp.Pipe2(numbers,
		list.MapF(func(n int) int { return n + 10 }),
		list.FilterF(func(n int) bool { return n >= 15 }),
	)
}

// ComplexPipeline doubles each number, adds 5 and keeps results below 20.
func ComplexPipeline(numbers []int) []int {
	return fp.Pipe3(numbers,
		list.MapF(func(n int) int { return n * 2 }),
		list.MapF(func(n int) int { return n + 5 }),
		list.FilterF(func(n int) bool { return n < 20 }),
	)
}
