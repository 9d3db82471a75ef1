package piping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelines(t *testing.T) {
	tests := []struct {
		name  string
		fn    func([]int) []int
		input []int
		want  []int
	}{
		{name: "traditional", fn: TraditionalPipeline, input: []int{1, 2, 3, 4, 5}, want: []int{15}},
		{name: "piped", fn: PipedPipeline, input: []int{1, 2, 3, 4, 5}, want: []int{15}},
		{name: "complex", fn: ComplexPipeline, input: []int{1, 2, 3, 4, 5}, want: []int{7, 9, 11, 13, 15}},
		{name: "complex single", fn: ComplexPipeline, input: []int{1}, want: []int{7}},
		{name: "complex drops large", fn: ComplexPipeline, input: []int{8, 3}, want: []int{11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.input))
		})
	}
}

func TestTraditionalAndPipedAgree(t *testing.T) {
	for _, in := range [][]int{{}, {5}, {4, 5, 6}, {-20, 0, 20}} {
		assert.Equal(t, TraditionalPipeline(in), PipedPipeline(in))
	}
}
