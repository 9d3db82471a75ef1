package intro

import (
	"github.com/ib-77/fpkata/pkg/fp"
	"github.com/ib-77/fpkata/pkg/fp/option"
)

func AddFive(n int) int {
	return n + 5
}

// AddFivePiped leaves n as it is and returns n + 5.
func AddFivePiped(n int) int {
	return fp.Pipe(n, AddFive)
}

// AddFiveIfPresent adds five only when o holds a value.
func AddFiveIfPresent(o option.Option[int]) option.Option[int] {
	return fp.Pipe(o, option.MapF(AddFive))
}
