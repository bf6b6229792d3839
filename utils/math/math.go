package math

import "golang.org/x/exp/constraints"

func DivFloor[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	return base
}

// NonNegMod reduces x into [0, m). m must be positive.
func NonNegMod[T constraints.Signed](x, m T) T {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
