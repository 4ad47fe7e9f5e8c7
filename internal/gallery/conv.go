package gallery

import "golang.org/x/exp/constraints"

type number interface {
	constraints.Integer | constraints.Float
}

func clamp[T number](v, low, high T) T {
	if high < low {
		low, high = high, low
	}

	return min(high, max(low, v))
}
