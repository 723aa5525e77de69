package genoarray

import (
	"fmt"
	"math"

	"github.com/PiRSquared17/glu-genetics/errs"
)

// Omit marks a Slice bound or step as not given.
const Omit = math.MinInt

// Slice selects positions by start, stop and step. Start and Stop may be negative to
// count from the end and are clamped to the array. A negative Step walks backwards.
// Omitted fields default to the whole array in the direction of Step.
type Slice struct {
	Start int
	Stop  int
	Step  int
}

// Full selects every position in order.
var Full = Slice{Start: Omit, Stop: Omit, Step: Omit}

// Range selects positions start up to, but not including, stop.
func Range(start, stop int) Slice {
	return Slice{Start: start, Stop: stop, Step: Omit}
}

// Indices resolves s against a sequence of length n.
//
// Returns:
//   - []int: the selected indexes in visiting order
//   - error: errs.ErrInvalidSlice if Step is zero
func (s Slice) Indices(n int) ([]int, error) {
	start, stop, step, err := s.adjust(n)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, sliceLen(start, stop, step))
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}

	return out, nil
}

func (s Slice) adjust(n int) (start, stop, step int, err error) {
	step = s.Step
	if step == Omit {
		step = 1
	}
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("%w: %d:%d:0", errs.ErrInvalidSlice, s.Start, s.Stop)
	}

	if step > 0 {
		start = clampBound(s.Start, 0, n, step)
		stop = clampBound(s.Stop, n, n, step)
	} else {
		start = clampBound(s.Start, n-1, n, step)
		stop = clampBound(s.Stop, -1, n, step)
	}

	return start, stop, step, nil
}

// clampBound resolves a slice bound, returning def when it is omitted.
func clampBound(v, def, n, step int) int {
	if v == Omit {
		return def
	}

	if v < 0 {
		v += n
		if v < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
	} else if v >= n {
		if step < 0 {
			return n - 1
		}
		return n
	}

	return v
}

func sliceLen(start, stop, step int) int {
	if step > 0 {
		if start < stop {
			return (stop-start-1)/step + 1
		}
	} else if stop < start {
		return (start-stop-1)/(-step) + 1
	}

	return 0
}
