package domain

import (
	"fmt"
	"math"

	m "github.com/mouse-blink/infoclust/internal/model"
)

// densitySentinel bounds every real density; an interval whose weakest
// prefix and suffix both stay at the sentinel has no split point.
var densitySentinel = math.Inf(1)

type interval struct {
	start int
	end   int
	floor float64
}

// FindSegments partitions signal into maximal-density segments. Each
// interval is split at its weakest prefix or suffix, and an interval is
// emitted when its weakest density clears the floor inherited from its
// parent and it is at least minLen long. Children inherit
// max(parent density, parent floor), so emitted segments are either nested
// or disjoint, never crossing.
//
// Segments come out in pre-order: a parent before its children, left half
// before right half.
func FindSegments(signal []float64, minLen int, floor float64) ([]m.Segment, error) {
	if minLen < 1 {
		return nil, fmt.Errorf("%w: minimum segment length %d", ErrInvalidArgument, minLen)
	}

	for i, v := range signal {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: signal[%d] is %v", ErrInvalidArgument, i, v)
		}
	}

	var segments []m.Segment

	stack := []interval{{start: 0, end: len(signal), floor: floor}}

	for len(stack) > 0 {
		iv := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if iv.start == iv.end {
			continue
		}

		prefixPos, prefixMin, total := weakestPrefix(signal, iv.start, iv.end)
		if total < 0 {
			continue
		}

		suffixPos, suffixMin := weakestSuffix(signal, iv.start, iv.end)

		maxDensity := min(prefixMin, suffixMin)

		if maxDensity > iv.floor && iv.end-iv.start >= minLen {
			segments = append(segments, m.Segment{
				Start:      iv.start,
				Stop:       iv.end,
				Sum:        total,
				MinDensity: iv.floor,
				MaxDensity: maxDensity,
			})
		}

		if maxDensity < densitySentinel {
			mid := suffixPos
			if prefixMin < suffixMin {
				mid = prefixPos
			}

			next := max(maxDensity, iv.floor)

			// right first so the left half is processed first
			stack = append(stack,
				interval{start: mid, end: iv.end, floor: next},
				interval{start: iv.start, end: mid, floor: next},
			)
		}
	}

	return segments, nil
}

// weakestPrefix returns the split k in (start, end) minimising the density of
// signal[start:k], that density, and the sum of signal[start:end].
func weakestPrefix(signal []float64, start, end int) (int, float64, float64) {
	pos, minDensity := start, densitySentinel
	total := signal[start]

	for k := start + 1; k < end; k++ {
		if d := total / float64(k-start); d < minDensity {
			pos, minDensity = k, d
		}

		total += signal[k]
	}

	return pos, minDensity, total
}

// weakestSuffix returns the split k in (start, end) minimising the density of
// signal[k:end] and that density.
func weakestSuffix(signal []float64, start, end int) (int, float64) {
	pos, minDensity := end, densitySentinel
	total := signal[end-1]

	for k := end - 1; k > start; k-- {
		if d := total / float64(end-k); d < minDensity {
			pos, minDensity = k, d
		}

		total += signal[k-1]
	}

	return pos, minDensity
}
