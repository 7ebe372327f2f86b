package domain

import m "github.com/mouse-blink/infoclust/internal/model"

// FilterCandidate applies the length cap and the minimum density-increase
// ratio to a raw segment.
func FilterCandidate(seg m.Segment, params m.Params) m.Verdict {
	if seg.Sum <= 0 {
		return m.VerdictNonPositive
	}

	if seg.Len() > params.MaxLen {
		return m.VerdictTooLong
	}

	if seg.MinDensity*params.MinDensityIncrease > seg.MaxDensity {
		return m.VerdictWeakIncrease
	}

	return m.VerdictKeep
}
