package model

// Verdict is the outcome of the candidate filter for one raw segment.
type Verdict string

const (
	// VerdictKeep marks a segment that becomes a motif candidate.
	VerdictKeep Verdict = "keep"
	// VerdictNonPositive marks a segment whose signal sum is not positive.
	VerdictNonPositive Verdict = "non-positive"
	// VerdictTooLong marks a segment longer than the length cap.
	VerdictTooLong Verdict = "too-long"
	// VerdictWeakIncrease marks a segment whose density does not rise enough
	// above its floor.
	VerdictWeakIncrease Verdict = "weak-increase"
)

// Candidate is a raw segment with its filter verdict.
type Candidate struct {
	Segment Segment
	Verdict Verdict
}

// SequenceResult is everything found in one sequence: the raw candidates in
// search order and the scored motifs built from the kept ones.
type SequenceResult struct {
	SeqID      int
	Candidates []Candidate
	Motifs     []*Motif
}
