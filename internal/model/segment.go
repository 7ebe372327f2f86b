package model

// Segment is a half-open interval [Start, Stop) of one sequence's signal
// found by the density search.
type Segment struct {
	SeqID int
	Start int
	Stop  int
	// Sum is the signal total over the interval.
	Sum float64
	// MinDensity is the floor inherited from the enclosing interval.
	MinDensity float64
	// MaxDensity is the weakest prefix or suffix density of the interval.
	MaxDensity float64
}

// Len returns Stop - Start.
func (s Segment) Len() int {
	return s.Stop - s.Start
}

// Motif is a scored candidate, and once it lives in a registry, the
// representative of a motif family.
type Motif struct {
	ID string
	Segment
	// States is an owned copy of the labels over the segment.
	States []int
	// IndexStart and IndexEnd bound the occurrence range in the substring
	// index.
	IndexStart int
	IndexEnd   int
	// LogLikelihood is the prior-weighted log-likelihood ratio over all
	// occurrences. Ranking uses this field.
	LogLikelihood float64
	// RelativeEntropy is the mean per-position relative entropy of the
	// motif's emission profile. It is only set after the registry rescore.
	RelativeEntropy float64
	// Count is the number of raw candidates merged into this motif.
	Count int
	// Saturated is set when the motif occupies every window of the corpus
	// and the background prior had to be clamped.
	Saturated bool
}

// NewMotif copies labels[seg.Start:seg.Stop] into a fresh motif with Count 1.
func NewMotif(seg Segment, labels []int) *Motif {
	states := make([]int, seg.Len())
	copy(states, labels[seg.Start:seg.Stop])

	return &Motif{
		Segment:    seg,
		States:     states,
		IndexStart: -1,
		IndexEnd:   -1,
		Count:      1,
	}
}

// Len returns the motif width.
func (m *Motif) Len() int {
	return len(m.States)
}

// Occurrences returns the size of the occurrence range.
func (m *Motif) Occurrences() int {
	if m.IndexEnd < m.IndexStart {
		return 0
	}

	return m.IndexEnd - m.IndexStart
}
