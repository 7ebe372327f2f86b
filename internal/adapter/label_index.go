// Package adapter provides the infrastructure collaborators of the discovery
// engine: the label substring index and the dataset and report stores.
package adapter

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	m "github.com/mouse-blink/infoclust/internal/model"
)

// ErrEmptyPattern is returned when searching for a zero-length pattern.
var ErrEmptyPattern = errors.New("empty pattern")

// ErrIndexRange is returned when an occurrence index lies outside the index.
var ErrIndexRange = errors.New("index out of range")

// SubstringIndex finds every corpus position where a label pattern occurs.
// Search returns a half-open range [start, end) of index entries; iterating
// that range through Occurrence yields the matching (sequence, offset) pairs.
type SubstringIndex interface {
	Search(pattern []int) (start, end int, err error)
	Occurrence(i int) (m.Occurrence, error)
}

// LabelIndex is a suffix array over the label sequences of a corpus.
// Suffixes stop at the end of their own sequence.
type LabelIndex struct {
	corpus   *m.Corpus
	suffixes []m.Occurrence
}

// NewLabelIndex sorts every suffix of every label sequence in corpus by
// prefix doubling, so long runs of one state cost O(n log² n) overall.
// Identical suffixes keep corpus order. The corpus must not change while
// the index is in use.
func NewLabelIndex(corpus *m.Corpus) *LabelIndex {
	n, longest := 0, 0
	for i := range corpus.Sequences {
		n += len(corpus.Sequences[i].Labels)
		longest = max(longest, len(corpus.Sequences[i].Labels))
	}

	occurrences := make([]m.Occurrence, 0, n)
	// seqEnd[i] is the flat position just past the sequence holding i.
	seqEnd := make([]int, 0, n)
	rank := make([]int, 0, n)

	for seq := range corpus.Sequences {
		labels := corpus.Sequences[seq].Labels
		end := len(occurrences) + len(labels)

		for pos, label := range labels {
			occurrences = append(occurrences, m.Occurrence{Seq: seq, Pos: pos})
			seqEnd = append(seqEnd, end)
			rank = append(rank, label)
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	// rank orders suffixes by their first k labels; a suffix that ends
	// before k labels ranks below any that continues.
	for k := 1; n > 0; k *= 2 {
		after := func(i int) int {
			if i+k < seqEnd[i] {
				return rank[i+k]
			}

			return math.MinInt
		}

		compare := func(a, b int) int {
			if c := cmp.Compare(rank[a], rank[b]); c != 0 {
				return c
			}

			return cmp.Compare(after(a), after(b))
		}

		slices.SortStableFunc(order, compare)

		next := make([]int, n)
		distinct := true

		for j := 1; j < n; j++ {
			next[order[j]] = next[order[j-1]]

			if compare(order[j-1], order[j]) != 0 {
				next[order[j]]++
			} else {
				distinct = false
			}
		}

		rank = next

		if distinct || 2*k >= longest {
			break
		}
	}

	suffixes := make([]m.Occurrence, n)
	for j, i := range order {
		suffixes[j] = occurrences[i]
	}

	return &LabelIndex{corpus: corpus, suffixes: suffixes}
}

// Len returns the number of indexed positions.
func (ix *LabelIndex) Len() int {
	return len(ix.suffixes)
}

// Search returns the range of suffixes that start with pattern. A pattern
// that does not occur yields an empty range.
func (ix *LabelIndex) Search(pattern []int) (int, int, error) {
	if len(pattern) == 0 {
		return 0, 0, ErrEmptyPattern
	}

	start := sort.Search(len(ix.suffixes), func(i int) bool {
		return comparePrefix(ix.suffix(ix.suffixes[i]), pattern) >= 0
	})
	end := sort.Search(len(ix.suffixes), func(i int) bool {
		return comparePrefix(ix.suffix(ix.suffixes[i]), pattern) > 0
	})

	return start, end, nil
}

// Occurrence resolves entry i of the suffix array.
func (ix *LabelIndex) Occurrence(i int) (m.Occurrence, error) {
	if i < 0 || i >= len(ix.suffixes) {
		return m.Occurrence{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexRange, i, len(ix.suffixes))
	}

	return ix.suffixes[i], nil
}

func (ix *LabelIndex) suffix(o m.Occurrence) []int {
	return ix.corpus.Sequences[o.Seq].Labels[o.Pos:]
}

// comparePrefix orders suffix against pattern looking only at the first
// len(pattern) labels. A suffix shorter than a matching pattern sorts first.
func comparePrefix(suffix, pattern []int) int {
	for i, p := range pattern {
		if i >= len(suffix) {
			return -1
		}

		if suffix[i] != p {
			return cmp.Compare(suffix[i], p)
		}
	}

	return 0
}
