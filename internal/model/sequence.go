package model

import (
	"errors"
	"fmt"
)

// ErrInvalidSequence reports a sequence whose residues and labels disagree
// with each other or with the model.
var ErrInvalidSequence = errors.New("invalid sequence")

// Sequence is one labelled biological sequence. Residues and Labels are
// aligned position by position.
type Sequence struct {
	Name     string
	Residues []int
	Labels   []int
}

// Len returns the number of positions in the sequence.
func (s *Sequence) Len() int {
	return len(s.Residues)
}

// Corpus is the ordered collection of sequences searched for motifs.
type Corpus struct {
	Sequences []Sequence
}

// Len returns the number of sequences.
func (c *Corpus) Len() int {
	return len(c.Sequences)
}

// WindowCount returns Σ (len - w) over all sequences, the denominator of the
// motif mixture prior. Sequences no longer than w contribute nothing.
func (c *Corpus) WindowCount(w int) int {
	total := 0

	for i := range c.Sequences {
		if n := c.Sequences[i].Len() - w; n > 0 {
			total += n
		}
	}

	return total
}

// Validate checks every sequence against the model's state and symbol
// ranges.
func (c *Corpus) Validate(hmm *Model) error {
	for i := range c.Sequences {
		s := &c.Sequences[i]
		if len(s.Residues) != len(s.Labels) {
			return fmt.Errorf("%w: %q has %d residues and %d labels",
				ErrInvalidSequence, s.Name, len(s.Residues), len(s.Labels))
		}

		for pos, label := range s.Labels {
			if !hmm.HasState(label) {
				return fmt.Errorf("%w: %q position %d: state %d out of range",
					ErrInvalidSequence, s.Name, pos, label)
			}
		}

		for pos, residue := range s.Residues {
			if residue < 0 || residue >= hmm.Symbols() {
				return fmt.Errorf("%w: %q position %d: symbol %d out of range",
					ErrInvalidSequence, s.Name, pos, residue)
			}
		}
	}

	return nil
}

// Occurrence locates one match of a label pattern in the corpus.
type Occurrence struct {
	Seq int
	Pos int
}
