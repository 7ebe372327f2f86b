package domain

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"log/slog"
	"slices"

	"github.com/zeebo/xxh3"

	m "github.com/mouse-blink/infoclust/internal/model"
)

// Registry holds the deduplicated motifs of a run. Insertion merges a
// candidate into the first equivalent entry, so no two live entries are
// equivalent at any time. A Registry is not safe for concurrent use.
type Registry struct {
	hmm       *m.Model
	threshold float64
	motifs    []*m.Motif
	logger    *slog.Logger
}

// NewRegistry creates an empty registry. Two motifs are equivalent when their
// divergence divided by the shorter length is below threshold.
func NewRegistry(hmm *m.Model, threshold float64, capacity int, logger *slog.Logger) (*Registry, error) {
	if hmm == nil {
		return nil, fmt.Errorf("%w: nil model", ErrInvalidArgument)
	}

	return &Registry{
		hmm:       hmm,
		threshold: threshold,
		motifs:    make([]*m.Motif, 0, max(capacity, 0)),
		logger:    componentLogger(logger, "registry"),
	}, nil
}

// Insert takes ownership of candidate. It scans the live entries in order
// and, at the first equivalent one, keeps whichever of the pair has the
// higher log-likelihood and adds the other's count to it. When no entry is
// equivalent the candidate is appended. merged reports which case happened.
func (r *Registry) Insert(candidate *m.Motif) (merged bool, err error) {
	if candidate == nil {
		return false, fmt.Errorf("%w: nil candidate", ErrInvalidArgument)
	}

	if candidate.ID == "" {
		candidate.ID = MotifID(candidate.States)
	}

	for i, existing := range r.motifs {
		kl, err := Divergence(r.hmm, existing.States, candidate.States)
		if err != nil {
			return false, fmt.Errorf("failed to compare motifs: %w", err)
		}

		if kl/float64(min(candidate.Len(), existing.Len())) >= r.threshold {
			continue
		}

		if candidate.LogLikelihood > existing.LogLikelihood {
			candidate.Count += existing.Count
			r.motifs[i] = candidate
		} else {
			existing.Count += candidate.Count
		}

		r.logger.Debug("merged candidate",
			slog.String("survivor", r.motifs[i].ID),
			slog.Int("count", r.motifs[i].Count),
			slog.Float64("divergence", kl))

		return true, nil
	}

	r.motifs = append(r.motifs, candidate)

	return false, nil
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	return len(r.motifs)
}

// Motifs returns the live entries in insertion order.
func (r *Registry) Motifs() []*m.Motif {
	return slices.Clone(r.motifs)
}

// Rescore sets every entry's RelativeEntropy. It must run after the last
// insertion.
func (r *Registry) Rescore() error {
	for _, motif := range r.motifs {
		rel, err := RelativeEntropy(r.hmm, motif.States)
		if err != nil {
			return fmt.Errorf("failed to rescore motif %s: %w", motif.ID, err)
		}

		motif.RelativeEntropy = rel
	}

	return nil
}

// Ranked returns the entries ordered by descending log-likelihood. Ties keep
// insertion order.
func (r *Registry) Ranked() []*m.Motif {
	ranked := slices.Clone(r.motifs)
	slices.SortStableFunc(ranked, func(a, b *m.Motif) int {
		// NaN sorts last
		return cmp.Compare(b.LogLikelihood, a.LogLikelihood)
	})

	return ranked
}

// MotifID is the 16-digit hex xxh3 hash of a state sequence.
func MotifID(states []int) string {
	buf := make([]byte, 0, 8*len(states))
	for _, s := range states {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(s))
	}

	return fmt.Sprintf("%016x", xxh3.Hash(buf))
}
