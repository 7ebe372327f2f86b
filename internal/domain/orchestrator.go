package domain

import (
	"fmt"
	"log/slog"

	"github.com/mouse-blink/infoclust/internal/adapter"
	m "github.com/mouse-blink/infoclust/internal/model"
)

// Orchestrator turns one sequence into scored motif candidates: it projects
// the state entropies onto the labels, segments the signal, filters the
// segments and scores the survivors. Implementations only read shared
// state and may be called from several goroutines.
type Orchestrator interface {
	ProcessSequence(seqID int) (m.SequenceResult, error)
}

type orchestrator struct {
	corpus *m.Corpus
	rel    []float64
	scorer *Scorer
	params m.Params
	logger *slog.Logger
}

// NewOrchestrator constructs an Orchestrator over corpus, scoring against
// index.
func NewOrchestrator(hmm *m.Model, corpus *m.Corpus, index adapter.SubstringIndex, params m.Params, logger *slog.Logger) (Orchestrator, error) {
	rel, err := StateRelativeEntropy(hmm)
	if err != nil {
		return nil, err
	}

	scorer, err := NewScorer(hmm, corpus, index, logger)
	if err != nil {
		return nil, err
	}

	return &orchestrator{
		corpus: corpus,
		rel:    rel,
		scorer: scorer,
		params: params,
		logger: componentLogger(logger, "orchestrator"),
	}, nil
}

func (o *orchestrator) ProcessSequence(seqID int) (m.SequenceResult, error) {
	if seqID < 0 || seqID >= o.corpus.Len() {
		return m.SequenceResult{}, fmt.Errorf("%w: sequence %d", ErrInvalidArgument, seqID)
	}

	seq := &o.corpus.Sequences[seqID]

	signal, err := ProjectSignal(seq.Labels, o.rel)
	if err != nil {
		return m.SequenceResult{}, fmt.Errorf("failed to project %s: %w", seq.Name, err)
	}

	segments, err := FindSegments(signal, o.params.MinLen, o.params.Floor)
	if err != nil {
		return m.SequenceResult{}, fmt.Errorf("failed to segment %s: %w", seq.Name, err)
	}

	result := m.SequenceResult{
		SeqID:      seqID,
		Candidates: make([]m.Candidate, 0, len(segments)),
	}

	for _, seg := range segments {
		seg.SeqID = seqID

		verdict := FilterCandidate(seg, o.params)
		result.Candidates = append(result.Candidates, m.Candidate{Segment: seg, Verdict: verdict})

		if verdict != m.VerdictKeep {
			continue
		}

		motif, err := o.score(seg, seq.Labels)
		if err != nil {
			return m.SequenceResult{}, fmt.Errorf("failed to score %s [%d,%d): %w", seq.Name, seg.Start, seg.Stop, err)
		}

		result.Motifs = append(result.Motifs, motif)
	}

	o.logger.Debug("processed sequence",
		slog.String("sequence", seq.Name),
		slog.Int("segments", len(segments)),
		slog.Int("candidates", len(result.Motifs)))

	return result, nil
}

func (o *orchestrator) score(seg m.Segment, labels []int) (*m.Motif, error) {
	motif := m.NewMotif(seg, labels)
	motif.ID = MotifID(motif.States)

	if err := o.scorer.Locate(motif); err != nil {
		return nil, err
	}

	if err := o.scorer.LogLikelihood(motif); err != nil {
		return nil, err
	}

	return motif, nil
}
