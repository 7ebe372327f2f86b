package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/infoclust/internal/adapter"
	m "github.com/mouse-blink/infoclust/internal/model"
)

// Discover runs motif discovery over corpus. Sequences are segmented and
// scored on up to params.Threads goroutines; the registry is filled on the
// calling goroutine in sequence order, so the result does not depend on the
// thread count. Any error aborts the run and no partial report is returned.
func Discover(ctx context.Context, hmm *m.Model, corpus *m.Corpus, params m.Params, logger *slog.Logger) (m.Report, error) {
	if hmm == nil || corpus == nil {
		return m.Report{}, fmt.Errorf("%w: discovery needs a model and a corpus", ErrInvalidArgument)
	}

	if err := corpus.Validate(hmm); err != nil {
		return m.Report{}, err
	}

	logger = componentLogger(logger, "discover")

	orch, err := NewOrchestrator(hmm, corpus, adapter.NewLabelIndex(corpus), params, logger)
	if err != nil {
		return m.Report{}, err
	}

	results, err := ProcessSequences(ctx, orch, corpus.Len(), params.Threads)
	if err != nil {
		return m.Report{}, err
	}

	registry, err := NewRegistry(hmm, params.MergeThreshold, corpus.Len(), logger)
	if err != nil {
		return m.Report{}, err
	}

	candidates := 0

	for _, res := range results {
		for _, motif := range res.Motifs {
			if _, err := registry.Insert(motif); err != nil {
				return m.Report{}, fmt.Errorf("failed to register motif from sequence %d: %w", res.SeqID, err)
			}

			candidates++
		}
	}

	if err := registry.Rescore(); err != nil {
		return m.Report{}, err
	}

	ranked := registry.Ranked()

	report := m.Report{
		Params:     params,
		Sequences:  corpus.Len(),
		Candidates: candidates,
		Motifs:     make([]m.Motif, 0, len(ranked)),
	}
	for _, motif := range ranked {
		report.Motifs = append(report.Motifs, *motif)
	}

	logger.Info("discovery finished",
		slog.Int("sequences", report.Sequences),
		slog.Int("candidates", candidates),
		slog.Int("motifs", len(report.Motifs)))

	return report, nil
}

// ProcessSequences runs orch over sequences 0..n-1 with at most threads
// concurrent calls and returns the results indexed by sequence. The first
// error cancels the remaining work.
func ProcessSequences(ctx context.Context, orch Orchestrator, n, threads int) ([]m.SequenceResult, error) {
	results := make([]m.SequenceResult, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(threads, 1))

	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := orch.ProcessSequence(i)
			if err != nil {
				return fmt.Errorf("sequence %d: %w", i, err)
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
