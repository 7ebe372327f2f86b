package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/infoclust/internal/adapter"
	"github.com/mouse-blink/infoclust/internal/controller"
	m "github.com/mouse-blink/infoclust/internal/model"
)

// RunArgs configures a full discovery run.
type RunArgs struct {
	Dataset m.Path
	// Output is where the report is saved; empty skips saving.
	Output m.Path
	Params m.Params
}

// SegmentsArgs configures a segmentation-only listing.
type SegmentsArgs struct {
	Dataset m.Path
	Params  m.Params
}

// ViewArgs selects a saved report.
type ViewArgs struct {
	Report m.Path
}

// StatesArgs selects the dataset whose model is summarised.
type StatesArgs struct {
	Dataset m.Path
}

// Workflow defines the user-facing operations of the CLI.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Segments(ctx context.Context, args SegmentsArgs) error
	View(args ViewArgs) error
	States(args StatesArgs) error
}

type workflow struct {
	datasets adapter.DatasetStore
	reports  adapter.ReportStore
	ui       controller.UI
	logger   *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(datasets adapter.DatasetStore, reports adapter.ReportStore, ui controller.UI, logger *slog.Logger) Workflow {
	return &workflow{
		datasets: datasets,
		reports:  reports,
		ui:       ui,
		logger:   componentLogger(logger, "workflow"),
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	hmm, corpus, err := w.load(args.Dataset)
	if err != nil {
		return err
	}

	report, err := Discover(ctx, hmm, corpus, args.Params, w.logger)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	report.Dataset = args.Dataset

	if args.Output != "" {
		if err := w.reports.SaveReport(args.Output, report, hmm); err != nil {
			return err
		}

		w.logger.Info("saved report", slog.String("path", string(args.Output)))
	}

	return w.ui.DisplayReport(report)
}

func (w *workflow) Segments(ctx context.Context, args SegmentsArgs) error {
	hmm, corpus, err := w.load(args.Dataset)
	if err != nil {
		return err
	}

	orch, err := NewOrchestrator(hmm, corpus, adapter.NewLabelIndex(corpus), args.Params, w.logger)
	if err != nil {
		return err
	}

	results, err := ProcessSequences(ctx, orch, corpus.Len(), args.Params.Threads)
	if err != nil {
		return fmt.Errorf("segmentation failed: %w", err)
	}

	return w.ui.DisplaySegments(corpus, results)
}

func (w *workflow) View(args ViewArgs) error {
	report, err := w.reports.LoadReport(args.Report)
	if err != nil {
		return err
	}

	return w.ui.DisplayReport(report)
}

func (w *workflow) States(args StatesArgs) error {
	hmm, _, err := w.load(args.Dataset)
	if err != nil {
		return err
	}

	rel, err := StateRelativeEntropy(hmm)
	if err != nil {
		return err
	}

	return w.ui.DisplayStates(hmm, rel)
}

func (w *workflow) load(path m.Path) (*m.Model, *m.Corpus, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("%w: no dataset given", ErrInvalidArgument)
	}

	hmm, corpus, err := w.datasets.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}

	w.logger.Debug("loaded dataset",
		slog.String("path", string(path)),
		slog.Int("states", hmm.States()),
		slog.Int("sequences", corpus.Len()))

	return hmm, corpus, nil
}
