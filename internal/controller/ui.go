// Package controller provides the output adapters for displaying motif
// discovery results.
package controller

import (
	m "github.com/mouse-blink/infoclust/internal/model"
)

// UI defines how results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayReport shows the ranked motifs of a run.
	DisplayReport(report m.Report) error
	// DisplaySegments shows the raw candidates of every sequence with their
	// filter verdicts.
	DisplaySegments(corpus *m.Corpus, results []m.SequenceResult) error
	// DisplayStates shows the relative entropy of every model state.
	DisplayStates(hmm *m.Model, rel []float64) error
}
