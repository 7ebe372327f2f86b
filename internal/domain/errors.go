// Package domain contains the motif discovery engine: density segmentation,
// candidate scoring, divergence-based deduplication and the run workflow.
package domain

import "errors"

var (
	// ErrInvalidArgument reports a missing input or a violated precondition.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyMotif reports a zero-length state sequence.
	ErrEmptyMotif = errors.New("empty motif")
	// ErrStateOutOfRange reports a state with no row in the emission table.
	ErrStateOutOfRange = errors.New("state out of range")
)
