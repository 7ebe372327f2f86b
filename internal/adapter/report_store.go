package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/infoclust/internal/model"
)

// ReportStore persists and retrieves ranked motif reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.Report, hmm *m.Model) error
	LoadReport(path m.Path) (m.Report, error)
}

// LocalReportStore writes reports as YAML files.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	Dataset    string      `yaml:"dataset"`
	Params     paramsYAML  `yaml:"params"`
	Sequences  int         `yaml:"sequences"`
	Candidates int         `yaml:"candidates"`
	Motifs     []motifYAML `yaml:"motifs"`
}

type paramsYAML struct {
	MinLen             int     `yaml:"min_len"`
	MaxLen             int     `yaml:"max_len"`
	Floor              float64 `yaml:"floor"`
	MinDensityIncrease float64 `yaml:"min_density_increase"`
	MergeThreshold     float64 `yaml:"merge_threshold"`
}

type motifYAML struct {
	Rank            int     `yaml:"rank"`
	ID              string  `yaml:"id"`
	Sequence        int     `yaml:"sequence"`
	Start           int     `yaml:"start"`
	Stop            int     `yaml:"stop"`
	Sum             float64 `yaml:"sum"`
	MinDensity      float64 `yaml:"min_density"`
	MaxDensity      float64 `yaml:"max_density"`
	States          []int   `yaml:"states,flow"`
	IndexStart      int     `yaml:"index_start"`
	IndexEnd        int     `yaml:"index_end"`
	LogLikelihood   float64 `yaml:"log_likelihood"`
	RelativeEntropy float64 `yaml:"relative_entropy"`
	Count           int     `yaml:"count"`
	Saturated       bool    `yaml:"saturated,omitempty"`
	// Profile holds the emission distribution of every motif position.
	Profile [][]float64 `yaml:"profile,omitempty,flow"`
}

// SaveReport writes report to path, creating parent directories. When hmm is
// non-nil each motif carries its emission profile.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.Report, hmm *m.Model) error {
	if path == "" {
		return fmt.Errorf("report path is empty")
	}

	doc := reportYAML{
		Dataset:    string(report.Dataset),
		Sequences:  report.Sequences,
		Candidates: report.Candidates,
		Params: paramsYAML{
			MinLen:             report.Params.MinLen,
			MaxLen:             report.Params.MaxLen,
			Floor:              report.Params.Floor,
			MinDensityIncrease: report.Params.MinDensityIncrease,
			MergeThreshold:     report.Params.MergeThreshold,
		},
		Motifs: make([]motifYAML, 0, len(report.Motifs)),
	}

	for i := range report.Motifs {
		motif := &report.Motifs[i]
		doc.Motifs = append(doc.Motifs, motifYAML{
			Rank:            i + 1,
			ID:              motif.ID,
			Sequence:        motif.SeqID,
			Start:           motif.Start,
			Stop:            motif.Stop,
			Sum:             motif.Sum,
			MinDensity:      motif.MinDensity,
			MaxDensity:      motif.MaxDensity,
			States:          motif.States,
			IndexStart:      motif.IndexStart,
			IndexEnd:        motif.IndexEnd,
			LogLikelihood:   motif.LogLikelihood,
			RelativeEntropy: motif.RelativeEntropy,
			Count:           motif.Count,
			Saturated:       motif.Saturated,
			Profile:         profile(hmm, motif.States),
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport. Emission profiles are not
// part of the returned value.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read report: %w", err)
	}

	var doc reportYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.Report{}, fmt.Errorf("failed to parse report: %w", err)
	}

	report := m.Report{
		Dataset:    m.Path(doc.Dataset),
		Sequences:  doc.Sequences,
		Candidates: doc.Candidates,
		Params: m.Params{
			MinLen:             doc.Params.MinLen,
			MaxLen:             doc.Params.MaxLen,
			Floor:              doc.Params.Floor,
			MinDensityIncrease: doc.Params.MinDensityIncrease,
			MergeThreshold:     doc.Params.MergeThreshold,
		},
		Motifs: make([]m.Motif, 0, len(doc.Motifs)),
	}

	for _, my := range doc.Motifs {
		report.Motifs = append(report.Motifs, m.Motif{
			ID: my.ID,
			Segment: m.Segment{
				SeqID:      my.Sequence,
				Start:      my.Start,
				Stop:       my.Stop,
				Sum:        my.Sum,
				MinDensity: my.MinDensity,
				MaxDensity: my.MaxDensity,
			},
			States:          my.States,
			IndexStart:      my.IndexStart,
			IndexEnd:        my.IndexEnd,
			LogLikelihood:   my.LogLikelihood,
			RelativeEntropy: my.RelativeEntropy,
			Count:           my.Count,
			Saturated:       my.Saturated,
		})
	}

	return report, nil
}

func profile(hmm *m.Model, states []int) [][]float64 {
	if hmm == nil {
		return nil
	}

	rows := make([][]float64, 0, len(states))

	for _, s := range states {
		if !hmm.HasState(s) {
			return nil
		}

		row := make([]float64, hmm.Symbols())
		copy(row, hmm.Emissions[s])
		rows = append(rows, row)
	}

	return rows
}
