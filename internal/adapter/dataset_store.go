package adapter

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/infoclust/internal/model"
)

// ErrUnknownResidue is returned when a sequence uses a letter missing from
// the model alphabet.
var ErrUnknownResidue = errors.New("unknown residue")

// DatasetStore loads a labelled corpus together with its state model.
type DatasetStore interface {
	Load(path m.Path) (*m.Model, *m.Corpus, error)
}

// LocalDatasetStore reads YAML datasets from the local filesystem.
type LocalDatasetStore struct{}

// NewLocalDatasetStore constructs a LocalDatasetStore.
func NewLocalDatasetStore() *LocalDatasetStore {
	return &LocalDatasetStore{}
}

type datasetYAML struct {
	Model     modelYAML      `yaml:"model"`
	Sequences []sequenceYAML `yaml:"sequences"`
}

type modelYAML struct {
	Alphabet   string      `yaml:"alphabet"`
	Background []float64   `yaml:"background,flow"`
	Emissions  [][]float64 `yaml:"emissions"`
}

type sequenceYAML struct {
	Name     string `yaml:"name"`
	Residues string `yaml:"residues"`
	Labels   []int  `yaml:"labels,flow"`
}

// Load parses the dataset at path and validates the corpus against the model.
func (s *LocalDatasetStore) Load(path m.Path) (*m.Model, *m.Corpus, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	return DecodeDataset(data)
}

// DecodeDataset parses a YAML dataset document.
func DecodeDataset(data []byte) (*m.Model, *m.Corpus, error) {
	var doc datasetYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	hmm := &m.Model{
		Alphabet:   doc.Model.Alphabet,
		Background: doc.Model.Background,
		Emissions:  doc.Model.Emissions,
	}
	if err := hmm.Validate(); err != nil {
		return nil, nil, err
	}

	symbols := make(map[rune]int, len(hmm.Alphabet))
	for i, r := range []rune(strings.ToUpper(hmm.Alphabet)) {
		symbols[r] = i
	}

	corpus := &m.Corpus{Sequences: make([]m.Sequence, 0, len(doc.Sequences))}

	for i, sy := range doc.Sequences {
		name := sy.Name
		if name == "" {
			name = fmt.Sprintf("seq%d", i+1)
		}

		residues := make([]int, 0, utf8.RuneCountInString(sy.Residues))

		for pos, r := range []rune(strings.ToUpper(sy.Residues)) {
			symbol, ok := symbols[r]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %q at %s position %d", ErrUnknownResidue, r, name, pos)
			}

			residues = append(residues, symbol)
		}

		corpus.Sequences = append(corpus.Sequences, m.Sequence{
			Name:     name,
			Residues: residues,
			Labels:   sy.Labels,
		})
	}

	if err := corpus.Validate(hmm); err != nil {
		return nil, nil, err
	}

	return hmm, corpus, nil
}
