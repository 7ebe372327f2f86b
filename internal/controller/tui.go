package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/infoclust/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input  io.Reader
	output io.Writer
	plain  *SimpleUI
}

// NewTUI creates a new TUI reading keys from input and drawing to output.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	cmd := &cobra.Command{}
	cmd.SetOut(output)

	return &TUI{
		input:  input,
		output: output,
		plain:  NewSimpleUI(cmd),
	}
}

// DisplayReport opens an interactive motif browser.
func (t *TUI) DisplayReport(report m.Report) error {
	if len(report.Motifs) == 0 {
		_, _ = fmt.Fprintln(t.output, "No motifs found")
		return nil
	}

	program := tea.NewProgram(newReportModel(report),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("motif browser failed: %w", err)
	}

	return nil
}

// DisplaySegments prints a titled candidate table.
func (t *TUI) DisplaySegments(corpus *m.Corpus, results []m.SequenceResult) error {
	t.title(fmt.Sprintf("Segments of %d sequences", len(results)))

	return t.plain.DisplaySegments(corpus, results)
}

// DisplayStates prints a titled state table.
func (t *TUI) DisplayStates(hmm *m.Model, rel []float64) error {
	t.title(fmt.Sprintf("Relative entropy of %d states", len(rel)))

	return t.plain.DisplayStates(hmm, rel)
}

func (t *TUI) title(text string) {
	_, _ = fmt.Fprintln(t.output, titleStyle.Render(text))
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(0, 0, 0, 2)

	tableContainer = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Margin(0, 1).
			Padding(0, 1)
)
