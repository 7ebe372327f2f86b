package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	m "github.com/mouse-blink/infoclust/internal/model"
)

const statesColumnWidth = 30

// reportModel browses the ranked motifs of a report.
type reportModel struct {
	report m.Report
	table  table.Model
	width  int
	height int
}

func newReportModel(report m.Report) reportModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "ID", Width: 16},
		{Title: "Len", Width: 4},
		{Title: "Occ", Width: 8},
		{Title: "Count", Width: 6},
		{Title: "LLR", Width: 12},
		{Title: "RelEnt", Width: 7},
		{Title: "States", Width: statesColumnWidth},
	}

	rows := make([]table.Row, 0, len(report.Motifs))
	for i := range report.Motifs {
		row := motifRow(i+1, &report.Motifs[i])
		row[len(row)-1] = truncateToWidth(row[len(row)-1], statesColumnWidth)
		rows = append(rows, table.Row(row))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows), 15)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("6")).
		Bold(true)
	t.SetStyles(styles)

	return reportModel{report: report, table: t}
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.table.SetHeight(max(rm.height-12, 5))

		return rm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return rm, tea.Quit
		}
	}

	var cmd tea.Cmd

	rm.table, cmd = rm.table.Update(msg)

	return rm, cmd
}

func (rm reportModel) View() string {
	title := titleStyle.Render("Motif report")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Motifs: %s   Candidates: %s   Sequences: %s",
		accentStyle.Render(humanize.Comma(int64(len(rm.report.Motifs)))),
		accentStyle.Render(humanize.Comma(int64(rm.report.Candidates))),
		accentStyle.Render(humanize.Comma(int64(rm.report.Sequences))),
	))

	footer := footerStyle.Render("↑/k up • ↓/j down • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		tableContainer.Render(rm.table.View()),
		rm.detail(),
		footer,
	)
}

// detail describes the selected motif in full, since the table truncates
// long state sequences.
func (rm reportModel) detail() string {
	i := rm.table.Cursor()
	if i < 0 || i >= len(rm.report.Motifs) {
		return ""
	}

	motif := &rm.report.Motifs[i]

	return summaryStyle.Render(fmt.Sprintf(
		"Sequence %d [%d,%d)  density %.3f > %.3f\nStates: %s",
		motif.SeqID, motif.Start, motif.Stop, motif.MaxDensity, motif.MinDensity,
		formatStates(motif.States),
	))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
