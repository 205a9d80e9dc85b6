package service

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ludo-technologies/repopulse/domain"
)

// ConsoleRenderer renders panels, tables and lines with lipgloss styling.
type ConsoleRenderer struct {
	writer io.Writer
}

// NewConsoleRenderer creates a renderer writing to w
func NewConsoleRenderer(w io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{writer: w}
}

var (
	panelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 2)

	tableTitleStyle = lipgloss.NewStyle().Bold(true).Italic(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	// Metric column cyan, status column magenta
	metricStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Padding(0, 1)

	bandStyles = map[domain.ScoreBand]lipgloss.Style{
		domain.ScoreBandGood: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true), // Green
		domain.ScoreBandFair: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true), // Yellow
		domain.ScoreBandPoor: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),  // Red
	}
)

// RenderPanel prints a boxed title
func (r *ConsoleRenderer) RenderPanel(title string) error {
	_, err := fmt.Fprintln(r.writer, panelStyle.Render(title))
	return err
}

// RenderTable prints a titled table. The first column is styled as a metric
// name, the rest as values.
func (r *ConsoleRenderer) RenderTable(title string, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return metricStyle
			default:
				return statusStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	if title != "" {
		if _, err := fmt.Fprintln(r.writer, tableTitleStyle.Render(title)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.writer, t)
	return err
}

// RenderScore prints the overall score coloured by band
func (r *ConsoleRenderer) RenderScore(percent int, band domain.ScoreBand) error {
	style, ok := bandStyles[band]
	if !ok {
		style = bandStyles[domain.ScoreBandPoor]
	}
	_, err := fmt.Fprintf(r.writer, "Health Score: %s\n", style.Render(fmt.Sprintf("%d%%", percent)))
	return err
}

// PrintLine prints a single line of text
func (r *ConsoleRenderer) PrintLine(line string) error {
	_, err := fmt.Fprintln(r.writer, line)
	return err
}
