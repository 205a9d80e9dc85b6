package domain

import "io"

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates a format name
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	}
	return "", NewUnsupportedFormatError(s)
}

// Renderer is the presentation sink used by report and fix modes
type Renderer interface {
	// RenderPanel prints a boxed title
	RenderPanel(title string) error

	// RenderTable prints a titled table
	RenderTable(title string, headers []string, rows [][]string) error

	// RenderScore prints the overall score coloured by band
	RenderScore(percent int, band ScoreBand) error

	// PrintLine prints a single line of text
	PrintLine(line string) error
}

// ProgressManager manages progress indication for long-running work
type ProgressManager interface {
	// StartTask begins a task of total steps
	StartTask(description string, total int) TaskProgress

	// Close finishes all tasks
	Close()
}

// TaskProgress tracks a single task
type TaskProgress interface {
	Increment(n int)
	Describe(description string)
	Complete()
}

// OutputFormatter writes results in the supported formats
type OutputFormatter interface {
	// Write writes a health result as text, JSON or YAML
	Write(result *HealthResult, format OutputFormat, writer io.Writer) error

	// WriteText renders a health result through a Renderer
	WriteText(result *HealthResult, r Renderer) error

	// WriteFixes writes fix results as JSON or YAML
	WriteFixes(results []FixResult, format OutputFormat, writer io.Writer) error
}
