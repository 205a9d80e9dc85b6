package service

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ludo-technologies/repopulse/domain"
	"gopkg.in/yaml.v3"
)

// Report labels
const (
	TableTitle     = "Project Health Report"
	InsightLabel   = "Pulse Insight:"
	MetricHeader   = "Metric"
	StatusHeader   = "Status"
	ProgressStatus = "Calculating Pulse..."
)

// OutputFormatterImpl writes health results in the supported formats
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// WriteJSON writes data as JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteYAML writes data as YAML to the writer
func WriteYAML(writer io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Write writes the result in the given format. Text output goes through a
// ConsoleRenderer on writer.
func (f *OutputFormatterImpl) Write(result *domain.HealthResult, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, result)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, result)
	case domain.OutputFormatText:
		return f.WriteText(result, NewConsoleRenderer(writer))
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// WriteText renders the score, the check table and the insight
func (f *OutputFormatterImpl) WriteText(result *domain.HealthResult, r domain.Renderer) error {
	if err := r.RenderScore(result.Score, result.Band); err != nil {
		return err
	}

	rows := make([][]string, 0, len(result.Report.Checks))
	for _, c := range result.Report.Checks {
		rows = append(rows, []string{c.Name.Title(), c.Label})
	}
	if err := r.RenderTable(TableTitle, []string{MetricHeader, StatusHeader}, rows); err != nil {
		return err
	}

	if err := r.PrintLine(""); err != nil {
		return err
	}
	return r.PrintLine(fmt.Sprintf("%s %s", InsightLabel, result.Insight))
}

// FixReport is the machine-readable form of a fix run
type FixReport struct {
	Results []FixResultOutput `json:"results" yaml:"results"`
	Created int               `json:"created" yaml:"created"`
}

// FixResultOutput adds the error text to a FixResult for serialization
type FixResultOutput struct {
	domain.FixResult `yaml:",inline"`
	Error            string `json:"error,omitempty" yaml:"error,omitempty"`
}

// WriteFixes writes fix results as JSON or YAML
func (f *OutputFormatterImpl) WriteFixes(results []domain.FixResult, format domain.OutputFormat, writer io.Writer) error {
	report := FixReport{Results: make([]FixResultOutput, 0, len(results))}
	for _, r := range results {
		out := FixResultOutput{FixResult: r}
		if r.Err != nil {
			out.Error = r.Err.Error()
		}
		if r.Created() {
			report.Created++
		}
		report.Results = append(report.Results, out)
	}

	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, report)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, report)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}
