package app

import (
	"context"
	"fmt"
	"io"

	"github.com/ludo-technologies/repopulse/domain"
)

// ReportTitle is printed in a panel before a text report
const ReportTitle = "Repo-Pulse Analysis"

// AnalyzeRequest describes a single report run
type AnalyzeRequest struct {
	Root   string
	Format domain.OutputFormat

	// Writer receives JSON and YAML output
	Writer io.Writer
}

// AnalyzeUseCase orchestrates the report workflow: scoring and presentation
type AnalyzeUseCase struct {
	analyzer   domain.HealthAnalyzer
	formatter  domain.OutputFormatter
	renderer   domain.Renderer
	fileHelper *FileHelper
}

// NewAnalyzeUseCase creates a new analyze use case
func NewAnalyzeUseCase(analyzer domain.HealthAnalyzer, formatter domain.OutputFormatter, renderer domain.Renderer) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		analyzer:   analyzer,
		formatter:  formatter,
		renderer:   renderer,
		fileHelper: NewFileHelper(),
	}
}

// Execute analyzes the repository and writes the report
func (uc *AnalyzeUseCase) Execute(ctx context.Context, req AnalyzeRequest) (*domain.HealthResult, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	root, err := uc.fileHelper.ResolveRoot(req.Root)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid repository path %q", req.Root), err)
	}

	format := req.Format
	if format == "" {
		format = domain.OutputFormatText
	}

	if format == domain.OutputFormatText {
		if err := uc.renderer.RenderPanel(ReportTitle); err != nil {
			return nil, domain.NewOutputError("failed to render title", err)
		}
	}

	result, err := uc.analyzer.Analyze(ctx, root)
	if err != nil {
		return nil, domain.NewAnalysisError("health analysis failed", err)
	}

	if format == domain.OutputFormatText {
		err = uc.formatter.WriteText(result, uc.renderer)
	} else {
		err = uc.formatter.Write(result, format, req.Writer)
	}
	if err != nil {
		return nil, domain.NewOutputError("failed to write report", err)
	}

	return result, nil
}

func (uc *AnalyzeUseCase) validateRequest(req AnalyzeRequest) error {
	if req.Format != "" {
		if _, err := domain.ParseOutputFormat(string(req.Format)); err != nil {
			return err
		}
	}
	if req.Format != "" && req.Format != domain.OutputFormatText && req.Writer == nil {
		return fmt.Errorf("writer is required for %s output", req.Format)
	}
	return nil
}

// AnalyzeUseCaseBuilder provides a fluent interface for building AnalyzeUseCase
type AnalyzeUseCaseBuilder struct {
	analyzer  domain.HealthAnalyzer
	formatter domain.OutputFormatter
	renderer  domain.Renderer
}

// NewAnalyzeUseCaseBuilder creates a new builder
func NewAnalyzeUseCaseBuilder() *AnalyzeUseCaseBuilder {
	return &AnalyzeUseCaseBuilder{}
}

// WithAnalyzer sets the health analyzer
func (b *AnalyzeUseCaseBuilder) WithAnalyzer(analyzer domain.HealthAnalyzer) *AnalyzeUseCaseBuilder {
	b.analyzer = analyzer
	return b
}

// WithFormatter sets the output formatter
func (b *AnalyzeUseCaseBuilder) WithFormatter(formatter domain.OutputFormatter) *AnalyzeUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithRenderer sets the console renderer
func (b *AnalyzeUseCaseBuilder) WithRenderer(renderer domain.Renderer) *AnalyzeUseCaseBuilder {
	b.renderer = renderer
	return b
}

// Build creates the AnalyzeUseCase
func (b *AnalyzeUseCaseBuilder) Build() (*AnalyzeUseCase, error) {
	if b.analyzer == nil {
		return nil, fmt.Errorf("health analyzer is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}
	if b.renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	return NewAnalyzeUseCase(b.analyzer, b.formatter, b.renderer), nil
}
