package app

import (
	"fmt"
	"io"

	"github.com/ludo-technologies/repopulse/domain"
)

// FixRequest describes a single fix run
type FixRequest struct {
	Root   string
	Format domain.OutputFormat
	Writer io.Writer
}

// FixUseCase writes missing hygiene files and reports what was created
type FixUseCase struct {
	fixer      domain.HygieneFixer
	formatter  domain.OutputFormatter
	renderer   domain.Renderer
	fileHelper *FileHelper
}

// NewFixUseCase creates a new fix use case
func NewFixUseCase(fixer domain.HygieneFixer, formatter domain.OutputFormatter, renderer domain.Renderer) *FixUseCase {
	return &FixUseCase{
		fixer:      fixer,
		formatter:  formatter,
		renderer:   renderer,
		fileHelper: NewFileHelper(),
	}
}

// Execute applies the hygiene fixes. In text mode one line is printed per
// created file and one warning line per failed write.
func (uc *FixUseCase) Execute(req FixRequest) ([]domain.FixResult, error) {
	if req.Format != "" && req.Format != domain.OutputFormatText && req.Writer == nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("writer is required for %s output", req.Format), nil)
	}

	root, err := uc.fileHelper.ResolveRoot(req.Root)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid repository path %q", req.Root), err)
	}

	results := uc.fixer.ApplyFixes(root)

	if req.Format != "" && req.Format != domain.OutputFormatText {
		if err := uc.formatter.WriteFixes(results, req.Format, req.Writer); err != nil {
			return nil, domain.NewOutputError("failed to write fix results", err)
		}
		return results, nil
	}

	for _, r := range results {
		var line string
		switch r.Action {
		case domain.FixActionCreated:
			line = fmt.Sprintf("✅ Created %s", r.FileName)
		case domain.FixActionFailed:
			line = fmt.Sprintf("⚠️ Could not create %s: %v", r.FileName, r.Err)
		default:
			continue
		}
		if err := uc.renderer.PrintLine(line); err != nil {
			return nil, domain.NewOutputError("failed to print fix result", err)
		}
	}

	return results, nil
}
