package domain

// FixCategory is a kind of hygiene file the fixer can create
type FixCategory string

const (
	FixCategoryLicense   FixCategory = "license"
	FixCategoryGitignore FixCategory = "gitignore"
)

// FixAction is what the fixer did for one category
type FixAction string

const (
	FixActionCreated FixAction = "created"
	FixActionSkipped FixAction = "skipped"
	FixActionFailed  FixAction = "failed"
)

// FixResult describes the outcome for one hygiene category
type FixResult struct {
	Category FixCategory `json:"category" yaml:"category"`
	FileName string      `json:"file_name" yaml:"file_name"`
	Path     string      `json:"path" yaml:"path"`
	Action   FixAction   `json:"action" yaml:"action"`

	// ExistingFile is the recognized file that made the fixer skip
	ExistingFile string `json:"existing_file,omitempty" yaml:"existing_file,omitempty"`

	// Declined is set when the user refused the write interactively
	Declined bool `json:"declined,omitempty" yaml:"declined,omitempty"`

	Err error `json:"-" yaml:"-"`
}

// Created reports whether the file was written
func (r FixResult) Created() bool {
	return r.Action == FixActionCreated
}

// HygieneFixer writes missing hygiene files into a repository root
type HygieneFixer interface {
	ApplyFixes(root string) []FixResult
}

// Confirmer asks the user whether a file may be written
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}
