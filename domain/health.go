package domain

import (
	"context"
	"strings"
)

// CheckName identifies one of the health checks
type CheckName string

const (
	CheckDocs    CheckName = "docs"
	CheckCommits CheckName = "commits"
	CheckSize    CheckName = "size"
	CheckHygiene CheckName = "hygiene"
)

// CheckOrder is the fixed evaluation order of the checks.
// Insight precedence depends on it: a later check overrides an earlier one.
var CheckOrder = []CheckName{CheckDocs, CheckCommits, CheckSize, CheckHygiene}

// Title returns the capitalized name used in reports
func (n CheckName) Title() string {
	s := string(n)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Status is the outcome of a single check
type Status string

const (
	// docs
	StatusFound   Status = "found"
	StatusMissing Status = "missing"

	// commits
	StatusProfessional Status = "professional"
	StatusSparse       Status = "sparse"
	StatusNoGitFound   Status = "no_git_found"

	// size
	StatusLean     Status = "lean"
	StatusLarge    Status = "large"
	StatusTooSmall Status = "too_small"

	// hygiene (StatusMissing is shared with docs)
	StatusExcellent Status = "excellent"
)

// Insight messages
const (
	DefaultInsight       = "Your repo looks healthy and ready for contributors!"
	InsightMissingDocs   = "Critical: Add a README.md to help others understand your project."
	InsightSparseCommits = "Tip: Try to provide more context in your commit messages."
)

// CheckResult is the outcome of one check
type CheckResult struct {
	Name    CheckName `json:"name" yaml:"name"`
	Status  Status    `json:"status" yaml:"status"`
	Label   string    `json:"label" yaml:"label"`
	Penalty Points    `json:"penalty" yaml:"penalty"`

	// Missing lists absent files for docs and hygiene
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`

	// Count is the measured quantity for commits and size
	Count int `json:"count,omitempty" yaml:"count,omitempty"`
}

// HealthReport holds check results in evaluation order
type HealthReport struct {
	Checks []CheckResult `json:"checks" yaml:"checks"`
}

// Add appends a check result
func (r *HealthReport) Add(c CheckResult) {
	r.Checks = append(r.Checks, c)
}

// Get returns the result for a check
func (r *HealthReport) Get(name CheckName) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return CheckResult{}, false
}

// Status returns the status for a check, or "" if it was not run
func (r *HealthReport) Status(name CheckName) Status {
	c, _ := r.Get(name)
	return c.Status
}

// TotalPenalty sums the penalties of all checks
func (r *HealthReport) TotalPenalty() Points {
	var total Points
	for _, c := range r.Checks {
		total += c.Penalty
	}
	return total
}

// HealthResult is the complete outcome of analyzing a repository
type HealthResult struct {
	Root      string       `json:"root" yaml:"root"`
	Report    HealthReport `json:"report" yaml:"report"`
	Insight   string       `json:"insight" yaml:"insight"`
	Score     int          `json:"score" yaml:"score"`
	Band      ScoreBand    `json:"band" yaml:"band"`
	Points    Points       `json:"points" yaml:"points"`
	MaxPoints Points       `json:"max_points" yaml:"max_points"`

	FileCount int      `json:"file_count" yaml:"file_count"`
	Commits   []string `json:"recent_commits,omitempty" yaml:"recent_commits,omitempty"`

	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	DurationMs  int64  `json:"duration_ms" yaml:"duration_ms"`
	Version     string `json:"version" yaml:"version"`
}

// HealthAnalyzer runs all checks against a repository root
type HealthAnalyzer interface {
	Analyze(ctx context.Context, root string) (*HealthResult, error)
}

// CommitSource returns the most recent commit subjects of a repository.
// Any failure (no repository, no binary, no commits, timeout) is reported
// as an error; callers do not distinguish causes.
type CommitSource interface {
	RecentSubjects(ctx context.Context, root string, limit int) ([]string, error)
}

// FileCounter counts eligible files under a root. Traversal problems
// reduce the count instead of failing.
type FileCounter interface {
	CountFiles(root string) int
}
