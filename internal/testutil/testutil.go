// Package testutil provides fixtures and fakes for testing repopulse components
package testutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/repopulse/domain"
)

// ErrNoRepository is returned by FakeCommitSource when configured to fail
var ErrNoRepository = errors.New("not a git repository")

// WriteTree creates files (relative path -> content) under root
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", rel, err)
		}
	}
}

// WriteNumberedFiles creates n files named file<i>.txt inside root/dir
func WriteNumberedFiles(t *testing.T, root, dir string, n int) {
	t.Helper()
	files := make(map[string]string, n)
	for i := 0; i < n; i++ {
		files[filepath.ToSlash(filepath.Join(dir, fmt.Sprintf("file%d.txt", i)))] = "x"
	}
	WriteTree(t, root, files)
}

// InitGitRepo initializes a git repository in dir with one commit per subject.
// An empty subject makes a commit with an empty message. The test is skipped
// when git is not installed.
func InitGitRepo(t *testing.T, dir string, subjects ...string) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
			"GIT_CONFIG_NOSYSTEM=1", "HOME="+dir,
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}

	run("init", "-q")
	for _, subject := range subjects {
		run("commit", "-q", "--allow-empty", "--allow-empty-message", "-m", subject)
	}
}

// FakeCommitSource returns canned subjects or an error
type FakeCommitSource struct {
	Subjects []string
	Err      error

	Calls     int
	LastLimit int
}

// RecentSubjects implements domain.CommitSource
func (f *FakeCommitSource) RecentSubjects(_ context.Context, _ string, limit int) ([]string, error) {
	f.Calls++
	f.LastLimit = limit
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Subjects) > limit {
		return f.Subjects[:limit], nil
	}
	return f.Subjects, nil
}

// Commits returns a fake source with n distinct subjects
func Commits(n int) *FakeCommitSource {
	subjects := make([]string, n)
	for i := range subjects {
		subjects[i] = fmt.Sprintf("Commit %d", i+1)
	}
	return &FakeCommitSource{Subjects: subjects}
}

// NoGit returns a fake source that always fails
func NoGit() *FakeCommitSource {
	return &FakeCommitSource{Err: ErrNoRepository}
}

// FakeFileCounter returns a fixed count
type FakeFileCounter struct {
	Count int
}

// CountFiles implements domain.FileCounter
func (f FakeFileCounter) CountFiles(_ string) int {
	return f.Count
}

// RenderedTable is a table captured by RecordingRenderer
type RenderedTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RecordingProgress records the tasks a ProgressManager was asked to draw
type RecordingProgress struct {
	Totals     []int
	Increments int
	Completed  int
	Closed     bool
}

// StartTask implements domain.ProgressManager
func (p *RecordingProgress) StartTask(_ string, total int) domain.TaskProgress {
	p.Totals = append(p.Totals, total)
	return &recordingTask{p: p}
}

// Close implements domain.ProgressManager
func (p *RecordingProgress) Close() {
	p.Closed = true
}

type recordingTask struct {
	p *RecordingProgress
}

func (t *recordingTask) Increment(n int) { t.p.Increments += n }
func (t *recordingTask) Describe(string) {}
func (t *recordingTask) Complete()       { t.p.Completed++ }

// RecordingRenderer captures everything rendered, in order
type RecordingRenderer struct {
	Panels []string
	Tables []RenderedTable
	Scores []int
	Bands  []domain.ScoreBand
	Lines  []string
	Err    error
}

// RenderPanel implements domain.Renderer
func (r *RecordingRenderer) RenderPanel(title string) error {
	r.Panels = append(r.Panels, title)
	return r.Err
}

// RenderTable implements domain.Renderer
func (r *RecordingRenderer) RenderTable(title string, headers []string, rows [][]string) error {
	r.Tables = append(r.Tables, RenderedTable{Title: title, Headers: headers, Rows: rows})
	return r.Err
}

// RenderScore implements domain.Renderer
func (r *RecordingRenderer) RenderScore(percent int, band domain.ScoreBand) error {
	r.Scores = append(r.Scores, percent)
	r.Bands = append(r.Bands, band)
	return r.Err
}

// PrintLine implements domain.Renderer
func (r *RecordingRenderer) PrintLine(line string) error {
	r.Lines = append(r.Lines, line)
	return r.Err
}

// StaticConfirmer answers every confirmation the same way
type StaticConfirmer struct {
	Answer  bool
	Err     error
	Prompts []string
}

// Confirm implements domain.Confirmer
func (c *StaticConfirmer) Confirm(prompt string) (bool, error) {
	c.Prompts = append(c.Prompts, prompt)
	if c.Err != nil {
		return false, c.Err
	}
	return c.Answer, nil
}

// Chdir changes the working directory to dir for the duration of the test
// and restores the previous one on cleanup (equivalent of Go 1.24 t.Chdir)
func Chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("Failed to restore working directory %s: %v", prev, err)
		}
	})
}
