package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/repopulse/domain"
	"github.com/ludo-technologies/repopulse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, root string, commits domain.CommitSource, files domain.FileCounter) *domain.HealthResult {
	t.Helper()
	result, err := NewHealthScorer(commits, files, nil).Analyze(context.Background(), root)
	require.NoError(t, err)
	return result
}

func statuses(r *domain.HealthResult) map[domain.CheckName]domain.Status {
	out := make(map[domain.CheckName]domain.Status)
	for _, c := range r.Report.Checks {
		out[c.Name] = c.Status
	}
	return out
}

func TestHealthScorer_HealthyRepository(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"README.md":  "# demo",
		"LICENSE":    "MIT",
		".gitignore": "dist/",
	})
	testutil.WriteNumberedFiles(t, root, "src", 20)

	result := analyze(t, root, testutil.Commits(5), NewFileClassifier(nil))

	assert.Equal(t, map[domain.CheckName]domain.Status{
		domain.CheckDocs:    domain.StatusFound,
		domain.CheckCommits: domain.StatusProfessional,
		domain.CheckSize:    domain.StatusLean,
		domain.CheckHygiene: domain.StatusExcellent,
	}, statuses(result))
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.ScoreBandGood, result.Band)
	assert.Equal(t, domain.DefaultInsight, result.Insight)
	assert.Equal(t, 22, result.FileCount, "README.md and LICENSE count, .gitignore does not")
	assert.Len(t, result.Commits, 5)
}

func TestHealthScorer_CheckOrder(t *testing.T) {
	result := analyze(t, t.TempDir(), testutil.NoGit(), testutil.FakeFileCounter{})

	require.Len(t, result.Report.Checks, 4)
	for i, name := range domain.CheckOrder {
		assert.Equal(t, name, result.Report.Checks[i].Name)
	}
}

func TestHealthScorer_Docs(t *testing.T) {
	for _, name := range []string{"README.md", "README", "readme.md"} {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			testutil.WriteTree(t, root, map[string]string{name: "docs"})

			result := analyze(t, root, testutil.Commits(5), testutil.FakeFileCounter{Count: 10})
			assert.Equal(t, domain.StatusFound, result.Report.Status(domain.CheckDocs))
			assert.Equal(t, domain.DefaultInsight, result.Insight)
		})
	}

	t.Run("missing", func(t *testing.T) {
		root := t.TempDir()
		testutil.WriteTree(t, root, map[string]string{"LICENSE": "", ".gitignore": ""})

		result := analyze(t, root, testutil.Commits(5), testutil.FakeFileCounter{Count: 10})
		docs, ok := result.Report.Get(domain.CheckDocs)
		require.True(t, ok)
		assert.Equal(t, domain.StatusMissing, docs.Status)
		assert.Equal(t, domain.FullPoint, docs.Penalty)
		assert.Equal(t, "❌ Missing", docs.Label)
		assert.Equal(t, domain.InsightMissingDocs, result.Insight)
		assert.Equal(t, 75, result.Score)
	})
}

func TestHealthScorer_Commits(t *testing.T) {
	tests := []struct {
		name        string
		source      *testutil.FakeCommitSource
		wantStatus  domain.Status
		wantPenalty domain.Points
		wantInsight string
		wantScore   int
	}{
		{"five commits", testutil.Commits(5), domain.StatusProfessional, 0, domain.DefaultInsight, 100},
		{"exactly three", testutil.Commits(3), domain.StatusProfessional, 0, domain.DefaultInsight, 100},
		{"two commits", testutil.Commits(2), domain.StatusSparse, domain.HalfPoint, domain.InsightSparseCommits, 87},
		{"no commits", testutil.Commits(0), domain.StatusSparse, domain.HalfPoint, domain.InsightSparseCommits, 87},
		{"query fails", testutil.NoGit(), domain.StatusNoGitFound, domain.FullPoint, domain.DefaultInsight, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			testutil.WriteTree(t, root, map[string]string{"README.md": "", "LICENSE": "", ".gitignore": ""})

			result := analyze(t, root, tt.source, testutil.FakeFileCounter{Count: 50})
			commits, ok := result.Report.Get(domain.CheckCommits)
			require.True(t, ok)
			assert.Equal(t, tt.wantStatus, commits.Status)
			assert.Equal(t, tt.wantPenalty, commits.Penalty)
			assert.Equal(t, tt.wantInsight, result.Insight)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, 5, tt.source.LastLimit)
		})
	}
}

func TestHealthScorer_Size(t *testing.T) {
	tests := []struct {
		count       int
		wantStatus  domain.Status
		wantPenalty domain.Points
	}{
		{0, domain.StatusTooSmall, domain.FullPoint},
		{4, domain.StatusTooSmall, domain.FullPoint},
		{5, domain.StatusLean, 0},
		{100, domain.StatusLean, 0},
		{101, domain.StatusLarge, domain.HalfPoint},
		{5000, domain.StatusLarge, domain.HalfPoint},
	}

	for _, tt := range tests {
		root := t.TempDir()
		testutil.WriteTree(t, root, map[string]string{"README.md": "", "LICENSE": "", ".gitignore": ""})

		result := analyze(t, root, testutil.Commits(5), testutil.FakeFileCounter{Count: tt.count})
		size, _ := result.Report.Get(domain.CheckSize)
		assert.Equal(t, tt.wantStatus, size.Status, "count %d", tt.count)
		assert.Equal(t, tt.wantPenalty, size.Penalty, "count %d", tt.count)
		assert.Equal(t, tt.count, size.Count)
		assert.Equal(t, domain.DefaultInsight, result.Insight, "size never sets the insight")
	}
}

func TestHealthScorer_Hygiene(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		wantStatus  domain.Status
		wantPenalty domain.Points
		wantMissing []string
		wantLabel   string
	}{
		{
			name:       "both present",
			files:      map[string]string{"LICENSE": "", ".gitignore": ""},
			wantStatus: domain.StatusExcellent,
			wantLabel:  "✅ Excellent",
		},
		{
			name:       "license.md variant",
			files:      map[string]string{"license.md": "", ".gitignore": ""},
			wantStatus: domain.StatusExcellent,
			wantLabel:  "✅ Excellent",
		},
		{
			name:        "LICENSE.txt variant, no ignore file",
			files:       map[string]string{"LICENSE.txt": ""},
			wantStatus:  domain.StatusMissing,
			wantPenalty: domain.HalfPoint,
			wantMissing: []string{".gitignore"},
			wantLabel:   "⚠️ Missing .gitignore",
		},
		{
			name:        "no license",
			files:       map[string]string{".gitignore": ""},
			wantStatus:  domain.StatusMissing,
			wantPenalty: domain.HalfPoint,
			wantMissing: []string{"LICENSE"},
			wantLabel:   "⚠️ Missing LICENSE",
		},
		{
			name:        "neither",
			files:       map[string]string{},
			wantStatus:  domain.StatusMissing,
			wantPenalty: domain.FullPoint,
			wantMissing: []string{"LICENSE", ".gitignore"},
			wantLabel:   "⚠️ Missing LICENSE, .gitignore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			files := map[string]string{"README.md": ""}
			for k, v := range tt.files {
				files[k] = v
			}
			testutil.WriteTree(t, root, files)

			result := analyze(t, root, testutil.Commits(5), testutil.FakeFileCounter{Count: 10})
			hygiene, _ := result.Report.Get(domain.CheckHygiene)
			assert.Equal(t, tt.wantStatus, hygiene.Status)
			assert.Equal(t, tt.wantPenalty, hygiene.Penalty)
			assert.Equal(t, tt.wantMissing, hygiene.Missing)
			assert.Equal(t, tt.wantLabel, hygiene.Label)
			assert.Equal(t, domain.DefaultInsight, result.Insight, "hygiene never sets the insight")
		})
	}
}

func TestHealthScorer_InsightPrecedence(t *testing.T) {
	// docs and commits both fail: the later check (commits) wins.
	root := t.TempDir()
	result := analyze(t, root, testutil.Commits(1), testutil.FakeFileCounter{Count: 1})

	assert.Equal(t, domain.InsightSparseCommits, result.Insight)
	assert.Equal(t, domain.StatusMissing, result.Report.Status(domain.CheckDocs))

	// A failed query does not override the docs insight.
	result = analyze(t, root, testutil.NoGit(), testutil.FakeFileCounter{Count: 1})
	assert.Equal(t, domain.InsightMissingDocs, result.Insight)
}

func TestHealthScorer_ScoreScenarios(t *testing.T) {
	t.Run("bare repository with passing history", func(t *testing.T) {
		// docs -1, size -1, hygiene -1: (4-3)/4 = 25%
		root := t.TempDir()
		testutil.WriteTree(t, root, map[string]string{".git/HEAD": "ref: refs/heads/main"})

		result := analyze(t, root, testutil.Commits(5), NewFileClassifier(nil))
		assert.Equal(t, domain.StatusTooSmall, result.Report.Status(domain.CheckSize))
		assert.Equal(t, 0, result.FileCount)
		assert.Equal(t, 25, result.Score)
	})

	t.Run("bare repository without history", func(t *testing.T) {
		// NoGitFound adds a fourth full penalty
		result := analyze(t, t.TempDir(), testutil.NoGit(), NewFileClassifier(nil))
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, domain.Points(0), result.Points)
		assert.Equal(t, domain.ScoreBandPoor, result.Band)
	})

	t.Run("everything fails at once clamps to zero", func(t *testing.T) {
		result := analyze(t, t.TempDir(), testutil.NoGit(), testutil.FakeFileCounter{Count: 0})
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, domain.Points(8), result.Report.TotalPenalty())
	})

	t.Run("half point penalties truncate", func(t *testing.T) {
		// sparse -0.5, large -0.5, missing .gitignore -0.5: 2.5/4 = 62.5 -> 62
		root := t.TempDir()
		testutil.WriteTree(t, root, map[string]string{"README.md": "", "LICENSE": ""})

		result := analyze(t, root, testutil.Commits(2), testutil.FakeFileCounter{Count: 150})
		assert.Equal(t, 62, result.Score)
		assert.Equal(t, domain.Points(5), result.Points)
		assert.Equal(t, domain.Points(8), result.MaxPoints)
	})
}

func TestHealthScorer_InvalidRoot(t *testing.T) {
	scorer := NewHealthScorer(testutil.Commits(5), testutil.FakeFileCounter{}, nil)

	_, err := scorer.Analyze(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	var domainErr domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeInvalidInput, domainErr.Code)

	file := filepath.Join(t.TempDir(), "file.txt")
	testutil.WriteTree(t, filepath.Dir(file), map[string]string{"file.txt": ""})
	_, err = scorer.Analyze(context.Background(), file)
	assert.Error(t, err)
}

func TestHealthScorer_RealGitRepository(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{"README.md": "", "LICENSE": "", ".gitignore": ""})
	testutil.WriteNumberedFiles(t, root, "pkg", 20)
	testutil.InitGitRepo(t, root, "Add parser", "Add scorer", "Add fixer", "Add CLI", "Write docs")

	result := analyze(t, root, NewGitCommitSource("", 0, nil), NewFileClassifier(nil))
	assert.Equal(t, domain.StatusProfessional, result.Report.Status(domain.CheckCommits))
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.DefaultInsight, result.Insight)
}

func TestHealthScorer_EmptyCommitMessageStillCounts(t *testing.T) {
	root := t.TempDir()
	testutil.InitGitRepo(t, root, "first", "", "third")

	result := analyze(t, root, NewGitCommitSource("", 0, nil), testutil.FakeFileCounter{Count: 10})
	commits, ok := result.Report.Get(domain.CheckCommits)
	require.True(t, ok)
	assert.Equal(t, domain.StatusProfessional, commits.Status)
	assert.Equal(t, 3, commits.Count)
}

func TestHealthScorer_SymlinkedRoot(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "real")
	testutil.WriteNumberedFiles(t, target, "src", 20)
	link := filepath.Join(base, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	result := analyze(t, link, testutil.Commits(5), NewFileClassifier(nil))
	size, ok := result.Report.Get(domain.CheckSize)
	require.True(t, ok)
	assert.Equal(t, domain.StatusLean, size.Status)
	assert.Equal(t, 20, size.Count)
}

func TestHealthScorer_ProgressStepsPerCheck(t *testing.T) {
	progress := &testutil.RecordingProgress{}
	_, err := NewHealthScorer(testutil.Commits(5), testutil.FakeFileCounter{Count: 10}, nil).
		WithProgress(progress).
		Analyze(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []int{len(domain.CheckOrder)}, progress.Totals)
	assert.Equal(t, len(domain.CheckOrder), progress.Increments)
	assert.Equal(t, 1, progress.Completed)
}
