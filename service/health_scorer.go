package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ludo-technologies/repopulse/domain"
	"github.com/ludo-technologies/repopulse/internal/constants"
	"github.com/ludo-technologies/repopulse/internal/version"
	"github.com/sirupsen/logrus"
)

// HealthScorer runs the docs, commits, size and hygiene checks.
type HealthScorer struct {
	commits  domain.CommitSource
	files    domain.FileCounter
	progress domain.ProgressManager
	logger   *logrus.Logger
}

// NewHealthScorer creates a scorer from its two external capabilities
func NewHealthScorer(commits domain.CommitSource, files domain.FileCounter, logger *logrus.Logger) *HealthScorer {
	return &HealthScorer{
		commits:  commits,
		files:    files,
		progress: &NoOpProgressManager{},
		logger:   defaultLogger(logger),
	}
}

// WithProgress attaches a progress manager used while checks run
func (s *HealthScorer) WithProgress(pm domain.ProgressManager) *HealthScorer {
	if pm != nil {
		s.progress = pm
	}
	return s
}

// scoreState carries the running score and insight across checks
type scoreState struct {
	result  *domain.HealthResult
	score   *domain.Score
	insight string
}

func (st *scoreState) record(c domain.CheckResult) {
	st.score.Deduct(c.Penalty)
	st.result.Report.Add(c)
}

// Analyze evaluates every check against root, in fixed order and without
// short-circuiting.
func (s *HealthScorer) Analyze(ctx context.Context, root string) (*domain.HealthResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("cannot analyze %s", root), err)
	}
	if !info.IsDir() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("%s is not a directory", root), nil)
	}

	start := time.Now()
	st := &scoreState{
		result:  &domain.HealthResult{Root: root},
		score:   domain.NewScore(len(domain.CheckOrder)),
		insight: domain.DefaultInsight,
	}

	task := s.progress.StartTask(ProgressStatus, len(domain.CheckOrder))
	defer task.Complete()

	for _, name := range domain.CheckOrder {
		task.Describe(fmt.Sprintf("Checking %s", name))
		switch name {
		case domain.CheckDocs:
			s.checkDocs(root, st)
		case domain.CheckCommits:
			s.checkCommits(ctx, root, st)
		case domain.CheckSize:
			s.checkSize(root, st)
		case domain.CheckHygiene:
			s.checkHygiene(root, st)
		}
		task.Increment(1)
	}

	res := st.result
	res.Insight = st.insight
	res.Score = st.score.Percent()
	res.Band = domain.BandFor(res.Score)
	res.Points = st.score.Earned()
	res.MaxPoints = st.score.Max()
	res.GeneratedAt = time.Now().Format(time.RFC3339)
	res.DurationMs = time.Since(start).Milliseconds()
	res.Version = version.GetVersion()

	s.logger.WithFields(logrus.Fields{
		"root":    root,
		"score":   res.Score,
		"penalty": res.Report.TotalPenalty(),
		"commits": res.Report.Status(domain.CheckCommits),
		"size":    res.Report.Status(domain.CheckSize),
	}).Debug("Analysis complete")

	return res, nil
}

// checkDocs looks for a README in the root
func (s *HealthScorer) checkDocs(root string, st *scoreState) {
	if name := firstExisting(root, constants.ReadmeFileNames); name != "" {
		st.record(domain.CheckResult{
			Name:   domain.CheckDocs,
			Status: domain.StatusFound,
			Label:  "✅ Found",
		})
		return
	}

	st.record(domain.CheckResult{
		Name:    domain.CheckDocs,
		Status:  domain.StatusMissing,
		Label:   "❌ Missing",
		Penalty: domain.FullPoint,
		Missing: []string{constants.ReadmeFileNames[0]},
	})
	st.insight = domain.InsightMissingDocs
}

// checkCommits grades the density of recent commit history.
// A failed query only ever yields NoGitFound; it never sets the insight.
func (s *HealthScorer) checkCommits(ctx context.Context, root string, st *scoreState) {
	subjects, err := s.commits.RecentSubjects(ctx, root, constants.RecentCommitLimit)
	if err != nil {
		s.logger.WithError(err).Debug("Commit history unavailable")
		st.record(domain.CheckResult{
			Name:    domain.CheckCommits,
			Status:  domain.StatusNoGitFound,
			Label:   "❓ No Git Found",
			Penalty: domain.FullPoint,
		})
		return
	}

	st.result.Commits = subjects
	if len(subjects) < constants.MinProfessionalCommits {
		st.record(domain.CheckResult{
			Name:    domain.CheckCommits,
			Status:  domain.StatusSparse,
			Label:   "⚠️ Sparse",
			Penalty: domain.HalfPoint,
			Count:   len(subjects),
		})
		st.insight = domain.InsightSparseCommits
		return
	}

	st.record(domain.CheckResult{
		Name:   domain.CheckCommits,
		Status: domain.StatusProfessional,
		Label:  "✅ Professional",
		Count:  len(subjects),
	})
}

// checkSize grades the eligible file count. Does not touch the insight.
func (s *HealthScorer) checkSize(root string, st *scoreState) {
	count := s.files.CountFiles(root)
	st.result.FileCount = count

	c := domain.CheckResult{Name: domain.CheckSize, Count: count}
	switch {
	case count > constants.MaxLeanFileCount:
		c.Status, c.Label, c.Penalty = domain.StatusLarge, "⚠️ Large", domain.HalfPoint
	case count < constants.MinLeanFileCount:
		c.Status, c.Label, c.Penalty = domain.StatusTooSmall, "❌ Too Small", domain.FullPoint
	default:
		c.Status, c.Label = domain.StatusLean, "✅ Lean"
	}
	st.record(c)
}

// checkHygiene looks for a license and an ignore file. Does not touch the insight.
func (s *HealthScorer) checkHygiene(root string, st *scoreState) {
	var missing []string
	if firstExisting(root, constants.LicenseFileNames) == "" {
		missing = append(missing, constants.LicenseFileName)
	}
	if firstExisting(root, constants.GitignoreFileNames) == "" {
		missing = append(missing, constants.GitignoreFileName)
	}

	if len(missing) == 0 {
		st.record(domain.CheckResult{
			Name:   domain.CheckHygiene,
			Status: domain.StatusExcellent,
			Label:  "✅ Excellent",
		})
		return
	}

	st.record(domain.CheckResult{
		Name:    domain.CheckHygiene,
		Status:  domain.StatusMissing,
		Label:   "⚠️ Missing " + strings.Join(missing, ", "),
		Penalty: domain.Points(len(missing)) * domain.HalfPoint,
		Missing: missing,
	})
}

// firstExisting returns the first of names present in root, or ""
func firstExisting(root string, names []string) string {
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			return name
		}
	}
	return ""
}
