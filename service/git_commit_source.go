package service

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// GitCommitSource reads recent commit subjects with the git CLI.
type GitCommitSource struct {
	binary  string
	timeout time.Duration
	logger  *logrus.Logger
}

// NewGitCommitSource creates a commit source. An empty binary means "git";
// a zero timeout leaves the query unbounded.
func NewGitCommitSource(binary string, timeout time.Duration, logger *logrus.Logger) *GitCommitSource {
	if binary == "" {
		binary = "git"
	}
	return &GitCommitSource{
		binary:  binary,
		timeout: timeout,
		logger:  defaultLogger(logger),
	}
}

// RecentSubjects runs `git log -n <limit> --pretty=format:%s` in root and
// returns one entry per output line, empty subjects included. Every failure
// is returned as an error.
func (g *GitCommitSource) RecentSubjects(ctx context.Context, root string, limit int) ([]string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, g.binary, "-C", root, "log", "-n", strconv.Itoa(limit), "--pretty=format:%s")
	out, err := cmd.Output()
	if err != nil {
		g.logger.WithFields(logrus.Fields{
			"root":  root,
			"error": err,
		}).Debug("git log failed")
		return nil, fmt.Errorf("git log in %s: %w", root, err)
	}

	return splitSubjects(string(out)), nil
}

// splitSubjects splits git log output into lines. Only the final newline is
// dropped, so a commit with an empty message still yields a line.
func splitSubjects(output string) []string {
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
