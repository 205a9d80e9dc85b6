package service

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ludo-technologies/repopulse/internal/constants"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sirupsen/logrus"
)

// FileClassifier counts the files that make up a repository's real content.
type FileClassifier struct {
	excluded         map[string]struct{}
	respectGitignore bool
	logger           *logrus.Logger
}

// NewFileClassifier creates a classifier using the fixed exclusion set
func NewFileClassifier(logger *logrus.Logger) *FileClassifier {
	excluded := make(map[string]struct{}, len(constants.ExcludedSegments))
	for _, name := range constants.ExcludedSegments {
		excluded[name] = struct{}{}
	}
	return &FileClassifier{
		excluded: excluded,
		logger:   defaultLogger(logger),
	}
}

// WithGitignore makes the classifier also skip paths matched by root/.gitignore
func (c *FileClassifier) WithGitignore(enabled bool) *FileClassifier {
	c.respectGitignore = enabled
	return c
}

// IsExcludedSegment reports whether a single path segment disqualifies a path.
// "." is the current directory, not a hidden name.
func (c *FileClassifier) IsExcludedSegment(segment string) bool {
	if segment == "" || segment == "." {
		return false
	}
	if _, ok := c.excluded[segment]; ok {
		return true
	}
	return strings.HasPrefix(segment, ".")
}

// IsEligiblePath reports whether no segment of rel (relative to the root) is excluded
func (c *FileClassifier) IsEligiblePath(rel string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if c.IsExcludedSegment(segment) {
			return false
		}
	}
	return true
}

// CountFiles walks root and returns the number of eligible regular files.
// A symlinked root is followed. Unreadable subtrees are skipped, so the
// count is best effort.
func (c *FileClassifier) CountFiles(root string) int {
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	matcher := c.loadGitignore(root)
	count := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.WithFields(logrus.Fields{
				"path":  path,
				"error": err,
			}).Debug("Skipping unreadable path")
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if c.IsExcludedSegment(d.Name()) || (matcher != nil && matcher.MatchesPath(filepath.ToSlash(rel)+"/")) {
				return fs.SkipDir
			}
			return nil
		}

		if !c.IsEligiblePath(rel) || !isRegularFile(path, d) {
			return nil
		}
		if matcher != nil && matcher.MatchesPath(filepath.ToSlash(rel)) {
			return nil
		}

		count++
		return nil
	})
	if err != nil {
		c.logger.WithError(err).Debug("File walk ended early")
	}

	c.logger.WithFields(logrus.Fields{
		"root":  root,
		"count": count,
	}).Debug("Counted eligible files")
	return count
}

// loadGitignore compiles root/.gitignore when enabled and present
func (c *FileClassifier) loadGitignore(root string) *ignore.GitIgnore {
	if !c.respectGitignore {
		return nil
	}
	path := filepath.Join(root, constants.GitignoreFileName)
	matcher, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.WithError(err).Debug("Ignoring unreadable .gitignore")
		}
		return nil
	}
	return matcher
}

// isRegularFile reports whether the entry is, or links to, a regular file
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
