package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/repopulse/domain"
	"github.com/ludo-technologies/repopulse/internal/constants"
	"github.com/ludo-technologies/repopulse/internal/templates"
	"github.com/sirupsen/logrus"
)

// hygieneTarget describes one category the fixer can repair
type hygieneTarget struct {
	category   domain.FixCategory
	fileName   string
	recognized []string
	body       string
}

// HygieneFixerImpl writes missing LICENSE and .gitignore files from templates.
type HygieneFixerImpl struct {
	targets   []hygieneTarget
	confirmer domain.Confirmer
	logger    *logrus.Logger
}

// NewHygieneFixer creates a fixer for the license and ignore-file categories
func NewHygieneFixer(logger *logrus.Logger) *HygieneFixerImpl {
	return &HygieneFixerImpl{
		targets: []hygieneTarget{
			{
				category:   domain.FixCategoryLicense,
				fileName:   constants.LicenseFileName,
				recognized: constants.LicenseFileNames,
				body:       templates.License,
			},
			{
				category:   domain.FixCategoryGitignore,
				fileName:   constants.GitignoreFileName,
				recognized: constants.GitignoreFileNames,
				body:       templates.Gitignore,
			},
		},
		logger: defaultLogger(logger),
	}
}

// WithConfirmer asks c before every write
func (f *HygieneFixerImpl) WithConfirmer(c domain.Confirmer) *HygieneFixerImpl {
	f.confirmer = c
	return f
}

// ApplyFixes creates each missing hygiene file. Categories are handled
// independently: a failure on one does not stop the other.
func (f *HygieneFixerImpl) ApplyFixes(root string) []domain.FixResult {
	results := make([]domain.FixResult, 0, len(f.targets))
	for _, t := range f.targets {
		results = append(results, f.fix(root, t))
	}
	return results
}

func (f *HygieneFixerImpl) fix(root string, t hygieneTarget) domain.FixResult {
	path := filepath.Join(root, t.fileName)
	result := domain.FixResult{
		Category: t.category,
		FileName: t.fileName,
		Path:     path,
	}

	if existing := firstExisting(root, t.recognized); existing != "" {
		result.Action = domain.FixActionSkipped
		result.ExistingFile = existing
		return result
	}

	if f.confirmer != nil {
		ok, err := f.confirmer.Confirm(fmt.Sprintf("Create %s", t.fileName))
		if err != nil {
			f.logger.WithFields(logrus.Fields{
				"file":  path,
				"error": err,
			}).Warn("Confirmation failed")
			result.Action = domain.FixActionFailed
			result.Err = domain.NewFixError(t.fileName, err)
			return result
		}
		if !ok {
			result.Action = domain.FixActionSkipped
			result.Declined = true
			return result
		}
	}

	if err := writeFileAtomic(path, []byte(t.body), 0644); err != nil {
		f.logger.WithFields(logrus.Fields{
			"file":  path,
			"error": err,
		}).Warn("Failed to write hygiene file")
		result.Action = domain.FixActionFailed
		result.Err = domain.NewFixError(t.fileName, err)
		return result
	}

	f.logger.WithField("file", path).Debug("Created hygiene file")
	result.Action = domain.FixActionCreated
	return result
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place, so path is either absent or complete.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
