package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileHelper provides file operation utilities
type FileHelper struct{}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

// DirExists checks if a directory exists
func (h *FileHelper) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// ResolveRoot makes a repository path absolute and resolves symlinks. The
// path must name an existing directory.
func (h *FileHelper) ResolveRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	exists, err := h.DirExists(abs)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("not a directory: %s", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return resolved, nil
}
