package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/chalee-dev/chalee/internal/defs"
)

// Emitter materializes the project tree. Paths are slash-separated and
// relative to the project root.
type Emitter interface {
	// EnsureDirectories creates the directory skeleton. Existing directories
	// are not an error. It returns the directories in creation order.
	EnsureDirectories(typed bool) ([]string, error)

	// Write creates or truncates the file at p. The parent directory must exist.
	Write(p string, content []byte) error
}

// skeletonDirs is created for every project.
var skeletonDirs = []string{
	"src",
	"src/components",
	"src/styles",
	"public",
	"dist",
}

// typesDir holds ambient declarations and only exists for typed projects.
const typesDir = "src/types"

// SkeletonDirs returns the directory skeleton for a project.
func SkeletonDirs(typed bool) []string {
	dirs := make([]string, len(skeletonDirs), len(skeletonDirs)+1)
	copy(dirs, skeletonDirs)
	if typed {
		dirs = append(dirs, typesDir)
	}
	return dirs
}

// fsEmitter writes through a billy filesystem rooted at the project directory.
type fsEmitter struct {
	fs billy.Filesystem
}

// NewEmitter returns an Emitter rooted at fsys. Use osfs for real projects
// and memfs for dry runs.
func NewEmitter(fsys billy.Filesystem) Emitter {
	return &fsEmitter{fs: fsys}
}

func (e *fsEmitter) EnsureDirectories(typed bool) ([]string, error) {
	dirs := SkeletonDirs(typed)
	for _, dir := range dirs {
		if err := e.fs.MkdirAll(dir, defs.DirPerm); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return dirs, nil
}

func (e *fsEmitter) Write(p string, content []byte) error {
	clean, err := cleanRelative(p)
	if err != nil {
		return err
	}

	// billy creates missing parents on open; a missing parent here means
	// EnsureDirectories was skipped.
	if parent := path.Dir(clean); parent != "." {
		info, err := e.fs.Stat(parent)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("%w: %s", ErrParentMissing, parent)
		case err != nil:
			return fmt.Errorf("stat %s: %w", parent, err)
		case !info.IsDir():
			return fmt.Errorf("%w: %s is not a directory", ErrParentMissing, parent)
		}
	}

	f, err := e.fs.OpenFile(clean, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, defs.FilePerm)
	if err != nil {
		return fmt.Errorf("open %s: %w", clean, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", clean, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", clean, err)
	}
	return nil
}

// cleanRelative normalizes p and rejects absolute or escaping paths.
func cleanRelative(p string) (string, error) {
	if p == "" || path.IsAbs(p) || strings.HasPrefix(p, `\`) || strings.Contains(p, ":") {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, p)
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, p)
	}
	return clean, nil
}
