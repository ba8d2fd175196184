package project

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// RepoInitializer creates a version control repository in a directory.
type RepoInitializer interface {
	// Init returns false without error when dir already holds a repository.
	Init(dir string) (bool, error)
}

// GitInitializer initializes repositories with go-git.
type GitInitializer struct{}

// Init runs the equivalent of "git init" in dir. No files are committed.
func (GitInitializer) Init(dir string) (bool, error) {
	_, err := git.PlainInit(dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrGitInit, err)
	}
	return true, nil
}
