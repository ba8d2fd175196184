// Package project sequences project generation: it validates the inputs,
// composes the artifact set, writes the directory skeleton and files through
// an Emitter, then runs the optional post-generation steps.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidInput indicates the project name or build choice was rejected before any I/O.
	ErrInvalidInput = errors.New("invalid scaffold input")

	// ErrPathTraversal indicates an artifact path that is absolute or leaves the project root.
	ErrPathTraversal = errors.New("path escapes project root")

	// ErrParentMissing indicates a write whose parent directory does not exist.
	ErrParentMissing = errors.New("parent directory does not exist")

	// ErrUnknownPackageManager indicates an unsupported package manager name.
	ErrUnknownPackageManager = errors.New("unknown package manager: must be npm, yarn or pnpm")

	// ErrNodeNotFound indicates the node binary could not be executed.
	ErrNodeNotFound = errors.New("node.js not found")

	// ErrNodeVersion indicates the installed node.js is older than required.
	ErrNodeVersion = errors.New("unsupported node.js version")

	// ErrInstallFailed indicates the package manager exited with an error.
	ErrInstallFailed = errors.New("dependency installation failed")

	// ErrGitInit indicates the repository could not be initialized.
	ErrGitInit = errors.New("git init failed")
)
