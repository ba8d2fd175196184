package project

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// CmdResult holds the outcome of a finished command.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir string            // working directory
	Env map[string]string // extra environment variables
}

// CommandRunner runs external commands. Tests replace it with a stub.
type CommandRunner interface {
	// Run executes name with args. A process that exits non-zero is not an
	// error; its code is in CmdResult.ExitCode. Errors are reserved for
	// failures to start or wait on the process.
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)
}

// ExecRunner is the CommandRunner backed by os/exec.
type ExecRunner struct{}

// Run executes the command and captures stdout and stderr.
func (ExecRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Dir = opts.Dir

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()
	result := CmdResult{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, err
}
