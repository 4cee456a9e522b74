package gitdiff

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// gitTimeout bounds a single git invocation.
const gitTimeout = 30 * time.Second

// runResult is the tagged outcome of one git invocation. Timeout and
// missing-executable conditions are folded into Stderr/ExitCode so callers
// only ever branch on the exit code.
type runResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runner executes git with the given arguments in dir. Swapped for a fake
// in tests.
type runner func(dir string, args ...string) runResult

func execGit(dir string, args ...string) runResult {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return runResult{Stderr: "git command timed out", ExitCode: -1}
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return runResult{Stderr: "git not found; install git", ExitCode: 127}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return runResult{
				Stdout:   sanitize(stdout.String()),
				Stderr:   sanitize(stderr.String()),
				ExitCode: exitErr.ExitCode(),
			}
		}
		return runResult{Stderr: err.Error(), ExitCode: -1}
	}

	return runResult{
		Stdout: sanitize(stdout.String()),
		Stderr: sanitize(stderr.String()),
	}
}

// sanitize replaces invalid UTF-8 sequences and trims outer whitespace.
// Git output is treated as text; invalid bytes are replaced, not rejected.
func sanitize(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, "�"))
}
