package gitdiff

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Scope selects which changes are examined: the working tree (zero value),
// the staged index, or a specific revision. Staged and Ref are mutually
// exclusive; Ref wins when both are set.
type Scope struct {
	Staged bool
	Ref    string
}

// GitError reports a failed git invocation: the backend's diagnostic text
// and its exit code.
type GitError struct {
	Message string
	Code    int
}

func (e *GitError) Error() string { return e.Message }

// Client queries a git repository in a fixed working directory.
type Client struct {
	dir string
	run runner
	log zerolog.Logger
}

// New returns a Client for the repository at dir. Empty dir means the
// process's current directory.
func New(dir string) *Client {
	return &Client{dir: dir, run: execGit, log: zerolog.Nop()}
}

// SetLogger enables debug tracing of git invocations.
func (c *Client) SetLogger(log zerolog.Logger) { c.log = log }

func (c *Client) git(args ...string) runResult {
	start := time.Now()
	res := c.run(c.dir, args...)
	c.log.Debug().
		Strs("args", args).
		Int("exit", res.ExitCode).
		Dur("took", time.Since(start)).
		Msg("git")
	return res
}

// Diff returns the filtered patch text for scope.
//
// Outside a git repository it returns an empty string and no error: nothing
// to analyze is a value state, not a failure. Any other non-zero git exit
// raises a *GitError with the backend's diagnostic text.
func (c *Client) Diff(scope Scope) (string, error) {
	probe := c.git("rev-parse", "--is-inside-work-tree")
	if probe.ExitCode != 0 || !strings.Contains(probe.Stdout, "true") {
		return "", nil
	}

	var res runResult
	switch {
	case scope.Ref != "":
		// Patch content only; no commit message mixed in.
		res = c.git("show", scope.Ref, "--format=", "--no-color", "--")
	case scope.Staged:
		res = c.git("diff", "--no-color", "--cached")
	default:
		res = c.git("diff", "--no-color")
	}

	if res.ExitCode != 0 {
		msg := res.Stderr
		if msg == "" {
			msg = res.Stdout
		}
		if msg == "" {
			msg = "unknown git error"
		}
		return "", &GitError{Message: msg, Code: res.ExitCode}
	}

	return FilterIgnored(res.Stdout), nil
}

// DiffForLLM returns the filtered patch for scope, truncated to the model's
// character budget.
func (c *Client) DiffForLLM(scope Scope) (string, error) {
	diff, err := c.Diff(scope)
	if err != nil {
		return "", err
	}
	return Truncate(diff, MaxDiffChars, TailChars), nil
}

// DiffForLLMAuto is DiffForLLM with the last-commit fallback: when the
// working tree is clean and no explicit ref or staged scope was requested,
// it retries against HEAD and reports lastCommit=true on success. A git
// failure during the retry is swallowed — the caller proceeds as if there
// were simply no changes.
func (c *Client) DiffForLLMAuto(scope Scope) (diff string, lastCommit bool, err error) {
	diff, err = c.DiffForLLM(scope)
	if err != nil {
		return "", false, err
	}
	if strings.TrimSpace(diff) != "" || scope.Staged || scope.Ref != "" {
		return diff, false, nil
	}

	head, herr := c.DiffForLLM(Scope{Ref: "HEAD"})
	if herr != nil {
		var ge *GitError
		if errors.As(herr, &ge) {
			return diff, false, nil
		}
		return "", false, herr
	}
	if strings.TrimSpace(head) == "" {
		return diff, false, nil
	}
	return head, true, nil
}
