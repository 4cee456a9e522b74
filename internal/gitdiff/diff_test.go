package gitdiff

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// fakeClient returns a Client whose git invocations are answered from the
// canned map, keyed by the joined argument list. Unlisted invocations
// succeed with empty output. Calls are recorded for dispatch assertions.
func fakeClient(canned map[string]runResult, calls *[]string) *Client {
	return &Client{
		dir: "/repo",
		log: zerolog.Nop(),
		run: func(dir string, args ...string) runResult {
			key := strings.Join(args, " ")
			if calls != nil {
				*calls = append(*calls, key)
			}
			if res, ok := canned[key]; ok {
				return res
			}
			return runResult{}
		},
	}
}

const insideWorkTree = "rev-parse --is-inside-work-tree"

func TestDiff_DispatchByScope(t *testing.T) {
	tests := []struct {
		name    string
		scope   Scope
		wantCmd string
	}{
		{"working tree", Scope{}, "diff --no-color"},
		{"staged", Scope{Staged: true}, "diff --no-color --cached"},
		{"revision", Scope{Ref: "HEAD~1"}, "show HEAD~1 --format= --no-color --"},
		{"revision wins over staged", Scope{Staged: true, Ref: "abc123"}, "show abc123 --format= --no-color --"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			c := fakeClient(map[string]runResult{
				insideWorkTree: {Stdout: "true"},
			}, &calls)

			if _, err := c.Diff(tt.scope); err != nil {
				t.Fatalf("Diff error: %v", err)
			}
			if len(calls) != 2 || calls[1] != tt.wantCmd {
				t.Errorf("git calls = %v, want probe then %q", calls, tt.wantCmd)
			}
		})
	}
}

func TestDiff_OutsideRepoIsEmptyNotError(t *testing.T) {
	c := fakeClient(map[string]runResult{
		insideWorkTree: {Stderr: "fatal: not a git repository", ExitCode: 128},
	}, nil)

	diff, err := c.Diff(Scope{})
	if err != nil {
		t.Fatalf("outside a repo must not be an error, got %v", err)
	}
	if diff != "" {
		t.Errorf("diff = %q, want empty", diff)
	}
}

func TestDiff_GitErrorCarriesDiagnosticsAndCode(t *testing.T) {
	tests := []struct {
		name    string
		res     runResult
		wantMsg string
	}{
		{"stderr preferred", runResult{Stderr: "fatal: bad revision", Stdout: "out", ExitCode: 128}, "fatal: bad revision"},
		{"stdout fallback", runResult{Stdout: "something failed", ExitCode: 1}, "something failed"},
		{"generic fallback", runResult{ExitCode: 1}, "unknown git error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fakeClient(map[string]runResult{
				insideWorkTree:    {Stdout: "true"},
				"diff --no-color": tt.res,
			}, nil)

			_, err := c.Diff(Scope{})
			var ge *GitError
			if !errors.As(err, &ge) {
				t.Fatalf("error = %v, want *GitError", err)
			}
			if ge.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", ge.Message, tt.wantMsg)
			}
			if ge.Code != tt.res.ExitCode {
				t.Errorf("Code = %d, want %d", ge.Code, tt.res.ExitCode)
			}
		})
	}
}

func TestDiff_FiltersIgnoredFiles(t *testing.T) {
	c := fakeClient(map[string]runResult{
		insideWorkTree:    {Stdout: "true"},
		"diff --no-color": {Stdout: twoFileDiff},
	}, nil)

	diff, err := c.Diff(Scope{})
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if strings.Contains(diff, "app.min.js") {
		t.Error("ignored file survived acquisition")
	}
	if !strings.Contains(diff, "src/main.go") {
		t.Error("kept file missing from acquisition")
	}
}

func TestDiffForLLM_Truncates(t *testing.T) {
	big := "diff --git a/big.go b/big.go\n+++ b/big.go\n" + strings.Repeat("+x\n", 20000)
	c := fakeClient(map[string]runResult{
		insideWorkTree:    {Stdout: "true"},
		"diff --no-color": {Stdout: big},
	}, nil)

	diff, err := c.DiffForLLM(Scope{})
	if err != nil {
		t.Fatalf("DiffForLLM error: %v", err)
	}
	if len(diff) > MaxDiffChars+len(TruncationMarker) {
		t.Errorf("diff not bounded: len = %d", len(diff))
	}
	if !strings.Contains(diff, TruncationMarker) {
		t.Error("oversized diff should carry the truncation marker")
	}
}

func TestDiffForLLMAuto_FallsBackToHead(t *testing.T) {
	headDiff := "diff --git a/x.go b/x.go\n+++ b/x.go\n+change"
	canned := map[string]runResult{
		insideWorkTree:                      {Stdout: "true"},
		"diff --no-color":                   {Stdout: ""},
		"show HEAD --format= --no-color --": {Stdout: headDiff},
	}

	var calls []string
	c := fakeClient(canned, &calls)
	diff, lastCommit, err := c.DiffForLLMAuto(Scope{})
	if err != nil {
		t.Fatalf("DiffForLLMAuto error: %v", err)
	}
	if !lastCommit {
		t.Error("fallback must be flagged as last-commit analysis")
	}

	// Same patch text as an explicit HEAD scope.
	explicit, err := fakeClient(canned, nil).DiffForLLM(Scope{Ref: "HEAD"})
	if err != nil {
		t.Fatalf("explicit HEAD error: %v", err)
	}
	if diff != explicit {
		t.Errorf("fallback diff differs from explicit HEAD diff:\n%q\nvs\n%q", diff, explicit)
	}
}

func TestDiffForLLMAuto_NoFallbackWhenScopeExplicit(t *testing.T) {
	tests := []struct {
		name  string
		scope Scope
	}{
		{"staged", Scope{Staged: true}},
		{"ref", Scope{Ref: "HEAD~2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			c := fakeClient(map[string]runResult{insideWorkTree: {Stdout: "true"}}, &calls)

			_, lastCommit, err := c.DiffForLLMAuto(tt.scope)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if lastCommit {
				t.Error("explicit scope must not fall back")
			}
			for _, call := range calls {
				if strings.HasPrefix(call, "show HEAD --format=") {
					t.Errorf("unexpected HEAD retry: %v", calls)
				}
			}
		})
	}
}

func TestDiffForLLMAuto_FallbackErrorSwallowed(t *testing.T) {
	c := fakeClient(map[string]runResult{
		insideWorkTree:                      {Stdout: "true"},
		"diff --no-color":                   {Stdout: ""},
		"show HEAD --format= --no-color --": {Stderr: "fatal: bad default revision", ExitCode: 128},
	}, nil)

	diff, lastCommit, err := c.DiffForLLMAuto(Scope{})
	if err != nil {
		t.Fatalf("fallback git failure must be swallowed, got %v", err)
	}
	if lastCommit {
		t.Error("failed fallback must not be flagged")
	}
	if strings.TrimSpace(diff) != "" {
		t.Errorf("diff = %q, want blank", diff)
	}
}

func TestDiffForLLMAuto_BlankHeadKeepsEmptyResult(t *testing.T) {
	c := fakeClient(map[string]runResult{
		insideWorkTree: {Stdout: "true"},
	}, nil)

	diff, lastCommit, err := c.DiffForLLMAuto(Scope{})
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if lastCommit || strings.TrimSpace(diff) != "" {
		t.Errorf("empty repo should report no changes, got (%q, %v)", diff, lastCommit)
	}
}
