package gitdiff

import (
	"strconv"
	"strings"
)

// FileStat is the per-file added/deleted line count for one changed file.
// Binary files report zero for both.
type FileStat struct {
	Path    string `json:"path"`
	Added   int    `json:"added"`
	Deleted int    `json:"deleted"`
}

// Numstat returns per-file line stats for scope, with ignored paths removed.
// This is report-only data: any git failure yields an empty slice, and a
// malformed record is skipped without affecting the rest.
func (c *Client) Numstat(scope Scope) []FileStat {
	var res runResult
	switch {
	case scope.Ref != "":
		res = c.git("show", scope.Ref, "--numstat", "--format=")
	case scope.Staged:
		res = c.git("diff", "--numstat", "--cached")
	default:
		res = c.git("diff", "--numstat")
	}
	if res.ExitCode != 0 {
		return nil
	}

	var stats []FileStat
	for _, line := range strings.Split(res.Stdout, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		// numstat record: "added\tdeleted\tpath"; "-" marks a binary file.
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		path := strings.ReplaceAll(strings.TrimSpace(parts[2]), "\\", "/")
		if ShouldIgnore(path) {
			continue
		}
		added, ok := parseCount(parts[0])
		if !ok {
			continue
		}
		deleted, ok := parseCount(parts[1])
		if !ok {
			continue
		}
		stats = append(stats, FileStat{Path: path, Added: added, Deleted: deleted})
	}
	return stats
}

func parseCount(s string) (int, bool) {
	if s == "-" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
