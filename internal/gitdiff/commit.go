package gitdiff

import "strings"

// CommitInfo is the metadata of a single commit, used by the HTML report.
type CommitInfo struct {
	Hash     string
	HashFull string
	Author   string
	Email    string
	Date     string
	Subject  string
	Body     string
}

// CommitInfo returns metadata for ref, or nil on any failure. Like Numstat,
// this feeds the report only and never escalates errors.
func (c *Client) CommitInfo(ref string) *CommitInfo {
	res := c.git("log", "-1", "--format=%H%n%an%n%ae%n%ai%n%s%n%b", ref)
	if res.ExitCode != 0 || strings.TrimSpace(res.Stdout) == "" {
		return nil
	}

	parts := strings.SplitN(strings.TrimSpace(res.Stdout), "\n", 6)
	if len(parts) < 5 {
		return nil
	}

	hash := parts[0]
	short := hash
	if len(short) > 12 {
		short = short[:12]
	}
	info := &CommitInfo{
		Hash:     short,
		HashFull: hash,
		Author:   parts[1],
		Email:    parts[2],
		Date:     parts[3],
		Subject:  parts[4],
	}
	if len(parts) > 5 {
		info.Body = strings.TrimSpace(parts[5])
	}
	return info
}
