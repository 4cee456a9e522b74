package gitdiff

import "strings"

const fileHeaderPrefix = "diff --git "

// FilterIgnored removes from a raw unified diff every per-file segment whose
// path matches ShouldIgnore. Kept segments pass through verbatim and in
// order. Content before the first file header is always dropped. The
// function is total: malformed input simply fails to match header lines and
// is treated as non-file content.
func FilterIgnored(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	skipping := true

	for _, line := range lines {
		if strings.HasPrefix(line, fileHeaderPrefix) {
			if path := headerPath(line); path != "" && ShouldIgnore(path) {
				skipping = true
				continue
			}
			skipping = false
			kept = append(kept, line)
			continue
		}
		if !skipping {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}

// headerPath parses the old-file path out of a "diff --git a/<path> b/<path>"
// line. A header with fewer than four tokens yields "" and is never excluded.
func headerPath(line string) string {
	parts := strings.Fields(line)
	if len(parts) < 4 {
		return ""
	}
	return strings.TrimPrefix(parts[2], "a/")
}
