package gitdiff

import (
	"path/filepath"
	"strings"
)

// ignoredPatterns are the paths never sent to the model: lock files, build
// artifacts, vendored and generated code. Fixed set; not user-configurable.
var ignoredPatterns = []string{
	"package-lock.json",
	"poetry.lock",
	"Pipfile.lock",
	"yarn.lock",
	"pnpm-lock.yaml",
	"bun.lockb",
	"*.min.js",
	"*.min.css",
	".bundle",
	"vendor/",
	"node_modules/",
	"__pycache__/",
	".git/",
	"*.pyc",
	"*.egg-info/",
	".eggs/",
	"dist/",
	"build/",
}

// ShouldIgnore reports whether path matches any ignored pattern.
//
// A pattern ending in "/" is a directory rule: it matches when the pattern
// (slash stripped) appears anywhere in the path or the path starts with it.
// Any other pattern matches as a glob or as a plain substring. The substring
// fallback is deliberately fuzzy — "vendor/" matches "pkg/vendor/foo.go" —
// which also means "build/" matches "src/rebuild/foo.go". That over-match is
// the documented tradeoff for catching nested noise directories without full
// gitignore syntax.
func ShouldIgnore(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")
	for _, pattern := range ignoredPatterns {
		if strings.HasSuffix(pattern, "/") {
			if strings.Contains(path, strings.TrimSuffix(pattern, "/")) || strings.HasPrefix(path, pattern) {
				return true
			}
			continue
		}
		if ok, err := filepath.Match(pattern, path); err == nil && ok {
			return true
		}
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}
