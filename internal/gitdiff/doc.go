// Package gitdiff acquires patch text and per-file stats from a git
// repository and prepares them for a language model.
//
// Three scopes are supported: the working tree, the staged index, and a
// named revision. All of them invoke the external git executable. Raw
// patches are filtered against a fixed set of noise patterns (lock files,
// build artifacts, vendored code) and truncated to a character budget that
// keeps both the head and the tail of an oversized diff.
//
// All decision logic runs against a tagged process result, so the whole
// pipeline is testable with a fake git backend.
package gitdiff
