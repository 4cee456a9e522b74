// Smart Diff analyzes local git changes with a locally hosted LLM (Ollama).
//
// It extracts a patch from the working tree, the staged index, or a specific
// commit, filters out noise files (lock files, build artifacts, vendored
// code), bounds the patch to the model's context budget, and prints the
// model's analysis or a suggested commit message. An optional self-contained
// HTML report adds per-file stats and charts.
//
// Usage:
//
//	smart-diff                       analyze current changes (or last commit if clean)
//	smart-diff run --staged          analyze only staged changes
//	smart-diff run --ref HEAD~1      analyze a specific commit
//	smart-diff run --commit-msg      generate a commit message
//	smart-diff run --html report.html  also write an HTML report
//	smart-diff config set model llama3
//	smart-diff config set lang ru
package main

import (
	"os"

	"smartdiff/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
