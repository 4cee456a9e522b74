// Package llm talks to a locally hosted Ollama server. It offers two
// operations over the same chat endpoint: a markdown analysis of a diff and
// a single-line commit message. Failures are classified by message so the
// CLI can print a targeted hint (server not running vs model not pulled).
package llm
