// Package output writes user-facing text to explicit sinks. Call sites
// receive a Printer instead of sharing a process-wide console object, so
// tests can capture everything through plain io.Writers.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"smartdiff/internal/i18n"
)

// Printer renders localized messages. Analysis and commit messages go to
// Out; informational and error lines go to Err so stdout stays pipeable.
type Printer struct {
	Out    io.Writer
	Err    io.Writer
	Locale string
}

// NewPrinter returns a Printer bound to the process's stdout/stderr.
func NewPrinter(locale string) *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr, Locale: locale}
}

// Info prints a single informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.Err, msg)
}

// Error prints a single line with the localized "Error:" prefix.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Err, "%s %s\n", i18n.T(p.Locale, "error_prefix"), msg)
}

// Analysis prints the model's markdown analysis under a titled rule.
func (p *Printer) Analysis(title, markdown string) {
	rule := strings.Repeat("─", 60)
	fmt.Fprintf(p.Out, "%s\n%s\n%s\n%s\n%s\n", rule, title, rule, strings.TrimSpace(markdown), rule)
}

// CommitMessage prints the suggested commit message under a localized title.
func (p *Printer) CommitMessage(msg string) {
	rule := strings.Repeat("─", 40)
	title := i18n.T(p.Locale, "suggested_commit")
	fmt.Fprintf(p.Err, "%s\n%s\n", title, rule)
	fmt.Fprintln(p.Out, msg)
}

// ReportWritten prints the localized "HTML report written" line.
func (p *Printer) ReportWritten(path string) {
	p.Info(i18n.T(p.Locale, "html_report_written", path))
}
