// Package report renders a self-contained HTML report for one analysis run:
// inline CSS, inlined Chart.js, rendered markdown, per-file stats, and the
// escaped diff. The file works when opened as file:// with no network.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/sync/errgroup"

	"smartdiff/internal/gitdiff"
)

// Options describes one report.
type Options struct {
	Scope    gitdiff.Scope // scope actually analyzed (after any HEAD fallback)
	Diff     string
	Analysis string // model output, markdown
	Model    string
	Lang     string
	Theme    string // "dark" or "light"
	Version  string
}

// Data is everything the HTML template consumes.
type Data struct {
	ScopeLabel    string
	Model         string
	Theme         string
	Version       string
	GeneratedAt   string
	Commit        *gitdiff.CommitInfo
	AnalysisHTML  template.HTML
	FileStats     []gitdiff.FileStat
	FileStatsJSON template.JS
	Diff          string
	FilesCount    int
	TotalAdded    int
	TotalDeleted  int
	Net           int
	ExtLabels     template.JS
	ExtData       template.JS
	ExtColors     template.JS
	HasExts       bool
	InlineCSS     template.CSS
	ChartJS       template.JS
}

// Build assembles report data. The per-file stats, commit metadata, and
// Chart.js bundle are independent, so they are fetched concurrently.
func Build(client *gitdiff.Client, opts Options) (*Data, error) {
	d := &Data{
		ScopeLabel:  scopeLabel(opts.Scope),
		Model:       opts.Model,
		Theme:       opts.Theme,
		Version:     opts.Version,
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		Diff:        opts.Diff,
		InlineCSS:   template.CSS(inlineCSS),
	}

	var g errgroup.Group
	g.Go(func() error {
		d.FileStats = client.Numstat(opts.Scope)
		return nil
	})
	g.Go(func() error {
		if ref := commitRef(opts.Scope); ref != "" {
			d.Commit = client.CommitInfo(ref)
		}
		return nil
	})
	g.Go(func() error {
		d.ChartJS = template.JS(fetchChartJS())
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, f := range d.FileStats {
		d.TotalAdded += f.Added
		d.TotalDeleted += f.Deleted
	}
	d.FilesCount = len(d.FileStats)
	d.Net = d.TotalAdded - d.TotalDeleted

	statsJSON, err := json.Marshal(d.FileStats)
	if err != nil {
		return nil, fmt.Errorf("marshaling file stats: %w", err)
	}
	d.FileStatsJSON = template.JS(statsJSON)

	if err := buildExtCharts(d); err != nil {
		return nil, err
	}

	analysisHTML, err := renderMarkdown(opts.Analysis)
	if err != nil {
		return nil, fmt.Errorf("rendering analysis: %w", err)
	}
	d.AnalysisHTML = analysisHTML

	return d, nil
}

// Write renders data to path, creating parent directories, and opens the
// file in a browser when autoOpen is set.
func Write(path string, data *Data, autoOpen bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if autoOpen {
		openInBrowser(path)
	}
	return nil
}

func scopeLabel(scope gitdiff.Scope) string {
	switch {
	case scope.Ref != "":
		return "Commit " + scope.Ref
	case scope.Staged:
		return "Staged changes"
	default:
		return "Working tree changes"
	}
}

// commitRef picks which commit's metadata to show: the analyzed ref, or
// HEAD when reviewing the staged index.
func commitRef(scope gitdiff.Scope) string {
	if scope.Ref != "" {
		return scope.Ref
	}
	if scope.Staged {
		return "HEAD"
	}
	return ""
}

var extPalette = []string{
	"rgba(99, 102, 241, 0.8)",
	"rgba(16, 185, 129, 0.8)",
	"rgba(244, 63, 94, 0.8)",
	"rgba(234, 179, 8, 0.8)",
	"rgba(168, 85, 247, 0.8)",
	"rgba(6, 182, 212, 0.8)",
	"rgba(249, 115, 22, 0.8)",
	"rgba(132, 204, 22, 0.8)",
	"rgba(236, 72, 153, 0.8)",
	"rgba(20, 184, 166, 0.8)",
	"rgba(99, 102, 241, 0.6)",
	"rgba(244, 63, 94, 0.6)",
}

type extCount struct {
	Ext   string
	Count int
}

// buildExtCharts aggregates changed files by extension for the doughnut
// chart, keeping the 12 most common.
func buildExtCharts(d *Data) error {
	counts := make(map[string]int)
	for _, f := range d.FileStats {
		ext := filepath.Ext(f.Path)
		if ext == "" {
			ext = "(no ext)"
		}
		counts[ext]++
	}
	if len(counts) == 0 {
		return nil
	}

	sorted := make([]extCount, 0, len(counts))
	for ext, n := range counts {
		sorted = append(sorted, extCount{ext, n})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Ext < sorted[j].Ext
	})
	if len(sorted) > 12 {
		sorted = sorted[:12]
	}

	labels := make([]string, len(sorted))
	values := make([]int, len(sorted))
	colors := make([]string, len(sorted))
	for i, ec := range sorted {
		labels[i] = ec.Ext
		values[i] = ec.Count
		colors[i] = extPalette[i%len(extPalette)]
	}

	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		return err
	}
	valuesJSON, err := json.Marshal(values)
	if err != nil {
		return err
	}
	colorsJSON, err := json.Marshal(colors)
	if err != nil {
		return err
	}
	d.ExtLabels = template.JS(labelsJSON)
	d.ExtData = template.JS(valuesJSON)
	d.ExtColors = template.JS(colorsJSON)
	d.HasExts = true
	return nil
}

func renderMarkdown(src string) (template.HTML, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
