package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"smartdiff/internal/config"
	"smartdiff/internal/gitdiff"
	"smartdiff/internal/i18n"
	"smartdiff/internal/llm"
	"smartdiff/internal/logger"
	"smartdiff/internal/output"
	"smartdiff/internal/report"
)

// Flags shared between the root command and "run".
var (
	flagStaged     bool
	flagRef        string
	flagModel      string
	flagLang       string
	flagCommitMsg  bool
	flagCwd        string
	flagOutputFile string
	flagHTML       string
	flagVerbose    bool
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&flagStaged, "staged", "s", false, "Analyze only staged changes")
	cmd.Flags().StringVarP(&flagRef, "ref", "r", "", "Analyze this commit (e.g. HEAD, HEAD~1)")
	cmd.Flags().StringVarP(&flagModel, "model", "m", "", "Ollama model (overrides config)")
	cmd.Flags().StringVarP(&flagLang, "lang", "l", "", "Output and LLM response language (en, ru, auto)")
	cmd.Flags().BoolVar(&flagCommitMsg, "commit-msg", false, "Generate only a commit message (one line)")
	cmd.Flags().StringVar(&flagCwd, "cwd", "", "Repo directory (default: current)")
	cmd.Flags().StringVarP(&flagOutputFile, "output-file", "o", "", "Write commit message to file (for prepare-commit-msg hook)")
	cmd.Flags().StringVar(&flagHTML, "html", "", "Write HTML report to this file (e.g. report.html)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

func init() {
	// Shared flags go on both the bare invocation and the explicit "run"
	// subcommand; a parent's local flags are not visible to children.
	addRunFlags(rootCmd)
	addRunFlags(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyze diff or generate commit message",
	Long: `Analyze diff or generate commit message.

Examples:

  smart-diff run               analyze current changes (or last commit if clean)
  smart-diff run --staged      only staged
  smart-diff run --ref HEAD    last commit
  smart-diff run --commit-msg  generate commit message
  smart-diff config set model deepseek-r1   set default model
  smart-diff config set lang ru             set default language`,
	RunE: runE,
}

func runE(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	model := flagModel
	if model == "" {
		model = cfg.EffectiveModel()
	}
	lang := flagLang
	if lang == "" {
		lang = cfg.EffectiveLang()
	}
	if !validLang(lang) {
		return fmt.Errorf("lang must be one of: %s", strings.Join(config.ValidLangs, ", "))
	}

	locale := i18n.Resolve(lang)
	printer := output.NewPrinter(locale)
	log := logger.New(flagVerbose)

	git := gitdiff.New(flagCwd)
	git.SetLogger(log)

	scope := gitdiff.Scope{Staged: flagStaged, Ref: flagRef}
	diff, analyzingLast, err := git.DiffForLLMAuto(scope)
	if err != nil {
		printer.Error(err.Error())
		exitCode = ExitError
		return nil
	}
	if strings.TrimSpace(diff) == "" {
		printer.Error(i18n.T(locale, "no_changes"))
		exitCode = ExitError
		return nil
	}
	if analyzingLast {
		printer.Info(i18n.T(locale, "analyzing_last"))
	}

	ollama := llm.New(model)
	ollama.SetLogger(log)
	ctx := context.Background()

	if flagCommitMsg {
		printer.Info(i18n.T(locale, "commit_msg_generating", model))
		msg, err := ollama.CommitMessage(ctx, diff, lang)
		if err != nil {
			printOllamaError(printer, err, model, locale)
			exitCode = ExitError
			return nil
		}
		if flagOutputFile != "" {
			if err := os.WriteFile(flagOutputFile, []byte(msg), 0o644); err != nil {
				printer.Error(err.Error())
				exitCode = ExitError
				return nil
			}
			printer.Info(i18n.T(locale, "commit_written", flagOutputFile))
			return nil
		}
		printer.CommitMessage(msg)
		return nil
	}

	printer.Info(i18n.T(locale, "model_label", model))
	analysis, err := ollama.Analyze(ctx, diff, lang)
	if err != nil {
		printOllamaError(printer, err, model, locale)
		exitCode = ExitError
		return nil
	}
	printer.Analysis(i18n.T(locale, "analysis_title"), analysis)

	if flagHTML != "" {
		if err := writeReport(git, diff, analysis, model, lang, analyzingLast, cfg, printer); err != nil {
			printer.Error(err.Error())
			exitCode = ExitError
			return nil
		}
	}
	return nil
}

func writeReport(git *gitdiff.Client, diff, analysis, model, lang string, analyzingLast bool, cfg config.Config, printer *output.Printer) error {
	// Report stats must cover the scope actually analyzed, including the
	// HEAD fallback.
	scope := gitdiff.Scope{Staged: flagStaged, Ref: flagRef}
	if flagRef == "" && analyzingLast {
		scope = gitdiff.Scope{Ref: "HEAD"}
	}

	data, err := report.Build(git, report.Options{
		Scope:    scope,
		Diff:     diff,
		Analysis: analysis,
		Model:    model,
		Lang:     lang,
		Theme:    cfg.Theme(),
		Version:  version,
	})
	if err != nil {
		return err
	}

	path, err := filepath.Abs(flagHTML)
	if err != nil {
		return err
	}
	if err := report.Write(path, data, cfg.AutoOpen()); err != nil {
		return err
	}
	printer.ReportWritten(path)
	return nil
}

// printOllamaError shows a targeted hint for LLM failures: server not
// running, model not pulled, or anything else.
func printOllamaError(printer *output.Printer, err error, model, locale string) {
	switch {
	case llm.IsConnectError(err):
		printer.Error(i18n.T(locale, "ollama_connect"))
	case llm.IsModelNotFound(err):
		printer.Error(i18n.T(locale, "ollama_model_not_found", model))
	default:
		printer.Error(strings.TrimSpace(err.Error()) + "\n" + i18n.T(locale, "ollama_hint", model))
	}
}

func validLang(lang string) bool {
	for _, l := range config.ValidLangs {
		if l == lang {
			return true
		}
	}
	return false
}
