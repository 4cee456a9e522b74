package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// Exit codes: 0 on success, 1 on any reported error (git failure, empty
// diff, LLM failure).
const (
	ExitSuccess = 0
	ExitError   = 1
)

var rootCmd = &cobra.Command{
	Use:   "smart-diff",
	Short: "Analyze local changes with a local LLM (Ollama)",
	Long: "Smart Diff sends your git changes to a locally hosted Ollama model and\n" +
		"prints an analysis or a suggested commit message. Running smart-diff with\n" +
		"no subcommand is the same as smart-diff run.",
	RunE: runE, // bare invocation behaves like "run"
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Run executes the root command and returns an exit code.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitError
	}
	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print smart-diff version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "smart-diff version %s\n", version)
	},
}
