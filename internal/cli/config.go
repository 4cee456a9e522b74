package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smartdiff/internal/config"
	"smartdiff/internal/i18n"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Set or show default model, language, and report options",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set default model, language, or report options",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		cfg := config.Load()
		if err := config.SetField(&cfg, key, value); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		switch key {
		case "model":
			fmt.Fprintln(os.Stdout, i18n.T("en", "config_model_set", value))
		case "lang":
			fmt.Fprintln(os.Stdout, i18n.T("en", "config_lang_set", value))
		case "report_theme":
			fmt.Fprintf(os.Stdout, "Report theme set to: %s\n", value)
		case "report_auto_open":
			fmt.Fprintf(os.Stdout, "Report auto-open set to: %v\n", cfg.AutoOpen())
		}
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current config (model, language, report options)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		fmt.Fprintln(os.Stdout, i18n.T("en", "config_show", cfg.EffectiveModel(), cfg.EffectiveLang()))
		fmt.Fprintf(os.Stdout, "report_theme = %s\n", cfg.Theme())
		fmt.Fprintf(os.Stdout, "report_auto_open = %v\n", cfg.AutoOpen())

		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, i18n.T("en", "config_path", path))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
}
