package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultModel is used when neither the config file nor the --model flag
// names one. Any model installed in Ollama works.
const DefaultModel = "llama3"

// ValidLangs are the accepted values for the lang setting. "auto" follows
// the language of the code and commit messages.
var ValidLangs = []string{"en", "ru", "auto"}

// ValidThemes are the accepted values for the report_theme setting.
var ValidThemes = []string{"dark", "light"}

// Config is the persisted user configuration.
type Config struct {
	Model          string `json:"model,omitempty"`
	Lang           string `json:"lang,omitempty"`
	ReportTheme    string `json:"report_theme,omitempty"`
	ReportAutoOpen *bool  `json:"report_auto_open,omitempty"`
}

// EffectiveLang resolves the configured language, defaulting to auto.
func (c Config) EffectiveLang() string {
	if c.Lang == "" {
		return "auto"
	}
	return c.Lang
}

// EffectiveModel resolves the configured model, defaulting to DefaultModel.
func (c Config) EffectiveModel() string {
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

// Theme resolves the report theme, defaulting to dark.
func (c Config) Theme() string {
	if c.ReportTheme == "" {
		return "dark"
	}
	return c.ReportTheme
}

// AutoOpen reports whether a written HTML report should open in the browser.
// True when unset.
func (c Config) AutoOpen() bool {
	if c.ReportAutoOpen == nil {
		return true
	}
	return *c.ReportAutoOpen
}

// ConfigDir returns the platform-appropriate config directory for smart-diff.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "smart-diff"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "smart-diff"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "smart-diff"), nil
	default:
		return filepath.Join(home, ".config", "smart-diff"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file. A missing or malformed file yields the zero
// Config; configuration problems are never fatal.
func Load() Config {
	path, err := ConfigPath()
	if err != nil {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// Save writes the config to the config file, creating the directory if
// needed.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// SetField sets a single config field by key name, validating the value.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "model":
		cfg.Model = value
	case "lang":
		if !contains(ValidLangs, value) {
			return fmt.Errorf("lang must be one of: %s", strings.Join(ValidLangs, ", "))
		}
		cfg.Lang = value
	case "report_theme":
		if !contains(ValidThemes, value) {
			return fmt.Errorf("report_theme must be one of: %s", strings.Join(ValidThemes, ", "))
		}
		cfg.ReportTheme = value
	case "report_auto_open":
		v := parseBool(value)
		cfg.ReportAutoOpen = &v
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
