// Package config handles configuration and credential loading for geminichat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diogo/geminichat/internal/models"
)

// Provider names accepted in the config file
const (
	ProviderGemini = "gemini"
	ProviderArk    = "ark"
)

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`              // "dark", "light", or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji"`       // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"`  // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap"`         // Enable word wrap in table cells
	InlineTableLinks bool   `json:"inline_table_links"` // Render links inline in tables
}

// Config represents the user configuration file
type Config struct {
	Provider     string `json:"provider"`
	DefaultModel string `json:"default_model"`
	BaseURL      string `json:"base_url,omitempty"`
	// TimeoutSeconds bounds a single remote call. Zero leaves the
	// transport default in place.
	TimeoutSeconds int                     `json:"timeout_seconds,omitempty"`
	Generation     models.GenerationConfig `json:"generation"`
	// SafetyThreshold applies to every harm category unless Safety
	// names a per-category override.
	SafetyThreshold   string            `json:"safety_threshold"`
	Safety            map[string]string `json:"safety,omitempty"`
	SystemInstruction string            `json:"system_instruction,omitempty"`
	Verbose           bool              `json:"verbose"`
	CopyToClipboard   bool              `json:"copy_to_clipboard"`
	TUITheme          string            `json:"tui_theme,omitempty"`
	LogFile           string            `json:"log_file,omitempty"`
	Markdown          MarkdownConfig    `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Provider:        ProviderGemini,
		DefaultModel:    models.DefaultModel,
		TimeoutSeconds:  300,
		Generation:      models.DefaultGenerationConfig(),
		SafetyThreshold: string(models.BlockNone),
		Verbose:         false,
		CopyToClipboard: false,
		TUITheme:        "tokyonight",
		Markdown:        DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".geminichat")
	return configDir, nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetLogPath returns the log file path from config, defaulting to the config dir
func GetLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	configDir, err := EnsureConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "geminichat.log"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ModelConfig builds the per-session model configuration from the file settings
func (c Config) ModelConfig() models.ModelConfig {
	threshold := models.HarmBlockThreshold(c.SafetyThreshold)
	if threshold == "" {
		threshold = models.BlockNone
	}

	safety := models.UniformSafety(threshold)
	for i, s := range safety {
		if override, ok := c.Safety[string(s.Category)]; ok {
			safety[i].Threshold = models.HarmBlockThreshold(override)
		}
	}

	mc := models.ModelConfig{
		Model:             c.DefaultModel,
		Generation:        c.Generation,
		Safety:            safety,
		SystemInstruction: c.SystemInstruction,
	}
	return mc.Clone()
}
