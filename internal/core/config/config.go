// Package config handles configuration loading and validation for multipaste.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/multipaste/internal/core/document"
	"github.com/colonyops/multipaste/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Theme           string          `yaml:"theme"`
	Author          string          `yaml:"author"`
	LibraryDir      string          `yaml:"library_dir"`
	DefaultDocument string          `yaml:"default_document"`
	ConfirmClose    bool            `yaml:"confirm_close"`
	Clipboard       ClipboardConfig `yaml:"clipboard"`
	DataDir         string          `yaml:"-"` // set by caller, not from config file
}

// ClipboardConfig selects how text reaches the system clipboard. When
// CopyCommand is empty the platform clipboard is used.
type ClipboardConfig struct {
	CopyCommand  string `yaml:"copy_command"`  // receives the text on stdin
	PasteCommand string `yaml:"paste_command"` // prints the clipboard on stdout
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:        styles.DefaultTheme,
		Author:       document.DefaultAuthor,
		ConfirmClose: true,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Author == "" {
		c.Author = defaults.Author
	}
	if c.LibraryDir == "" && c.DataDir != "" {
		c.LibraryDir = filepath.Join(c.DataDir, "docs")
	}
	c.LibraryDir = expandHome(c.LibraryDir)
	c.DefaultDocument = expandHome(c.DefaultDocument)
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	return nil
}

// DocumentPath resolves a document argument. Arguments that look like paths
// are returned as-is; bare names resolve to <library_dir>/<name>.json. An
// empty argument resolves to the configured default document.
func (c *Config) DocumentPath(arg string) string {
	if arg == "" {
		return c.DefaultDocument
	}

	arg = expandHome(arg)
	if strings.ContainsRune(arg, filepath.Separator) || strings.ContainsRune(arg, '/') || filepath.Ext(arg) != "" {
		return arg
	}

	return filepath.Join(c.LibraryDir, arg+".json")
}

// LogFile returns the default log file path.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "multipaste.log")
}

// RecentFile returns the path of the recently used documents list.
func (c *Config) RecentFile() string {
	return filepath.Join(c.DataDir, "recent.json")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
