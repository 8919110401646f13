package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// file accessibility and clipboard command lookup. The configPath argument
// specifies the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateClipboard(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Clipboard.PasteCommand != "" && c.Clipboard.CopyCommand == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Clipboard",
			Item:     "paste_command",
			Message:  "paste_command is ignored unless copy_command is also set",
		})
	}

	if c.Clipboard.CopyCommand != "" && c.Clipboard.PasteCommand == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Clipboard",
			Item:     "paste_command",
			Message:  "no paste_command; pasting into cells is disabled",
		})
	}

	return warnings
}

// validateFileAccess checks the config file, library directory, and default document.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("library_dir", c.LibraryDir, isDirectoryOrNotExist),
		criterio.Run("default_document", c.DefaultDocument, isFileOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validateClipboard() error {
	var errs criterio.FieldErrorsBuilder

	for field, cmd := range map[string]string{
		"clipboard.copy_command":  c.Clipboard.CopyCommand,
		"clipboard.paste_command": c.Clipboard.PasteCommand,
	} {
		if err := commandExists(cmd); err != nil {
			errs = errs.Append(field, err)
		}
	}

	return errs.ToError()
}

// commandExists validates that the program of a shell command line is on PATH.
func commandExists(cmdline string) error {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return nil
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return fmt.Errorf("executable not found: %s", fields[0])
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// isFileOrNotExist validates that a path is a regular file or doesn't exist.
func isFileOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // created on first save
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("is a directory, not a file")
	}
	return nil
}
