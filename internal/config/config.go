// Package config defines the conversion settings shared by the
// command-line flags and the bin2c.yaml manifest.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config describes a single conversion: one input file turned into one
// array literal. The yaml tags let a manifest entry populate the same
// struct the command-line flags do.
type Config struct {
	// Input is the path of the binary file to convert.
	Input string `yaml:"input"`
	// Output is the path of the source file to write. Empty selects the
	// input path with its extension replaced by ".h".
	Output string `yaml:"output"`
	// Label is the identifier of the emitted array. It may contain the
	// placeholders $* (input base name) and $@ (input file name); the
	// expansion is sanitized into a valid C identifier. Empty selects $*.
	Label string `yaml:"label"`
	// Bits is the word width of the array elements: 8, 16 or 32.
	Bits uint `yaml:"bits"`
	// Append adds the array to the end of the output file instead of
	// replacing the file, and skips the boilerplate header.
	Append bool `yaml:"append"`
	// Define emits the size as a preprocessor macro instead of a typed
	// constant.
	Define bool `yaml:"define"`
	// Mutable drops the const qualifier from the array declaration.
	Mutable bool `yaml:"mutable"`
	// Text reads the input in text mode: Windows line endings are
	// normalized to a single newline before packing.
	Text bool `yaml:"text"`
	// Zero appends a single zero byte after the input data.
	Zero bool `yaml:"zero"`
}

// Manifest is the top-level structure parsed from bin2c.yaml. It drives the
// generate command: every entry in Files is one conversion, executed in
// order.
type Manifest struct {
	// Logging configures the diagnostic logger for the batch run.
	Logging LoggingConfig `yaml:"logging"`
	// Files is the list of conversions to perform.
	Files []Config `yaml:"files"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path.
	Path string `yaml:"path"`
}

// validBits is the set of supported word widths.
var validBits = map[uint]bool{
	8:  true,
	16: true,
	32: true,
}

// ApplyDefaults fills in the fields of a conversion that may be omitted:
// the word width, the label and the output path.
//
// Parameters:
//   - cfg: The Config object to modify.
func ApplyDefaults(cfg *Config) {
	if cfg.Bits == 0 {
		cfg.Bits = 8
	}
	if cfg.Label == "" {
		cfg.Label = "$*"
	}
	if cfg.Output == "" && cfg.Input != "" {
		cfg.Output = DefaultOutput(cfg.Input)
	}
}

// DefaultOutput derives the output path from the input path by replacing
// the input's extension with ".h". An input without an extension gets ".h"
// appended.
func DefaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".h"
}

// Validate checks a single conversion for errors. It runs before any file
// is opened, so a rejected configuration never leaves partial output.
//
// Parameters:
//   - cfg: The Config object to validate, with defaults already applied.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(cfg *Config) error {
	if cfg.Input == "" {
		return fmt.Errorf("no input file")
	}
	if !validBits[cfg.Bits] {
		return fmt.Errorf("invalid word width: %d (allowed: 8, 16, 32)", cfg.Bits)
	}
	if filepath.Clean(cfg.Input) == filepath.Clean(cfg.Output) {
		return fmt.Errorf("input and output are the same file: %s", cfg.Input)
	}
	return nil
}

// ApplyManifestDefaults sets default values for manifest fields that are
// missing: the logging level and the per-conversion defaults of every
// entry.
//
// Parameters:
//   - m: The Manifest object to modify.
func ApplyManifestDefaults(m *Manifest) {
	if m.Logging.Level == "" {
		m.Logging.Level = "info"
	}
	for i := range m.Files {
		ApplyDefaults(&m.Files[i])
	}
}

// ValidateManifest checks the batch configuration as a whole: every entry
// must validate on its own, the logging level must be known, and an output
// path may only repeat when the later entry appends to it.
//
// Parameters:
//   - m: The Manifest object to validate, with defaults already applied.
//
// Returns:
//   - error: An error if the manifest is invalid, or nil otherwise.
func ValidateManifest(m *Manifest) error {
	if len(m.Files) == 0 {
		return fmt.Errorf("no files to convert in manifest")
	}

	switch strings.ToLower(m.Logging.Level) {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", m.Logging.Level)
	}

	seenOutputs := make(map[string]bool)
	for i := range m.Files {
		cfg := &m.Files[i]
		if err := Validate(cfg); err != nil {
			return fmt.Errorf("files[%d] (%s): %w", i, cfg.Input, err)
		}
		out := filepath.Clean(cfg.Output)
		if seenOutputs[out] && !cfg.Append {
			return fmt.Errorf("files[%d] (%s): output %s is written twice; set append: true to add to it", i, cfg.Input, cfg.Output)
		}
		seenOutputs[out] = true
	}
	return nil
}
