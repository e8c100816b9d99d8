package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name:      "missing input",
			cfg:       Config{Bits: 8, Output: "out.h"},
			wantError: "no input file",
		},
		{
			name:      "zero width",
			cfg:       Config{Input: "a.bin", Output: "a.h", Bits: 0},
			wantError: "invalid word width",
		},
		{
			name:      "unsupported width",
			cfg:       Config{Input: "a.bin", Output: "a.h", Bits: 24},
			wantError: "invalid word width",
		},
		{
			name:      "input equals output",
			cfg:       Config{Input: "a.h", Output: "a.h", Bits: 8},
			wantError: "same file",
		},
		{
			name:      "input equals output after cleaning",
			cfg:       Config{Input: "./a.h", Output: "a.h", Bits: 8},
			wantError: "same file",
		},
		{
			name: "valid width 8",
			cfg:  Config{Input: "a.bin", Output: "a.h", Bits: 8},
		},
		{
			name: "valid width 16",
			cfg:  Config{Input: "a.bin", Output: "a.h", Bits: 16},
		},
		{
			name: "valid width 32",
			cfg:  Config{Input: "a.bin", Output: "a.h", Bits: 32},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.wantError != "" {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("Validate() error = %v, want substring %q", err, tt.wantError)
				}
			} else {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantBits   uint
		wantLabel  string
		wantOutput string
	}{
		{
			name:       "everything defaulted",
			cfg:        Config{Input: "assets/logo.png"},
			wantBits:   8,
			wantLabel:  "$*",
			wantOutput: "assets/logo.h",
		},
		{
			name:       "no extension gets .h appended",
			cfg:        Config{Input: "README"},
			wantBits:   8,
			wantLabel:  "$*",
			wantOutput: "README.h",
		},
		{
			name:       "dot in directory is not an extension",
			cfg:        Config{Input: "dir.v2/data"},
			wantBits:   8,
			wantLabel:  "$*",
			wantOutput: "dir.v2/data.h",
		},
		{
			name:       "explicit values kept",
			cfg:        Config{Input: "a.bin", Output: "custom.c", Label: "blob", Bits: 32},
			wantBits:   32,
			wantLabel:  "blob",
			wantOutput: "custom.c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ApplyDefaults(&tt.cfg)
			if tt.cfg.Bits != tt.wantBits {
				t.Errorf("Bits = %d, want %d", tt.cfg.Bits, tt.wantBits)
			}
			if tt.cfg.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", tt.cfg.Label, tt.wantLabel)
			}
			if tt.cfg.Output != tt.wantOutput {
				t.Errorf("Output = %q, want %q", tt.cfg.Output, tt.wantOutput)
			}
		})
	}
}

func TestValidateManifest(t *testing.T) {
	tests := []struct {
		name      string
		manifest  Manifest
		wantError string
	}{
		{
			name:      "empty manifest",
			manifest:  Manifest{Logging: LoggingConfig{Level: "info"}},
			wantError: "no files to convert",
		},
		{
			name: "invalid logging level",
			manifest: Manifest{
				Logging: LoggingConfig{Level: "loud"},
				Files:   []Config{{Input: "a.bin", Output: "a.h", Bits: 8}},
			},
			wantError: "invalid logging level",
		},
		{
			name: "entry error names the entry",
			manifest: Manifest{
				Logging: LoggingConfig{Level: "info"},
				Files:   []Config{{Input: "a.bin", Output: "a.h", Bits: 12}},
			},
			wantError: "files[0] (a.bin)",
		},
		{
			name: "duplicate output without append",
			manifest: Manifest{
				Logging: LoggingConfig{Level: "info"},
				Files: []Config{
					{Input: "a.bin", Output: "res.h", Bits: 8},
					{Input: "b.bin", Output: "res.h", Bits: 8},
				},
			},
			wantError: "written twice",
		},
		{
			name: "duplicate output with append is fine",
			manifest: Manifest{
				Logging: LoggingConfig{Level: "info"},
				Files: []Config{
					{Input: "a.bin", Output: "res.h", Bits: 8},
					{Input: "b.bin", Output: "res.h", Bits: 8, Append: true},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManifest(&tt.manifest)
			if tt.wantError != "" {
				if err == nil {
					t.Errorf("ValidateManifest() expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("ValidateManifest() error = %v, want substring %q", err, tt.wantError)
				}
			} else {
				if err != nil {
					t.Errorf("ValidateManifest() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestManifestParsing(t *testing.T) {
	src := `
logging:
  level: debug
files:
  - input: logo.png
    output: res.h
    bits: 16
    define: true
  - input: font.dat
    output: res.h
    append: true
    label: font_$*
`
	var m Manifest
	if err := yaml.Unmarshal([]byte(src), &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	ApplyManifestDefaults(&m)

	if m.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", m.Logging.Level, "debug")
	}
	if len(m.Files) != 2 {
		t.Fatalf("len(Files) = %d, want 2", len(m.Files))
	}
	if m.Files[0].Bits != 16 || !m.Files[0].Define {
		t.Errorf("Files[0] = %+v, want bits 16 and define true", m.Files[0])
	}
	if m.Files[1].Bits != 8 {
		t.Errorf("Files[1].Bits = %d, want default 8", m.Files[1].Bits)
	}
	if m.Files[1].Label != "font_$*" {
		t.Errorf("Files[1].Label = %q, want %q", m.Files[1].Label, "font_$*")
	}
	if !m.Files[1].Append {
		t.Error("Files[1].Append = false, want true")
	}
	if err := ValidateManifest(&m); err != nil {
		t.Errorf("ValidateManifest() unexpected error: %v", err)
	}
}
