package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bin2c/bin2c/internal/config"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the " + manifestFile + " manifest without writing anything",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDoctor(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor validates the manifest and checks that every input file is
// readable, reporting one line per entry. It never writes an output file,
// so it is safe to run as a pre-flight step in CI.
//
// Returns:
//   - error: An error if the manifest is invalid or any input is missing.
func runDoctor() error {
	fmt.Printf("Checking %s...\n", manifestFile)

	data, err := os.ReadFile(manifestFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", manifestFile, err)
	}

	var m config.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to parse %s: %w", manifestFile, err)
	}

	config.ApplyManifestDefaults(&m)
	if err := config.ValidateManifest(&m); err != nil {
		return err
	}

	problems := 0
	written := make(map[string]bool)
	for i := range m.Files {
		cfg := &m.Files[i]

		info, err := os.Stat(cfg.Input)
		switch {
		case err != nil:
			printError(cfg.Input, "input is not readable")
			problems++
		case info.IsDir():
			printError(cfg.Input, "input is a directory")
			problems++
		default:
			printSuccess(cfg.Input, fmt.Sprintf("%d bytes -> %s", info.Size(), cfg.Output))
		}

		// An append entry whose target neither exists nor is written by an
		// earlier entry produces a file without the boilerplate header.
		out := filepath.Clean(cfg.Output)
		if cfg.Append && !written[out] {
			if _, err := os.Stat(cfg.Output); os.IsNotExist(err) {
				printWarning(cfg.Output, "append target does not exist; it will be created without the boilerplate header")
			}
		}
		written[out] = true
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Printf("%d file(s) ready to convert.\n", len(m.Files))
	return nil
}
