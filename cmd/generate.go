package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bin2c/bin2c/internal/config"
	"github.com/bin2c/bin2c/internal/generator"
	"github.com/bin2c/bin2c/pkg/log"
)

// manifestFile is the batch configuration read by the generate command.
const manifestFile = "bin2c.yaml"

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Convert every file listed in " + manifestFile,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// runGenerate parses the bin2c.yaml manifest in the working directory and
// executes every conversion in order, stopping at the first failure.
// Already-written files are not rolled back.
//
// Returns:
//   - error: An error if parsing, validation or any conversion fails.
func runGenerate() error {
	// 1. Read bin2c.yaml
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

	// 2. Set up logging as configured.
	if err := log.Init(m.Logging.Path, m.Logging.Level); err != nil {
		return err
	}

	// 3. Build the codec once; every conversion reuses it.
	codec, err := newCodec()
	if err != nil {
		return err
	}

	printHeader(fmt.Sprintf("Converting %d file(s)", len(m.Files)))
	for i := range m.Files {
		cfg := &m.Files[i]
		if err := generator.Generate(cfg, codec); err != nil {
			printError(cfg.Input, err.Error())
			return fmt.Errorf("failed to convert %s: %w", cfg.Input, err)
		}
		printSuccess(cfg.Input, "-> "+cfg.Output)
	}
	return nil
}
