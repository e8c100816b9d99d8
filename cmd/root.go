package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bin2c/bin2c/internal/config"
	"github.com/bin2c/bin2c/internal/generator"
	"github.com/bin2c/bin2c/version"
)

// convertCfg collects the command-line flags of the root command. Its
// values are copied into a fresh config.Config before the pipeline runs.
var convertCfg config.Config

// rootCmd represents the base command: a single file conversion.
var rootCmd = &cobra.Command{
	Use:   "bin2c [flags] input_file [output_file]",
	Short: "Convert a binary file to a C array literal",
	Long: `bin2c reads an arbitrary binary file and writes a C source file containing
the file's bytes as a fixed-width array literal plus a size declaration, so
the data can be compiled into a program as a read-only resource.

When output_file is omitted, the input path with its extension replaced by
".h" is used. The array identifier defaults to the input base name; use
--label to override it ($* expands to the base name, $@ to the file name).`,
	Version: version.Version,
	Args:    cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init wires the conversion flags. The short names match the classic bin2c
// option letters.
func init() {
	rootCmd.Flags().BoolVarP(&convertCfg.Append, "append", "a", false, "append to the output file instead of replacing it")
	rootCmd.Flags().UintVarP(&convertCfg.Bits, "bits", "b", 8, "word width of the array elements (8, 16 or 32)")
	rootCmd.Flags().BoolVarP(&convertCfg.Define, "define", "d", false, "emit the size as a #define instead of a typed constant")
	rootCmd.Flags().StringVarP(&convertCfg.Label, "label", "l", "", "array identifier; $* = base name, $@ = file name (default \"$*\")")
	rootCmd.Flags().BoolVarP(&convertCfg.Mutable, "mutable", "m", false, "drop the const qualifier from the array")
	rootCmd.Flags().BoolVarP(&convertCfg.Text, "text", "t", false, "read the input in text mode (normalize line endings)")
	rootCmd.Flags().BoolVarP(&convertCfg.Zero, "zero", "z", false, "append a single zero byte after the data")
}

// runConvert performs the single conversion described by the command-line
// flags and positional arguments.
//
// Parameters:
//   - args: The positional arguments: the input path and optionally the
//     output path.
//
// Returns:
//   - error: An error if validation or any pipeline stage fails.
func runConvert(args []string) error {
	cfg := convertCfg
	cfg.Input = args[0]
	if len(args) > 1 {
		cfg.Output = args[1]
	}

	config.ApplyDefaults(&cfg)
	if err := config.Validate(&cfg); err != nil {
		return err
	}

	codec, err := newCodec()
	if err != nil {
		return err
	}
	return generator.Generate(&cfg, codec)
}
