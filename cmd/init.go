package cmd

import (
	"fmt"
	"os"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/bin2c/bin2c/internal/templates"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [input_file...]",
	Short: "Create a starter " + manifestFile + " manifest",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInit(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit writes a commented starter manifest in the working directory. Any
// arguments become initial file entries; without arguments the file list
// holds a commented example to edit.
//
// Parameters:
//   - inputs: The input paths to list in the manifest.
//
// Returns:
//   - error: An error if the manifest already exists or cannot be written.
func runInit(inputs []string) error {
	if _, err := os.Stat(manifestFile); !os.IsNotExist(err) {
		return fmt.Errorf("%s already exists", manifestFile)
	}

	data := struct{ Inputs []string }{inputs}
	if err := generateFileFromTemplate("bin2c.yaml.tmpl", manifestFile, data); err != nil {
		return err
	}

	if len(inputs) > 0 {
		fmt.Printf("Created %s with %d file entries.\n", manifestFile, len(inputs))
	} else {
		fmt.Printf("Created %s.\n", manifestFile)
	}
	fmt.Println("Next steps:")
	fmt.Printf("  edit %s\n", manifestFile)
	fmt.Println("  bin2c generate")
	return nil
}

// generateFileFromTemplate creates a file at destPath using the specified
// template and data.
//
// Parameters:
//   - tmplName: The name of the template file to use.
//   - destPath: The path where the generated file should be written.
//   - data: The data object to pass to the template.
//
// Returns:
//   - error: An error if the template cannot be read or executed.
func generateFileFromTemplate(tmplName, destPath string, data interface{}) error {
	content, err := templates.Get(tmplName)
	if err != nil {
		return err
	}
	t, err := template.New(tmplName).Parse(content)
	if err != nil {
		return err
	}
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.Execute(f, data)
}
