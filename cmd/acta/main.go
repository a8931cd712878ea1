// Package main is the acta command line: it renders meeting minutes described in a
// YAML file to PDF and optionally emails them, without running the HTTP server.
package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"actapi/internal/model"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "acta",
	Short: "Render and email meeting minutes (actas)",
	Long: `acta turns a meeting-minutes form written in YAML into an A4 PDF.

Start from the template subcommand, edit the values, then render the file
locally or send it to the recipients configured through MAIL_* variables.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("input", "i", "-", "form YAML file, - for stdin")
}

// readForm decodes a YAML form from path, or from stdin when path is "-".
// Unknown keys are rejected so typos do not silently blank a field.
func readForm(path string, stdin io.Reader) (model.Form, error) {
	var f model.Form

	r := stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return f, err
		}
		defer file.Close()
		r = file
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return f, fmt.Errorf("parse form %s: %w", path, err)
	}
	return f, nil
}

func formFromFlags(cmd *cobra.Command) (model.Form, error) {
	path, _ := cmd.Flags().GetString("input")
	return readForm(path, cmd.InOrStdin())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "acta:", err)
		os.Exit(1)
	}
}
