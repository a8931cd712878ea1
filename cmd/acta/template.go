package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"actapi/internal/form"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a pre-filled form to start from",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(form.Default())
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
