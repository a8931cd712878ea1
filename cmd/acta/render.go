package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"actapi/internal/config"
	"actapi/internal/document"
	"actapi/internal/notify"
	"actapi/internal/service"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a form to a PDF file",
	Long: `Render validates and normalizes the form, then writes the PDF. Participants
without a name and agreements without a description are left out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := formFromFlags(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("output")

		svc := service.NewActaService(document.NewBuilder(), notify.New(), config.MailConfig{})
		res, err := svc.Generate(cmd.Context(), f)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, res.PDF, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", out, len(res.PDF))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", service.DownloadFilename, "PDF file to write")

	rootCmd.AddCommand(renderCmd)
}
