package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"actapi/internal/config"
	"actapi/internal/document"
	"actapi/internal/logging"
	"actapi/internal/notify"
	"actapi/internal/service"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Render a form and email the PDF",
	Long: `Send renders the form and emails the PDF to MAIL_RECIPIENTS through the
SMTP relay in MAIL_SMTP_HOST/MAIL_SMTP_PORT, authenticating as MAIL_FROM_ADDRESS
with MAIL_APP_PASSWORD. A failed delivery is reported but the PDF is still written
when --output is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := formFromFlags(cmd)
		if err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if to, _ := cmd.Flags().GetStringSlice("to"); len(to) > 0 {
			cfg.Mail.Recipients = to
		}
		logger, err := logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		svc := service.NewActaService(
			document.NewBuilder(),
			notify.New(notify.WithLogger(logger)),
			cfg.Mail,
			service.WithLogger(logger),
		)
		res, err := svc.Send(cmd.Context(), f)
		if err != nil {
			return err
		}

		if out, _ := cmd.Flags().GetString("output"); out != "" {
			if err := os.WriteFile(out, res.PDF, 0o644); err != nil {
				return err
			}
			logger.Info("acta written", zap.String("path", out))
		}
		if !res.Notified {
			return fmt.Errorf("acta rendered but not emailed: %s", res.Reason)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sent to %d recipient(s)\n", len(cfg.Mail.Recipients))
		return nil
	},
}

func init() {
	sendCmd.Flags().StringP("output", "o", "", "also write the PDF to this file")
	sendCmd.Flags().StringSlice("to", nil, "override MAIL_RECIPIENTS")

	rootCmd.AddCommand(sendCmd)
}
