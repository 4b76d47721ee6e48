package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studydesk/dashboard/internal/mail"
	"github.com/studydesk/dashboard/internal/service"
)

func newMailCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mail",
		Short: "Check the SMTP configuration",
	}
	cmd.AddCommand(newMailVerifyCommand(o), newMailTestCommand(o))
	return cmd
}

// emailService builds a dispatch service without a record store. Only the
// connection check and the test email are reachable from the CLI.
func (o *options) emailService() service.EmailService {
	return service.NewEmailService(mail.NewSender(o.cfg.Mail), nil, nil, o.logger.Sugar().Named("email"))
}

func newMailVerifyCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Connect to the SMTP server and authenticate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := o.emailService().TestConfig(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}
}

func newMailTestCommand(o *options) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Send the configuration test email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := o.emailService().SendTestEmail(cmd.Context(), to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "recipient address")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
