package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/honeybible-cli/internal/domain"
)

func newDatesCmd(app *app) *cobra.Command {
	var carry string

	cmd := &cobra.Command{
		Use:   "dates MESSAGE",
		Short: "Show the dates a single message confirms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var carryFrom *domain.DateToken
			if carry != "" {
				d, ok := domain.ParseDateToken(carry)
				if !ok {
					return fmt.Errorf("invalid --carry date %q, want M/D", carry)
				}
				carryFrom = &d
			}

			settings, err := app.settings(cmd.Context())
			if err != nil {
				return err
			}

			dates := domain.ExtractDates(args[0], carryFrom)
			out := cmd.OutOrStdout()
			if len(dates) == 0 {
				_, err := fmt.Fprintln(out, "no dates")
				return err
			}

			raw := make([]string, len(dates))
			for i, d := range dates {
				raw[i] = d.String()
			}
			if _, err := fmt.Fprintln(out, strings.Join(raw, ", ")); err != nil {
				return err
			}
			if len(dates) > settings.MaxDatesPerMessage {
				_, err := fmt.Fprintf(out, "ignored: %d dates exceed the limit of %d per message\n", len(dates), settings.MaxDatesPerMessage)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&carry, "carry", "", "Last confirmed date (M/D) that a leading ~ or - continues from")

	return cmd
}
