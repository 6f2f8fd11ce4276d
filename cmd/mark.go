package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/honeybible-cli/internal/domain"
)

func newMarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark MESSAGE",
		Short: "Show the completion mark a message ends with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			mark, ok := domain.FindTrailingMark(args[0])
			if !ok {
				_, err := fmt.Fprintln(out, "no mark")
				return err
			}

			_, err := fmt.Fprintf(out, "mark\t%s\nkey\t%s\n", mark, domain.NormalizeMark(mark))
			return err
		},
	}
}
