package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/honeybible-cli/internal/domain"
)

func newCalendarCmd(app *app) *cobra.Command {
	var planID string
	var check string
	var listDates bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the reading-plan calendars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.settings(cmd.Context())
			if err != nil {
				return err
			}

			schedule := domain.NewSchedule(settings.Plans)
			plans := schedule.Plans()
			if planID != "" {
				plans = nil
				for _, p := range schedule.Plans() {
					if p.ID == domain.PlanID(planID) {
						plans = append(plans, p)
					}
				}
				if len(plans) == 0 {
					return fmt.Errorf("%w: %q", domain.ErrUnknownPlan, planID)
				}
			}

			var checkDate domain.DateToken
			if check != "" {
				d, ok := domain.ParseDateToken(check)
				if !ok {
					return fmt.Errorf("invalid --check date %q, want M/D", check)
				}
				checkDate = d
			}

			out := cmd.OutOrStdout()
			for _, p := range plans {
				cal, _ := schedule.Calendar(p.ID)
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%d days\n", p.ID, p.Name, p.Track.Label(), cal.Len())

				if check != "" {
					verdict := "rest day"
					if cal.Contains(checkDate) {
						verdict = "reading day"
					}
					_, _ = fmt.Fprintf(out, "  %s: %s\n", checkDate, verdict)
				}
				if listDates {
					_, _ = fmt.Fprintln(out, "  "+joinByMonth(cal.Dates()))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan id (default: all plans)")
	cmd.Flags().StringVar(&check, "check", "", "Report whether this date (M/D) is a reading day")
	cmd.Flags().BoolVar(&listDates, "dates", false, "List every reading day")

	return cmd
}

// joinByMonth prints one line per month.
func joinByMonth(dates []domain.DateToken) string {
	var lines []string
	var current []string
	month := 0
	for _, d := range dates {
		if d.Month != month && len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = nil
		}
		month = d.Month
		current = append(current, d.String())
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return strings.Join(lines, "\n  ")
}
