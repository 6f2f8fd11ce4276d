package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	filestore "github.com/bnema/honeybible-cli/internal/adapters/store/file"
	"github.com/bnema/honeybible-cli/internal/domain"
	"github.com/bnema/honeybible-cli/internal/ports"
)

func newRunsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the history of analysis runs",
	}

	cmd.AddCommand(
		newRunsListCmd(app),
		newRunsShowCmd(app),
		newRunsDeleteCmd(app),
	)

	return cmd
}

func newRunsListCmd(app *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := app.history.List(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 && len(runs) > limit {
				runs = runs[:limit]
			}

			for _, run := range runs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\n",
					run.ID, formatRunTime(run.AnalyzedAt), runTitle(run), run.ScheduleType, run.Participants)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")

	return cmd
}

func newRunsShowCmd(app *app) *cobra.Command {
	var showReports bool

	cmd := &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Show one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := app.history.Get(cmd.Context(), domain.RunID(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "id\t%s\n", run.ID)
			_, _ = fmt.Fprintf(out, "source\t%s\n", run.Source)
			_, _ = fmt.Fprintf(out, "room\t%s\n", run.RoomName)
			_, _ = fmt.Fprintf(out, "leader\t%s\n", run.Leader)
			_, _ = fmt.Fprintf(out, "mode\t%s\n", run.Mode)
			_, _ = fmt.Fprintf(out, "schedule\t%s\n", run.ScheduleType)
			_, _ = fmt.Fprintf(out, "participants\t%d\n", run.Participants)
			_, _ = fmt.Fprintf(out, "confirmed dates\t%d\n", run.ConfirmedDates)
			_, _ = fmt.Fprintf(out, "analyzed at\t%s\n", formatRunTime(run.AnalyzedAt))
			if len(run.Reports) > 0 {
				_, _ = fmt.Fprintf(out, "reports\t%s\n", strings.Join(run.Reports, ", "))
			}
			if !showReports {
				return nil
			}

			for _, path := range run.Reports {
				store, key := reportStoreFor(path)
				data, err := store.Get(cmd.Context(), key)
				if err != nil {
					return fmt.Errorf("show report of run %s: %w", run.ID, err)
				}
				_, _ = fmt.Fprintf(out, "\n%s\n", path)
				_, _ = out.Write(data)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showReports, "report", false, "Print the report files written for the run")

	return cmd
}

func newRunsDeleteCmd(app *app) *cobra.Command {
	var keepReports bool

	cmd := &cobra.Command{
		Use:   "delete RUN_ID",
		Short: "Remove a run from the history together with its report files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := app.history.Delete(cmd.Context(), domain.RunID(args[0]))
			if err != nil {
				return err
			}

			if !keepReports {
				for _, path := range run.Reports {
					store, key := reportStoreFor(path)
					if err := store.Delete(cmd.Context(), key); err != nil {
						return fmt.Errorf("delete report of run %s: %w", run.ID, err)
					}
				}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", run.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepReports, "keep-reports", false, "Leave the report files on disk")

	return cmd
}

// reportStoreFor opens the store holding a recorded report path.
func reportStoreFor(path string) (ports.ReportStore, string) {
	return filestore.NewStore(filepath.Dir(path)), filepath.Base(path)
}

func runTitle(run domain.RunRecord) string {
	if run.RoomName != "" {
		return run.RoomName
	}
	return run.Source
}

func formatRunTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
