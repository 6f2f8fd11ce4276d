package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	filestore "github.com/bnema/honeybible-cli/internal/adapters/store/file"
	reportadapter "github.com/bnema/honeybible-cli/internal/adapters/render/report"
	"github.com/bnema/honeybible-cli/internal/application"
	"github.com/bnema/honeybible-cli/internal/domain"
	"github.com/bnema/honeybible-cli/internal/ports"
)

const modeAuto = "auto"

type analyzeOptions struct {
	mode        string
	format      string
	outDir      string
	concurrency int
	keepGoing   bool
	noHistory   bool
	stats       bool
	quiet       bool
}

func newAnalyzeCmd(app *app) *cobra.Command {
	opts := analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Analyze KakaoTalk exports (.csv, .txt or .zip) and render the progress grid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, app, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", modeAuto, "Track mode: auto, single or dual")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(reportadapter.FormatTable), "Output format: table, json, yaml or csv")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", app.reportsDir, "Write one report file per transcript into this directory")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", app.concurrency, "Transcripts analyzed in parallel")
	cmd.Flags().BoolVar(&opts.keepGoing, "keep-going", false, "Report failing transcripts and continue with the others")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "Do not record the run in the history file")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Show per-pass counters under each table")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Hide the progress spinner")

	return cmd
}

func parseModeFlag(raw string) (domain.TrackMode, error) {
	if strings.EqualFold(strings.TrimSpace(raw), modeAuto) || strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return domain.ParseTrackMode(raw)
}

func runAnalyze(cmd *cobra.Command, app *app, paths []string, opts analyzeOptions) error {
	ctx := cmd.Context()

	format, err := reportadapter.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	mode, err := parseModeFlag(opts.mode)
	if err != nil {
		return err
	}

	cmds := make([]application.AnalyzeCommand, 0, len(paths))
	for _, path := range paths {
		payload, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		cmds = append(cmds, application.AnalyzeCommand{Source: path, Payload: payload, Mode: mode})
	}

	svc, err := app.analysisService(ctx)
	if err != nil {
		return err
	}

	var analyses []application.Analysis
	analyze := func(ctx context.Context, progress application.ProgressFunc) error {
		var analyzeErr error
		analyses, analyzeErr = analyzeBatch(ctx, cmd, svc.WithProgress(progress), cmds, opts)
		return analyzeErr
	}

	if format == reportadapter.FormatTable && !opts.quiet {
		if err := runAnalyzeSpinner(ctx, cmd.ErrOrStderr(), len(cmds), analyze); err != nil {
			return err
		}
	} else if err := analyze(ctx, nil); err != nil {
		return err
	}

	renderOpts := reportadapter.RenderOptions{ShowStats: opts.stats}
	reports := make([][]string, len(analyses))
	if opts.outDir != "" {
		store := filestore.NewStore(opts.outDir)
		used := make(map[string]struct{}, len(analyses))
		for i, analysis := range analyses {
			key := uniqueReportKey(used, analysis, format)
			if err := writeReport(ctx, app, store, key, analysis, format, renderOpts); err != nil {
				return err
			}
			path, err := store.Path(key)
			if err != nil {
				return err
			}
			recorded := path
			if abs, err := filepath.Abs(path); err == nil {
				recorded = abs
			}
			reports[i] = []string{recorded}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		}
	} else if err := printReports(cmd, app, analyses, format, renderOpts); err != nil {
		return err
	}

	if opts.noHistory {
		return nil
	}
	for i, analysis := range analyses {
		if _, err := app.history.Record(ctx, analysis, reports[i]); err != nil {
			app.log.Warn("run history not updated", "source", analysis.Source, "error", err)
		}
	}

	return nil
}

func analyzeBatch(ctx context.Context, cmd *cobra.Command, svc *application.AnalysisService, cmds []application.AnalyzeCommand, opts analyzeOptions) ([]application.Analysis, error) {
	if !opts.keepGoing {
		return svc.AnalyzeAll(ctx, cmds, opts.concurrency)
	}

	results := svc.AnalyzeEach(ctx, cmds, opts.concurrency)
	analyses := make([]application.Analysis, 0, len(results))
	var errs []error
	for _, result := range results {
		if result.Err != nil {
			errs = append(errs, result.Err)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %v\n", result.Source, result.Err)
			continue
		}
		analyses = append(analyses, result.Analysis)
	}

	if len(analyses) == 0 {
		return nil, fmt.Errorf("no transcript could be analyzed: %w", errors.Join(errs...))
	}
	return analyses, nil
}

func encodeReport(app *app, analysis application.Analysis, format reportadapter.Format, opts reportadapter.RenderOptions) ([]byte, error) {
	if format != reportadapter.FormatTable {
		return reportadapter.Encode(analysis, format)
	}

	rendered, err := app.reportRenderer([]application.Analysis{analysis}, opts)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return []byte(rendered + "\n"), nil
}

// uniqueReportKey suffixes repeated report names so transcripts from the
// same room do not overwrite each other. A suffixed key never shadows a
// report name that is already taken.
func uniqueReportKey(used map[string]struct{}, analysis application.Analysis, format reportadapter.Format) string {
	key := reportadapter.FileName(analysis, format)
	for n := 2; ; n++ {
		if _, taken := used[key]; !taken {
			break
		}
		key = fmt.Sprintf("%s_%d.%s", analysis.ReportName, n, format.Extension())
	}
	used[key] = struct{}{}
	return key
}

func writeReport(ctx context.Context, app *app, store ports.ReportStore, key string, analysis application.Analysis, format reportadapter.Format, opts reportadapter.RenderOptions) error {
	data, err := encodeReport(app, analysis, format, opts)
	if err != nil {
		return err
	}

	if err := store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("store report %s: %w", key, err)
	}
	return nil
}

func printReports(cmd *cobra.Command, app *app, analyses []application.Analysis, format reportadapter.Format, opts reportadapter.RenderOptions) error {
	if format == reportadapter.FormatTable {
		rendered, err := app.reportRenderer(analyses, opts)
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return err
	}

	for _, analysis := range analyses {
		data, err := reportadapter.Encode(analysis, format)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	}
	return nil
}
