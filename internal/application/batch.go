package application

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

// ProgressFunc is called once per finished transcript of a batch, failed
// ones included. Calls are serialized and done counts up to total.
type ProgressFunc func(done, total int, source string)

type batchProgress struct {
	mu    sync.Mutex
	done  int
	total int
	fn    ProgressFunc
}

func (p *batchProgress) finish(source string) {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	p.fn(p.done, p.total, source)
}

// AnalyzeAll analyzes every command with at most limit transcripts in flight.
// Each run owns its own state, so results do not depend on scheduling. The
// first failure cancels the remaining runs.
func (s *AnalysisService) AnalyzeAll(ctx context.Context, cmds []AnalyzeCommand, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]Analysis, len(cmds))
	progress := &batchProgress{total: len(cmds), fn: s.progress}
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for i, cmd := range cmds {
		group.Go(func() error {
			analysis, err := s.Analyze(groupCtx, cmd)
			progress.finish(cmd.Source)
			if err != nil {
				return fmt.Errorf("analyze %q: %w", cmd.Source, err)
			}
			results[i] = analysis
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// AnalyzeEach analyzes every command and reports failures per source instead
// of aborting the batch.
func (s *AnalysisService) AnalyzeEach(ctx context.Context, cmds []AnalyzeCommand, limit int) []AnalyzeResult {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]AnalyzeResult, len(cmds))
	progress := &batchProgress{total: len(cmds), fn: s.progress}
	var group errgroup.Group
	group.SetLimit(limit)

	for i, cmd := range cmds {
		group.Go(func() error {
			analysis, err := s.Analyze(ctx, cmd)
			progress.finish(cmd.Source)
			results[i] = AnalyzeResult{Source: cmd.Source, Analysis: analysis, Err: err}
			if err != nil {
				s.log.Warn("transcript failed", "source", cmd.Source, "error", err)
			}
			return nil
		})
	}

	_ = group.Wait()
	return results
}
