package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/honeybible-cli/internal/domain"
	"github.com/bnema/honeybible-cli/internal/logger"
	"github.com/bnema/honeybible-cli/internal/ports"
)

// HistoryService keeps a summary of every analysis run.
type HistoryService struct {
	runs ports.RunRepository
	log  *logger.Logger
}

func NewHistoryService(runs ports.RunRepository, log *logger.Logger) *HistoryService {
	if log == nil {
		log = logger.NewNop()
	}
	return &HistoryService{runs: runs, log: log}
}

// Record stores analysis together with the report paths written for it.
func (s *HistoryService) Record(ctx context.Context, analysis Analysis, reports []string) (domain.RunRecord, error) {
	run := RunRecordOf(analysis, reports)
	if run.ID == "" {
		return domain.RunRecord{}, fmt.Errorf("record run for %q: missing run id", analysis.Source)
	}

	if err := s.runs.Save(ctx, run); err != nil {
		return domain.RunRecord{}, fmt.Errorf("record run %s: %w", run.ID, err)
	}
	s.log.Debug("run recorded", "run_id", run.ID, "source", run.Source)

	return run, nil
}

// List returns runs newest first.
func (s *HistoryService) List(ctx context.Context) ([]domain.RunRecord, error) {
	runs, err := s.runs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].AnalyzedAt.After(runs[j].AnalyzedAt)
	})
	return runs, nil
}

func (s *HistoryService) Get(ctx context.Context, id domain.RunID) (domain.RunRecord, error) {
	run, err := s.runs.GetByID(ctx, id)
	if err != nil {
		return domain.RunRecord{}, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// Delete drops a run from the history and returns it so callers can clean up
// its reports.
func (s *HistoryService) Delete(ctx context.Context, id domain.RunID) (domain.RunRecord, error) {
	run, err := s.runs.Delete(ctx, id)
	if err != nil {
		return domain.RunRecord{}, fmt.Errorf("delete run %s: %w", id, err)
	}
	s.log.Debug("run deleted", "run_id", run.ID, "reports", len(run.Reports))
	return run, nil
}

// RunRecordOf summarizes analysis for the history file.
func RunRecordOf(analysis Analysis, reports []string) domain.RunRecord {
	confirmed := 0
	for _, record := range analysis.Completions {
		confirmed += record.Dates.Len() + record.OldDates.Len() + record.NewDates.Len()
	}

	return domain.RunRecord{
		ID:             domain.RunID(analysis.RunID),
		Source:         analysis.Source,
		RoomName:       analysis.RoomName,
		Leader:         analysis.Leader,
		Mode:           analysis.Mode,
		ScheduleType:   string(analysis.ScheduleType),
		Participants:   len(analysis.Completions),
		ConfirmedDates: confirmed,
		Reports:        append([]string(nil), reports...),
		AnalyzedAt:     analysis.AnalyzedAt,
	}
}
