package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/honeybible-cli/internal/domain"
	"github.com/bnema/honeybible-cli/internal/logger"
	"github.com/bnema/honeybible-cli/internal/ports"
)

var ErrEmptyTranscript = errors.New("transcript has no messages")

type AnalysisService struct {
	reader   ports.TranscriptReader
	tracker  *Tracker
	settings domain.Settings
	clock    ports.Clock
	progress ProgressFunc
	log      *logger.Logger
}

func NewAnalysisService(reader ports.TranscriptReader, settings domain.Settings, clock ports.Clock, log *logger.Logger) *AnalysisService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &AnalysisService{
		reader:   reader,
		tracker:  NewTracker(settings, log),
		settings: settings,
		clock:    clock,
		log:      log,
	}
}

// WithProgress returns a copy of s that reports batch progress to fn.
func (s *AnalysisService) WithProgress(fn ProgressFunc) *AnalysisService {
	c := *s
	c.progress = fn
	return &c
}

func (s *AnalysisService) Tracker() *Tracker {
	return s.tracker
}

// Analyze decodes cmd.Payload and aggregates it.
func (s *AnalysisService) Analyze(ctx context.Context, cmd AnalyzeCommand) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}

	transcript, err := s.reader.Read(ctx, cmd.Source, cmd.Payload)
	if err != nil {
		return Analysis{}, fmt.Errorf("read transcript %q: %w", cmd.Source, err)
	}
	if len(transcript.Rows) == 0 {
		return Analysis{}, fmt.Errorf("read transcript %q: %w", cmd.Source, ErrEmptyTranscript)
	}

	return s.AnalyzeTranscript(ctx, transcript, cmd.Mode)
}

// AnalyzeTranscript runs the aggregation over an already decoded transcript.
func (s *AnalysisService) AnalyzeTranscript(ctx context.Context, transcript domain.Transcript, mode domain.TrackMode) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}

	if mode == "" {
		mode = DetectTrackMode(transcript.Rows, s.settings.DualMarker)
	}
	if mode != domain.TrackModeSingle && mode != domain.TrackModeDual {
		return Analysis{}, fmt.Errorf("%w: %q", domain.ErrUnknownTrackMode, mode)
	}

	runID := uuid.NewString()
	log := s.log.With("run_id", runID, "source", transcript.Name)
	log.Info("analyzing transcript",
		"format", transcript.Format,
		"room", transcript.RoomName,
		"rows", len(transcript.Rows),
		"mode", mode,
	)

	leader, _ := ExtractLeader(transcript.Rows, s.settings.LeaderKeyword)

	completions, stats := s.tracker.AggregateWithStats(transcript.Rows, mode)
	completions = applyAliases(completions, s.settings)

	if leader != "" {
		canonical := s.settings.ResolveAlias(leader)
		fillRoomMembers(completions, s.settings.RoomMembers[canonical], mode)
	}

	reportName, ok := ReportName(leader, transcript.SavedAt, transcript.RoomName)
	if !ok {
		reportName = defaultReportName
	}

	analysis := Analysis{
		RunID:        runID,
		Source:       transcript.Name,
		Format:       transcript.Format,
		RoomName:     transcript.RoomName,
		SavedAt:      transcript.SavedAt,
		AnalyzedAt:   s.clock.Now(),
		Mode:         mode,
		ScheduleType: DetectScheduleType(transcript, mode, s.tracker.Schedule(), s.settings.EducationKeyword),
		Leader:       leader,
		Completions:  completions,
		Stats:        stats,
		ReportName:   reportName,
	}

	log.Info("analysis complete",
		"participants", len(analysis.Completions),
		"schedule", analysis.ScheduleType,
		"leader", leader,
		"report", reportName,
	)

	return analysis, nil
}
