package toml

import (
	"fmt"
	"time"

	"github.com/bnema/honeybible-cli/internal/domain"
)

type runsFileSchema struct {
	Version int         `toml:"version"`
	Runs    []runSchema `toml:"runs"`
}

func (s *runsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s runsFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported runs schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type runSchema struct {
	ID             string   `toml:"id"`
	Source         string   `toml:"source"`
	RoomName       string   `toml:"room_name,omitempty"`
	Leader         string   `toml:"leader,omitempty"`
	Mode           string   `toml:"mode"`
	ScheduleType   string   `toml:"schedule_type"`
	Participants   int      `toml:"participants"`
	ConfirmedDates int      `toml:"confirmed_dates"`
	Reports        []string `toml:"reports,omitempty"`
	AnalyzedAt     string   `toml:"analyzed_at"`
}

func toRunSchema(run domain.RunRecord) runSchema {
	return runSchema{
		ID:             string(run.ID),
		Source:         run.Source,
		RoomName:       run.RoomName,
		Leader:         run.Leader,
		Mode:           string(run.Mode),
		ScheduleType:   run.ScheduleType,
		Participants:   run.Participants,
		ConfirmedDates: run.ConfirmedDates,
		Reports:        append([]string(nil), run.Reports...),
		AnalyzedAt:     formatTime(run.AnalyzedAt),
	}
}

func fromRunSchema(schema runSchema) domain.RunRecord {
	return domain.RunRecord{
		ID:             domain.RunID(schema.ID),
		Source:         schema.Source,
		RoomName:       schema.RoomName,
		Leader:         schema.Leader,
		Mode:           domain.TrackMode(schema.Mode),
		ScheduleType:   schema.ScheduleType,
		Participants:   schema.Participants,
		ConfirmedDates: schema.ConfirmedDates,
		Reports:        append([]string(nil), schema.Reports...),
		AnalyzedAt:     parseTime(schema.AnalyzedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
