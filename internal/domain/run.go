package domain

import "time"

type RunID string

// RunRecord summarizes one analysis for the run history.
type RunRecord struct {
	ID           RunID
	Source       string
	RoomName     string
	Leader       string
	Mode         TrackMode
	ScheduleType string
	Participants int
	// ConfirmedDates counts confirmed dates across participants and tracks.
	ConfirmedDates int
	Reports        []string
	AnalyzedAt     time.Time
}
