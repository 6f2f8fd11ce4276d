package application

import "github.com/bnema/honeybible-cli/internal/domain"

// MarkStats counts why rows did not vote in mark assignment.
type MarkStats struct {
	NoDate       int `json:"no_date" yaml:"no_date"`
	TooManyDates int `json:"too_many_dates" yaml:"too_many_dates"`
	NoMark       int `json:"no_mark" yaml:"no_mark"`
	Assigned     int `json:"assigned" yaml:"assigned"`
}

// DateStats counts why rows did not confirm dates.
type DateStats struct {
	Unassigned       int `json:"unassigned" yaml:"unassigned"`
	MarkMismatch     int `json:"mark_mismatch" yaml:"mark_mismatch"`
	NoTrack          int `json:"no_track" yaml:"no_track"`
	NoDate           int `json:"no_date" yaml:"no_date"`
	TooManyDates     int `json:"too_many_dates" yaml:"too_many_dates"`
	CalendarFiltered int `json:"calendar_filtered" yaml:"calendar_filtered"`
	Collected        int `json:"collected" yaml:"collected"`
}

// Stats is the diagnostic side output of one aggregation run.
type Stats struct {
	Rows         int
	Senders      int
	Participants int
	Plan         domain.PlanID
	Marks        MarkStats
	Dates        DateStats
}
