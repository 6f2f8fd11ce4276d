package application

import (
	"github.com/bnema/honeybible-cli/internal/domain"
	"github.com/bnema/honeybible-cli/internal/logger"
)

// Tracker turns transcript rows into per-participant completion records.
// It holds no per-run state and is safe for concurrent use.
type Tracker struct {
	settings domain.Settings
	schedule domain.Schedule
	log      *logger.Logger
}

func NewTracker(settings domain.Settings, log *logger.Logger) *Tracker {
	if log == nil {
		log = logger.NewNop()
	}
	if settings.MaxDatesPerMessage <= 0 {
		settings.MaxDatesPerMessage = domain.DefaultMaxDatesPerMessage
	}

	return &Tracker{
		settings: settings,
		schedule: domain.NewSchedule(settings.Plans),
		log:      log,
	}
}

func (t *Tracker) Schedule() domain.Schedule {
	return t.schedule
}

func (t *Tracker) Aggregate(rows []domain.ChatRow, mode domain.TrackMode) domain.Completions {
	completions, _ := t.AggregateWithStats(rows, mode)
	return completions
}

// AggregateWithStats runs both passes over rows. Pass 1 assigns each
// participant the mark they use most; Pass 2 collects the dates of messages
// carrying that mark. Rows are never rejected with an error, only counted.
func (t *Tracker) AggregateWithStats(rows []domain.ChatRow, mode domain.TrackMode) (domain.Completions, Stats) {
	normalized := t.normalizeRows(rows)
	stats := Stats{Rows: len(normalized), Senders: countSenders(normalized)}
	log := t.log.With("mode", mode)

	if len(normalized) == 0 {
		log.Warn("no rows to analyze")
		return domain.Completions{}, stats
	}

	marks := t.assignMarks(normalized, &stats.Marks)
	log.Info("mark pass complete",
		"rows", stats.Rows,
		"senders", stats.Senders,
		"no_date", stats.Marks.NoDate,
		"too_many_dates", stats.Marks.TooManyDates,
		"no_mark", stats.Marks.NoMark,
		"assigned", stats.Marks.Assigned,
	)
	if len(marks) == 0 {
		log.Warn("no participant has a completion mark")
		return domain.Completions{}, stats
	}
	for sender, mark := range marks {
		log.Debug("mark assigned", "participant", sender, "mark", mark.Display)
	}

	calendars := t.bindCalendars(normalized, mode)
	if cal, ok := calendars[singleTrack]; ok {
		stats.Plan = cal.Plan()
	}

	completions := t.collectDates(normalized, mode, marks, calendars, &stats.Dates)
	stats.Participants = len(completions)

	log.Info("date pass complete",
		"plan", stats.Plan,
		"unassigned", stats.Dates.Unassigned,
		"mark_mismatch", stats.Dates.MarkMismatch,
		"no_track", stats.Dates.NoTrack,
		"no_date", stats.Dates.NoDate,
		"too_many_dates", stats.Dates.TooManyDates,
		"calendar_filtered", stats.Dates.CalendarFiltered,
		"collected", stats.Dates.Collected,
		"participants", stats.Participants,
	)
	if len(completions) == 0 {
		log.Warn("no participant confirmed a valid date", "marked", len(marks))
	}

	return completions, stats
}

func (t *Tracker) normalizeRows(rows []domain.ChatRow) []domain.ChatRow {
	out := make([]domain.ChatRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ChatRow{
			Sender:  domain.NormalizeParticipant(row.Sender, t.settings.StripWords),
			Message: row.Message,
		})
	}
	return out
}

// bindCalendars fixes the date filter of a run. Dual mode binds one calendar
// per track; single mode uses the plan detected from keywords, if any.
func (t *Tracker) bindCalendars(rows []domain.ChatRow, mode domain.TrackMode) map[domain.Track]domain.Calendar {
	calendars := make(map[domain.Track]domain.Calendar, 2)
	if mode == domain.TrackModeDual {
		for _, track := range []domain.Track{domain.TrackOld, domain.TrackNew} {
			if cal, ok := t.schedule.ForTrack(track); ok {
				calendars[track] = cal
			}
		}
		return calendars
	}

	if cal, ok := t.schedule.Detect(rows); ok {
		calendars[singleTrack] = cal
	}
	return calendars
}

func countSenders(rows []domain.ChatRow) int {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		seen[row.Sender] = struct{}{}
	}
	return len(seen)
}
