package application

import "github.com/bnema/honeybible-cli/internal/domain"

// singleTrack keys continuity state and the calendar in single mode.
const singleTrack domain.Track = ""

type stateKey struct {
	participant string
	track       domain.Track
}

// trackState is the last confirmed date per participant and track.
type trackState map[stateKey]domain.DateToken

func (s trackState) get(participant string, track domain.Track) (domain.DateToken, bool) {
	d, ok := s[stateKey{participant: participant, track: track}]
	return d, ok
}

func (s trackState) set(participant string, track domain.Track, d domain.DateToken) {
	s[stateKey{participant: participant, track: track}] = d
}

// advance returns the state after confirming dates: the latest of dates when
// it is after prev, prev otherwise.
func advance(prev domain.DateToken, hasPrev bool, dates []domain.DateToken) (domain.DateToken, bool) {
	latest, ok := domain.Latest(dates)
	if !ok {
		return prev, hasPrev
	}
	if hasPrev && !prev.Before(latest) {
		return prev, true
	}
	return latest, true
}

// carryFor resolves the start of a leading open range. When a message feeds
// both tracks the earlier state wins.
func (s trackState) carryFor(participant string, tracks domain.TrackSet) *domain.DateToken {
	var carry *domain.DateToken
	for _, track := range tracks.Tracks() {
		d, ok := s.get(participant, track)
		if !ok {
			continue
		}
		if carry == nil || d.Before(*carry) {
			d := d
			carry = &d
		}
	}
	return carry
}

func (s trackState) confirm(participant string, track domain.Track, dates []domain.DateToken) {
	prev, ok := s.get(participant, track)
	if next, ok := advance(prev, ok, dates); ok {
		s.set(participant, track, next)
	}
}

func (t *Tracker) collectDates(
	rows []domain.ChatRow,
	mode domain.TrackMode,
	marks map[string]domain.MarkAssignment,
	calendars map[domain.Track]domain.Calendar,
	stats *DateStats,
) domain.Completions {
	completions := domain.Completions{}
	state := trackState{}
	dual := mode == domain.TrackModeDual

	for _, row := range rows {
		assigned, ok := marks[row.Sender]
		if !ok {
			stats.Unassigned++
			continue
		}
		if !domain.ContainsMark(row.Message, assigned.Key, assigned.Display) {
			stats.MarkMismatch++
			continue
		}

		tracks := domain.TrackSet{}
		if dual {
			tracks = domain.ClassifyTracks(row.Message, t.settings.TrackRules)
			if tracks.Empty() {
				stats.NoTrack++
				continue
			}
		}

		var carry *domain.DateToken
		if dual {
			carry = state.carryFor(row.Sender, tracks)
		} else if d, ok := state.get(row.Sender, singleTrack); ok {
			carry = &d
		}

		dates := domain.ExtractDates(row.Message, carry)
		if len(dates) == 0 {
			stats.NoDate++
			continue
		}
		if len(dates) > t.settings.MaxDatesPerMessage {
			stats.TooManyDates++
			continue
		}

		if dual {
			perTrack := make(map[domain.Track][]domain.DateToken, 2)
			for _, track := range tracks.Tracks() {
				if filtered := filterFor(calendars, track, dates); len(filtered) > 0 {
					perTrack[track] = filtered
				}
			}
			if len(perTrack) == 0 {
				stats.CalendarFiltered++
				continue
			}

			record, ok := completions[row.Sender]
			if !ok {
				record = domain.NewDualRecord(assigned.Display)
			}
			for track, surviving := range perTrack {
				record.TrackDates(track).Add(surviving...)
				state.confirm(row.Sender, track, surviving)
			}
			completions[row.Sender] = record
			stats.Collected++
			continue
		}

		surviving := filterFor(calendars, singleTrack, dates)
		if len(surviving) == 0 {
			stats.CalendarFiltered++
			continue
		}

		record, ok := completions[row.Sender]
		if !ok {
			record = domain.NewSingleRecord(assigned.Display)
		}
		record.Dates.Add(surviving...)
		completions[row.Sender] = record
		state.confirm(row.Sender, singleTrack, surviving)
		stats.Collected++
	}

	return completions
}

func filterFor(calendars map[domain.Track]domain.Calendar, track domain.Track, dates []domain.DateToken) []domain.DateToken {
	cal, ok := calendars[track]
	if !ok {
		return dates
	}
	return cal.Filter(dates)
}
