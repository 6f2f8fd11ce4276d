package domain

import (
	"strings"
	"sync"
	"time"
)

type PlanID string

const (
	PlanBible PlanID = "bible"
	PlanNT    PlanID = "nt"
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Plan describes one reading schedule: its seasonal parts, the weekdays it
// rests on, the keywords that identify it in a transcript and the track it
// feeds in dual mode.
type Plan struct {
	ID               PlanID
	Name             string
	Track            Track
	Keywords         []string
	Parts            []DateRange
	ExcludedWeekdays []time.Weekday
}

// Calendar is the frozen set of valid reading days for a plan.
type Calendar struct {
	plan  PlanID
	dates map[DateToken]struct{}
}

// GenerateCalendar keeps every day of every range whose weekday is not
// excluded.
func GenerateCalendar(ranges []DateRange, excluded []time.Weekday) Calendar {
	skip := make(map[time.Weekday]struct{}, len(excluded))
	for _, wd := range excluded {
		skip[wd] = struct{}{}
	}

	dates := make(map[DateToken]struct{})
	for _, r := range ranges {
		start := dayOf(r.Start)
		end := dayOf(r.End)
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			if _, ok := skip[day.Weekday()]; ok {
				continue
			}
			dates[DateToken{Month: int(day.Month()), Day: day.Day()}] = struct{}{}
		}
	}

	return Calendar{dates: dates}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (c Calendar) Plan() PlanID {
	return c.plan
}

func (c Calendar) Contains(d DateToken) bool {
	_, ok := c.dates[d]
	return ok
}

func (c Calendar) Len() int {
	return len(c.dates)
}

func (c Calendar) Dates() []DateToken {
	set := make(DateSet, len(c.dates))
	for d := range c.dates {
		set[d] = struct{}{}
	}
	return set.Sorted()
}

// Filter keeps the dates that are reading days, preserving order.
func (c Calendar) Filter(dates []DateToken) []DateToken {
	out := make([]DateToken, 0, len(dates))
	for _, d := range dates {
		if c.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

// PlanRule selects Plan when every keyword appears somewhere in a transcript.
type PlanRule struct {
	Keywords []string
	Plan     PlanID
}

// DetectPlan evaluates rules in priority order and returns the first plan
// whose keywords all occur across the rows.
func DetectPlan(rows []ChatRow, rules []PlanRule) (PlanID, bool) {
	if len(rules) == 0 {
		return "", false
	}

	seen := make([][]bool, len(rules))
	for i, rule := range rules {
		seen[i] = make([]bool, len(rule.Keywords))
	}

	for _, row := range rows {
		for i, rule := range rules {
			for j, keyword := range rule.Keywords {
				if !seen[i][j] && strings.Contains(row.Message, keyword) {
					seen[i][j] = true
				}
			}
		}
	}

	for i, rule := range rules {
		if len(rule.Keywords) == 0 {
			continue
		}
		matched := true
		for _, ok := range seen[i] {
			if !ok {
				matched = false
				break
			}
		}
		if matched {
			return rule.Plan, true
		}
	}

	return "", false
}

// Schedule holds the calendars of a plan list, generated once.
type Schedule struct {
	plans     []Plan
	calendars map[PlanID]Calendar
	rules     []PlanRule
}

func NewSchedule(plans []Plan) Schedule {
	s := Schedule{
		plans:     append([]Plan(nil), plans...),
		calendars: make(map[PlanID]Calendar, len(plans)),
		rules:     make([]PlanRule, 0, len(plans)),
	}
	for _, p := range plans {
		cal := GenerateCalendar(p.Parts, p.ExcludedWeekdays)
		cal.plan = p.ID
		s.calendars[p.ID] = cal
		s.rules = append(s.rules, PlanRule{Keywords: p.Keywords, Plan: p.ID})
	}
	return s
}

func (s Schedule) Plans() []Plan {
	return s.plans
}

func (s Schedule) Calendar(id PlanID) (Calendar, bool) {
	cal, ok := s.calendars[id]
	return cal, ok
}

// ForTrack returns the calendar of the first plan bound to track.
func (s Schedule) ForTrack(track Track) (Calendar, bool) {
	for _, p := range s.plans {
		if p.Track == track {
			return s.calendars[p.ID], true
		}
	}
	return Calendar{}, false
}

func (s Schedule) Detect(rows []ChatRow) (Calendar, bool) {
	id, ok := DetectPlan(rows, s.rules)
	if !ok {
		return Calendar{}, false
	}
	return s.Calendar(id)
}

var defaultSchedule = sync.OnceValue(func() Schedule {
	return NewSchedule(DefaultPlans())
})

// DefaultSchedule returns the built-in plans, compiled on first use.
func DefaultSchedule() Schedule {
	return defaultSchedule()
}

// DefaultPlans is the 2026 whole-bible plan (Sundays off) and the 2026 New
// Testament plan (weekends off).
func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:       PlanBible,
			Name:     "성경일독",
			Track:    TrackOld,
			Keywords: []string{"창세기", "출애굽기"},
			Parts: []DateRange{
				{Start: day(2026, time.February, 2), End: day(2026, time.May, 30)},
				{Start: day(2026, time.June, 8), End: day(2026, time.September, 26)},
				{Start: day(2026, time.October, 5), End: day(2026, time.December, 19)},
			},
			ExcludedWeekdays: []time.Weekday{time.Sunday},
		},
		{
			ID:       PlanNT,
			Name:     "신약일독",
			Track:    TrackNew,
			Keywords: []string{"마태복음", "마가복음"},
			Parts: []DateRange{
				{Start: day(2026, time.February, 2), End: day(2026, time.May, 29)},
				{Start: day(2026, time.June, 8), End: day(2026, time.September, 25)},
				{Start: day(2026, time.October, 5), End: day(2026, time.December, 18)},
			},
			ExcludedWeekdays: []time.Weekday{time.Saturday, time.Sunday},
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
