package application

import (
	"sort"

	"github.com/bnema/honeybible-cli/internal/domain"
)

// markTally accumulates one participant's mark votes during Pass 1.
type markTally struct {
	counts map[string]int
	order  []string
	raw    map[string]string
}

func newMarkTally() *markTally {
	return &markTally{counts: map[string]int{}, raw: map[string]string{}}
}

func (m *markTally) observe(mark string) {
	key := domain.NormalizeMark(mark)
	if _, ok := m.counts[key]; !ok {
		m.order = append(m.order, key)
		m.raw[key] = mark
	}
	m.counts[key]++
}

func (t *Tracker) assignMarks(rows []domain.ChatRow, stats *MarkStats) map[string]domain.MarkAssignment {
	tallies := make(map[string]*markTally)

	for _, row := range rows {
		dates := domain.ExtractDates(row.Message, nil)
		if len(dates) == 0 {
			stats.NoDate++
			continue
		}
		if len(dates) > t.settings.MaxDatesPerMessage {
			stats.TooManyDates++
			continue
		}
		mark, ok := domain.FindTrailingMark(row.Message)
		if !ok {
			stats.NoMark++
			continue
		}

		tally, ok := tallies[row.Sender]
		if !ok {
			tally = newMarkTally()
			tallies[row.Sender] = tally
		}
		tally.observe(mark)
	}

	assignments := make(map[string]domain.MarkAssignment, len(tallies))
	for sender, tally := range tallies {
		key := chooseMark(tally.counts, tally.order)
		if key == "" {
			continue
		}
		display := tally.raw[key]
		if display == "" {
			display = key
		}
		assignments[sender] = domain.MarkAssignment{Key: key, Display: display}
	}
	stats.Assigned = len(assignments)

	return assignments
}

// chooseMark picks the most used key; ties go to the key seen first.
func chooseMark(counts map[string]int, order []string) string {
	if len(counts) == 0 {
		return ""
	}

	best := 0
	for _, count := range counts {
		if count > best {
			best = count
		}
	}
	for _, key := range order {
		if counts[key] == best {
			return key
		}
	}

	keys := make([]string, 0, len(counts))
	for key, count := range counts {
		if count == best {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys[0]
}
