package report

import (
	"sort"

	"github.com/bnema/honeybible-cli/internal/domain"
)

const (
	headerName  = "이름"
	headerMark  = "이모티콘"
	headerTrack = "트랙"
	cellChecked = "O"
)

// Grid is the participant by date matrix shared by the table and CSV
// renderers.
type Grid struct {
	Headers []string
	Rows    [][]string
	// Dates lists the date columns in order.
	Dates []string
}

// BuildGrid lays out one row per participant, or one row per non-empty track
// in dual mode. Participants without a confirmed date are left out.
func BuildGrid(completions domain.Completions, mode domain.TrackMode) Grid {
	dates := domain.SortDates(completions.AllDates().Strings())

	names := make([]string, 0, len(completions))
	for name, record := range completions {
		if record.Empty() {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	grid := Grid{Dates: dates}
	if mode == domain.TrackModeDual {
		grid.Headers = append([]string{headerName, headerMark, headerTrack}, dates...)
		for _, name := range names {
			record := completions[name]
			for _, track := range []domain.Track{domain.TrackOld, domain.TrackNew} {
				set := record.TrackDates(track)
				if set.Len() == 0 {
					continue
				}
				grid.Rows = append(grid.Rows, gridRow(dates, set, name, record.Mark, track.Label()))
			}
		}
		return grid
	}

	grid.Headers = append([]string{headerName, headerMark}, dates...)
	for _, name := range names {
		record := completions[name]
		grid.Rows = append(grid.Rows, gridRow(dates, record.Dates, name, record.Mark))
	}
	return grid
}

func gridRow(dates []string, set domain.DateSet, lead ...string) []string {
	row := make([]string, 0, len(lead)+len(dates))
	row = append(row, lead...)
	for _, raw := range dates {
		cell := ""
		if d, ok := domain.ParseDateToken(raw); ok && set.Has(d) {
			cell = cellChecked
		}
		row = append(row, cell)
	}
	return row
}

// LeadColumns is the number of label columns before the first date.
func (g Grid) LeadColumns() int {
	return len(g.Headers) - len(g.Dates)
}
