package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/honeybible-cli/internal/application"
	"github.com/bnema/honeybible-cli/internal/domain"
)

type RenderOptions struct {
	// ShowStats appends the per-pass skip counters under each table.
	ShowStats bool
}

func renderView(analyses []application.Analysis, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Reading Progress"),
		s.header.Render(fmt.Sprintf("transcripts: %d", len(analyses))),
	}

	if len(analyses) == 0 {
		lines = append(lines, s.empty.Render("No transcripts analyzed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, analysis := range analyses {
		lines = append(lines, s.section.Render(renderAnalysis(analysis, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAnalysis(analysis application.Analysis, opts RenderOptions, s styles) string {
	parts := []string{
		s.title.Render(analysisTitle(analysis)),
		s.meta.Render(metaLine(analysis)),
	}

	grid := BuildGrid(analysis.Completions, analysis.Mode)
	if len(grid.Rows) == 0 {
		parts = append(parts, s.warning.Render("no confirmed dates"))
	} else {
		parts = append(parts, renderGrid(grid, s))
	}

	if members := emptyMembers(analysis.Completions); len(members) > 0 {
		parts = append(parts, s.empty.Render("no confirmation yet: "+strings.Join(members, ", ")))
	}

	if opts.ShowStats {
		parts = append(parts, statsLines(analysis.Stats, analysis.Mode, s)...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func analysisTitle(analysis application.Analysis) string {
	room := strings.TrimSpace(analysis.RoomName)
	if room == "" {
		room = analysis.Source
	}
	if analysis.Leader == "" {
		return room
	}
	return fmt.Sprintf("%s (%s)", room, analysis.Leader)
}

func metaLine(analysis application.Analysis) string {
	fields := []string{
		"mode: " + string(analysis.Mode),
		"schedule: " + string(analysis.ScheduleType),
		fmt.Sprintf("participants: %d", len(analysis.Completions)),
	}
	if analysis.SavedAt != "" {
		fields = append(fields, "saved: "+analysis.SavedAt)
	}
	return strings.Join(fields, "  ")
}

func renderGrid(grid Grid, s styles) string {
	lead := grid.LeadColumns()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.border).
		Headers(grid.Headers...).
		Rows(grid.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.column
			case col < lead:
				return s.name
			case cellAt(grid, row, col) == cellChecked:
				return s.checked
			default:
				return s.cell
			}
		})

	return t.String()
}

func cellAt(grid Grid, row, col int) string {
	if row < 0 || row >= len(grid.Rows) || col < 0 || col >= len(grid.Rows[row]) {
		return ""
	}
	return grid.Rows[row][col]
}

func emptyMembers(completions domain.Completions) []string {
	var names []string
	for name, record := range completions {
		if record.Empty() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func statsLines(stats application.Stats, mode domain.TrackMode, s styles) []string {
	lines := []string{
		s.header.Render(fmt.Sprintf("rows: %d  senders: %d  marked participants: %d", stats.Rows, stats.Senders, stats.Participants)),
		s.meta.Render(fmt.Sprintf("marks: assigned %d, no date %d, too many dates %d, no mark %d",
			stats.Marks.Assigned, stats.Marks.NoDate, stats.Marks.TooManyDates, stats.Marks.NoMark)),
	}

	dates := fmt.Sprintf("dates: collected %d, unassigned %d, mark mismatch %d, no date %d, too many dates %d, filtered by plan %d",
		stats.Dates.Collected, stats.Dates.Unassigned, stats.Dates.MarkMismatch, stats.Dates.NoDate,
		stats.Dates.TooManyDates, stats.Dates.CalendarFiltered)
	if mode == domain.TrackModeDual {
		dates += fmt.Sprintf(", no track %d", stats.Dates.NoTrack)
	}
	lines = append(lines, s.meta.Render(dates))
	if stats.Plan != "" {
		lines = append(lines, s.meta.Render("plan: "+string(stats.Plan)))
	}

	return lines
}
