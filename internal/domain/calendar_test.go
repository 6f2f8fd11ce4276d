package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCalendarExcludesWeekdays(t *testing.T) {
	t.Parallel()

	cal := GenerateCalendar([]DateRange{
		{Start: day(2026, time.February, 2), End: day(2026, time.February, 14)},
	}, []time.Weekday{time.Sunday})

	assert.Equal(t, 12, cal.Len())
	assert.True(t, cal.Contains(DateToken{Month: 2, Day: 7}))
	assert.False(t, cal.Contains(DateToken{Month: 2, Day: 8}), "2026-02-08 is a Sunday")
	assert.False(t, cal.Contains(DateToken{Month: 2, Day: 1}), "outside the range")
	assert.Equal(t, DateToken{Month: 2, Day: 2}, cal.Dates()[0])
}

func TestDefaultScheduleCalendars(t *testing.T) {
	t.Parallel()

	schedule := DefaultSchedule()

	bible, ok := schedule.Calendar(PlanBible)
	require.True(t, ok)
	nt, ok := schedule.Calendar(PlanNT)
	require.True(t, ok)

	assert.Equal(t, 264, bible.Len())
	assert.Equal(t, 220, nt.Len())
	assert.Equal(t, PlanBible, bible.Plan())

	saturday := DateToken{Month: 2, Day: 7}
	assert.True(t, bible.Contains(saturday))
	assert.False(t, nt.Contains(saturday))
	assert.False(t, bible.Contains(DateToken{Month: 6, Day: 2}), "gap between parts")

	old, ok := schedule.ForTrack(TrackOld)
	require.True(t, ok)
	assert.Equal(t, PlanBible, old.Plan())
	newTrack, ok := schedule.ForTrack(TrackNew)
	require.True(t, ok)
	assert.Equal(t, PlanNT, newTrack.Plan())
}

func TestCalendarFilterPreservesOrder(t *testing.T) {
	t.Parallel()

	bible, _ := DefaultSchedule().Calendar(PlanBible)
	got := bible.Filter(tokens("2/9", "2/8", "2/7"))

	assert.Equal(t, tokens("2/9", "2/7"), got)
}

func TestDetectPlan(t *testing.T) {
	t.Parallel()

	rules := []PlanRule{
		{Keywords: []string{"창세기", "출애굽기"}, Plan: PlanBible},
		{Keywords: []string{"마태복음", "마가복음"}, Plan: PlanNT},
	}

	tests := []struct {
		name   string
		rows   []ChatRow
		want   PlanID
		wantOK bool
	}{
		{
			name:   "both keywords of the first pair",
			rows:   []ChatRow{{Sender: "a", Message: "오늘 창세기"}, {Sender: "b", Message: "내일 출애굽기"}},
			want:   PlanBible,
			wantOK: true,
		},
		{
			name:   "second pair",
			rows:   []ChatRow{{Sender: "a", Message: "마태복음 1장, 마가복음 2장"}},
			want:   PlanNT,
			wantOK: true,
		},
		{
			name: "first pair wins when both match",
			rows: []ChatRow{
				{Sender: "a", Message: "마태복음 마가복음"},
				{Sender: "a", Message: "창세기 출애굽기"},
			},
			want:   PlanBible,
			wantOK: true,
		},
		{
			name: "one keyword is not enough",
			rows: []ChatRow{{Sender: "a", Message: "창세기"}, {Sender: "a", Message: "마태복음"}},
		},
		{name: "no rows"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := DetectPlan(tc.rows, rules)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScheduleDetectReturnsCalendar(t *testing.T) {
	t.Parallel()

	cal, ok := DefaultSchedule().Detect([]ChatRow{{Sender: "a", Message: "마태복음 마가복음"}})
	require.True(t, ok)
	assert.Equal(t, PlanNT, cal.Plan())

	_, ok = DefaultSchedule().Detect([]ChatRow{{Sender: "a", Message: "3/15😀"}})
	assert.False(t, ok)
}
