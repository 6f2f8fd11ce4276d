package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bnema/honeybible-cli/internal/domain"
	"github.com/bnema/honeybible-cli/internal/logger"
)

func newTestTracker() *Tracker {
	return NewTracker(domain.DefaultSettings(), nil)
}

func TestTrackerAggregateSingleMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows []domain.ChatRow
		want map[string][]string
	}{
		{
			name: "marked dates are collected",
			rows: rows("u1", "3/15😀", "u1", "3/16😀"),
			want: map[string][]string{"u1": {"3/15", "3/16"}},
		},
		{
			name: "participant without mark is excluded",
			rows: rows("u1", "3/15"),
			want: map[string][]string{},
		},
		{
			name: "duplicate confirmations collapse",
			rows: rows("u1", "3/15😀", "u1", "3/15😀", "u1", "3/15 😀"),
			want: map[string][]string{"u1": {"3/15"}},
		},
		{
			name: "message without assigned mark is ignored",
			rows: rows("u1", "3/15😀", "u1", "3/16😀", "u1", "3/17"),
			want: map[string][]string{"u1": {"3/15", "3/16"}},
		},
		{
			name: "leading range resumes from last confirmed date",
			rows: rows("u1", "2/4😀", "u1", "~2/7😀"),
			want: map[string][]string{"u1": {"2/4", "2/5", "2/6", "2/7"}},
		},
		{
			name: "state never moves backwards",
			rows: rows("u1", "3/10✅", "u1", "3/5✅", "u1", "~3/12✅"),
			want: map[string][]string{"u1": {"3/5", "3/10", "3/11", "3/12"}},
		},
		{
			name: "names are normalized before grouping",
			rows: rows("홍길동 광천", "3/1(완료)", "홍길동", "3/2(완료)"),
			want: map[string][]string{"홍길동": {"3/1", "3/2"}},
		},
		{
			name: "variation selector does not split the mark",
			rows: rows("u1", "3/1 \u2764\ufe0f", "u1", "3/2 \u2764"),
			want: map[string][]string{"u1": {"3/1", "3/2"}},
		},
	}

	tracker := newTestTracker()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tracker.Aggregate(tt.rows, domain.TrackModeSingle)
			require.Len(t, got, len(tt.want))
			for name, dates := range tt.want {
				record, ok := got[name]
				require.True(t, ok, "missing participant %q", name)
				assert.Equal(t, dates, record.Dates.Strings())
			}
		})
	}
}

func TestTrackerAggregateEndToEndRecord(t *testing.T) {
	t.Parallel()

	got := newTestTracker().Aggregate(rows("u1", "3/15😀", "u1", "3/16😀"), domain.TrackModeSingle)

	require.Contains(t, got, "u1")
	assert.Equal(t, "😀", got["u1"].Mark)
	assert.Equal(t, domain.NewDateSet(tokenList("3/15", "3/16")...), got["u1"].Dates)
	assert.Nil(t, got["u1"].OldDates)
	assert.Nil(t, got["u1"].NewDates)
}

func TestTrackerAggregateCapRejectsNoisyMessages(t *testing.T) {
	t.Parallel()

	tracker := newTestTracker()

	got, stats := tracker.AggregateWithStats(rows(
		"u1", "4/20😀",
		"u1", "3/1~3/19😀",
		"u2", "4/20😀",
		"u2", "3/1~3/14😀",
	), domain.TrackModeSingle)

	assert.Equal(t, []string{"4/20"}, got["u1"].Dates.Strings())
	assert.Equal(t, 15, got["u2"].Dates.Len())
	assert.Equal(t, 1, stats.Marks.TooManyDates)
	assert.Equal(t, 1, stats.Dates.TooManyDates)
}

func TestTrackerAggregateMarkTieBreakUsesFirstSeen(t *testing.T) {
	t.Parallel()

	got := newTestTracker().Aggregate(rows(
		"u1", "3/1🙂",
		"u1", "3/2😀",
		"u1", "3/3😀",
		"u1", "3/4🙂",
	), domain.TrackModeSingle)

	require.Contains(t, got, "u1")
	assert.Equal(t, "🙂", got["u1"].Mark)
	assert.Equal(t, []string{"3/1", "3/4"}, got["u1"].Dates.Strings())
}

func TestTrackerAggregatePlanFiltering(t *testing.T) {
	t.Parallel()

	input := rows(
		"leader", "오늘은 창세기 1-3장, 내일은 출애굽기 1장",
		"u1", "2/7~2/9✅",
		"u1", "2/8✅",
	)

	got, stats := newTestTracker().AggregateWithStats(input, domain.TrackModeSingle)

	require.Contains(t, got, "u1")
	assert.Equal(t, []string{"2/7", "2/9"}, got["u1"].Dates.Strings())
	assert.False(t, got["u1"].Dates.Has(token("2/8")))
	assert.Equal(t, domain.PlanBible, stats.Plan)
	assert.Equal(t, 1, stats.Dates.CalendarFiltered)
}

func TestTrackerAggregateWithoutPlanKeepsAllDates(t *testing.T) {
	t.Parallel()

	got, stats := newTestTracker().AggregateWithStats(rows("u1", "2/8✅"), domain.TrackModeSingle)

	assert.Equal(t, []string{"2/8"}, got["u1"].Dates.Strings())
	assert.Empty(t, stats.Plan)
}

func TestTrackerAggregateFilteredOnlyParticipantIsOmitted(t *testing.T) {
	t.Parallel()

	input := rows(
		"leader", "창세기 출애굽기",
		"u1", "2/8✅",
	)

	got, stats := newTestTracker().AggregateWithStats(input, domain.TrackModeSingle)

	assert.Empty(t, got)
	assert.Equal(t, 1, stats.Marks.Assigned)
	assert.Equal(t, 0, stats.Participants)
}

func TestTrackerAggregateDualTrackIndependence(t *testing.T) {
	t.Parallel()

	got, stats := newTestTracker().AggregateWithStats(rows(
		"u1", "2/2 구약 ✅",
		"u1", "2/3 신약 ✅",
		"u1", "~2/5 구약 ✅",
	), domain.TrackModeDual)

	require.Contains(t, got, "u1")
	record := got["u1"]
	assert.Equal(t, []string{"2/2", "2/3", "2/4", "2/5"}, record.OldDates.Strings())
	assert.Equal(t, []string{"2/3"}, record.NewDates.Strings())
	assert.Nil(t, record.Dates)
	assert.Equal(t, 3, stats.Dates.Collected)
}

func TestTrackerAggregateDualBothTracksCarryFromEarlier(t *testing.T) {
	t.Parallel()

	got := newTestTracker().Aggregate(rows(
		"u1", "2/2 구약 ✅",
		"u1", "2/4 신약 ✅",
		"u1", "~2/5 구약 신약 ✅",
	), domain.TrackModeDual)

	record := got["u1"]
	assert.Equal(t, []string{"2/2", "2/3", "2/4", "2/5"}, record.OldDates.Strings())
	assert.Equal(t, []string{"2/3", "2/4", "2/5"}, record.NewDates.Strings())
}

func TestTrackerAggregateDualFiltersEachTrack(t *testing.T) {
	t.Parallel()

	got := newTestTracker().Aggregate(rows(
		"u1", "2/7 구약 신약 ✅",
	), domain.TrackModeDual)

	record := got["u1"]
	assert.Equal(t, []string{"2/7"}, record.OldDates.Strings())
	assert.Zero(t, record.NewDates.Len())
}

func TestTrackerAggregateDualSkipsUntaggedMessages(t *testing.T) {
	t.Parallel()

	got, stats := newTestTracker().AggregateWithStats(rows(
		"u1", "2/2 ✅",
		"u1", "2/3 구약 ✅",
	), domain.TrackModeDual)

	assert.Equal(t, []string{"2/3"}, got["u1"].OldDates.Strings())
	assert.Equal(t, 1, stats.Dates.NoTrack)
}

func TestTrackerAggregateStats(t *testing.T) {
	t.Parallel()

	_, stats := newTestTracker().AggregateWithStats(rows(
		"u1", "3/1😀",
		"u1", "안녕하세요",
		"u1", "3/2",
		"u2", "3/3",
		"u1", "3/4🙂",
	), domain.TrackModeSingle)

	assert.Equal(t, 5, stats.Rows)
	assert.Equal(t, 2, stats.Senders)
	assert.Equal(t, MarkStats{NoDate: 1, NoMark: 2, Assigned: 1}, stats.Marks)
	assert.Equal(t, DateStats{Unassigned: 1, MarkMismatch: 3, Collected: 1}, stats.Dates)
	assert.Equal(t, 1, stats.Participants)
}

func TestTrackerAggregateWarnsWhenNothingIsMarked(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	tracker := NewTracker(domain.DefaultSettings(), logger.FromCore(core))

	got := tracker.Aggregate(rows("u1", "3/15"), domain.TrackModeSingle)

	assert.Empty(t, got)
	assert.Equal(t, 1, logs.FilterMessage("no participant has a completion mark").Len())
}

func TestTrackerAggregateEmptyInput(t *testing.T) {
	t.Parallel()

	got, stats := newTestTracker().AggregateWithStats(nil, domain.TrackModeDual)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, stats.Rows)
}

func TestTrackerHonorsConfiguredCap(t *testing.T) {
	t.Parallel()

	settings := domain.DefaultSettings()
	settings.MaxDatesPerMessage = 2
	tracker := NewTracker(settings, nil)

	got := tracker.Aggregate(rows("u1", "3/1😀", "u1", "3/2~3/4😀"), domain.TrackModeSingle)

	assert.Equal(t, []string{"3/1"}, got["u1"].Dates.Strings())
}
