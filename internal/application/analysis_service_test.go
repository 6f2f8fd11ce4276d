package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/honeybible-cli/internal/domain"
	portmocks "github.com/bnema/honeybible-cli/internal/ports/mocks"
)

var analyzedAt = time.Date(2026, time.February, 10, 16, 0, 0, 0, time.UTC)

func TestAnalysisServiceAnalyzeSingleRoom(t *testing.T) {
	t.Parallel()

	reader := portmocks.NewMockTranscriptReader(t)
	settings := domain.DefaultSettings()
	settings.Aliases = map[string]string{"철수": "김철수"}
	settings.RoomMembers = map[string][]string{"길동": {"김철수", "영희"}}
	service := NewAnalysisService(reader, settings, fixedClock{now: analyzedAt}, nil)

	transcript := domain.Transcript{
		Name:     "chat.txt",
		Format:   domain.FormatTXT,
		RoomName: "2026 성경일독",
		SavedAt:  "2026/02/10-15:30",
		Rows: rows(
			"홍길동", "꿀성경 진행 방식 안내: 창세기부터 출애굽기까지",
			"철수", "2/2😀",
			"철수", "2/3~2/9😀",
		),
	}
	reader.EXPECT().Read(mock.Anything, "chat.txt", []byte("payload")).Return(transcript, nil).Once()

	analysis, err := service.Analyze(context.Background(), AnalyzeCommand{Source: "chat.txt", Payload: []byte("payload")})
	require.NoError(t, err)

	assert.NotEmpty(t, analysis.RunID)
	assert.Equal(t, "chat.txt", analysis.Source)
	assert.Equal(t, domain.FormatTXT, analysis.Format)
	assert.Equal(t, analyzedAt, analysis.AnalyzedAt)
	assert.Equal(t, domain.TrackModeSingle, analysis.Mode)
	assert.Equal(t, ScheduleBible, analysis.ScheduleType)
	assert.Equal(t, "길동", analysis.Leader)
	assert.Equal(t, "꿀성경_길동_20260210_1530_2026 성경일독", analysis.ReportName)
	assert.Equal(t, []string{"김철수", "영희"}, analysis.Participants())
	assert.Equal(t, []string{"2/2", "2/3", "2/4", "2/5", "2/6", "2/7", "2/9"}, analysis.Completions["김철수"].Dates.Strings())
	assert.True(t, analysis.Completions["영희"].Empty())
	assert.Equal(t, domain.PlanBible, analysis.Stats.Plan)
}

func TestAnalysisServiceDetectsDualMode(t *testing.T) {
	t.Parallel()

	reader := portmocks.NewMockTranscriptReader(t)
	settings := domain.DefaultSettings()
	service := NewAnalysisService(reader, settings, fixedClock{now: analyzedAt}, nil)

	transcript := domain.Transcript{
		Name: "room.csv",
		Rows: rows(
			"방장", settings.DualMarker,
			"u1", "2/2 구약 ✅",
			"u1", "2/3 신약 ✅",
		),
	}
	reader.EXPECT().Read(mock.Anything, "room.csv", mock.Anything).Return(transcript, nil).Once()

	analysis, err := service.Analyze(context.Background(), AnalyzeCommand{Source: "room.csv"})
	require.NoError(t, err)

	assert.Equal(t, domain.TrackModeDual, analysis.Mode)
	assert.Equal(t, ScheduleDual, analysis.ScheduleType)
	assert.Equal(t, defaultReportName, analysis.ReportName)
	assert.Equal(t, []string{"2/2"}, analysis.Completions["u1"].OldDates.Strings())
	assert.Equal(t, []string{"2/3"}, analysis.Completions["u1"].NewDates.Strings())
}

func TestAnalysisServiceExplicitModeOverridesDetection(t *testing.T) {
	t.Parallel()

	reader := portmocks.NewMockTranscriptReader(t)
	settings := domain.DefaultSettings()
	service := NewAnalysisService(reader, settings, fixedClock{now: analyzedAt}, nil)

	transcript := domain.Transcript{Name: "room.csv", Rows: rows("방장", settings.DualMarker, "u1", "3/1😀")}
	reader.EXPECT().Read(mock.Anything, "room.csv", mock.Anything).Return(transcript, nil).Once()

	analysis, err := service.Analyze(context.Background(), AnalyzeCommand{Source: "room.csv", Mode: domain.TrackModeSingle})
	require.NoError(t, err)

	assert.Equal(t, domain.TrackModeSingle, analysis.Mode)
	assert.Equal(t, []string{"3/1"}, analysis.Completions["u1"].Dates.Strings())
}

func TestAnalysisServiceAnalyzeErrors(t *testing.T) {
	t.Parallel()

	t.Run("reader failure", func(t *testing.T) {
		t.Parallel()

		reader := portmocks.NewMockTranscriptReader(t)
		service := NewAnalysisService(reader, domain.DefaultSettings(), nil, nil)
		reader.EXPECT().Read(mock.Anything, "bad.zip", mock.Anything).Return(domain.Transcript{}, domain.ErrNoTranscriptInArchive).Once()

		_, err := service.Analyze(context.Background(), AnalyzeCommand{Source: "bad.zip"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoTranscriptInArchive)
		assert.ErrorContains(t, err, "bad.zip")
	})

	t.Run("empty transcript", func(t *testing.T) {
		t.Parallel()

		reader := portmocks.NewMockTranscriptReader(t)
		service := NewAnalysisService(reader, domain.DefaultSettings(), nil, nil)
		reader.EXPECT().Read(mock.Anything, "empty.csv", mock.Anything).Return(domain.Transcript{Name: "empty.csv"}, nil).Once()

		_, err := service.Analyze(context.Background(), AnalyzeCommand{Source: "empty.csv"})
		assert.ErrorIs(t, err, ErrEmptyTranscript)
	})

	t.Run("unknown mode", func(t *testing.T) {
		t.Parallel()

		service := NewAnalysisService(portmocks.NewMockTranscriptReader(t), domain.DefaultSettings(), nil, nil)

		_, err := service.AnalyzeTranscript(context.Background(), domain.Transcript{Rows: rows("u1", "3/1😀")}, "triple")
		assert.ErrorIs(t, err, domain.ErrUnknownTrackMode)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		service := NewAnalysisService(portmocks.NewMockTranscriptReader(t), domain.DefaultSettings(), nil, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.Analyze(ctx, AnalyzeCommand{Source: "chat.txt"})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
