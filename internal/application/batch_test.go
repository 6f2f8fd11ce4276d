package application

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/honeybible-cli/internal/domain"
)

type fakeReader struct {
	mu          sync.Mutex
	transcripts map[string]domain.Transcript
	calls       int
}

func (r *fakeReader) Read(_ context.Context, name string, _ []byte) (domain.Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	transcript, ok := r.transcripts[name]
	if !ok {
		return domain.Transcript{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, name)
	}
	return transcript, nil
}

func roomTranscript(name, date string) domain.Transcript {
	return domain.Transcript{Name: name, Rows: rows("u1", date+"😀", "u2", date+"🔥")}
}

func TestAnalyzeAllKeepsInputOrder(t *testing.T) {
	reader := &fakeReader{transcripts: map[string]domain.Transcript{}}
	var cmds []AnalyzeCommand
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("room-%02d.csv", i)
		reader.transcripts[name] = roomTranscript(name, fmt.Sprintf("3/%d", i))
		cmds = append(cmds, AnalyzeCommand{Source: name})
	}
	service := NewAnalysisService(reader, domain.DefaultSettings(), fixedClock{now: analyzedAt}, nil)

	results, err := service.AnalyzeAll(context.Background(), cmds, 3)
	require.NoError(t, err)
	require.Len(t, results, len(cmds))

	for i, analysis := range results {
		assert.Equal(t, cmds[i].Source, analysis.Source)
		assert.Equal(t, []string{fmt.Sprintf("3/%d", i+1)}, analysis.Completions["u1"].Dates.Strings())
		assert.Len(t, analysis.Completions, 2)
	}
	assert.Equal(t, len(cmds), reader.calls)
}

func TestAnalyzeAllReturnsFirstFailure(t *testing.T) {
	reader := &fakeReader{transcripts: map[string]domain.Transcript{
		"ok.csv": roomTranscript("ok.csv", "3/1"),
	}}
	service := NewAnalysisService(reader, domain.DefaultSettings(), nil, nil)

	results, err := service.AnalyzeAll(context.Background(), []AnalyzeCommand{
		{Source: "ok.csv"},
		{Source: "missing.bin"},
	}, 0)

	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.ErrorContains(t, err, `analyze "missing.bin"`)
}

func TestAnalyzeEachReportsPerSource(t *testing.T) {
	reader := &fakeReader{transcripts: map[string]domain.Transcript{
		"a.csv": roomTranscript("a.csv", "3/1"),
		"c.csv": roomTranscript("c.csv", "3/3"),
	}}
	service := NewAnalysisService(reader, domain.DefaultSettings(), nil, nil)

	results := service.AnalyzeEach(context.Background(), []AnalyzeCommand{
		{Source: "a.csv"},
		{Source: "b.bin"},
		{Source: "c.csv"},
	}, 2)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, []string{"3/1"}, results[0].Analysis.Completions["u1"].Dates.Strings())
	assert.ErrorIs(t, results[1].Err, domain.ErrUnsupportedFormat)
	assert.Equal(t, "b.bin", results[1].Source)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, []string{"3/3"}, results[2].Analysis.Completions["u2"].Dates.Strings())
}

func TestAnalyzeEachReportsProgressPerTranscript(t *testing.T) {
	reader := &fakeReader{transcripts: map[string]domain.Transcript{
		"a.csv": roomTranscript("a.csv", "3/1"),
		"c.csv": roomTranscript("c.csv", "3/3"),
	}}

	var (
		dones   []int
		sources []string
	)
	service := NewAnalysisService(reader, domain.DefaultSettings(), nil, nil).
		WithProgress(func(done, total int, source string) {
			assert.Equal(t, 3, total)
			dones = append(dones, done)
			sources = append(sources, source)
		})

	results := service.AnalyzeEach(context.Background(), []AnalyzeCommand{
		{Source: "a.csv"},
		{Source: "b.bin"},
		{Source: "c.csv"},
	}, 2)

	require.Len(t, results, 3)
	assert.Equal(t, []int{1, 2, 3}, dones)
	assert.ElementsMatch(t, []string{"a.csv", "b.bin", "c.csv"}, sources)
}
