package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSpinnerShowsBatchProgress(t *testing.T) {
	t.Parallel()

	model := newAnalyzeSpinnerModel(5, nil)
	assert.Contains(t, model.View(), "Analyzing transcripts 0/5")

	next, _ := model.Update(analyzeProgressMsg{done: 2, source: "/tmp/exports/room-b.csv"})
	model = next.(analyzeSpinnerModel)
	assert.Contains(t, model.View(), "Analyzing transcripts 2/5")
	assert.Contains(t, model.View(), "room-b.csv")
	assert.NotContains(t, model.View(), "/tmp/exports")

	next, _ = model.Update(analyzeProgressMsg{done: 1, source: "room-a.csv"})
	model = next.(analyzeSpinnerModel)
	assert.Contains(t, model.View(), "2/5")
	assert.NotContains(t, model.View(), "room-a.csv")
}

func TestAnalyzeSpinnerKeepsBatchError(t *testing.T) {
	t.Parallel()

	batchErr := errors.New("boom")
	next, cmd := newAnalyzeSpinnerModel(1, nil).Update(analyzeDoneMsg{err: batchErr})
	require.NotNil(t, cmd)

	model := next.(analyzeSpinnerModel)
	assert.Empty(t, model.View())
	assert.ErrorIs(t, model.err, batchErr)
}
