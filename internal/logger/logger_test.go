package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromCoreRecordsStructuredFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromCore(core).With("run_id", "r-1")

	log.Info("pass complete", "rows", 3)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "pass complete", entries[0].Message)
	assert.Equal(t, map[string]interface{}{"run_id": "r-1", "rows": int64(3)}, entries[0].ContextMap())
}

func TestSetLevelIgnoresUnknownNames(t *testing.T) {
	log, err := New("dev")
	require.NoError(t, err)

	log.SetLevel("warn")
	assert.Equal(t, zapcore.WarnLevel, log.level.Level())

	log.SetLevel("loud")
	assert.Equal(t, zapcore.WarnLevel, log.level.Level())
}
