package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()

	assert.NoError(t, settings.Validate())
	assert.Equal(t, 14, settings.MaxDatesPerMessage)
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{name: "zero cap", mutate: func(s *Settings) { s.MaxDatesPerMessage = 0 }, wantErr: "must be positive"},
		{name: "missing plan id", mutate: func(s *Settings) { s.Plans[0].ID = "" }, wantErr: "plan id is required"},
		{name: "duplicate plan id", mutate: func(s *Settings) { s.Plans[1].ID = s.Plans[0].ID }, wantErr: "duplicate plan id"},
		{name: "bad plan track", mutate: func(s *Settings) { s.Plans[0].Track = "mid" }, wantErr: "unsupported track"},
		{
			name: "inverted part",
			mutate: func(s *Settings) {
				s.Plans[0].Parts = []DateRange{{Start: day(2026, time.March, 2), End: day(2026, time.March, 1)}}
			},
			wantErr: "ends before it starts",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			settings := DefaultSettings()
			tc.mutate(&settings)
			assert.ErrorContains(t, settings.Validate(), tc.wantErr)
		})
	}
}

func TestSettingsResolveAlias(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.Aliases = map[string]string{"길동": "홍길동"}

	assert.Equal(t, "홍길동", settings.ResolveAlias("길동"))
	assert.Equal(t, "철수", settings.ResolveAlias("철수"))
}
