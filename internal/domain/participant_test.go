package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeParticipant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain name", raw: "홍길동", want: "홍길동"},
		{name: "strip word prefix", raw: "맑은샘 홍길동", want: "홍길동"},
		{name: "digits emoji and ascii", raw: "홍길동92🌷abc", want: "홍길동"},
		{name: "sibling title", raw: "길동 형", want: "길동"},
		{name: "nothing left keeps the original", raw: "John 92", want: "John 92"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NormalizeParticipant(tc.raw, DefaultStripWords))
		})
	}
}
