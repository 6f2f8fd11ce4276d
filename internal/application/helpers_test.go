package application

import (
	"time"

	"github.com/bnema/honeybible-cli/internal/domain"
)

func rows(pairs ...string) []domain.ChatRow {
	if len(pairs)%2 != 0 {
		panic("rows needs sender/message pairs")
	}
	out := make([]domain.ChatRow, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.ChatRow{Sender: pairs[i], Message: pairs[i+1]})
	}
	return out
}

func token(raw string) domain.DateToken {
	d, ok := domain.ParseDateToken(raw)
	if !ok {
		panic("invalid fixture date " + raw)
	}
	return d
}

func tokenList(raw ...string) []domain.DateToken {
	out := make([]domain.DateToken, 0, len(raw))
	for _, r := range raw {
		out = append(out, token(r))
	}
	return out
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
