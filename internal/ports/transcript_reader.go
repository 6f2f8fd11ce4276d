package ports

import (
	"context"

	"github.com/bnema/honeybible-cli/internal/domain"
)

// TranscriptReader decodes a raw chat export into rows and room metadata.
type TranscriptReader interface {
	Read(ctx context.Context, name string, payload []byte) (domain.Transcript, error)
}
