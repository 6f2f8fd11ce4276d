package kakao

import (
	"context"
	"fmt"

	"github.com/bnema/honeybible-cli/internal/domain"
	"github.com/bnema/honeybible-cli/internal/logger"
	"github.com/bnema/honeybible-cli/internal/ports"
)

// Reader decodes KakaoTalk chat exports: mobile TXT, desktop CSV and the
// ZIP archive wrapping a TXT export.
type Reader struct {
	log             *logger.Logger
	maxArchiveBytes int64
}

var _ ports.TranscriptReader = (*Reader)(nil)

type Option func(*Reader)

// WithMaxArchiveBytes caps the decompressed size of an archived transcript.
func WithMaxArchiveBytes(limit int64) Option {
	return func(r *Reader) {
		if limit > 0 {
			r.maxArchiveBytes = limit
		}
	}
}

func NewReader(log *logger.Logger, opts ...Option) *Reader {
	if log == nil {
		log = logger.NewNop()
	}
	r := &Reader{log: log, maxArchiveBytes: DefaultMaxArchiveEntryBytes}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reader) Read(ctx context.Context, name string, payload []byte) (domain.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return domain.Transcript{}, err
	}
	if len(payload) == 0 {
		return domain.Transcript{}, fmt.Errorf("%w: %s is empty", domain.ErrUnsupportedFormat, name)
	}

	format := DetectFormat(name, payload)
	transcript := domain.Transcript{Name: name, Format: format}
	log := r.log.With("source", name, "format", format)

	switch format {
	case domain.FormatZIP:
		data, entry, err := ExtractTranscript(payload, r.maxArchiveBytes)
		if err != nil {
			return domain.Transcript{}, err
		}
		text, encoding := Decode(data)
		log.Debug("decoded archive entry", "entry", entry, "encoding", encoding, "bytes", len(data))

		transcript.Rows = ParseTXT(text)
		meta := ParseChatMeta(text)
		fallback := MetaFromZIPName(name)
		transcript.RoomName = firstNonEmpty(meta.RoomName, fallback.RoomName)
		transcript.SavedAt = firstNonEmpty(meta.SavedAt, fallback.SavedAt)

	case domain.FormatTXT:
		text, encoding := Decode(payload)
		log.Debug("decoded transcript", "encoding", encoding, "bytes", len(payload))

		transcript.Rows = ParseTXT(text)
		meta := ParseChatMeta(text)
		transcript.RoomName = meta.RoomName
		transcript.SavedAt = meta.SavedAt

	default:
		text, encoding := Decode(payload)
		log.Debug("decoded transcript", "encoding", encoding, "bytes", len(payload))

		rows, stats, err := ParseCSV(text)
		if err != nil {
			return domain.Transcript{}, fmt.Errorf("parse csv export %q: %w", name, err)
		}
		log.Debug("parsed csv export",
			"records", stats.Records,
			"short_rows", stats.ShortRows,
			"empty_cells", stats.EmptyCells,
		)

		transcript.Rows = rows
		meta := MetaFromCSVName(name)
		transcript.RoomName = meta.RoomName
		transcript.SavedAt = meta.SavedAt
	}

	log.Info("transcript decoded", "rows", len(transcript.Rows), "room", transcript.RoomName)
	return transcript, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
