package kakao

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/honeybible-cli/internal/domain"
)

const DefaultMaxArchiveEntryBytes = 50 * 1024 * 1024

// ExtractTranscript returns the first .txt entry of a ZIP export. The entry
// may not inflate beyond limit bytes.
func ExtractTranscript(payload []byte, limit int64) ([]byte, string, error) {
	zr, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return nil, "", fmt.Errorf("open zip archive: %w", err)
	}

	entry := findTranscriptEntry(zr)
	if entry == nil {
		return nil, "", domain.ErrNoTranscriptInArchive
	}
	if entry.UncompressedSize64 > uint64(limit) {
		return nil, "", fmt.Errorf("%w: %s is %d bytes", domain.ErrTranscriptTooLarge, entry.Name, entry.UncompressedSize64)
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open zip entry %q: %w", entry.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, "", fmt.Errorf("read zip entry %q: %w", entry.Name, err)
	}
	if int64(len(data)) > limit {
		return nil, "", fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrTranscriptTooLarge, entry.Name, limit)
	}

	return data, entry.Name, nil
}

func findTranscriptEntry(zr *zip.Reader) *zip.File {
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(f.Name), ".txt") {
			return f
		}
	}
	return nil
}
