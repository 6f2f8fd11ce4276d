package kakao

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/bnema/honeybible-cli/internal/domain"
)

var zipMagic = []byte("PK\x03\x04")

// DetectFormat sniffs the ZIP signature first, then falls back to the file
// extension. Anything unrecognized is treated as a CSV export.
func DetectFormat(name string, payload []byte) domain.TranscriptFormat {
	if bytes.HasPrefix(payload, zipMagic) {
		return domain.FormatZIP
	}
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "zip":
		return domain.FormatZIP
	case "txt":
		return domain.FormatTXT
	default:
		return domain.FormatCSV
	}
}
