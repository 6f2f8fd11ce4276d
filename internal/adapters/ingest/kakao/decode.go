package kakao

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	encodingUTF8BOM = "utf-8-sig"
	encodingUTF8    = "utf-8"
	encodingCP949   = "cp949"
	encodingLossy   = "utf-8-replace"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode turns an export payload into text. Exports are UTF-8 with or
// without a BOM on recent clients and CP949 on older Windows builds; bytes
// that fit none of them are replaced.
func Decode(payload []byte) (string, string) {
	if bytes.HasPrefix(payload, utf8BOM) && utf8.Valid(payload) {
		text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), payload)
		if err == nil {
			return string(text), encodingUTF8BOM
		}
	}

	if utf8.Valid(payload) {
		return string(payload), encodingUTF8
	}

	if text, err := korean.EUCKR.NewDecoder().Bytes(payload); err == nil && !bytes.ContainsRune(text, utf8.RuneError) {
		return string(text), encodingCP949
	}

	return strings.ToValidUTF8(string(payload), string(utf8.RuneError)), encodingLossy
}
