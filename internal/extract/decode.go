package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hammamikhairi/ottodish/internal/domain"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// Decode turns a raw payload into normalized text, or fails with
// domain.ErrNotText when the payload is not text at all.
//
// UTF-16 with a byte order mark is transcoded and must be well formed: an
// odd byte count or an unpaired surrogate is rejected. Anything else must
// be valid UTF-8. NUL bytes mark binary data. Accepted text is
// NFC-normalized, line endings become "\n", and markdown code fence lines
// are removed.
func Decode(payload []byte) (string, error) {
	data := payload

	if bytes.HasPrefix(data, utf16BEBOM) || bytes.HasPrefix(data, utf16LEBOM) {
		if len(data)%2 != 0 {
			return "", fmt.Errorf("%w: utf-16: odd byte count", domain.ErrNotText)
		}
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return "", fmt.Errorf("%w: utf-16: %v", domain.ErrNotText, err)
		}
		if bytes.Count(out, replacementChar) > utf16Replacements(data) {
			return "", fmt.Errorf("%w: utf-16: unpaired surrogate", domain.ErrNotText)
		}
		data = out
	} else {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: invalid utf-8", domain.ErrNotText)
		}
		data = bytes.TrimPrefix(data, utf8BOM)
	}

	if bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("%w: contains NUL bytes", domain.ErrNotText)
	}

	text := norm.NFC.String(string(data))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return fenceLine.ReplaceAllString(text, ""), nil
}

var replacementChar = []byte(string(utf8.RuneError))

// utf16Replacements counts the U+FFFD code units literally present in a
// BOM-prefixed UTF-16 payload. The decoder emits U+FFFD for malformed
// input, so any surplus in its output marks an unpaired surrogate.
func utf16Replacements(data []byte) int {
	be := bytes.HasPrefix(data, utf16BEBOM)
	n := 0
	for i := 2; i+1 < len(data); i += 2 {
		hi, lo := data[i], data[i+1]
		if !be {
			hi, lo = lo, hi
		}
		if hi == 0xFF && lo == 0xFD {
			n++
		}
	}
	return n
}

// fenceLine matches a markdown code fence line, with or without a
// language tag, wherever it appears. Models wrap all or part of their
// answer in fences.
var fenceLine = regexp.MustCompile("(?m)^[ \t]*```[\\w+-]*[ \t]*(?:\n|$)")
