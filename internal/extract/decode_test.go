package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/hammamikhairi/ottodish/internal/domain"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    string
	}{
		{"plain", []byte("##БЛЮДО##\nНАЗВАНИЕ: Плов"), "##БЛЮДО##\nНАЗВАНИЕ: Плов"},
		{"empty", []byte{}, ""},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, "Плов"...), "Плов"},
		{"crlf", []byte("a\r\nb\rc"), "a\nb\nc"},
		{"nfc", []byte("Чаи\u0306"), "Ча\u0439"},
		{"code fence", []byte("```text\n##БЛЮДО##\nНАЗВАНИЕ: Плов\n```\n"), "##БЛЮДО##\nНАЗВАНИЕ: Плов\n"},
		{"lone fence", []byte("```"), ""},
		{"inner fence", []byte("intro\n```\n##БЛЮДО##\n```\nend"), "intro\n##БЛЮДО##\nend"},
		{"indented fence", []byte("  ```yaml\nx\n  ```"), "x\n"},
		{"inline backticks kept", []byte("use ```code``` here"), "use ```code``` here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUTF16(t *testing.T) {
	src := "##БЛЮДО##\nНАЗВАНИЕ: Плов"

	for name, enc := range map[string]unicode.Endianness{
		"little endian": unicode.LittleEndian,
		"big endian":    unicode.BigEndian,
	} {
		t.Run(name, func(t *testing.T) {
			encoded, err := unicode.UTF16(enc, unicode.UseBOM).NewEncoder().String(src)
			require.NoError(t, err)

			got, err := Decode([]byte(encoded))
			require.NoError(t, err)
			assert.Equal(t, src, got)

			rec, err := extractBytes([]byte(encoded))
			require.NoError(t, err)
			assert.Equal(t, "Плов", rec.Name)
		})
	}
}

func TestDecodeRejects(t *testing.T) {
	for name, p := range map[string][]byte{
		"truncated rune": []byte("Пло\xD0"),
		"latin-1":        {'c', 'a', 'f', 0xE9},
		"nul":            {'a', 0x00, 'b'},
		"utf-16 odd":     {0xFF, 0xFE, 0x41, 0x00, 0x42},
		"utf-16 binary":  {0xFF, 0xFE, 0x01, 0xD8, 0x41, 0x00, 0xFF, 0x13, 0x37},
		"lone surrogate": {0xFE, 0xFF, 0xD8, 0x01, 0x00, 0x41},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(p)
			assert.ErrorIs(t, err, domain.ErrNotText)
		})
	}
}

func TestDecodeKeepsLiteralReplacementChar(t *testing.T) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("a\uFFFDb")
	require.NoError(t, err)

	got, err := Decode([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFDb", got)
}

func TestFencedRecommendations(t *testing.T) {
	payload := "Вот описание:\n```\n" + borschText + "```\n"

	rec, err := extractBytes([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, borschRecord().Recommendations, rec.Recommendations)
}
