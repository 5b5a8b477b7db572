package doc2pdf

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// encodeWinAnsi converts UTF-8 text to the Windows-1252 bytes the core
// PDF fonts index glyphs by. Text is NFC-normalized first so a letter
// followed by a combining accent maps to one precomposed glyph. Runes with
// no Windows-1252 code become '?' and control characters become spaces.
func encodeWinAnsi(s string) string {
	s = norm.NFC.String(s)

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			sb.WriteByte(' ')
			continue
		}
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('?')
	}
	return sb.String()
}
