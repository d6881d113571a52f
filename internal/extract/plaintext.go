package extract

import (
	"context"
	"strings"
	"unicode/utf8"
)

// PlainTextExtractor decodes document bytes as UTF-8 and cleans the
// result. Invalid byte sequences are replaced, never fatal, so this
// extractor cannot fail.
type PlainTextExtractor struct{}

func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

func (e *PlainTextExtractor) Extract(_ context.Context, doc Document) (string, error) {
	return Clean(decodeUTF8(doc.Data)), nil
}

func decodeUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		b.WriteRune(r) // RuneError for invalid sequences
		data = data[size:]
	}
	return b.String()
}
