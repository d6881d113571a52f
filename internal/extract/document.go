// Package extract turns uploaded study documents into bounded plain text
// for the quiz prompt.
package extract

import "context"

// Document is one uploaded file as received from the HTTP layer. The
// pipeline borrows it for the duration of extraction and never mutates it.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

// Extractor converts one document format into cleaned text.
type Extractor interface {
	Extract(ctx context.Context, doc Document) (string, error)
}
