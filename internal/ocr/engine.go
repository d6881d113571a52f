// Package ocr turns image bytes into text. Engines are interchangeable;
// the caller owns timeouts and decides what an empty result means.
package ocr

import (
	"context"
	"net/http"
)

// Engine recognizes text in a single image. Implementations must honor
// ctx cancellation and must not retain img after returning.
type Engine interface {
	Recognize(ctx context.Context, img []byte, mimeType string) (string, error)
	Name() string
}

// DetectMIME resolves the image MIME type, preferring the declared one and
// sniffing the bytes when it is absent or generic.
func DetectMIME(declared string, data []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if len(data) > 0 {
		return http.DetectContentType(data)
	}
	return "application/octet-stream"
}
