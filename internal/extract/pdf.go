package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"notes-quiz/internal/domain"
	"notes-quiz/internal/logger"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// DefaultPDFMaxPages caps how many pages are read from one document so a
// huge upload cannot blow the extraction budget.
const DefaultPDFMaxPages = 50

// PDFExtractor reads the text layer of a PDF page by page. Pages without
// an extractable text layer contribute nothing; an entirely image-based
// PDF therefore yields empty text, which is a legitimate outcome rather
// than an error. When disabled by policy it fails fast with a fixed
// user-facing message without touching the bytes.
type PDFExtractor struct {
	enabled  bool
	maxPages int
}

func NewPDFExtractor(enabled bool, maxPages int) *PDFExtractor {
	if maxPages <= 0 {
		maxPages = DefaultPDFMaxPages
	}
	return &PDFExtractor{enabled: enabled, maxPages: maxPages}
}

func (e *PDFExtractor) Extract(ctx context.Context, doc Document) (string, error) {
	if !e.enabled {
		return "", domain.NewPDFDisabledError()
	}

	text, err := e.readPages(ctx, doc)
	if err != nil {
		logger.Get().Error("PDF extraction failed",
			zap.String("file", doc.Name),
			zap.Error(err))
		return "", domain.NewExtractionError(
			"Could not read the PDF. Try a plain-text file or an image instead.", err)
	}
	return Clean(text), nil
}

// readPages isolates the pdf library, which panics on malformed input.
func (e *PDFExtractor) readPages(ctx context.Context, doc Document) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return "", err
	}

	numPages := e.pageBudget(reader.NumPage())
	if numPages < reader.NumPage() {
		logger.Get().Info("capping PDF pages",
			zap.String("file", doc.Name),
			zap.Int("pages", reader.NumPage()),
			zap.Int("cap", e.maxPages))
	}

	var b strings.Builder
	for p := 1; p <= numPages; p++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(p)
		if page.V.IsNull() {
			continue
		}
		for _, item := range page.Content().Text {
			if item.S != "" {
				b.WriteString(item.S)
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// pageBudget bounds how many pages one document may contribute.
func (e *PDFExtractor) pageBudget(numPages int) int {
	if numPages > e.maxPages {
		return e.maxPages
	}
	return numPages
}
