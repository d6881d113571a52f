package extract

import (
	"context"
	"strings"

	"notes-quiz/internal/domain"
	"notes-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Dispatcher picks the right extractor for each document. Media type wins;
// a missing or generic media type falls back to the filename suffix;
// everything else is treated as plain text.
type Dispatcher struct {
	plainText   Extractor
	image       Extractor
	pdf         Extractor
	concurrency int
}

// NewDispatcher wires the three format extractors. concurrency bounds
// parallel batch extraction; values below 1 mean sequential.
func NewDispatcher(plainText, image, pdf Extractor, concurrency int) *Dispatcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Dispatcher{
		plainText:   plainText,
		image:       image,
		pdf:         pdf,
		concurrency: concurrency,
	}
}

// ExtractText extracts cleaned text from a single document.
func (d *Dispatcher) ExtractText(ctx context.Context, doc Document) (string, error) {
	return d.pick(doc).Extract(ctx, doc)
}

func (d *Dispatcher) pick(doc Document) Extractor {
	mime := strings.ToLower(doc.ContentType)
	switch {
	case mime == "application/pdf":
		return d.pdf
	case strings.HasPrefix(mime, "image/"):
		return d.image
	case strings.HasSuffix(strings.ToLower(doc.Name), ".pdf"):
		return d.pdf
	default:
		return d.plainText
	}
}

// DocumentFailure reports one document that could not be extracted.
type DocumentFailure struct {
	Name string
	Err  *domain.DomainError
}

// ExtractBatch extracts every document independently, skipping failures so
// one bad upload never sinks its siblings. Successful texts come back in
// upload order with empty results dropped; failures are reported
// separately, per document.
func (d *Dispatcher) ExtractBatch(ctx context.Context, docs []Document) ([]string, []DocumentFailure) {
	texts := make([]string, len(docs))
	errs := make([]*domain.DomainError, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			text, err := d.ExtractText(gctx, doc)
			if err != nil {
				errs[i] = asDomainError(err)
				logger.Get().Warn("document extraction failed",
					zap.String("file", doc.Name),
					zap.String("code", string(errs[i].Code)))
				return nil // skip-and-continue
			}
			texts[i] = text
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; ctx cancellation shows up per-document

	var ok []string
	var failed []DocumentFailure
	for i := range docs {
		switch {
		case errs[i] != nil:
			failed = append(failed, DocumentFailure{Name: docs[i].Name, Err: errs[i]})
		case texts[i] != "":
			ok = append(ok, texts[i])
		}
	}
	return ok, failed
}

func asDomainError(err error) *domain.DomainError {
	if de, ok := err.(*domain.DomainError); ok {
		return de
	}
	return domain.NewExtractionError("Could not read the file.", err)
}
