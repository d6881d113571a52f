package extract

import (
	"context"
	"strings"
	"time"

	"notes-quiz/internal/domain"
	"notes-quiz/internal/logger"
	"notes-quiz/internal/ocr"

	"go.uber.org/zap"
)

// DefaultOCRTimeout bounds a single recognition run.
const DefaultOCRTimeout = 45 * time.Second

// ImageExtractor runs OCR on image bytes under a time budget. Recognition
// races a deadline timer; whichever finishes first wins and the loser is
// cancelled. A run that finishes in time but yields only whitespace is a
// failure too, since OCR is the fallback path for otherwise unreadable
// documents.
type ImageExtractor struct {
	engine  ocr.Engine
	timeout time.Duration
}

func NewImageExtractor(engine ocr.Engine, timeout time.Duration) *ImageExtractor {
	if timeout <= 0 {
		timeout = DefaultOCRTimeout
	}
	return &ImageExtractor{engine: engine, timeout: timeout}
}

func (e *ImageExtractor) Extract(ctx context.Context, doc Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	start := time.Now()

	go func() {
		text, err := e.engine.Recognize(ctx, doc.Data, ocr.DetectMIME(doc.ContentType, doc.Data))
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		logger.Get().Warn("OCR timed out",
			zap.String("file", doc.Name),
			zap.String("engine", e.engine.Name()),
			zap.Duration("budget", e.timeout))
		return "", domain.NewOCRTimeoutError()
	case res := <-done:
		if res.err != nil {
			// The engine may also surface the cancellation itself.
			if ctx.Err() != nil {
				return "", domain.NewOCRTimeoutError()
			}
			logger.Get().Error("OCR failed",
				zap.String("file", doc.Name),
				zap.String("engine", e.engine.Name()),
				zap.Error(res.err))
			return "", domain.NewExtractionError(
				"Could not read the image. Try a smaller/clearer image or a plain-text file.", res.err)
		}
		text := Clean(res.text)
		if strings.TrimSpace(text) == "" {
			return "", domain.NewOCREmptyResultError()
		}
		logger.Get().Debug("OCR finished",
			zap.String("file", doc.Name),
			zap.String("engine", e.engine.Name()),
			zap.Int("chars", len(text)),
			zap.Duration("took", time.Since(start)))
		return text, nil
	}
}
