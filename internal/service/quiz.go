package service

import (
	"context"
	"strings"

	"notes-quiz/internal/domain"
	"notes-quiz/internal/dto"
	"notes-quiz/internal/extract"
	"notes-quiz/internal/logger"
	"notes-quiz/internal/quizgen"

	"go.uber.org/zap"
)

// TextExtractor is the slice of the extraction dispatcher the service needs.
type TextExtractor interface {
	ExtractBatch(ctx context.Context, docs []extract.Document) ([]string, []extract.DocumentFailure)
}

// Completer is the outbound LLM call.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// QuizService runs the whole pipeline for one request: extract, bound,
// prompt, call, recover. It holds no per-request state and is safe for
// concurrent use.
type QuizService interface {
	GenerateQuiz(ctx context.Context, docs []extract.Document, req dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
}

type quizService struct {
	extractor      TextExtractor
	completer      Completer
	maxPromptChars int
}

const documentSeparator = "\n\n---\n\n"

func NewQuizService(extractor TextExtractor, completer Completer, maxPromptChars int) QuizService {
	if maxPromptChars <= 0 {
		maxPromptChars = extract.DefaultMaxPromptChars
	}
	return &quizService{
		extractor:      extractor,
		completer:      completer,
		maxPromptChars: maxPromptChars,
	}
}

func (s *quizService) GenerateQuiz(ctx context.Context, docs []extract.Document, req dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	if len(docs) == 0 {
		return nil, domain.NewInvalidInputError("Please upload at least one file.")
	}

	texts, failures := s.extractor.ExtractBatch(ctx, docs)
	skipped := make([]dto.SkippedDocument, 0, len(failures))
	for _, f := range failures {
		skipped = append(skipped, dto.SkippedDocument{Name: f.Name, Reason: f.Err.Message})
	}

	merged := extract.TruncateForLLM(strings.Join(texts, documentSeparator), s.maxPromptChars)
	if strings.TrimSpace(merged) == "" {
		return nil, domain.NewInvalidInputError("No readable text found in uploads.")
	}

	logger.Get().Info("notes extracted",
		zap.Int("documents", len(docs)),
		zap.Int("extracted", len(texts)),
		zap.Int("skipped", len(skipped)),
		zap.Int("prompt_chars", len(merged)))

	system, user := quizgen.BuildPrompt(merged, req.Count, req.Types, req.Difficulty)

	response, err := s.completer.Complete(ctx, system, user)
	if err != nil {
		return nil, err
	}

	payload, err := quizgen.RecoverQuiz(response)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("quiz generated",
		zap.Int("questions", len(payload.Questions)))

	return &dto.GenerateQuizResponse{
		Meta:      payload.Meta,
		Questions: payload.Questions,
		Skipped:   skipped,
	}, nil
}
