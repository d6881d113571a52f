package service

import (
	"context"
	"strings"
	"testing"

	"notes-quiz/internal/domain"
	"notes-quiz/internal/dto"
	"notes-quiz/internal/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

type MockExtractor struct {
	ExtractBatchFunc func(ctx context.Context, docs []extract.Document) ([]string, []extract.DocumentFailure)
}

func (m *MockExtractor) ExtractBatch(ctx context.Context, docs []extract.Document) ([]string, []extract.DocumentFailure) {
	if m.ExtractBatchFunc != nil {
		return m.ExtractBatchFunc(ctx, docs)
	}
	panic("MockExtractor.ExtractBatchFunc not implemented")
}

type MockCompleter struct {
	CompleteFunc func(ctx context.Context, system, user string) (string, error)
}

func (m *MockCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, user)
	}
	panic("MockCompleter.CompleteFunc not implemented")
}

const modelQuizJSON = `{
  "meta": {"question_count": 1, "types": ["true_false"], "source_summary": "Notes."},
  "questions": [{"id": "q1", "type": "true_false", "prompt": "Water boils at 100C at sea level.", "answer": true}]
}`

func testDocs() []extract.Document {
	return []extract.Document{{Name: "notes.txt", Data: []byte("some notes")}}
}

func TestGenerateQuizNoFiles(t *testing.T) {
	svc := NewQuizService(&MockExtractor{}, &MockCompleter{}, 0)

	_, err := svc.GenerateQuiz(context.Background(), nil, dto.DefaultGenerateQuizRequest())
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidInput, domainErr.Code)
	assert.Equal(t, "Please upload at least one file.", domainErr.Message)
}

func TestGenerateQuizNoReadableText(t *testing.T) {
	extractor := &MockExtractor{
		ExtractBatchFunc: func(_ context.Context, _ []extract.Document) ([]string, []extract.DocumentFailure) {
			return nil, []extract.DocumentFailure{
				{Name: "scan.png", Err: domain.NewOCREmptyResultError()},
			}
		},
	}
	svc := NewQuizService(extractor, &MockCompleter{}, 0)

	_, err := svc.GenerateQuiz(context.Background(), testDocs(), dto.DefaultGenerateQuizRequest())
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidInput, domainErr.Code)
	assert.Equal(t, "No readable text found in uploads.", domainErr.Message)
}

func TestGenerateQuizSuccess(t *testing.T) {
	var capturedUser string
	extractor := &MockExtractor{
		ExtractBatchFunc: func(_ context.Context, _ []extract.Document) ([]string, []extract.DocumentFailure) {
			return []string{"first doc text", "second doc text"}, nil
		},
	}
	completer := &MockCompleter{
		CompleteFunc: func(_ context.Context, system, user string) (string, error) {
			capturedUser = user
			return modelQuizJSON, nil
		},
	}
	svc := NewQuizService(extractor, completer, 0)

	resp, err := svc.GenerateQuiz(context.Background(), testDocs(), dto.DefaultGenerateQuizRequest())
	require.NoError(t, err)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "q1", resp.Questions[0].ID)
	assert.Empty(t, resp.Skipped)

	// Documents are joined with the separator before prompting.
	assert.Contains(t, capturedUser, "first doc text\n\n---\n\nsecond doc text")
}

func TestGenerateQuizReportsSkippedDocuments(t *testing.T) {
	extractor := &MockExtractor{
		ExtractBatchFunc: func(_ context.Context, _ []extract.Document) ([]string, []extract.DocumentFailure) {
			return []string{"good text"}, []extract.DocumentFailure{
				{Name: "blurry.png", Err: domain.NewOCRTimeoutError()},
			}
		},
	}
	completer := &MockCompleter{
		CompleteFunc: func(_ context.Context, _, _ string) (string, error) {
			return modelQuizJSON, nil
		},
	}
	svc := NewQuizService(extractor, completer, 0)

	resp, err := svc.GenerateQuiz(context.Background(), testDocs(), dto.DefaultGenerateQuizRequest())
	require.NoError(t, err)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, "blurry.png", resp.Skipped[0].Name)
	assert.Contains(t, resp.Skipped[0].Reason, "smaller/clearer image")
}

func TestGenerateQuizUpstreamErrorPassesThrough(t *testing.T) {
	extractor := &MockExtractor{
		ExtractBatchFunc: func(_ context.Context, _ []extract.Document) ([]string, []extract.DocumentFailure) {
			return []string{"text"}, nil
		},
	}
	completer := &MockCompleter{
		CompleteFunc: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.NewUpstreamError("Quiz model request failed: 503", nil)
		},
	}
	svc := NewQuizService(extractor, completer, 0)

	_, err := svc.GenerateQuiz(context.Background(), testDocs(), dto.DefaultGenerateQuizRequest())
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrUpstream, domainErr.Code)
}

func TestGenerateQuizRecoveryError(t *testing.T) {
	extractor := &MockExtractor{
		ExtractBatchFunc: func(_ context.Context, _ []extract.Document) ([]string, []extract.DocumentFailure) {
			return []string{"text"}, nil
		},
	}
	completer := &MockCompleter{
		CompleteFunc: func(_ context.Context, _, _ string) (string, error) {
			return "I'm sorry, I cannot create a quiz from this.", nil
		},
	}
	svc := NewQuizService(extractor, completer, 0)

	_, err := svc.GenerateQuiz(context.Background(), testDocs(), dto.DefaultGenerateQuizRequest())
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrRecovery, domainErr.Code)
	assert.NotEmpty(t, domainErr.Raw)
}

func TestGenerateQuizBoundsPrompt(t *testing.T) {
	huge := strings.Repeat("n", 200000)
	extractor := &MockExtractor{
		ExtractBatchFunc: func(_ context.Context, _ []extract.Document) ([]string, []extract.DocumentFailure) {
			return []string{huge}, nil
		},
	}
	var capturedUser string
	completer := &MockCompleter{
		CompleteFunc: func(_ context.Context, _, user string) (string, error) {
			capturedUser = user
			return modelQuizJSON, nil
		},
	}
	svc := NewQuizService(extractor, completer, 50000)

	_, err := svc.GenerateQuiz(context.Background(), testDocs(), dto.DefaultGenerateQuizRequest())
	require.NoError(t, err)
	assert.Less(t, len(capturedUser), 60000, "notes must be bounded before prompting")
	assert.Contains(t, capturedUser, "(omitted for length)")
}
