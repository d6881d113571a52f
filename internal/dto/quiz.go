package dto

import "notes-quiz/internal/domain"

// GenerateQuizRequest carries the parsed multipart form fields.
// @Description Options controlling quiz generation
type GenerateQuizRequest struct {
	Count      int                   `json:"count"`
	Types      []domain.QuestionType `json:"types"`
	Difficulty domain.Difficulty     `json:"difficulty"`
}

// DefaultGenerateQuizRequest mirrors the form defaults: 10 questions, all
// three types, medium difficulty.
func DefaultGenerateQuizRequest() GenerateQuizRequest {
	return GenerateQuizRequest{
		Count:      10,
		Types:      domain.AllQuestionTypes(),
		Difficulty: domain.DifficultyMedium,
	}
}

// ErrorResponse represents an error in the API response
// @Description Error payload; raw carries a truncated excerpt of
// @Description unparseable model output when available
type ErrorResponse struct {
	Error string `json:"error"`
	Raw   string `json:"raw,omitempty"`
}

// SkippedDocument reports one upload that could not be extracted while the
// rest of the batch continued.
type SkippedDocument struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// GenerateQuizResponse is the success payload: the validated quiz plus any
// per-document extraction failures the batch skipped over.
type GenerateQuizResponse struct {
	Meta      domain.QuizMeta       `json:"meta"`
	Questions []domain.QuizQuestion `json:"questions"`
	Skipped   []SkippedDocument     `json:"skipped,omitempty"`
}
