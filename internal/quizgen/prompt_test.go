package quizgen

import (
	"testing"

	"notes-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	notes := "Photosynthesis converts light into chemical energy."
	system, user := BuildPrompt(notes, 5,
		[]domain.QuestionType{domain.TypeMCQ, domain.TypeTrueFalse},
		domain.DifficultyHard)

	assert.Contains(t, system, "Use ONLY the provided notes")
	assert.Contains(t, system, "STRICT JSON")

	assert.Contains(t, user, "Create a 5-question quiz.")
	assert.Contains(t, user, "Allowed types: mcq, true_false.")
	assert.Contains(t, user, "Target difficulty: hard.")
	assert.Contains(t, user, "ONLY valid JSON (no prose, no code fences)")
	assert.Contains(t, user, domain.QuizSchemaJSON)
	assert.Contains(t, user, `Notes:
"""`+notes+`"""`)
}

func TestBuildPromptDeterministic(t *testing.T) {
	types := domain.AllQuestionTypes()
	s1, u1 := BuildPrompt("same notes", 10, types, domain.DifficultyMedium)
	s2, u2 := BuildPrompt("same notes", 10, types, domain.DifficultyMedium)

	assert.Equal(t, s1, s2)
	assert.Equal(t, u1, u2)
}
