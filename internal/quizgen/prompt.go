// Package quizgen builds the quiz prompt and recovers the quiz object from
// the model's response text.
package quizgen

import (
	"fmt"
	"strings"

	"notes-quiz/internal/domain"
)

const systemPrompt = "You are a rigorous quiz generator. " +
	"Use ONLY the provided notes; do not add external facts. " +
	"Return STRICT JSON that matches the schema provided. " +
	"For short_answer, include a small array of acceptable answers/keywords. " +
	"Include a one-sentence explanation when possible."

// BuildPrompt assembles the deterministic system and user instructions for
// one quiz request. It does no I/O; the caller hands the pair to the LLM
// client.
func BuildPrompt(notes string, count int, types []domain.QuestionType, difficulty domain.Difficulty) (system, user string) {
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	user = strings.Join([]string{
		fmt.Sprintf("Create a %d-question quiz.", count),
		fmt.Sprintf("Allowed types: %s.", strings.Join(typeNames, ", ")),
		fmt.Sprintf("Target difficulty: %s.", difficulty),
		"Return ONLY valid JSON (no prose, no code fences).",
		"The JSON must validate against this JSON Schema:",
		domain.QuizSchemaJSON,
		fmt.Sprintf("Notes:\n\"\"\"%s\"\"\"", notes),
	}, "\n\n")

	return systemPrompt, user
}
