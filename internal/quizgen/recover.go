package quizgen

import (
	"encoding/json"
	"regexp"
	"strings"

	"notes-quiz/internal/domain"
	"notes-quiz/internal/logger"

	"go.uber.org/zap"
)

// rawExcerptLen bounds the diagnostic excerpt attached to recovery errors.
const rawExcerptLen = 600

var (
	jsonFence = regexp.MustCompile("(?is)```json(.*?)```")
	anyFence  = regexp.MustCompile("(?s)```(.*?)```")
)

// ExtractJSON recovers a JSON object from model response text, trying
// progressively looser strategies: the whole text, a ```json fence, any
// fence, then the first '{' through the last '}'. Parse failures along the
// way are swallowed; only total failure is reported, via ok=false.
func ExtractJSON(text string) (map[string]interface{}, bool) {
	if obj, err := parseObject(text); err == nil {
		return obj, true
	}

	if m := jsonFence.FindStringSubmatch(text); m != nil {
		if obj, err := parseObject(m[1]); err == nil {
			return obj, true
		}
	}
	if m := anyFence.FindStringSubmatch(text); m != nil {
		if obj, err := parseObject(m[1]); err == nil {
			return obj, true
		}
	}

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first >= 0 && last > first {
		if obj, err := parseObject(text[first : last+1]); err == nil {
			return obj, true
		}
	}
	return nil, false
}

func parseObject(s string) (map[string]interface{}, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// RecoverQuiz turns raw model response text into a validated QuizPayload.
// Unrecoverable JSON and structurally invalid quizzes collapse into the
// same error category: a quiz the client cannot render is no better than
// no response at all.
func RecoverQuiz(responseText string) (*domain.QuizPayload, error) {
	raw, ok := ExtractJSON(responseText)
	if !ok {
		logger.Get().Warn("no JSON found in model response",
			zap.Int("response_chars", len(responseText)))
		return nil, domain.NewRecoveryError(
			"Model did not return valid quiz JSON.", excerpt(responseText))
	}

	payload, err := domain.ParseQuizPayload(raw)
	if err != nil {
		logger.Get().Warn("model JSON failed quiz validation", zap.Error(err))
		return nil, domain.NewRecoveryError(
			"Model did not return valid quiz JSON.", excerpt(responseText))
	}
	return payload, nil
}

func excerpt(s string) string {
	if len(s) > rawExcerptLen {
		return s[:rawExcerptLen]
	}
	return s
}
