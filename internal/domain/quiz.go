package domain

import (
	"fmt"
	"strings"
)

// QuestionType identifies how a question is answered and therefore what
// shape its answer takes.
type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeTrueFalse   QuestionType = "true_false"
	TypeShortAnswer QuestionType = "short_answer"
)

// AllQuestionTypes returns every supported question type.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{TypeMCQ, TypeTrueFalse, TypeShortAnswer}
}

// ParseQuestionType validates a raw type string from the API or the model.
func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(s) {
	case TypeMCQ, TypeTrueFalse, TypeShortAnswer:
		return QuestionType(s), nil
	}
	return "", fmt.Errorf("unknown question type: %q", s)
}

// Difficulty labels for questions and for the requested quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuizQuestion is a single validated question. Answer holds an int for mcq
// (index into Choices), a bool for true_false, or a []string of acceptable
// answers for short_answer.
type QuizQuestion struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Prompt      string       `json:"prompt"`
	Choices     []string     `json:"choices,omitempty"`
	Answer      interface{}  `json:"answer"`
	Explanation string       `json:"explanation,omitempty"`
	Difficulty  string       `json:"difficulty,omitempty"`
}

// QuizMeta describes the quiz as a whole.
type QuizMeta struct {
	QuestionCount int            `json:"question_count"`
	Types         []QuestionType `json:"types"`
	SourceSummary string         `json:"source_summary"`
}

// QuizPayload is the validated quiz handed to the client. It is built once
// from a recovered model response and never mutated afterwards.
type QuizPayload struct {
	Meta      QuizMeta       `json:"meta"`
	Questions []QuizQuestion `json:"questions"`
}

// ParseQuizPayload turns a generic decoded JSON value into a QuizPayload,
// verifying every required field and the per-type answer shape. Candidates
// that fail any check are discarded wholesale; nothing is patched in place.
func ParseQuizPayload(raw map[string]interface{}) (*QuizPayload, error) {
	rawQuestions, ok := raw["questions"].([]interface{})
	if !ok || len(rawQuestions) == 0 {
		return nil, fmt.Errorf("quiz has no questions")
	}

	payload := &QuizPayload{}
	seen := make(map[string]bool, len(rawQuestions))
	for i, rq := range rawQuestions {
		qm, ok := rq.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("question %d is not an object", i)
		}
		q, err := parseQuestion(qm)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("question %d: duplicate id %q", i, q.ID)
		}
		seen[q.ID] = true
		payload.Questions = append(payload.Questions, q)
	}

	payload.Meta = parseMeta(raw["meta"], payload.Questions)
	return payload, nil
}

func parseQuestion(qm map[string]interface{}) (QuizQuestion, error) {
	var q QuizQuestion

	id, _ := qm["id"].(string)
	if id == "" {
		return q, fmt.Errorf("missing id")
	}
	typeStr, _ := qm["type"].(string)
	qType, err := ParseQuestionType(typeStr)
	if err != nil {
		return q, err
	}
	prompt, _ := qm["prompt"].(string)
	if strings.TrimSpace(prompt) == "" {
		return q, fmt.Errorf("missing prompt")
	}

	q.ID = id
	q.Type = qType
	q.Prompt = prompt

	if rawChoices, ok := qm["choices"].([]interface{}); ok {
		for _, c := range rawChoices {
			s, ok := c.(string)
			if !ok {
				return q, fmt.Errorf("choice is not a string")
			}
			q.Choices = append(q.Choices, s)
		}
	}

	answer, err := parseAnswer(qType, qm["answer"], len(q.Choices))
	if err != nil {
		return q, err
	}
	q.Answer = answer

	if expl, ok := qm["explanation"].(string); ok {
		q.Explanation = expl
	}
	if diff, ok := qm["difficulty"].(string); ok {
		q.Difficulty = diff
	}
	return q, nil
}

// parseAnswer enforces the per-type answer shape. JSON numbers decode as
// float64, so an mcq index is accepted only when it is a whole number.
func parseAnswer(qType QuestionType, raw interface{}, choiceCount int) (interface{}, error) {
	switch qType {
	case TypeMCQ:
		f, ok := raw.(float64)
		if !ok || f != float64(int(f)) || f < 0 {
			return nil, fmt.Errorf("mcq answer must be a non-negative integer index")
		}
		idx := int(f)
		if choiceCount > 0 && idx >= choiceCount {
			return nil, fmt.Errorf("mcq answer index %d out of range for %d choices", idx, choiceCount)
		}
		return idx, nil
	case TypeTrueFalse:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("true_false answer must be a boolean")
		}
		return b, nil
	case TypeShortAnswer:
		list, ok := raw.([]interface{})
		if !ok || len(list) == 0 {
			return nil, fmt.Errorf("short_answer answer must be a non-empty string list")
		}
		answers := make([]string, 0, len(list))
		for _, v := range list {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("short_answer entry is not a string")
			}
			answers = append(answers, s)
		}
		return answers, nil
	}
	return nil, fmt.Errorf("unknown question type: %q", qType)
}

// parseMeta is lenient: a model that produced valid questions but sloppy
// meta still yields a usable quiz, with meta derived from the questions.
func parseMeta(raw interface{}, questions []QuizQuestion) QuizMeta {
	meta := QuizMeta{QuestionCount: len(questions)}

	typeSet := make(map[QuestionType]bool)
	for _, q := range questions {
		if !typeSet[q.Type] {
			typeSet[q.Type] = true
			meta.Types = append(meta.Types, q.Type)
		}
	}

	if mm, ok := raw.(map[string]interface{}); ok {
		if summary, ok := mm["source_summary"].(string); ok {
			meta.SourceSummary = summary
		}
		if count, ok := mm["question_count"].(float64); ok && int(count) == len(questions) {
			meta.QuestionCount = int(count)
		}
	}
	return meta
}
