package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestParseQuizPayloadValid(t *testing.T) {
	raw := decode(t, `{
		"meta": {"question_count": 3, "types": ["mcq","true_false","short_answer"], "source_summary": "Notes on rivers."},
		"questions": [
			{"id":"q1","type":"mcq","prompt":"Longest river?","choices":["Nile","Amazon"],"answer":0},
			{"id":"q2","type":"true_false","prompt":"The Nile flows north.","answer":true},
			{"id":"q3","type":"short_answer","prompt":"Name a delta river.","answer":["nile","ganges"]}
		]
	}`)

	payload, err := ParseQuizPayload(raw)
	require.NoError(t, err)
	require.Len(t, payload.Questions, 3)

	assert.Equal(t, 0, payload.Questions[0].Answer)
	assert.Equal(t, true, payload.Questions[1].Answer)
	assert.Equal(t, []string{"nile", "ganges"}, payload.Questions[2].Answer)
	assert.Equal(t, 3, payload.Meta.QuestionCount)
	assert.Equal(t, "Notes on rivers.", payload.Meta.SourceSummary)
	assert.ElementsMatch(t,
		[]QuestionType{TypeMCQ, TypeTrueFalse, TypeShortAnswer},
		payload.Meta.Types)
}

func TestParseQuizPayloadRejections(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"no questions key", `{"meta":{}}`},
		{"empty questions", `{"questions":[]}`},
		{"questions not a list", `{"questions":"nope"}`},
		{"missing id", `{"questions":[{"type":"mcq","prompt":"p","answer":0}]}`},
		{"missing prompt", `{"questions":[{"id":"q1","type":"mcq","answer":0}]}`},
		{"blank prompt", `{"questions":[{"id":"q1","type":"mcq","prompt":"  ","answer":0}]}`},
		{"unknown type", `{"questions":[{"id":"q1","type":"essay","prompt":"p","answer":0}]}`},
		{"mcq boolean answer", `{"questions":[{"id":"q1","type":"mcq","prompt":"p","answer":true}]}`},
		{"mcq fractional answer", `{"questions":[{"id":"q1","type":"mcq","prompt":"p","answer":1.5}]}`},
		{"mcq negative answer", `{"questions":[{"id":"q1","type":"mcq","prompt":"p","answer":-1}]}`},
		{"mcq index out of range", `{"questions":[{"id":"q1","type":"mcq","prompt":"p","choices":["a","b"],"answer":2}]}`},
		{"true_false integer answer", `{"questions":[{"id":"q1","type":"true_false","prompt":"p","answer":1}]}`},
		{"short_answer empty list", `{"questions":[{"id":"q1","type":"short_answer","prompt":"p","answer":[]}]}`},
		{"short_answer string answer", `{"questions":[{"id":"q1","type":"short_answer","prompt":"p","answer":"word"}]}`},
		{"short_answer mixed list", `{"questions":[{"id":"q1","type":"short_answer","prompt":"p","answer":["ok",3]}]}`},
		{"duplicate ids", `{"questions":[
			{"id":"q1","type":"true_false","prompt":"p","answer":true},
			{"id":"q1","type":"true_false","prompt":"p2","answer":false}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuizPayload(decode(t, tt.json))
			assert.Error(t, err)
		})
	}
}

func TestParseQuizPayloadLenientMeta(t *testing.T) {
	// Valid questions with missing or sloppy meta still yield a quiz, with
	// meta derived from the questions themselves.
	raw := decode(t, `{"questions":[
		{"id":"q1","type":"true_false","prompt":"p","answer":true}
	]}`)

	payload, err := ParseQuizPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, payload.Meta.QuestionCount)
	assert.Equal(t, []QuestionType{TypeTrueFalse}, payload.Meta.Types)
	assert.Empty(t, payload.Meta.SourceSummary)
}

func TestParseQuestionType(t *testing.T) {
	for _, valid := range []string{"mcq", "true_false", "short_answer"} {
		got, err := ParseQuestionType(valid)
		require.NoError(t, err)
		assert.Equal(t, QuestionType(valid), got)
	}
	_, err := ParseQuestionType("essay")
	assert.Error(t, err)
}
