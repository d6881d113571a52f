package extract

// DefaultMaxPromptChars bounds the notes text sent to the model.
const DefaultMaxPromptChars = 50000

const omissionMarker = "\n\n[...] (omitted for length)\n\n"

// TruncateForLLM caps text at maxChars characters. Text under the budget
// is returned unchanged. Over budget, the first 70% and last 30% of the
// budget are kept around an omission marker: the head anchors topic
// coverage, the tail keeps conclusions and summaries.
func TruncateForLLM(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxPromptChars
	}
	if len(text) <= maxChars {
		return text
	}
	head := text[:maxChars*7/10]
	tail := text[len(text)-maxChars*3/10:]
	return head + omissionMarker + tail
}
