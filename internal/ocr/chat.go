package ocr

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

const transcribePrompt = "Transcribe every piece of text visible in this image, " +
	"top to bottom, preserving line breaks. Output only the transcribed text, " +
	"with no commentary. If the image contains no readable text, output nothing."

// ChatEngine performs OCR by sending the image to a vision-capable chat
// model. It reuses the same chat-completion backend as quiz generation, so
// deployments without GCP credentials still get an OCR path.
type ChatEngine struct {
	model llms.Model
}

func NewChatEngine(model llms.Model) *ChatEngine {
	return &ChatEngine{model: model}
}

func (e *ChatEngine) Name() string { return "chat" }

func (e *ChatEngine) Recognize(ctx context.Context, img []byte, mimeType string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.BinaryPart(mimeType, img),
				llms.TextPart(transcribePrompt),
			},
		},
	}

	resp, err := e.model.GenerateContent(ctx, content, llms.WithTemperature(0))
	if err != nil {
		return "", fmt.Errorf("chat OCR: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Content, nil
}
