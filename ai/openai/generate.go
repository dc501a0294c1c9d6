package openai

import (
	"context"
	"time"

	"github.com/poiesic/yojana/ai"
	"github.com/tmc/langchaingo/llms"
)

// withCallTimeout bounds ctx by d when d is positive.
func withCallTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// generate sends a system and a human message and returns the first choice.
func generate(ctx context.Context, client llms.Model, timeout time.Duration, system, user string, opts ...llms.CallOption) (string, error) {
	ctx, cancel := withCallTimeout(ctx, timeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(system)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(user)},
		},
	}

	response, err := client.GenerateContent(ctx, content, opts...)
	if err != nil {
		return "", err
	}
	if response == nil || len(response.Choices) < 1 {
		return "", ai.ErrEmptyResponse
	}
	return response.Choices[0].Content, nil
}
