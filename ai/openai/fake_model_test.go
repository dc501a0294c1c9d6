package openai

import (
	"context"
	"sync"

	"github.com/tmc/langchaingo/llms"
)

// fakeModel is an llms.Model that returns a canned completion and records
// the messages it received.
type fakeModel struct {
	mu       sync.Mutex
	response string
	err      error
	empty    bool
	calls    int
	messages []llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.messages = messages

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.empty {
		return &llms.ContentResponse{}, nil
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func (f *fakeModel) userText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) < 2 {
		return ""
	}
	return toText(f.messages[1].Parts[0])
}

func toText(part llms.ContentPart) string {
	if text, ok := part.(llms.TextContent); ok {
		return text.Text
	}
	return ""
}
