// Package advisor answers financial questions with a hosted language model,
// grounding every conversation in the user's current month numbers.
package advisor

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"paisa/internal/core"
)

// FallbackReply is returned to the user when the completion API is
// unreachable, instead of surfacing a transport error.
const FallbackReply = "I'm sorry, I'm having trouble connecting right now. Please try again in a moment!"

const (
	defaultModel     = openai.GPT3Dot5Turbo
	maxReplyTokens   = 300
	replyTemperature = 0.7
)

var ErrEmptyMessage = errors.New("empty chat message")

// ChatCompleter is the slice of the OpenAI client the advisor needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Advisor struct {
	client ChatCompleter
	model  string
}

// New builds an advisor talking to the OpenAI chat-completions API.
func New(apiKey string) *Advisor {
	return &Advisor{
		client: openai.NewClient(apiKey),
		model:  defaultModel,
	}
}

// NewWithClient injects a custom completion client, used by tests.
func NewWithClient(client ChatCompleter) *Advisor {
	return &Advisor{client: client, model: defaultModel}
}

// Ask sends the user's message with a system prompt carrying the month
// summary and returns the model's reply.
func (a *Advisor) Ask(ctx context.Context, userName string, summary core.MonthSummary, message string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(userName, summary)},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   maxReplyTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func systemPrompt(userName string, s core.MonthSummary) string {
	return fmt.Sprintf(`You are a helpful AI financial assistant for %s.

Monthly Income: ₹%.2f
Monthly Expenses: ₹%.2f
Net Savings: ₹%.2f

Be conversational, helpful, and provide actionable financial advice. Keep responses concise.`,
		userName, s.Income.Rupees(), s.Expenses.Rupees(), s.Net.Rupees())
}
