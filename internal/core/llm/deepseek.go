package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type DeepSeekProvider struct {
	client *openai.Client
	model  string
}

func NewDeepSeekProvider(apiKey string, model string) *DeepSeekProvider {
	if model == "" {
		model = "deepseek-chat"
	}

	// DeepSeek uses OpenAI-compatible API with custom base URL
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = "https://api.deepseek.com"
	config.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
	}

	return &DeepSeekProvider{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (p *DeepSeekProvider) GetProviderName() string {
	return "DeepSeek"
}

func (p *DeepSeekProvider) GetModel() string {
	return p.model
}

func (p *DeepSeekProvider) Complete(ctx context.Context, req Request) (*Completion, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: deepseek: %v", classifyErr(err), err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: deepseek returned no choices", ErrMalformedResponse)
	}

	return &Completion{
		Content:    resp.Choices[0].Message.Content,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

func toOpenAIMessages(msgs []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(msgs))
	for i, m := range msgs {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}
