package llm

import (
	"context"
	"fmt"
	"os"
)

// Role constants for chat context entries.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role/content pair in the completion context.
type Message struct {
	Role    string
	Content string
}

// Request carries the bounded context window plus per-lawyer model parameters.
type Request struct {
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// Completion is the provider's answer plus token usage reported by the API.
type Completion struct {
	Content    string
	TokensUsed int
}

// Provider interface untuk multiple AI providers
type Provider interface {
	Complete(ctx context.Context, req Request) (*Completion, error)
	GetProviderName() string
	GetModel() string
}

// ProviderType untuk factory
type ProviderType string

const (
	ProviderDeepSeek ProviderType = "deepseek"
	ProviderOpenAI   ProviderType = "openai"
)

// ProviderConfig untuk create provider
type ProviderConfig struct {
	Type ProviderType

	DeepSeekKey string
	OpenAIKey   string

	Model string
}

// NewProvider factory untuk create LLM provider
func NewProvider(cfg *ProviderConfig) (Provider, error) {
	switch cfg.Type {
	case ProviderDeepSeek:
		if cfg.DeepSeekKey == "" {
			return nil, fmt.Errorf("%w: DEEPSEEK_API_KEY is required", ErrCredentialMissing)
		}
		return NewDeepSeekProvider(cfg.DeepSeekKey, cfg.Model), nil

	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is required", ErrCredentialMissing)
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.Model), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}

// LoadProviderFromEnv load config dari environment variables
func LoadProviderFromEnv() *ProviderConfig {
	providerType := os.Getenv("LLM_PROVIDER")
	if providerType == "" {
		providerType = "deepseek" // default
	}

	cfg := &ProviderConfig{
		Type:        ProviderType(providerType),
		DeepSeekKey: os.Getenv("DEEPSEEK_API_KEY"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		Model:       os.Getenv("LLM_MODEL"),
	}

	if cfg.Model == "" {
		switch cfg.Type {
		case ProviderDeepSeek:
			cfg.Model = "deepseek-chat"
		case ProviderOpenAI:
			cfg.Model = "gpt-4o-mini"
		}
	}

	return cfg
}
