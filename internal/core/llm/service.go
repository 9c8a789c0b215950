package llm

import (
	"context"
	"log"
	"time"
)

// requestTimeout bounds the single completion attempt. There is no retry:
// when this elapses the caller switches to its fallback response.
const requestTimeout = 30 * time.Second

// Result is a completion plus the measured round-trip latency.
type Result struct {
	Content    string
	TokensUsed int
	LatencyMS  int
}

// Service wraps an LLM provider untuk dependency injection
type Service struct {
	provider Provider
}

// NewService creates LLM service with provider from environment
func NewService() *Service {
	cfg := LoadProviderFromEnv()

	provider, err := NewProvider(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to create LLM provider: %v", err)
	}

	log.Printf("🤖 Using LLM provider: %s (model: %s)", provider.GetProviderName(), cfg.Model)

	return &Service{provider: provider}
}

// NewServiceWithProvider creates service with custom provider (for testing)
func NewServiceWithProvider(provider Provider) *Service {
	return &Service{provider: provider}
}

// Complete runs one bounded completion attempt and measures its latency.
func (s *Service) Complete(ctx context.Context, req Request) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	start := time.Now()
	completion, err := s.provider.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Result{
		Content:    completion.Content,
		TokensUsed: completion.TokensUsed,
		LatencyMS:  int(time.Since(start).Milliseconds()),
	}, nil
}

// GetProviderName returns current provider name
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}

// GetModel returns the model the current provider is configured with.
func (s *Service) GetModel() string {
	return s.provider.GetModel()
}
