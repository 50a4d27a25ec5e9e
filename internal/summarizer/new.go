package summarizer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/reelworks/reelify/internal/config"
	"github.com/reelworks/reelify/internal/logger"
)

// New builds the Summarizer selected by cfg.Provider. Provider "none"
// yields a no-op that always returns an empty summary.
func New(cfg config.SummarizerConfig, log logger.Logger) (Summarizer, error) {
	switch cfg.Provider {
	case "openai":
		if len(cfg.APIKeys) == 0 {
			return nil, fmt.Errorf("summarizer: openai provider requires an api key")
		}
		return &openaiSummarizer{
			endpoint:  cfg.Endpoint,
			apiKey:    cfg.APIKeys[0],
			model:     cfg.Model,
			maxTokens: cfg.MaxTokens,
			client:    &http.Client{Timeout: 60 * time.Second},
			logger:    log,
		}, nil
	case "gemini":
		if len(cfg.APIKeys) == 0 {
			return nil, fmt.Errorf("summarizer: gemini provider requires an api key")
		}
		return &geminiSummarizer{
			apiKeys: cfg.APIKeys,
			model:   cfg.Model,
			logger:  log,
		}, nil
	case "none":
		return noopSummarizer{}, nil
	default:
		return nil, fmt.Errorf("summarizer: unknown provider %q", cfg.Provider)
	}
}

type noopSummarizer struct{}

func (noopSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	return "", nil
}
