package image

import (
	"context"
	"fmt"
	"net/http"

	"bannerarchitect/internal/infra"
	"bannerarchitect/internal/providers/gemini"
)

// NewGenerator builds the generator selected by IMAGE_PROVIDER.
func NewGenerator(ctx context.Context, cfg *infra.Config, logger infra.Logger) (Generator, error) {
	switch cfg.ImageProvider {
	case infra.ImageProviderSynthetic:
		logger.Warn().Msg("image: using synthetic generator, banners are placeholders")
		return NewSyntheticGenerator(cfg.SyntheticDelay), nil
	case infra.ImageProviderGemini:
		client, err := gemini.NewClient(ctx, gemini.Options{
			APIKey:     cfg.GeminiAPIKey,
			BaseURL:    cfg.GeminiBaseURL,
			Model:      cfg.GeminiModel,
			HTTPClient: &http.Client{Timeout: cfg.GeminiTimeout},
			Logger:     &logger,
		})
		if err != nil {
			return nil, err
		}
		return NewGeminiGenerator(client), nil
	default:
		return nil, fmt.Errorf("image: unsupported provider %q", cfg.ImageProvider)
	}
}
