package app

import (
	"context"
	"fmt"
	"log/slog"

	"newsillustrator/db"
	"newsillustrator/internal/config"
	"newsillustrator/internal/pipeline"
	"newsillustrator/pkg/imagegen"
	"newsillustrator/pkg/imagestore"
	"newsillustrator/pkg/llm"
	"newsillustrator/pkg/news"
)

// NewPipeline builds the long-lived clients once and returns the pipeline with a cleanup
// func for the connections it opened.
func NewPipeline(ctx context.Context, cfg config.Config) (*pipeline.Pipeline, func(), error) {
	text, err := NewTextGenerator(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	images, err := NewImageGenerator(cfg)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	writer := imagestore.NewWriter(cfg.OutputDir)

	if cfg.IndexBackend == config.IndexBackendRedis {
		client, err := db.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("error connecting to Redis: %w", err)
		}
		cleanup = func() { client.Close() }
		writer = imagestore.NewCountingWriter(cfg.OutputDir, db.NewIndexCounter(client, ""))
	}

	slog.Info("pipeline configured",
		"text_provider", cfg.TextProvider,
		"text_model", text.ModelName(),
		"image_provider", cfg.ImageProvider,
		"image_model", images.ModelName(),
		"output_dir", writer.Dir(),
		"index_backend", cfg.IndexBackend,
	)

	return pipeline.New(text, images, writer), cleanup, nil
}

func NewTextGenerator(ctx context.Context, cfg config.Config) (llm.TextGenerator, error) {
	switch cfg.TextProvider {
	case config.TextProviderAnthropic:
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.TextModel), nil
	case config.TextProviderBedrock:
		return llm.NewBedrockClient(ctx, cfg.AWSRegion, cfg.TextModel), nil
	case config.TextProviderOpenAI:
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.TextModel), nil
	default:
		return nil, fmt.Errorf("text provider %s not supported", cfg.TextProvider)
	}
}

func NewImageGenerator(cfg config.Config) (imagegen.ImageGenerator, error) {
	switch cfg.ImageProvider {
	case config.ImageProviderStability:
		return imagegen.NewStabilityClient(cfg.StabilityAPIKey, cfg.StabilityBaseURL, cfg.ImageModel), nil
	case config.ImageProviderOpenAI:
		return imagegen.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.ImageModel), nil
	default:
		return nil, fmt.Errorf("image provider %s not supported", cfg.ImageProvider)
	}
}

// NewNewsClient returns the article source named by source, or nil when source is empty.
func NewNewsClient(cfg config.Config, source string) (news.NewsClient, error) {
	switch source {
	case "":
		return nil, nil
	case "finnhub":
		if cfg.FinnhubAPIKey == "" {
			return nil, fmt.Errorf("FINNHUB_API_KEY is required for source %q", source)
		}
		return news.NewFinnHubClient(cfg.FinnhubAPIKey), nil
	case "alphavantage":
		if cfg.AlphaVantageAPIKey == "" {
			return nil, fmt.Errorf("ALPHA_VANTAGE_API_KEY is required for source %q", source)
		}
		return news.NewAlphaVantageClient(cfg.AlphaVantageAPIKey), nil
	default:
		return nil, fmt.Errorf("news source %s not supported", source)
	}
}
