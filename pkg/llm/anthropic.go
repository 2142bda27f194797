package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

const (
	defaultAnthropicModel = "claude-2.1"
	defaultBedrockModel   = "anthropic.claude-v2"
)

// AnthropicClient talks to the legacy text completions endpoint, either directly or through Bedrock.
type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey, model string, opts ...option.RequestOption) *AnthropicClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return newAnthropicClient(model, defaultAnthropicModel, opts...)
}

// NewBedrockClient signs requests with the default AWS credential chain. The endpoint host
// is derived from region, so it must not be empty.
func NewBedrockClient(ctx context.Context, region, model string) *AnthropicClient {
	return newAnthropicClient(model, defaultBedrockModel,
		bedrock.WithLoadDefaultConfig(ctx, awsconfig.WithRegion(region)))
}

func newAnthropicClient(model, fallback string, opts ...option.RequestOption) *AnthropicClient {
	if model == "" {
		model = fallback
	}
	// failures surface to the caller as-is
	opts = append(opts, option.WithMaxRetries(0))
	client := anthropic.NewClient(opts...)
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.Model(model),
		modelName: model,
	}
}

func (c *AnthropicClient) ModelName() string {
	return c.modelName
}

func (c *AnthropicClient) Generate(ctx context.Context, article string, mode Mode) (string, error) {
	resp, err := c.client.Completions.New(ctx, anthropic.CompletionNewParams{
		Model:             c.model,
		Prompt:            conversationPrompt(article, mode),
		MaxTokensToSample: maxTokensToSample,
		Temperature:       anthropic.Float(temperature),
		TopP:              anthropic.Float(topP),
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	return resp.Completion, nil
}
