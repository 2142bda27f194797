package imagegen

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ImageModel
	modelName string
}

func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if model == "" {
		model = string(openai.ImageModelDallE3)
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client:    &client,
		model:     openai.ImageModel(model),
		modelName: model,
	}
}

func (c *OpenAIClient) ModelName() string {
	return c.modelName
}

// Generate requests a single base64 image. The Images API takes no seed, so the returned
// Seed is always zero.
func (c *OpenAIClient) Generate(ctx context.Context, seedText string) (*Image, error) {
	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         BuildPrompt(seedText),
		Model:          c.model,
		N:              openai.Int(1),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
		Size:           openai.ImageGenerateParamsSize1024x1024,
		Style:          openai.ImageGenerateParamsStyleNatural,
	})
	if err != nil {
		return nil, fmt.Errorf("openai images API error: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no image from openai")
	}

	data, err := decodeImage(resp.Data[0].B64JSON)
	if err != nil {
		return nil, err
	}

	return &Image{Data: data}, nil
}
