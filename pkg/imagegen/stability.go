package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultStabilityBaseURL = "https://api.stability.ai"
	defaultStabilityEngine  = "stable-diffusion-xl-1024-v1-0"

	stylePreset = "photographic"
	cfgScale    = 10
	steps       = 30
)

// StabilityClient calls the v1 text-to-image endpoint, whose request and response shapes
// match the Stable Diffusion XL contract: text_prompts in, base64 artifacts out.
type StabilityClient struct {
	apiKey     string
	baseURL    string
	engine     string
	httpClient *http.Client
}

func NewStabilityClient(apiKey, baseURL, engine string) *StabilityClient {
	if baseURL == "" {
		baseURL = defaultStabilityBaseURL
	}
	if engine == "" {
		engine = defaultStabilityEngine
	}
	return &StabilityClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		engine:     engine,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *StabilityClient) ModelName() string {
	return c.engine
}

func (c *StabilityClient) Generate(ctx context.Context, seedText string) (*Image, error) {
	seed := randomSeed()

	payload, err := json.Marshal(stabilityRequest{
		TextPrompts: []stabilityTextPrompt{{Text: BuildPrompt(seedText)}},
		StylePreset: stylePreset,
		Seed:        seed,
		CfgScale:    cfgScale,
		Steps:       steps,
	})
	if err != nil {
		return nil, fmt.Errorf("stability encode: %w", err)
	}

	url := fmt.Sprintf("%s/v1/generation/%s/text-to-image", c.baseURL, c.engine)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("stability request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stability fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("stability status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw stabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("stability decode: %w", err)
	}

	if len(raw.Artifacts) == 0 {
		return nil, fmt.Errorf("no artifacts from stability")
	}

	data, err := decodeImage(raw.Artifacts[0].Base64)
	if err != nil {
		return nil, err
	}

	return &Image{Data: data, Seed: seed}, nil
}

type stabilityRequest struct {
	TextPrompts []stabilityTextPrompt `json:"text_prompts"`
	StylePreset string                `json:"style_preset"`
	Seed        uint32                `json:"seed"`
	CfgScale    int                   `json:"cfg_scale"`
	Steps       int                   `json:"steps"`
}

type stabilityTextPrompt struct {
	Text string `json:"text"`
}

type stabilityResponse struct {
	Artifacts []stabilityArtifact `json:"artifacts"`
}

type stabilityArtifact struct {
	Base64       string `json:"base64"`
	Seed         uint32 `json:"seed"`
	FinishReason string `json:"finishReason"`
}
