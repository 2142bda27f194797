package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/rand/v2"
)

type Image struct {
	Data []byte
	Seed uint32
}

type ImageGenerator interface {
	Generate(ctx context.Context, seedText string) (*Image, error)
	ModelName() string
}

// BuildPrompt embeds a headline or summary in the cinematic image template.
func BuildPrompt(seedText string) string {
	return fmt.Sprintf(
		"Create a cinematic, high-resolution 4K HDR image that visually represents the following headline: '%s'. It should convey the tone and theme of the headline.",
		seedText,
	)
}

// randomSeed draws uniformly from [0, 4294967295].
var randomSeed = func() uint32 {
	return rand.Uint32()
}

func decodeImage(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return data, nil
}
