package llm

import (
	"context"
	"fmt"
	"strings"
)

type Mode string

const (
	ModeHeadline Mode = "headline"
	ModeSummary  Mode = "summary"
)

// ParseMode maps a user supplied mode name to a Mode. Empty input yields fallback.
func ParseMode(s string, fallback Mode) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return fallback, nil
	case ModeHeadline:
		return ModeHeadline, nil
	case ModeSummary:
		return ModeSummary, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Sampling parameters shared by every text provider.
const (
	maxTokensToSample = 512
	temperature       = 0.8
	topP              = 0.8
)

type TextGenerator interface {
	Generate(ctx context.Context, article string, mode Mode) (string, error)
	ModelName() string
}
