package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrTextGeneration  = errors.New("text generation failed")
	ErrImageGeneration = errors.New("image generation failed")
)

type Stage string

const (
	StageText  Stage = "Text generation"
	StageImage Stage = "Image generation"
)

// StageError reports a hard failure of one remote stage. Its message is the one shown to
// API clients, e.g. "Text generation failed: <detail>".
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func (e *StageError) Is(target error) bool {
	switch target {
	case ErrTextGeneration:
		return e.Stage == StageText
	case ErrImageGeneration:
		return e.Stage == StageImage
	}
	return false
}
