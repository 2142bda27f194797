package pipeline

import (
	"context"
	"fmt"
	"strings"

	"newsillustrator/internal/logging"
	"newsillustrator/pkg/imagegen"
	"newsillustrator/pkg/llm"
)

type ImageWriter interface {
	Write(ctx context.Context, data []byte) (string, error)
}

type Result struct {
	Mode       llm.Mode
	Text       string
	Sentiment  string
	Completion string
	Missing    []string
	ImagePath  string
	Seed       uint32
	TextModel  string
	ImageModel string
}

// Pipeline runs text generation, field extraction, image generation and the file write in
// that order. A failed remote stage aborts the run; missing markers do not.
type Pipeline struct {
	text   llm.TextGenerator
	images imagegen.ImageGenerator
	writer ImageWriter
}

func New(text llm.TextGenerator, images imagegen.ImageGenerator, writer ImageWriter) *Pipeline {
	return &Pipeline{text: text, images: images, writer: writer}
}

func (p *Pipeline) Run(ctx context.Context, article string, mode llm.Mode) (*Result, error) {
	logger := logging.FromContext(ctx).With("mode", mode)

	if strings.TrimSpace(article) == "" {
		return nil, fmt.Errorf("%w: article text is empty", ErrInvalidInput)
	}

	completion, err := p.text.Generate(ctx, article, mode)
	if err != nil {
		logger.Error("text generation failed", "error", err, "model", p.text.ModelName())
		return nil, &StageError{Stage: StageText, Err: err}
	}
	logger.Debug("completion received", "chars", len(completion))

	fields := llm.ParseCompletion(completion, mode)
	if len(fields.Missing) > 0 {
		logger.Warn("markers missing from completion, using fallback text", "missing", fields.Missing)
	}

	img, err := p.images.Generate(ctx, fields.Text)
	if err != nil {
		logger.Error("image generation failed", "error", err, "model", p.images.ModelName())
		return nil, &StageError{Stage: StageImage, Err: err}
	}

	path, err := p.writer.Write(ctx, img.Data)
	if err != nil {
		logger.Error("error saving image", "error", err)
		return nil, &StageError{Stage: StageImage, Err: err}
	}

	logger.Info("image generated", "path", path, "seed", img.Seed, "bytes", len(img.Data))

	return &Result{
		Mode:       mode,
		Text:       fields.Text,
		Sentiment:  fields.Sentiment,
		Completion: completion,
		Missing:    fields.Missing,
		ImagePath:  path,
		Seed:       img.Seed,
		TextModel:  p.text.ModelName(),
		ImageModel: p.images.ModelName(),
	}, nil
}
