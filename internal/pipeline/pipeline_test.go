package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"newsillustrator/pkg/imagegen"
	"newsillustrator/pkg/imagestore"
	"newsillustrator/pkg/llm"

	"github.com/go-playground/assert/v2"
)

type fakeText struct {
	completion string
	err        error
	calls      int
	gotMode    llm.Mode
}

func (f *fakeText) Generate(ctx context.Context, article string, mode llm.Mode) (string, error) {
	f.calls++
	f.gotMode = mode
	return f.completion, f.err
}

func (f *fakeText) ModelName() string { return "fake-text" }

type fakeImages struct {
	data     []byte
	err      error
	calls    int
	seedText string
}

func (f *fakeImages) Generate(ctx context.Context, seedText string) (*imagegen.Image, error) {
	f.calls++
	f.seedText = seedText
	if f.err != nil {
		return nil, f.err
	}
	return &imagegen.Image{Data: f.data, Seed: 7}, nil
}

func (f *fakeImages) ModelName() string { return "fake-image" }

type failingWriter struct{}

func (failingWriter) Write(ctx context.Context, data []byte) (string, error) {
	return "", errors.New("disk full")
}

func TestRunHeadline(t *testing.T) {
	dir := t.TempDir()
	text := &fakeText{completion: "Headline: Fed Holds Rates\nSentiment: Neutral"}
	images := &fakeImages{data: []byte("png")}

	p := New(text, images, imagestore.NewWriter(dir))
	res, err := p.Run(context.Background(), "The Fed kept rates unchanged.", llm.ModeHeadline)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Fed Holds Rates", res.Text)
	assert.Equal(t, "Headline: Fed Holds Rates\nSentiment: Neutral", res.Sentiment)
	assert.Equal(t, filepath.Join(dir, "generated_image_1.png"), res.ImagePath)
	assert.Equal(t, uint32(7), res.Seed)
	assert.Equal(t, "Fed Holds Rates", images.seedText)
	assert.Equal(t, llm.ModeHeadline, text.gotMode)

	saved, err := os.ReadFile(res.ImagePath)
	assert.Equal(t, nil, err)
	assert.Equal(t, "png", string(saved))
}

func TestRunSummary(t *testing.T) {
	text := &fakeText{completion: "Summary: A\nSentiment: B"}
	images := &fakeImages{data: []byte("png")}

	p := New(text, images, imagestore.NewWriter(t.TempDir()))
	res, err := p.Run(context.Background(), "article", llm.ModeSummary)

	assert.Equal(t, nil, err)
	assert.Equal(t, "A", res.Text)
	assert.Equal(t, "B", res.Sentiment)
	assert.Equal(t, "A", images.seedText)
}

func TestRunMissingMarkerContinues(t *testing.T) {
	text := &fakeText{completion: "I cannot find a headline."}
	images := &fakeImages{data: []byte("png")}

	p := New(text, images, imagestore.NewWriter(t.TempDir()))
	res, err := p.Run(context.Background(), "article", llm.ModeHeadline)

	assert.Equal(t, nil, err)
	assert.Equal(t, llm.HeadlineNotFound, res.Text)
	assert.Equal(t, []string{llm.HeadlineMarker}, res.Missing)
	assert.Equal(t, 1, images.calls)
	assert.Equal(t, llm.HeadlineNotFound, images.seedText)
}

func TestRunTextFailureShortCircuits(t *testing.T) {
	dir := t.TempDir()
	text := &fakeText{err: errors.New("throttled")}
	images := &fakeImages{data: []byte("png")}

	p := New(text, images, imagestore.NewWriter(dir))
	res, err := p.Run(context.Background(), "article", llm.ModeHeadline)

	assert.Equal(t, (*Result)(nil), res)
	assert.Equal(t, true, errors.Is(err, ErrTextGeneration))
	assert.Equal(t, false, errors.Is(err, ErrImageGeneration))
	assert.Equal(t, "Text generation failed: throttled", err.Error())
	assert.Equal(t, 0, images.calls)

	entries, _ := os.ReadDir(dir)
	assert.Equal(t, 0, len(entries))
}

func TestRunImageFailure(t *testing.T) {
	text := &fakeText{completion: "Headline: X\n"}
	images := &fakeImages{err: errors.New("content filtered")}

	p := New(text, images, imagestore.NewWriter(t.TempDir()))
	_, err := p.Run(context.Background(), "article", llm.ModeHeadline)

	assert.Equal(t, true, errors.Is(err, ErrImageGeneration))
	assert.Equal(t, "Image generation failed: content filtered", err.Error())

	var stageErr *StageError
	assert.Equal(t, true, errors.As(err, &stageErr))
	assert.Equal(t, StageImage, stageErr.Stage)
}

func TestRunWriteFailure(t *testing.T) {
	text := &fakeText{completion: "Headline: X\n"}
	images := &fakeImages{data: []byte("png")}

	p := New(text, images, failingWriter{})
	_, err := p.Run(context.Background(), "article", llm.ModeHeadline)

	assert.Equal(t, true, errors.Is(err, ErrImageGeneration))
}

func TestRunEmptyArticle(t *testing.T) {
	text := &fakeText{}
	p := New(text, &fakeImages{}, imagestore.NewWriter(t.TempDir()))

	_, err := p.Run(context.Background(), "   ", llm.ModeHeadline)

	assert.Equal(t, true, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, 0, text.calls)
}
