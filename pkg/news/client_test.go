package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type fakeNewsClient struct {
	articles []Article
	err      error
}

func (f *fakeNewsClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	return f.articles, f.err
}

func (f *fakeNewsClient) Name() string { return "fake" }

func TestArticleText(t *testing.T) {
	assert.Equal(t, "Headline\n\nDetail", Article{Headline: " Headline ", Detail: "Detail"}.Text())
	assert.Equal(t, "Headline", Article{Headline: "Headline"}.Text())
	assert.Equal(t, "", Article{}.Text())
}

func TestLatest(t *testing.T) {
	now := time.Now()
	client := &fakeNewsClient{articles: []Article{
		{Headline: "Older", PublishedAt: now.Add(-time.Hour)},
		{Headline: "", Detail: "", PublishedAt: now.Add(time.Hour)},
		{Headline: "Newest", PublishedAt: now},
	}}

	a, err := Latest(context.Background(), client)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Newest", a.Headline)
}

func TestLatestEmpty(t *testing.T) {
	_, err := Latest(context.Background(), &fakeNewsClient{})
	assert.Equal(t, true, errors.Is(err, ErrNoArticles))

	_, err = Latest(context.Background(), &fakeNewsClient{err: errors.New("down")})
	assert.NotEqual(t, nil, err)
}
