package news

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrNoArticles = errors.New("no articles returned")

type Article struct {
	Headline    string
	Detail      string
	URL         string
	Source      string
	PublishedAt time.Time
	Publisher   string
}

// Text is the article body fed to the pipeline: the headline followed by its detail.
func (a Article) Text() string {
	parts := make([]string, 0, 2)
	if h := strings.TrimSpace(a.Headline); h != "" {
		parts = append(parts, h)
	}
	if d := strings.TrimSpace(a.Detail); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, "\n\n")
}

type NewsClient interface {
	Fetch(ctx context.Context, limit int) ([]Article, error)
	Name() string
}

// Latest returns the most recently published article with usable text.
func Latest(ctx context.Context, client NewsClient) (Article, error) {
	articles, err := client.Fetch(ctx, 20)
	if err != nil {
		return Article{}, err
	}

	var latest Article
	found := false
	for _, a := range articles {
		if a.Text() == "" {
			continue
		}
		if !found || a.PublishedAt.After(latest.PublishedAt) {
			latest = a
			found = true
		}
	}

	if !found {
		return Article{}, ErrNoArticles
	}
	return latest, nil
}
