package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	alphaVantageURL        = "https://www.alphavantage.co/query"
	alphaVantageTimeLayout = "20060102T150405"
)

// AlphaVantageClient reads the NEWS_SENTIMENT feed. Only title and summary are used; the
// feed's own sentiment scores are ignored since the pipeline produces its own.
type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	query := url.Values{
		"function": {"NEWS_SENTIMENT"},
		"sort":     {"LATEST"},
		"apikey":   {c.apiKey},
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, alphaVantageURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage status %d", resp.StatusCode)
	}

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	// rate limits and bad keys come back as 200 with a message instead of a feed
	if msg := raw.notice(); msg != "" {
		return nil, fmt.Errorf("alphavantage: %s", msg)
	}

	articles := make([]Article, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		a := Article{
			Headline:  strings.TrimSpace(item.Title),
			Detail:    strings.TrimSpace(item.Summary),
			URL:       item.URL,
			Publisher: item.Source,
			Source:    c.Name(),
		}
		if a.Text() == "" {
			continue
		}
		if t, err := time.Parse(alphaVantageTimeLayout, item.TimePublished); err == nil {
			a.PublishedAt = t
		}
		articles = append(articles, a)
	}

	return articles, nil
}

type avResponse struct {
	Feed         []avFeedItem `json:"feed"`
	Information  string       `json:"Information"`
	Note         string       `json:"Note"`
	ErrorMessage string       `json:"Error Message"`
}

func (r avResponse) notice() string {
	for _, msg := range []string{r.ErrorMessage, r.Information, r.Note} {
		if msg != "" {
			return msg
		}
	}
	return ""
}

type avFeedItem struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	TimePublished string `json:"time_published"`
}
