package collector

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"SwingSentinel/internal/errs"
	"SwingSentinel/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// NewsAPIConfig configures the everything-search endpoint.
type NewsAPIConfig struct {
	BaseURL  string
	APIKey   string
	Language string
	SortBy   string
	Proxy    string
	Timeout  time.Duration
}

// NewsAPIClient implements NewsSource using newsapi.org.
type NewsAPIClient struct {
	client *resty.Client
	cfg    NewsAPIConfig
}

// NewNewsAPIClient creates a news client with optional proxy support.
func NewNewsAPIClient(cfg NewsAPIConfig) *NewsAPIClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "SwingSentinel/1.0")
	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
	}
	return &NewsAPIClient{client: client, cfg: cfg}
}

func (n *NewsAPIClient) Name() string { return "newsapi" }

type newsArticle struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type newsResponse struct {
	Status   string        `json:"status"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Articles []newsArticle `json:"articles"`
}

// FetchHeadlines searches titles for query, newest first.
// Repeated titles keep their first position and the last URL seen.
func (n *NewsAPIClient) FetchHeadlines(ctx context.Context, query string) ([]model.Headline, error) {
	resp, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"qInTitle": query,
			"sortBy":   n.cfg.SortBy,
			"language": n.cfg.Language,
			"apiKey":   n.cfg.APIKey,
		}).
		Get(n.cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(errs.ErrProvider, "newsapi: %v", redactTransport(err))
	}

	var body newsResponse
	decodeErr := json.Unmarshal(resp.Body(), &body)
	if !resp.IsSuccess() {
		if decodeErr == nil && body.Message != "" {
			return nil, errors.Wrapf(errs.ErrProvider, "newsapi: status %d: %s (%s)", resp.StatusCode(), body.Message, body.Code)
		}
		return nil, errors.Wrapf(errs.ErrProvider, "newsapi: status %d", resp.StatusCode())
	}
	if decodeErr != nil {
		return nil, errors.Wrapf(errs.ErrMalformedData, "newsapi: decode: %v", decodeErr)
	}
	if body.Status == "error" {
		return nil, errors.Wrapf(errs.ErrProvider, "newsapi: %s (%s)", body.Message, body.Code)
	}

	return dedupeHeadlines(body.Articles), nil
}

func dedupeHeadlines(articles []newsArticle) []model.Headline {
	headlines := make([]model.Headline, 0, len(articles))
	index := make(map[string]int, len(articles))
	for _, a := range articles {
		title := strings.TrimSpace(a.Title)
		if title == "" {
			continue
		}
		if i, ok := index[title]; ok {
			headlines[i].URL = a.URL
			continue
		}
		index[title] = len(headlines)
		headlines = append(headlines, model.Headline{Title: title, URL: a.URL})
	}
	return headlines
}
