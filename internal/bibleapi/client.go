// Package bibleapi fetches scripture chapters from a public bible text
// provider. Responses are plain JSON keyed by reference; no credentials are
// involved. Failures are reported uniformly as ErrUnavailable so the
// scripture service can fall back to its local cache.
package bibleapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

// DefaultBaseURL is the production endpoint of the scripture provider.
const DefaultBaseURL = "https://bible-api.com"

// DefaultTranslation is requested when the caller does not name one.
const DefaultTranslation = "kjv"

// Client fetches a single chapter of scripture.
type Client interface {
	Chapter(ctx context.Context, book string, chapter int, translation string) (*models.BibleChapter, error)
}

// HTTPClient implements Client over plain HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client bound to baseURL (DefaultBaseURL if empty)
// with the given per-call timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// chapterResponse mirrors the provider's shape: a flat verse list under a
// combined "Book Chapter" reference.
type chapterResponse struct {
	Reference string `json:"reference"`
	Verses    []struct {
		Verse int    `json:"verse"`
		Text  string `json:"text"`
	} `json:"verses"`
}

func (c *HTTPClient) Chapter(ctx context.Context, book string, chapter int, translation string) (*models.BibleChapter, error) {
	if translation == "" {
		translation = DefaultTranslation
	}
	query := fmt.Sprintf("%s %d", book, chapter)
	u := fmt.Sprintf("%s/%s?translation=%s", c.baseURL, url.PathEscape(query), url.QueryEscape(strings.ToLower(translation)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var cr chapterResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	verses := make([]models.BibleVerse, 0, len(cr.Verses))
	for _, v := range cr.Verses {
		verses = append(verses, models.BibleVerse{
			Number: v.Verse,
			Text:   strings.TrimSpace(strings.ReplaceAll(v.Text, "\n", " ")),
		})
	}

	return &models.BibleChapter{
		Book:    book,
		Chapter: chapter,
		Summary: fmt.Sprintf("The book of %s, chapter %d.", book, chapter),
		Verses:  verses,
	}, nil
}
