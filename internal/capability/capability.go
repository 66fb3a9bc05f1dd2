// Package capability is the boundary to the optional external generation
// providers: an OpenAI-compatible text generator and a SerpAPI-style web
// searcher. Callers never branch on whether a provider is configured, only
// on whether a call succeeded; ErrUnavailable marks the null objects.
package capability

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("generation capability unavailable")

type TextGenerator interface {
	// GenerateText runs one system+user exchange and returns the raw
	// assistant text.
	GenerateText(ctx context.Context, system, user string) (string, error)
	Configured() bool
}

type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

type WebSearcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
	Configured() bool
}

// NoneGenerator is the null-object TextGenerator used when no API key is
// configured.
type NoneGenerator struct{}

func (NoneGenerator) GenerateText(ctx context.Context, system, user string) (string, error) {
	return "", ErrUnavailable
}

func (NoneGenerator) Configured() bool { return false }

// NoneSearcher is the null-object WebSearcher.
type NoneSearcher struct{}

func (NoneSearcher) Search(ctx context.Context, query string) ([]SearchResult, error) {
	return nil, ErrUnavailable
}

func (NoneSearcher) Configured() bool { return false }
