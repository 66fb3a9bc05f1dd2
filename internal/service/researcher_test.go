package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wmsConsultant/backend/internal/capability"
	"github.com/wmsConsultant/backend/internal/model"
	"github.com/wmsConsultant/backend/pkg/logger"
)

type fakeSearcher struct {
	results []capability.SearchResult
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]capability.SearchResult, error) {
	return f.results, f.err
}

func (f *fakeSearcher) Configured() bool { return true }

func TestConductAllWithoutCapabilities(t *testing.T) {
	r := NewResearcher(capability.NoneGenerator{}, capability.NoneSearcher{}, logger.NewNop())
	client := &model.Client{ID: 7, Name: "Acme Corp", Industry: "Retail"}

	drafts := r.ConductAll(context.Background(), client)
	if len(drafts) != len(model.AllResearchTypes) {
		t.Fatalf("expected %d drafts, got %d", len(model.AllResearchTypes), len(drafts))
	}

	seen := make(map[string]bool)
	for _, d := range drafts {
		seen[d.ResearchType] = true
		if d.ClientID != client.ID {
			t.Fatalf("draft for %s has client id %d", d.ResearchType, d.ClientID)
		}
		if d.AIGenerated {
			t.Fatalf("fallback research must not be flagged as ai generated")
		}
		if strings.TrimSpace(d.Content) == "" {
			t.Fatalf("content for %s must not be empty", d.ResearchType)
		}
		if !strings.Contains(d.Content, "Acme Corp") {
			t.Fatalf("content for %s should reference the client", d.ResearchType)
		}
		if len(d.Sources) != 1 || d.Sources[0] != model.SourcesUnavailable {
			t.Fatalf("fallback sources for %s: %v", d.ResearchType, d.Sources)
		}
	}
	for _, typ := range model.AllResearchTypes {
		if !seen[typ] {
			t.Fatalf("missing draft for research type %s", typ)
		}
	}
}

func TestConductWithCapabilities(t *testing.T) {
	gen := &fakeTextGenerator{response: "**Overview:** Acme Corp runs three regional DCs."}
	search := &fakeSearcher{results: []capability.SearchResult{
		{Title: "Acme expands", Snippet: "...", Link: "https://example.com/acme"},
		{Title: "No link result", Snippet: "..."},
	}}
	r := NewResearcher(gen, search, logger.NewNop())
	client := &model.Client{ID: 7, Name: "Acme Corp", Industry: "Retail"}

	record := r.Conduct(context.Background(), client, model.ResearchCompanyOverview)
	if !record.AIGenerated {
		t.Fatalf("successful research must be flagged as ai generated")
	}
	if record.Content != "**Overview:** Acme Corp runs three regional DCs." {
		t.Fatalf("unexpected content: %q", record.Content)
	}
	if len(record.Sources) != 1 || record.Sources[0] != "https://example.com/acme" {
		t.Fatalf("sources should carry only result links: %v", record.Sources)
	}
}

func TestConductSearchFailureStillGenerates(t *testing.T) {
	gen := &fakeTextGenerator{response: "Acme Corp summary without web context."}
	search := &fakeSearcher{err: errors.New("quota exceeded")}
	r := NewResearcher(gen, search, logger.NewNop())
	client := &model.Client{ID: 7, Name: "Acme Corp", Industry: "Retail"}

	record := r.Conduct(context.Background(), client, model.ResearchSupplyChainAnalysis)
	if !record.AIGenerated {
		t.Fatalf("search failure alone must not force the fallback")
	}
	if len(record.Sources) != 1 || record.Sources[0] != model.SourcesUnavailable {
		t.Fatalf("no links means the unavailable sentinel: %v", record.Sources)
	}
}

func TestConductGenerationFailureFallsBack(t *testing.T) {
	cases := []struct {
		name string
		gen  *fakeTextGenerator
	}{
		{"error", &fakeTextGenerator{err: errors.New("upstream timeout")}},
		{"blank", &fakeTextGenerator{response: "   \n"}},
	}
	search := &fakeSearcher{results: []capability.SearchResult{
		{Title: "t", Snippet: "s", Link: "https://example.com"},
	}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewResearcher(tc.gen, search, logger.NewNop())
			client := &model.Client{ID: 7, Name: "Acme Corp", Industry: "Retail"}

			record := r.Conduct(context.Background(), client, model.ResearchCompetitorAnalysis)
			if record.AIGenerated {
				t.Fatalf("fallback must not be flagged as ai generated")
			}
			if !strings.Contains(record.Content, "Acme Corp") {
				t.Fatalf("fallback content should reference the client")
			}
			if len(record.Sources) != 1 || record.Sources[0] != model.SourcesUnavailable {
				t.Fatalf("fallback sources: %v", record.Sources)
			}
		})
	}
}
