package service

import (
	"context"
	"strings"

	"github.com/wmsConsultant/backend/internal/capability"
	"github.com/wmsConsultant/backend/internal/catalog"
	"github.com/wmsConsultant/backend/internal/model"
	"github.com/wmsConsultant/backend/pkg/logger"
)

// Researcher produces research record drafts for a client. Each research
// type is conducted independently: a capability failure for one type never
// aborts the others, it degrades that type to the static template.
type Researcher struct {
	gen    capability.TextGenerator
	search capability.WebSearcher
	log    *logger.Logger
}

func NewResearcher(gen capability.TextGenerator, search capability.WebSearcher, log *logger.Logger) *Researcher {
	return &Researcher{gen: gen, search: search, log: log}
}

// ConductAll runs every research type and always returns exactly one draft
// per type, whatever mix of successes and fallbacks occurred.
func (r *Researcher) ConductAll(ctx context.Context, client *model.Client) []model.ResearchRecord {
	drafts := make([]model.ResearchRecord, 0, len(model.AllResearchTypes))
	for _, typ := range model.AllResearchTypes {
		drafts = append(drafts, r.Conduct(ctx, client, typ))
	}
	return drafts
}

// Conduct runs one research type. Content is never empty and Sources is
// never an empty list.
func (r *Researcher) Conduct(ctx context.Context, client *model.Client, researchType string) model.ResearchRecord {
	record := model.ResearchRecord{
		ClientID:     client.ID,
		ResearchType: researchType,
	}

	results, err := r.search.Search(ctx, researchQuery(researchType, client.Name, client.Industry))
	if err != nil {
		r.log.Warn("web search unavailable for research", "type", researchType, "client", client.Name, "error", err)
		results = nil
	}

	prompt := buildResearchPrompt(researchType, client.Name, results)
	content, err := r.gen.GenerateText(ctx, researchSystemPrompt, prompt)
	if err != nil || strings.TrimSpace(content) == "" {
		if err != nil {
			r.log.Warn("ai research failed, using template fallback", "type", researchType, "client", client.Name, "error", err)
		}
		record.Content = catalog.FallbackResearch(researchType, client.Name, client.Industry)
		record.Sources = model.StringList{model.SourcesUnavailable}
		record.AIGenerated = false
		return record
	}

	record.Content = content
	record.AIGenerated = true
	for _, res := range results {
		if res.Link != "" {
			record.Sources = append(record.Sources, res.Link)
		}
	}
	if len(record.Sources) == 0 {
		record.Sources = model.StringList{model.SourcesUnavailable}
	}
	return record
}
