package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wmsConsultant/backend/internal/capability"
	"github.com/wmsConsultant/backend/internal/catalog"
	"github.com/wmsConsultant/backend/internal/config"
	"github.com/wmsConsultant/backend/internal/model"
	"github.com/wmsConsultant/backend/pkg/aitext"
	"github.com/wmsConsultant/backend/pkg/logger"
)

type GenerateRequest struct {
	Category   string
	Count      int
	Priority   string // High, Medium, Low or Mixed
	Complexity string // Basic, Advanced, Expert or Mixed
}

// QuestionGenerator produces question drafts for a catalog category, via
// the AI capability when it responds and the static catalog otherwise.
// Generation is pure: drafts carry no IDs and nothing is persisted here.
type QuestionGenerator struct {
	gen      capability.TextGenerator
	log      *logger.Logger
	minCount int
	maxCount int
}

func NewQuestionGenerator(gen capability.TextGenerator, cfg config.GenerationConfig, log *logger.Logger) *QuestionGenerator {
	return &QuestionGenerator{
		gen:      gen,
		log:      log,
		minCount: cfg.MinCount,
		maxCount: cfg.MaxCount,
	}
}

// Generate validates the category, clamps the count, and returns drafts.
// Capability failure is never an error to the caller: it degrades silently
// to the deterministic catalog sample.
func (g *QuestionGenerator) Generate(ctx context.Context, req GenerateRequest) ([]model.Question, error) {
	cat, ok := catalog.Lookup(req.Category)
	if !ok {
		return nil, fmt.Errorf("40001:unknown question category: %s", req.Category)
	}

	count := req.Count
	if count < g.minCount {
		count = g.minCount
	}
	if count > g.maxCount {
		count = g.maxCount
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMixed
	}
	if priority != model.PriorityMixed && !model.ValidPriority(priority) {
		return nil, fmt.Errorf("40001:invalid priority: %s", priority)
	}

	if drafts := g.generateWithAI(ctx, cat, count, priority, req.Complexity); len(drafts) > 0 {
		return drafts, nil
	}
	return g.fallback(cat, count, priority), nil
}

type aiQuestion struct {
	Text      string `json:"text"`
	Question  string `json:"question"` // some models use this key instead
	Priority  string `json:"priority"`
	FocusArea string `json:"focus_area"`
}

func (g *QuestionGenerator) generateWithAI(ctx context.Context, cat catalog.Category, count int, priority, complexity string) []model.Question {
	prompt := buildQuestionPrompt(cat, count, priority, complexity)
	raw, err := g.gen.GenerateText(ctx, questionSystemPrompt, prompt)
	if err != nil {
		g.log.Warn("ai question generation failed, using catalog fallback", "category", cat.Key, "error", err)
		return nil
	}

	jsonText := aitext.ExtractJSONArray(raw)
	if jsonText == "" {
		g.log.Warn("ai response contained no JSON array, using catalog fallback", "category", cat.Key)
		return nil
	}

	var parsed []aiQuestion
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		g.log.Warn("ai response parse failed, using catalog fallback", "category", cat.Key, "error", err)
		return nil
	}

	drafts := make([]model.Question, 0, len(parsed))
	for _, q := range parsed {
		text := strings.TrimSpace(q.Text)
		if text == "" {
			text = strings.TrimSpace(q.Question)
		}
		if text == "" {
			continue
		}
		p := q.Priority
		if !model.ValidPriority(p) {
			p = model.PriorityMedium
		}
		sub := q.FocusArea
		if sub == "" {
			sub = "General"
		}
		drafts = append(drafts, model.Question{
			Category:    cat.Key,
			Subcategory: sub,
			Text:        text,
			Priority:    p,
			AIGenerated: true,
		})
		if len(drafts) == count {
			break
		}
	}
	return drafts
}

// fallback samples the catalog head. It never fabricates beyond the bank:
// a short bank yields fewer drafts than requested.
func (g *QuestionGenerator) fallback(cat catalog.Category, count int, priority string) []model.Question {
	texts := catalog.SampleQuestions(cat.Key, count)
	drafts := make([]model.Question, 0, len(texts))
	for i, text := range texts {
		drafts = append(drafts, model.Question{
			Category:    cat.Key,
			Subcategory: "General",
			Text:        text,
			Priority:    mixedPriority(priority, i, len(texts)),
			AIGenerated: false,
		})
	}
	return drafts
}

// mixedPriority assigns the requested priority uniformly, or for Mixed a
// deterministic 40% High / 40% Medium / 20% Low split in order.
func mixedPriority(priority string, index, total int) string {
	if priority != model.PriorityMixed {
		return priority
	}
	switch {
	case index < total*2/5:
		return model.PriorityHigh
	case index < total*4/5:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
