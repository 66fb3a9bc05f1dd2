package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wmsConsultant/backend/internal/capability"
	"github.com/wmsConsultant/backend/internal/catalog"
	"github.com/wmsConsultant/backend/internal/config"
	"github.com/wmsConsultant/backend/internal/model"
	"github.com/wmsConsultant/backend/pkg/logger"
)

type fakeTextGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeTextGenerator) GenerateText(ctx context.Context, system, user string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeTextGenerator) Configured() bool { return true }

func newTestGenerator(gen capability.TextGenerator) *QuestionGenerator {
	cfg := config.GenerationConfig{MinCount: 5, MaxCount: 25}
	return NewQuestionGenerator(gen, cfg, logger.NewNop())
}

func TestGenerateFallbackWithoutCapability(t *testing.T) {
	g := newTestGenerator(capability.NoneGenerator{})

	drafts, err := g.Generate(context.Background(), GenerateRequest{
		Category: "receiving",
		Count:    7,
		Priority: model.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := catalog.SampleQuestions("receiving", 7)
	if len(drafts) != len(want) {
		t.Fatalf("expected %d drafts, got %d", len(want), len(drafts))
	}
	for i, d := range drafts {
		if d.Text != want[i] {
			t.Fatalf("draft %d: got %q, want %q", i, d.Text, want[i])
		}
		if d.Priority != model.PriorityHigh {
			t.Fatalf("draft %d: priority %q, want High", i, d.Priority)
		}
		if d.AIGenerated {
			t.Fatalf("fallback drafts must not be flagged as ai generated")
		}
		if d.ID != 0 {
			t.Fatalf("drafts must carry no ids")
		}
		if d.Category != "receiving" {
			t.Fatalf("draft %d: category %q", i, d.Category)
		}
	}
}

func TestGenerateClampsCount(t *testing.T) {
	g := newTestGenerator(capability.NoneGenerator{})

	// Above max: clamp to 25, then truncate to the bank size.
	drafts, err := g.Generate(context.Background(), GenerateRequest{Category: "receiving", Count: 100})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	bank := catalog.SampleQuestions("receiving", 25)
	if len(drafts) != len(bank) {
		t.Fatalf("expected %d drafts for oversized count, got %d", len(bank), len(drafts))
	}

	// Below min: raise to 5.
	drafts, err = g.Generate(context.Background(), GenerateRequest{Category: "receiving", Count: 1})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(drafts) != 5 {
		t.Fatalf("expected 5 drafts for undersized count, got %d", len(drafts))
	}
}

func TestGenerateUnknownCategory(t *testing.T) {
	g := newTestGenerator(capability.NoneGenerator{})

	_, err := g.Generate(context.Background(), GenerateRequest{Category: "teleportation", Count: 5})
	if err == nil || !strings.HasPrefix(err.Error(), "40001:") {
		t.Fatalf("expected 40001 for unknown category, got %v", err)
	}

	_, err = g.Generate(context.Background(), GenerateRequest{Category: "receiving", Count: 5, Priority: "Urgent"})
	if err == nil || !strings.HasPrefix(err.Error(), "40001:") {
		t.Fatalf("expected 40001 for invalid priority, got %v", err)
	}
}

func TestGenerateMixedPrioritySplit(t *testing.T) {
	g := newTestGenerator(capability.NoneGenerator{})

	drafts, err := g.Generate(context.Background(), GenerateRequest{Category: "receiving", Count: 10})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	counts := map[string]int{}
	for _, d := range drafts {
		counts[d.Priority]++
	}
	total := len(drafts)
	wantHigh := total * 2 / 5
	wantMedium := total*4/5 - wantHigh
	wantLow := total - wantHigh - wantMedium
	if counts[model.PriorityHigh] != wantHigh ||
		counts[model.PriorityMedium] != wantMedium ||
		counts[model.PriorityLow] != wantLow {
		t.Fatalf("mixed split off: got High=%d Medium=%d Low=%d over %d",
			counts[model.PriorityHigh], counts[model.PriorityMedium], counts[model.PriorityLow], total)
	}
}

func TestGenerateWithAIResponse(t *testing.T) {
	gen := &fakeTextGenerator{response: "```json\n[" +
		`{"text": "How do you handle ASN discrepancies?", "priority": "High", "focus_area": "ASN processing"},` +
		`{"question": "What dock scheduling system is in place?", "priority": "Medium"},` +
		`{"text": "Do you cross-dock any inbound freight?", "priority": "Nonsense"}` +
		"]\n```"}
	g := newTestGenerator(gen)

	drafts, err := g.Generate(context.Background(), GenerateRequest{Category: "receiving", Count: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator should be called once, got %d", gen.calls)
	}
	if len(drafts) != 3 {
		t.Fatalf("expected 3 ai drafts, got %d", len(drafts))
	}
	if drafts[0].Text != "How do you handle ASN discrepancies?" || drafts[0].Subcategory != "ASN processing" {
		t.Fatalf("unexpected first draft: %+v", drafts[0])
	}
	// The alternate "question" key is accepted.
	if drafts[1].Text != "What dock scheduling system is in place?" {
		t.Fatalf("unexpected second draft: %+v", drafts[1])
	}
	// Invalid per-item priorities are normalized, not rejected.
	if drafts[2].Priority != model.PriorityMedium {
		t.Fatalf("invalid ai priority should default to Medium, got %q", drafts[2].Priority)
	}
	for _, d := range drafts {
		if !d.AIGenerated {
			t.Fatalf("ai drafts must be flagged as ai generated")
		}
	}
}

func TestGenerateAICappedAtCount(t *testing.T) {
	var items []string
	for i := 0; i < 30; i++ {
		items = append(items, `{"text": "generated question?", "priority": "Low"}`)
	}
	gen := &fakeTextGenerator{response: "[" + strings.Join(items, ",") + "]"}
	g := newTestGenerator(gen)

	drafts, err := g.Generate(context.Background(), GenerateRequest{Category: "receiving", Count: 6})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(drafts) != 6 {
		t.Fatalf("expected drafts capped at 6, got %d", len(drafts))
	}
}

func TestGenerateAIFailureFallsBack(t *testing.T) {
	cases := []struct {
		name string
		gen  *fakeTextGenerator
	}{
		{"error", &fakeTextGenerator{err: errors.New("upstream 503")}},
		{"no array", &fakeTextGenerator{response: "I cannot help with that."}},
		{"malformed json", &fakeTextGenerator{response: `[{"text": "broken`}},
		{"empty items", &fakeTextGenerator{response: `[{"priority": "High"}]`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGenerator(tc.gen)
			drafts, err := g.Generate(context.Background(), GenerateRequest{Category: "picking", Count: 5})
			if err != nil {
				t.Fatalf("capability failure must not surface: %v", err)
			}
			if len(drafts) == 0 {
				t.Fatalf("expected fallback drafts")
			}
			for _, d := range drafts {
				if d.AIGenerated {
					t.Fatalf("fallback drafts must not be flagged as ai generated")
				}
			}
		})
	}
}
