package aitext

import "testing"

func TestExtractJSONArray_Plain(t *testing.T) {
	got := ExtractJSONArray(`[{"text":"q1"}]`)
	if got != `[{"text":"q1"}]` {
		t.Fatalf("plain array: got %q", got)
	}
}

func TestExtractJSONArray_Fenced(t *testing.T) {
	in := "```json\n[{\"text\":\"q1\"},{\"text\":\"q2\"}]\n```"
	got := ExtractJSONArray(in)
	if got != `[{"text":"q1"},{"text":"q2"}]` {
		t.Fatalf("fenced array: got %q", got)
	}
}

func TestExtractJSONArray_SurroundingProse(t *testing.T) {
	in := "Here are the questions:\n[{\"text\":\"q1\"}]\nLet me know if you need more."
	got := ExtractJSONArray(in)
	if got != `[{"text":"q1"}]` {
		t.Fatalf("prose-wrapped array: got %q", got)
	}
}

func TestExtractJSONArray_NoArray(t *testing.T) {
	if got := ExtractJSONArray("sorry, I cannot help with that"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
	if got := ExtractJSONArray(""); got != "" {
		t.Fatalf("expected empty result for empty input, got %q", got)
	}
}
