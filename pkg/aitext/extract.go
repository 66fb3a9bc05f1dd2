package aitext

import (
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\n?(.*?)\\s*```")

// ExtractJSONArray extracts a JSON array from LLM output. Models wrap
// results in markdown code fences or surround them with prose; this strips
// fences and cuts the text down to the outermost [...] span.
func ExtractJSONArray(output string) string {
	s := strings.TrimSpace(output)

	if strings.HasPrefix(s, "```") {
		if m := fenceRe.FindStringSubmatch(s); len(m) > 1 {
			s = strings.TrimSpace(m[1])
		}
	}

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}
