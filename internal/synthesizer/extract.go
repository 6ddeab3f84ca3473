package synthesizer

import (
	"fmt"
	"strings"
)

// extractJSONArray pulls a JSON array out of a free-form model response. The
// response is supposed to be a bare JSON document but is often wrapped in a
// markdown code fence (with or without a language tag) or surrounded by
// prose. Fences are stripped first, then the text is sliced from the first
// '[' to the last ']'.
func extractJSONArray(response string) (string, error) {
	text := strings.TrimSpace(response)

	if strings.HasPrefix(text, "```") {
		text = stripFence(text)
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || start >= end {
		return "", fmt.Errorf("no JSON array found in response")
	}

	return text[start : end+1], nil
}

// stripFence removes the first and last ``` markers and a leading language
// tag token if present.
func stripFence(text string) string {
	text = strings.TrimPrefix(text, "```")
	if strings.HasPrefix(text, "json") {
		text = strings.TrimPrefix(text, "json")
	}
	if i := strings.LastIndex(text, "```"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// truncate is a plain prefix cut; no re-chunking or summarization.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit]
}
