package llm

import (
	"fmt"
	"strings"
)

// stripThinking removes a reasoning model's <think>...</think> preamble.
func stripThinking(raw string) string {
	cleaned := strings.TrimSpace(raw)
	thinkStart := strings.Index(cleaned, "<think>")
	if thinkStart == -1 {
		return cleaned
	}
	thinkEnd := strings.Index(cleaned, "</think>")
	if thinkEnd == -1 || thinkEnd < thinkStart {
		return cleaned
	}
	return strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
}

// extractDelimited returns the text from the first open to the last close
// delimiter inclusive, which drops code fences and chatter around the payload.
func extractDelimited(s string, open, close byte) (string, error) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no %c...%c block found in model response", open, close)
	}
	return s[start : end+1], nil
}

func extractJSONObject(raw string) (string, error) {
	return extractDelimited(stripThinking(raw), '{', '}')
}

func extractJSONArray(raw string) (string, error) {
	return extractDelimited(stripThinking(raw), '[', ']')
}
