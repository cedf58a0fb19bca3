package ai

import (
	"math"
	"strings"
)

// normalizeJSONBlock strips code fences and surrounding prose so the
// remaining text is the model's JSON object.
func normalizeJSONBlock(input string) string {
	trimmed := stripFences(input)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end >= start {
		return strings.TrimSpace(trimmed[start : end+1])
	}
	return trimmed
}

// normalizeJSONArray does the same for a JSON array reply.
func normalizeJSONArray(input string) string {
	trimmed := stripFences(input)
	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start >= 0 && end >= start {
		return strings.TrimSpace(trimmed[start : end+1])
	}
	return trimmed
}

func stripFences(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		if idx := strings.IndexRune(trimmed, '\n'); idx >= 0 {
			trimmed = trimmed[idx+1:]
		}
		if strings.HasSuffix(trimmed, "```") {
			trimmed = trimmed[:len(trimmed)-3]
		}
	}
	return strings.TrimSpace(trimmed)
}

func clampScore(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// cleanWordList lowercases, trims and dedupes a model-supplied word list,
// dropping multi-word and non-alphabetic entries.
func cleanWordList(words []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" || strings.ContainsAny(word, " \t") {
			continue
		}
		valid := true
		for _, r := range word {
			if r < 'a' || r > 'z' {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}
