package ai

import (
	"context"
	"fmt"
	"strings"

	"startup-namer/engine/internal/lex"
)

// Local is the deterministic fallback provider. It never makes network
// calls: seed words come from a compiled-in synonym table plus the concept's
// own tokens, validation is a fixed lexical estimate, and generated text is
// templated. Identical inputs always produce identical outputs.
type Local struct{}

// NewLocal returns the deterministic fallback provider.
func NewLocal() *Local {
	return &Local{}
}

// Enabled always reports true; the local provider has no external dependency.
func (p *Local) Enabled() bool {
	return p != nil
}

var localSynonyms = map[string][]string{
	"projectManagement": {"kanban", "cadence", "roadmap", "standup", "backlog"},
	"analytics":         {"cohort", "funnel", "dashboard", "benchmark", "forecast"},
	"communication":     {"inbox", "huddle", "signal", "echo", "beacon"},
	"finance":           {"payout", "escrow", "treasury", "margin", "yield"},
	"marketing":         {"viral", "organic", "pipeline", "segment", "persona"},
	"developer":         {"runtime", "sandbox", "pipeline", "kernel", "module"},
	"general":           {"venture", "summit", "horizon", "anchor", "compass"},
}

// SeedWords derives vocabulary from the synonym table and the concept tokens.
func (p *Local) SeedWords(_ context.Context, concept, category string) ([]string, error) {
	if p == nil {
		return nil, ErrDisabled
	}
	words := append([]string(nil), localSynonyms[category]...)
	for _, token := range lex.NormalizeConcept(concept).Tokens {
		if len(token) >= 3 {
			words = lex.AppendUnique(words, token)
		}
	}
	if len(words) == 0 {
		words = append(words, localSynonyms["general"]...)
	}
	return words, nil
}

// Validate produces a deterministic lexical estimate: names that echo a
// concept token score higher, overly long names score lower.
func (p *Local) Validate(_ context.Context, name, concept string) (Validation, error) {
	if p == nil {
		return Validation{}, ErrDisabled
	}
	compact := lex.SanitizeLabel(name)
	if compact == "" {
		return Validation{Score: 0, Reasoning: "empty name"}, nil
	}

	score := 0.5
	reasoning := "neutral fit"
	for _, token := range lex.NormalizeConcept(concept).Tokens {
		if len(token) >= 3 && strings.Contains(compact, token) {
			score += 0.2
			reasoning = fmt.Sprintf("echoes the concept word %q", token)
			break
		}
	}
	switch n := len(compact); {
	case n <= 8:
		score += 0.1
	case n > 14:
		score -= 0.15
		reasoning = "long for a brand name"
	}
	return Validation{Score: clampScore(score), Reasoning: reasoning}, nil
}

// GenerateText returns a templated line built around the last double-quoted
// phrase in the prompt, typically the name the caller is asking about.
func (p *Local) GenerateText(_ context.Context, prompt string) (string, error) {
	if p == nil {
		return "", ErrDisabled
	}
	subject := lastQuoted(prompt)
	if subject == "" {
		subject = "Your product"
	}
	return fmt.Sprintf("%s. Less busywork, more momentum.", subject), nil
}

func lastQuoted(input string) string {
	end := strings.LastIndex(input, `"`)
	if end <= 0 {
		return ""
	}
	start := strings.LastIndex(input[:end], `"`)
	if start < 0 {
		return ""
	}
	return strings.TrimSpace(input[start+1 : end])
}
