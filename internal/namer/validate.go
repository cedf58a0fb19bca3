package namer

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"startup-namer/engine/internal/bank"
	"startup-namer/engine/internal/pattern"
	"startup-namer/engine/internal/scoring"
)

// ValidateName judges a single externally supplied name. Lexical problems
// make the name invalid outright; otherwise the score blends the heuristics
// with the AI verdict when one is available.
func (e *Engine) ValidateName(ctx context.Context, name string) (ValidationReport, error) {
	trimmed := strings.TrimSpace(name)
	if issue := lexicalIssue(trimmed); issue != "" {
		return ValidationReport{Valid: false, Reasoning: issue}, nil
	}
	if severity, hits := e.stoplist.Screen(trimmed); severity >= 3 {
		return ValidationReport{
			Valid:     false,
			Reasoning: fmt.Sprintf("contains blocked term %q", hits[0]),
		}, nil
	}

	heuristic := scoring.Heuristic(trimmed, pattern.KindInvented, []string{trimmed}, e.freq)
	profile, _ := bank.Style("modern")

	report := ValidationReport{
		Valid: true,
		Score: scoring.Blend(profile, pattern.KindInvented, heuristic, -1),
	}
	if e.provider != nil && e.provider.Enabled() {
		vctx, cancel := context.WithTimeout(ctx, e.validationTimeout)
		defer cancel()
		if verdict, err := e.provider.Validate(vctx, trimmed, ""); err == nil {
			report.Score = scoring.Blend(profile, pattern.KindInvented, heuristic, verdict.Score)
			report.Reasoning = verdict.Reasoning
		}
	}
	return report, nil
}

func lexicalIssue(name string) string {
	if name == "" {
		return "name is empty"
	}
	runes := []rune(name)
	if len(runes) < 2 {
		return "name is too short"
	}
	if len(runes) > 30 {
		return "name is too long"
	}
	if !unicode.IsLetter(runes[0]) {
		return "name must start with a letter"
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Sprintf("name contains invalid character %q", r)
		}
	}
	return ""
}
