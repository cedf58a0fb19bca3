package namer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"startup-namer/engine/internal/bank"
	"startup-namer/engine/internal/pattern"
)

func TestGenerateNamingSuiteRequiresConcept(t *testing.T) {
	engine := NewEngine(Config{})
	if _, err := engine.GenerateNamingSuite(context.Background(), "   ", SuiteOptions{}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions, got %v", err)
	}
}

func TestGenerateNamingSuiteRejectsUnknownSecondaryKind(t *testing.T) {
	engine := NewEngine(Config{})
	opts := SuiteOptions{SecondaryKind: "mascots"}
	if _, err := engine.GenerateNamingSuite(context.Background(), "a project tracker", opts); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions, got %v", err)
	}
}

func TestGenerateNamingSuiteHeuristicOnly(t *testing.T) {
	engine := NewEngine(Config{})
	concept := "a project tracker for agile teams"

	suite, err := engine.GenerateNamingSuite(context.Background(), concept, SuiteOptions{
		GenerationOptions: GenerationOptions{Category: "projectManagement"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if suite.ID == "" {
		t.Fatal("expected a suite id")
	}
	if suite.Concept != concept {
		t.Fatalf("concept = %q", suite.Concept)
	}
	if suite.Primary.Name == "" || suite.Primary.Score <= 0 {
		t.Fatalf("expected a scored primary, got %+v", suite.Primary)
	}
	if len(suite.Secondary) != DefaultSecondaryCount {
		t.Fatalf("expected %d secondary artifacts, got %d", DefaultSecondaryCount, len(suite.Secondary))
	}
	for _, candidate := range suite.Secondary {
		if strings.EqualFold(candidate.Name, suite.Primary.Name) {
			t.Fatalf("secondary artifact duplicates the primary: %q", candidate.Name)
		}
	}

	// Without a provider the tagline falls back to the template.
	if !strings.HasPrefix(suite.Tagline, suite.Primary.Name+": ") {
		t.Fatalf("expected templated tagline for %q, got %q", suite.Primary.Name, suite.Tagline)
	}
}

func TestGenerateNamingSuiteTierSecondaries(t *testing.T) {
	engine := NewEngine(Config{})

	suite, err := engine.GenerateNamingSuite(context.Background(), "an invoicing tool", SuiteOptions{
		GenerationOptions: GenerationOptions{Category: "finance"},
		SecondaryKind:     "tiers",
		SecondaryCount:    3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suite.Secondary) != 3 {
		t.Fatalf("expected 3 tier artifacts, got %d", len(suite.Secondary))
	}

	tiers := make(map[string]struct{})
	for _, tier := range bank.Default().Lookup("", bank.Tiers) {
		tiers[tier] = struct{}{}
	}
	for _, candidate := range suite.Secondary {
		if candidate.Pattern != pattern.KindInvented {
			t.Fatalf("tier artifact %q has pattern %s", candidate.Name, candidate.Pattern)
		}
		if _, ok := tiers[strings.ToLower(candidate.Name)]; !ok {
			t.Fatalf("tier artifact %q not in the tier bank", candidate.Name)
		}
	}
}

func TestGenerateNamingSuiteSurvivesProviderOutage(t *testing.T) {
	engine := NewEngine(Config{Provider: &stubProvider{enabled: true}})

	suite, err := engine.GenerateNamingSuite(context.Background(), "a team chat app", SuiteOptions{
		GenerationOptions: GenerationOptions{Category: "communication"},
	})
	if err != nil {
		t.Fatalf("expected degraded suite, got %v", err)
	}
	if suite.Primary.Name == "" {
		t.Fatal("expected a primary despite provider outage")
	}
	if len(suite.Secondary) != DefaultSecondaryCount {
		t.Fatalf("expected %d secondary artifacts, got %d", DefaultSecondaryCount, len(suite.Secondary))
	}
	if !strings.Contains(suite.Tagline, "simplified") {
		t.Fatalf("expected templated tagline, got %q", suite.Tagline)
	}
}

func TestGenerateNamingSuiteUsesProviderTagline(t *testing.T) {
	provider := &stubProvider{
		enabled: true,
		text: func(_ context.Context, _ string) (string, error) {
			return "  Ship every sprint.  ", nil
		},
	}
	engine := NewEngine(Config{Provider: provider})

	suite, err := engine.GenerateNamingSuite(context.Background(), "a sprint planner", SuiteOptions{
		GenerationOptions: GenerationOptions{Category: "projectManagement"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suite.Tagline != "Ship every sprint." {
		t.Fatalf("expected provider tagline, got %q", suite.Tagline)
	}
}

func TestPlaceholderTaglineTruncatesConcept(t *testing.T) {
	long := strings.Repeat("collaboration ", 10)
	tagline := placeholderTagline("TaskOrbit", long)
	if !strings.HasPrefix(tagline, "TaskOrbit: ") || !strings.HasSuffix(tagline, ", simplified.") {
		t.Fatalf("unexpected template shape: %q", tagline)
	}
	if len([]rune(tagline)) > len([]rune("TaskOrbit: "))+60+len([]rune(", simplified.")) {
		t.Fatalf("concept not truncated: %q", tagline)
	}
}
