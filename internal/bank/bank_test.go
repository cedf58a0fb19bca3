package bank

import (
	"os"
	"path/filepath"
	"testing"

	"startup-namer/engine/internal/pattern"
)

func TestLookupReturnsCopies(t *testing.T) {
	b := Default()

	words := b.Lookup("general", Words)
	if len(words) == 0 {
		t.Fatal("expected general words")
	}
	words[0] = "mutated"

	again := b.Lookup("general", Words)
	if again[0] == "mutated" {
		t.Fatal("lookup leaked the shared table")
	}
}

func TestWordsWithDoesNotMutateBank(t *testing.T) {
	b := Default()
	base := b.Lookup("general", Words)

	merged := b.WordsWith("general", []string{"Zephyrix", "  ", "zephyrix", base[0]})
	if len(merged) != len(base)+1 {
		t.Fatalf("expected %d merged words, got %d", len(base)+1, len(merged))
	}

	after := b.Lookup("general", Words)
	if len(after) != len(base) {
		t.Fatalf("bank table grew from %d to %d", len(base), len(after))
	}
	for _, word := range after {
		if word == "zephyrix" {
			t.Fatal("keyword leaked into the shared table")
		}
	}
}

func TestWordsWithConcurrentOverrides(t *testing.T) {
	b := Default()

	done := make(chan []string, 2)
	go func() { done <- b.WordsWith("general", []string{"alphaword"}) }()
	go func() { done <- b.WordsWith("general", []string{"betaword"}) }()

	for i := 0; i < 2; i++ {
		words := <-done
		hasAlpha, hasBeta := false, false
		for _, w := range words {
			if w == "alphaword" {
				hasAlpha = true
			}
			if w == "betaword" {
				hasBeta = true
			}
		}
		if hasAlpha && hasBeta {
			t.Fatal("keyword overrides bled across calls")
		}
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	payload := `{
		"categories": {
			"gaming": {"words": ["Quest", "raid", "quest"], "verbs": ["play"]},
			"empty": {"words": []}
		},
		"letters": ["J"]
	}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !b.HasCategory("gaming") {
		t.Fatal("expected loaded category")
	}
	if b.HasCategory("empty") {
		t.Fatal("empty category should be dropped")
	}
	if !b.HasCategory("general") {
		t.Fatal("defaults should survive the merge")
	}

	words := b.Lookup("gaming", Words)
	if len(words) != 2 || words[0] != "quest" || words[1] != "raid" {
		t.Fatalf("expected normalized deduped words, got %v", words)
	}

	letters := b.Lookup("", Letters)
	if len(letters) != 1 || letters[0] != "j" {
		t.Fatalf("expected letters replaced wholesale, got %v", letters)
	}
	if len(b.Lookup("", Prefixes)) == 0 {
		t.Fatal("untouched tables should fall back to defaults")
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatal("expected unmarshal error")
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestStyleFallback(t *testing.T) {
	profile, ok := Style("cyberpunk")
	if ok {
		t.Fatal("unknown style should report false")
	}
	if profile.Name != "modern" {
		t.Fatalf("expected modern fallback, got %s", profile.Name)
	}

	if _, ok := Style("playful"); !ok {
		t.Fatal("expected playful to be known")
	}
}

func TestStyleWeightsMonotonic(t *testing.T) {
	ordered := []string{"playful", "modern", "professional", "technical"}
	prev := -1.0
	for _, name := range ordered {
		profile, ok := Style(name)
		if !ok {
			t.Fatalf("style %s missing", name)
		}
		if profile.HeuristicWeight <= prev {
			t.Fatalf("heuristic weight not increasing at %s: %.2f <= %.2f", name, profile.HeuristicWeight, prev)
		}
		prev = profile.HeuristicWeight
		for kind, boost := range profile.PatternBoost {
			if boost <= 0 || boost > 0.1 {
				t.Fatalf("style %s boost for %s out of range: %.2f", name, kind, boost)
			}
			if pattern.Priority(kind) == 0 {
				t.Fatalf("style %s boosts unknown kind %s", name, kind)
			}
		}
	}
}
