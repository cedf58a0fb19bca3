package ai

import (
	"context"
	"errors"
	"testing"
)

// fakeProvider scripts each capability so fallback behavior can be observed.
type fakeProvider struct {
	enabled  bool
	seeds    []string
	seedErr  error
	verdict  Validation
	valErr   error
	text     string
	textErr  error
	seenSeed int
	seenVal  int
	seenText int
}

func (f *fakeProvider) Enabled() bool { return f.enabled }

func (f *fakeProvider) SeedWords(context.Context, string, string) ([]string, error) {
	f.seenSeed++
	return f.seeds, f.seedErr
}

func (f *fakeProvider) Validate(context.Context, string, string) (Validation, error) {
	f.seenVal++
	return f.verdict, f.valErr
}

func (f *fakeProvider) GenerateText(context.Context, string) (string, error) {
	f.seenText++
	return f.text, f.textErr
}

func TestWithFallbackNilHandling(t *testing.T) {
	p := &fakeProvider{enabled: true}
	if got := WithFallback(nil, p); got != Provider(p) {
		t.Fatal("nil primary should return fallback directly")
	}
	if got := WithFallback(p, nil); got != Provider(p) {
		t.Fatal("nil fallback should return primary directly")
	}
}

func TestChainPrefersPrimary(t *testing.T) {
	primary := &fakeProvider{enabled: true, seeds: []string{"alpha"}, verdict: Validation{Score: 0.9}, text: "primary line"}
	fallback := &fakeProvider{enabled: true, seeds: []string{"beta"}, verdict: Validation{Score: 0.1}, text: "fallback line"}
	chain := WithFallback(primary, fallback)

	ctx := context.Background()
	words, err := chain.SeedWords(ctx, "c", "general")
	if err != nil || len(words) != 1 || words[0] != "alpha" {
		t.Fatalf("expected primary seeds, got %v %v", words, err)
	}
	verdict, err := chain.Validate(ctx, "Name", "c")
	if err != nil || verdict.Score != 0.9 {
		t.Fatalf("expected primary verdict, got %+v %v", verdict, err)
	}
	text, err := chain.GenerateText(ctx, "p")
	if err != nil || text != "primary line" {
		t.Fatalf("expected primary text, got %q %v", text, err)
	}
	if fallback.seenSeed+fallback.seenVal+fallback.seenText != 0 {
		t.Fatal("fallback should not be consulted when primary succeeds")
	}
}

func TestChainFallsBackOnError(t *testing.T) {
	boom := errors.New("boom")
	primary := &fakeProvider{enabled: true, seedErr: boom, valErr: boom, textErr: boom}
	fallback := &fakeProvider{enabled: true, seeds: []string{"beta"}, verdict: Validation{Score: 0.4}, text: "fallback line"}
	chain := WithFallback(primary, fallback)

	ctx := context.Background()
	if words, err := chain.SeedWords(ctx, "c", "general"); err != nil || len(words) != 1 {
		t.Fatalf("expected fallback seeds, got %v %v", words, err)
	}
	if verdict, err := chain.Validate(ctx, "Name", "c"); err != nil || verdict.Score != 0.4 {
		t.Fatalf("expected fallback verdict, got %+v %v", verdict, err)
	}
	if text, err := chain.GenerateText(ctx, "p"); err != nil || text != "fallback line" {
		t.Fatalf("expected fallback text, got %q %v", text, err)
	}
}

func TestChainSkipsDisabledPrimary(t *testing.T) {
	primary := &fakeProvider{enabled: false, seeds: []string{"alpha"}}
	fallback := &fakeProvider{enabled: true, seeds: []string{"beta"}}
	chain := WithFallback(primary, fallback)

	words, err := chain.SeedWords(context.Background(), "c", "general")
	if err != nil || len(words) != 1 || words[0] != "beta" {
		t.Fatalf("expected fallback seeds, got %v %v", words, err)
	}
	if primary.seenSeed != 0 {
		t.Fatal("disabled primary should never be called")
	}
	if !chain.Enabled() {
		t.Fatal("chain with an enabled fallback should report enabled")
	}
}

func TestChainAllDisabled(t *testing.T) {
	chain := WithFallback(&fakeProvider{}, &fakeProvider{})
	if chain.Enabled() {
		t.Fatal("chain of disabled providers should report disabled")
	}
	if _, err := chain.SeedWords(context.Background(), "c", "general"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if _, err := chain.Validate(context.Background(), "n", "c"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if _, err := chain.GenerateText(context.Background(), "p"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestChainRejectsEmptyPrimaryText(t *testing.T) {
	primary := &fakeProvider{enabled: true, text: "   "}
	fallback := &fakeProvider{enabled: true, text: "fallback line"}
	chain := WithFallback(primary, fallback)

	text, err := chain.GenerateText(context.Background(), "p")
	if err != nil || text != "fallback line" {
		t.Fatalf("expected fallback for blank primary text, got %q %v", text, err)
	}
}
