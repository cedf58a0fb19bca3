// Package bank holds the static vocabulary the pattern generator draws from.
// The default bank is process-wide and read-only after initialization;
// per-call keyword overrides are merged at lookup time and never written
// back into the shared tables.
package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"startup-namer/engine/internal/lex"
)

// VocabKind selects a vocabulary table inside a category lookup.
type VocabKind string

const (
	Words    VocabKind = "words"
	Verbs    VocabKind = "verbs"
	Prefixes VocabKind = "prefixes"
	Suffixes VocabKind = "suffixes"
	Tiers    VocabKind = "tiers"
	Letters  VocabKind = "letters"
)

// Category groups the per-category vocabulary tables.
type Category struct {
	Words []string `json:"words"`
	Verbs []string `json:"verbs"`
}

// Bank is an immutable vocabulary source. All accessors return copies.
type Bank struct {
	categories map[string]Category
	prefixes   []string
	suffixes   []string
	letters    []string
	tiers      []string
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Default returns the process-wide bank, built once from the compiled-in
// vocabulary tables.
func Default() *Bank {
	defaultOnce.Do(func() {
		defaultBank = &Bank{
			categories: defaultCategories(),
			prefixes:   defaultPrefixes(),
			suffixes:   defaultSuffixes(),
			letters:    defaultLetters(),
			tiers:      defaultTiers(),
		}
	})
	return defaultBank
}

// bankFile mirrors the optional JSON override format.
type bankFile struct {
	Categories map[string]Category `json:"categories"`
	Prefixes   []string            `json:"prefixes"`
	Suffixes   []string            `json:"suffixes"`
	Letters    []string            `json:"letters"`
	Tiers      []string            `json:"tiers"`
}

// Load reads a JSON vocabulary file and merges it over the compiled-in
// defaults. File categories replace same-named default categories; list
// tables replace wholesale when non-empty.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	var raw bankFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal bank file: %w", err)
	}

	base := Default()
	merged := &Bank{
		categories: make(map[string]Category, len(base.categories)+len(raw.Categories)),
		prefixes:   pickList(raw.Prefixes, base.prefixes),
		suffixes:   pickList(raw.Suffixes, base.suffixes),
		letters:    pickList(raw.Letters, base.letters),
		tiers:      pickList(raw.Tiers, base.tiers),
	}
	for name, category := range base.categories {
		merged.categories[name] = category
	}
	for name, category := range raw.Categories {
		normalized := normalizeList(category.Words)
		if len(normalized) == 0 {
			continue
		}
		merged.categories[name] = Category{
			Words: normalized,
			Verbs: normalizeList(category.Verbs),
		}
	}
	if len(merged.categories) == 0 {
		return nil, errors.New("bank file contains no categories")
	}
	return merged, nil
}

// HasCategory reports whether the bank knows the category.
func (b *Bank) HasCategory(category string) bool {
	if b == nil {
		return false
	}
	_, ok := b.categories[category]
	return ok
}

// Categories lists the known category names, sorted.
func (b *Bank) Categories() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.categories))
	for name := range b.categories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns a copy of the requested vocabulary table. Category is
// ignored for the bank-wide tables (prefixes, suffixes, letters, tiers).
func (b *Bank) Lookup(category string, kind VocabKind) []string {
	if b == nil {
		return nil
	}
	switch kind {
	case Words:
		return copyList(b.categories[category].Words)
	case Verbs:
		return copyList(b.categories[category].Verbs)
	case Prefixes:
		return copyList(b.prefixes)
	case Suffixes:
		return copyList(b.suffixes)
	case Letters:
		return copyList(b.letters)
	case Tiers:
		return copyList(b.tiers)
	default:
		return nil
	}
}

// WordsWith returns the category word table unioned with the caller's
// keywords. The union is a fresh slice scoped to this call; the shared
// tables are never mutated.
func (b *Bank) WordsWith(category string, keywords []string) []string {
	words := b.Lookup(category, Words)
	for _, keyword := range keywords {
		normalized := strings.ToLower(strings.TrimSpace(keyword))
		if normalized == "" {
			continue
		}
		words = lex.AppendUnique(words, normalized)
	}
	return words
}

// Tables returns a read-only snapshot of every vocabulary table, for callers
// that want raw pattern data without AI augmentation.
func (b *Bank) Tables() map[string]any {
	if b == nil {
		return nil
	}
	categories := make(map[string]Category, len(b.categories))
	for name, category := range b.categories {
		categories[name] = Category{
			Words: copyList(category.Words),
			Verbs: copyList(category.Verbs),
		}
	}
	return map[string]any{
		"categories": categories,
		"prefixes":   copyList(b.prefixes),
		"suffixes":   copyList(b.suffixes),
		"letters":    copyList(b.letters),
		"tiers":      copyList(b.tiers),
	}
}

func copyList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func pickList(override, fallback []string) []string {
	normalized := normalizeList(override)
	if len(normalized) > 0 {
		return normalized
	}
	return copyList(fallback)
}

func normalizeList(in []string) []string {
	var out []string
	for _, item := range in {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = lex.AppendUnique(out, item)
		}
	}
	return out
}
