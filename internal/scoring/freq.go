package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"startup-namer/engine/internal/lex"
)

// neutralRarity is used when no frequency data is available at all.
const neutralRarity = 0.7

// FrequencyIndex maps normalized words to corpus counts and converts them
// into a rarity signal: rarer source words score higher, words absent from
// the corpus are treated as maximally rare.
type FrequencyIndex struct {
	counts   map[string]int
	maxCount int
}

// NewFrequencyIndex builds an index from word counts. Keys are normalized
// with lex.SanitizeLabel; non-positive counts are dropped.
func NewFrequencyIndex(counts map[string]int) *FrequencyIndex {
	idx := &FrequencyIndex{counts: make(map[string]int, len(counts))}
	for word, count := range counts {
		key := lex.SanitizeLabel(word)
		if key == "" || count <= 0 {
			continue
		}
		idx.counts[key] += count
		if idx.counts[key] > idx.maxCount {
			idx.maxCount = idx.counts[key]
		}
	}
	return idx
}

// LoadFrequencyIndex reads a JSON object of word counts, as produced by the
// wordfreq tool.
func LoadFrequencyIndex(path string) (*FrequencyIndex, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read frequency index: %w", err)
	}
	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("unmarshal frequency index: %w", err)
	}
	return NewFrequencyIndex(counts), nil
}

// Rarity returns a score in [0,1]: 1 for words missing from the corpus,
// approaching 0 for the most frequent words. A nil or empty index yields a
// neutral score so scoring still works without corpus data.
func (idx *FrequencyIndex) Rarity(word string) float64 {
	if idx == nil || len(idx.counts) == 0 || idx.maxCount <= 0 {
		return neutralRarity
	}
	count, ok := idx.counts[lex.SanitizeLabel(word)]
	if !ok || count <= 0 {
		return 1.0
	}
	return 1.0 - math.Log1p(float64(count))/math.Log1p(float64(idx.maxCount))
}

// DefaultFrequencyIndex carries a small built-in count table so rarity
// differentiates common SaaS vocabulary even when no corpus file is loaded.
func DefaultFrequencyIndex() *FrequencyIndex {
	return NewFrequencyIndex(map[string]int{
		"app": 9800, "data": 9200, "team": 8800, "pay": 8500, "chat": 8100,
		"task": 7600, "plan": 7400, "track": 7000, "code": 6900, "mail": 6700,
		"cloud": 6500, "board": 5900, "brand": 5400, "goal": 5200, "build": 5100,
		"flow": 4700, "stack": 4300, "sync": 4100, "graph": 3800, "sprint": 3400,
		"metric": 3100, "funnel": 2700, "ledger": 2400, "insight": 2300,
		"vault": 2000, "pulse": 1800, "milestone": 1600, "forge": 1200,
		"nova": 1100, "orbit": 900, "relay": 850, "lens": 800, "atlas": 700,
		"agenda": 650, "scope": 600, "craft": 550, "spark": 500, "peak": 450,
	})
}
