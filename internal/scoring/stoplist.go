package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"startup-namer/engine/internal/lex"
)

// Stoplist screens candidate names against severity-ranked term lists.
// Candidates containing a stoplisted substring are dropped before scoring.
type Stoplist struct {
	terms map[int][]string
}

// NewStoplist builds a stoplist from a severity -> terms map.
func NewStoplist(raw map[int][]string) *Stoplist {
	terms := make(map[int][]string, len(raw))
	for severity, list := range raw {
		if severity <= 0 {
			continue
		}
		var normalized []string
		for _, term := range list {
			if t := lex.SanitizeLabel(term); t != "" {
				normalized = lex.AppendUnique(normalized, t)
			}
		}
		if len(normalized) > 0 {
			terms[severity] = normalized
		}
	}
	return &Stoplist{terms: terms}
}

// LoadStoplist reads a JSON file keyed by positive severity (conventionally
// "1".."5") with term lists as values.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read stoplist: %w", err)
	}
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal stoplist: %w", err)
	}
	terms := make(map[int][]string, len(raw))
	for key, list := range raw {
		severity, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || severity <= 0 {
			continue
		}
		terms[severity] = list
	}
	return NewStoplist(terms), nil
}

// DefaultStoplist returns a minimal built-in screen.
func DefaultStoplist() *Stoplist {
	return NewStoplist(map[int][]string{
		5: {"porn", "nazi"},
		4: {"casino", "meth"},
		3: {"scam", "fraud"},
	})
}

// Screen returns the highest severity at which the name matches, along with
// the matched terms, sorted. Severity 0 means the name is clean.
func (s *Stoplist) Screen(name string) (int, []string) {
	if s == nil {
		return 0, nil
	}
	compact := lex.SanitizeLabel(name)
	if compact == "" {
		return 0, nil
	}
	severities := make([]int, 0, len(s.terms))
	for severity := range s.terms {
		severities = append(severities, severity)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(severities)))
	for _, severity := range severities {
		var hits []string
		for _, term := range s.terms[severity] {
			if strings.Contains(compact, term) {
				hits = append(hits, term)
			}
		}
		if len(hits) > 0 {
			sort.Strings(hits)
			return severity, hits
		}
	}
	return 0, nil
}
