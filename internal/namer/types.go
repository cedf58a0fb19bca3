// Package namer is the core pipeline: it combines the pattern bank, the
// pattern generator, the scorer and the external adapters into ranked name
// candidates and complete naming suites.
package namer

import (
	"time"

	"startup-namer/engine/internal/domains"
	"startup-namer/engine/internal/pattern"
)

const (
	// DefaultCount is the candidate count used when the caller leaves it unset.
	DefaultCount = 10
	// DefaultMinScore is the rejection threshold used when the caller leaves
	// it unset. It is the same for every category and style.
	DefaultMinScore = 0.5
	// DefaultBudget bounds the total wall time of one generation call.
	DefaultBudget = 8 * time.Second
	// DefaultSecondaryCount is the number of secondary artifacts per suite.
	DefaultSecondaryCount = 4

	// oversample controls how many raw candidates are drawn per requested
	// candidate in each scoring round.
	oversample    = 4
	minOversample = 40
)

// Candidate is a single generated name with its score and provenance.
// A candidate is immutable once produced; refinement yields a new value.
type Candidate struct {
	Name        string           `json:"name"`
	Pattern     pattern.Kind     `json:"pattern"`
	SourceWords []string         `json:"source_words,omitempty"`
	Score       float64          `json:"score"`
	Reasoning   string           `json:"reasoning,omitempty"`
	Domains     []domains.Result `json:"domains,omitempty"`
}

// GenerationOptions configures one generation call.
//
// Zero values mean "use the default": Count 0 becomes DefaultCount, MinScore
// 0 becomes DefaultMinScore, empty Category becomes "general" and empty
// Style becomes "modern". Negative Count, MinScore outside [0,1], unknown
// categories and unknown styles are rejected with ErrInvalidOptions.
type GenerationOptions struct {
	Category string   `json:"category"`
	Style    string   `json:"style"`
	Count    int      `json:"count"`
	MinScore float64  `json:"min_score"`
	Keywords []string `json:"keywords"`

	// CheckDomains requests availability hints for the returned candidates.
	CheckDomains bool     `json:"check_domains"`
	TLDs         []string `json:"tlds"`

	// Budget bounds the call's total wall time, including AI validation.
	Budget time.Duration `json:"-"`
}

// SuiteOptions configures one orchestration call.
type SuiteOptions struct {
	GenerationOptions

	// SecondaryKind selects the secondary artifacts: "features" (default)
	// runs the same pipeline seeded with the primary name, "tiers" scores
	// the fixed tier word bank.
	SecondaryKind  string `json:"secondary_kind"`
	SecondaryCount int    `json:"secondary_count"`
}

// NamingSuite is the full bundle produced for one concept. It is assembled
// atomically: a returned suite is never partially populated.
type NamingSuite struct {
	ID        string      `json:"id"`
	Concept   string      `json:"concept"`
	Primary   Candidate   `json:"primary"`
	Secondary []Candidate `json:"secondary"`
	Tagline   string      `json:"tagline"`
}

// ValidationReport is the verdict for a single externally supplied name.
type ValidationReport struct {
	Valid     bool    `json:"valid"`
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning,omitempty"`
}
