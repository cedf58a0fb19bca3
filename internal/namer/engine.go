package namer

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"startup-namer/engine/internal/ai"
	"startup-namer/engine/internal/bank"
	"startup-namer/engine/internal/domains"
	"startup-namer/engine/internal/scoring"
)

// Config defines engine dependencies. Provider and Checker may be nil; the
// engine then runs on heuristics alone.
type Config struct {
	Bank      *bank.Bank
	Provider  ai.Provider
	Checker   domains.Checker
	Frequency *scoring.FrequencyIndex
	Stoplist  *scoring.Stoplist

	// Workers bounds the validation fan-out; 0 picks a CPU-derived default.
	Workers int
	// ValidationTimeout bounds each candidate's validation call.
	ValidationTimeout time.Duration
	// SeedTimeout bounds the seed-word call.
	SeedTimeout time.Duration
}

// Engine generates and scores name candidates. It holds no per-call state;
// one engine serves concurrent calls.
type Engine struct {
	bank              *bank.Bank
	provider          ai.Provider
	checker           domains.Checker
	freq              *scoring.FrequencyIndex
	stoplist          *scoring.Stoplist
	workers           int
	validationTimeout time.Duration
	seedTimeout       time.Duration
}

// NewEngine constructs an engine, filling missing dependencies with the
// compiled-in defaults.
func NewEngine(cfg Config) *Engine {
	b := cfg.Bank
	if b == nil {
		b = bank.Default()
	}
	freq := cfg.Frequency
	if freq == nil {
		freq = scoring.DefaultFrequencyIndex()
	}
	stoplist := cfg.Stoplist
	if stoplist == nil {
		stoplist = scoring.DefaultStoplist()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkerCount()
	}
	validationTimeout := cfg.ValidationTimeout
	if validationTimeout <= 0 {
		validationTimeout = 2500 * time.Millisecond
	}
	seedTimeout := cfg.SeedTimeout
	if seedTimeout <= 0 {
		seedTimeout = 3 * time.Second
	}
	return &Engine{
		bank:              b,
		provider:          cfg.Provider,
		checker:           cfg.Checker,
		freq:              freq,
		stoplist:          stoplist,
		workers:           workers,
		validationTimeout: validationTimeout,
		seedTimeout:       seedTimeout,
	}
}

// PatternTables exposes the read-only vocabulary tables for callers that
// want raw pattern data without AI augmentation.
func (e *Engine) PatternTables() map[string]any {
	if e == nil {
		return nil
	}
	return e.bank.Tables()
}

func defaultWorkerCount() int {
	workers := runtime.NumCPU()
	if workers < 2 {
		return 2
	}
	if workers > 8 {
		return 8
	}
	return workers
}

// normalizeOptions applies defaults and validates the result.
func (e *Engine) normalizeOptions(opts GenerationOptions) (GenerationOptions, error) {
	if opts.Count < 0 {
		return opts, fmt.Errorf("%w: count must be positive", ErrInvalidOptions)
	}
	if opts.Count == 0 {
		opts.Count = DefaultCount
	}
	if opts.MinScore < 0 || opts.MinScore > 1 {
		return opts, fmt.Errorf("%w: min score must be within [0,1]", ErrInvalidOptions)
	}
	if opts.MinScore == 0 {
		opts.MinScore = DefaultMinScore
	}
	opts.Category = strings.TrimSpace(opts.Category)
	if opts.Category == "" {
		opts.Category = "general"
	}
	if !e.bank.HasCategory(opts.Category) {
		return opts, fmt.Errorf("%w: unknown category %q", ErrInvalidOptions, opts.Category)
	}
	opts.Style = strings.TrimSpace(opts.Style)
	if opts.Style == "" {
		opts.Style = "modern"
	}
	if _, known := bank.Style(opts.Style); !known {
		return opts, fmt.Errorf("%w: unknown style %q", ErrInvalidOptions, opts.Style)
	}
	if opts.Budget <= 0 {
		opts.Budget = DefaultBudget
	}
	return opts, nil
}
