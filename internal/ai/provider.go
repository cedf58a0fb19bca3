// Package ai defines the capability boundary to hosted text models: seed
// vocabulary, candidate validation and free-text generation. Every call is
// fallible; the pipeline degrades to heuristics when a provider fails.
package ai

import (
	"context"
	"errors"
	"strings"
)

// Validation is the structured verdict a provider returns for a candidate.
type Validation struct {
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning,omitempty"`
}

// Provider is the capability consumed from an external AI collaborator.
// Implementations must be safe for concurrent use.
type Provider interface {
	Enabled() bool
	SeedWords(ctx context.Context, concept, category string) ([]string, error)
	Validate(ctx context.Context, name, concept string) (Validation, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ErrDisabled is returned when a provider cannot make outbound calls.
var ErrDisabled = errors.New("ai provider disabled")

type providerChain struct {
	primary  Provider
	fallback Provider
}

// WithFallback returns a provider that first tries the primary implementation
// and falls back to the provided one when the primary is unavailable or
// produces an unusable response.
func WithFallback(primary, fallback Provider) Provider {
	if primary == nil {
		return fallback
	}
	if fallback == nil {
		return primary
	}
	return &providerChain{primary: primary, fallback: fallback}
}

func (c *providerChain) Enabled() bool {
	if c == nil {
		return false
	}
	if c.primary != nil && c.primary.Enabled() {
		return true
	}
	if c.fallback != nil && c.fallback.Enabled() {
		return true
	}
	return false
}

func (c *providerChain) SeedWords(ctx context.Context, concept, category string) ([]string, error) {
	if c == nil {
		return nil, ErrDisabled
	}
	if c.primary != nil && c.primary.Enabled() {
		if words, err := c.primary.SeedWords(ctx, concept, category); err == nil && len(words) > 0 {
			return words, nil
		}
	}
	if c.fallback != nil && c.fallback.Enabled() {
		return c.fallback.SeedWords(ctx, concept, category)
	}
	return nil, ErrDisabled
}

func (c *providerChain) Validate(ctx context.Context, name, concept string) (Validation, error) {
	if c == nil {
		return Validation{}, ErrDisabled
	}
	if c.primary != nil && c.primary.Enabled() {
		if verdict, err := c.primary.Validate(ctx, name, concept); err == nil {
			return verdict, nil
		}
	}
	if c.fallback != nil && c.fallback.Enabled() {
		return c.fallback.Validate(ctx, name, concept)
	}
	return Validation{}, ErrDisabled
}

func (c *providerChain) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", ErrDisabled
	}
	if c.primary != nil && c.primary.Enabled() {
		if text, err := c.primary.GenerateText(ctx, prompt); err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	if c.fallback != nil && c.fallback.Enabled() {
		return c.fallback.GenerateText(ctx, prompt)
	}
	return "", ErrDisabled
}
