package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// GeminiConfig holds Gemini API configuration parameters.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

// Gemini implements the Provider interface on the Gemini API. The underlying
// genai client is created lazily on first use and reused across calls.
type Gemini struct {
	apiKey      string
	model       string
	temperature float64

	mu     sync.Mutex
	client *genai.Client
}

// NewGemini constructs a Gemini provider if the configuration is valid.
func NewGemini(cfg GeminiConfig) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrDisabled
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-2.0-flash"
	}
	temp := cfg.Temperature
	if temp <= 0 {
		temp = 0.6
	}
	return &Gemini{
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       model,
		temperature: temp,
	}, nil
}

// Enabled reports whether the provider can make outbound calls.
func (g *Gemini) Enabled() bool {
	return g != nil && g.apiKey != ""
}

// SeedWords asks Gemini for context-aware vocabulary for a concept.
func (g *Gemini) SeedWords(ctx context.Context, concept, category string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Reply with a strict JSON array of 8 to 15 lowercase single English words that evoke this concept and would combine well into product names. Emit nothing outside the JSON array.\nConcept: %s\nCategory: %s",
		strings.TrimSpace(concept), strings.TrimSpace(category))

	content, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var words []string
	if err := json.Unmarshal([]byte(normalizeJSONArray(content)), &words); err != nil {
		return nil, fmt.Errorf("parse seed words: %w", err)
	}
	cleaned := cleanWordList(words)
	if len(cleaned) == 0 {
		return nil, errors.New("seed words empty")
	}
	return cleaned, nil
}

// Validate asks Gemini to judge how well a candidate name fits a concept.
func (g *Gemini) Validate(ctx context.Context, name, concept string) (Validation, error) {
	prompt := fmt.Sprintf(
		"Reply with a strict JSON object containing keys score and reasoning. score is a decimal between 0 and 1 measuring how memorable, pronounceable and fitting the name is for the concept. reasoning is one short sentence. Emit nothing outside the JSON object.\nName: %s\nConcept: %s",
		strings.TrimSpace(name), strings.TrimSpace(concept))

	content, err := g.generate(ctx, prompt)
	if err != nil {
		return Validation{}, err
	}
	var verdict Validation
	if err := json.Unmarshal([]byte(normalizeJSONBlock(content)), &verdict); err != nil {
		return Validation{}, fmt.Errorf("parse validation: %w", err)
	}
	verdict.Score = clampScore(verdict.Score)
	verdict.Reasoning = strings.TrimSpace(verdict.Reasoning)
	return verdict, nil
}

// GenerateText returns Gemini's plain-text reply for an arbitrary prompt.
func (g *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	content, err := g.generate(ctx, "Reply with plain text only, no quotes, no markdown.\n"+prompt)
	if err != nil {
		return "", err
	}
	content = strings.TrimSpace(strings.Trim(strings.TrimSpace(content), `"`))
	if content == "" {
		return "", errors.New("model returned empty text")
	}
	return content, nil
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || !g.Enabled() {
		return "", ErrDisabled
	}

	client, err := g.getOrCreateClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(g.temperature)),
	})
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func (g *Gemini) getOrCreateClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	g.client = client
	return client, nil
}
