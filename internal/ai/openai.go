package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Config holds OpenAI-compatible configuration parameters.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// Client implements the Provider interface against an OpenAI-compatible
// chat-completions API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

// NewClient constructs a Client if the supplied configuration is valid.
func NewClient(cfg Config) (*Client, error) {
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Model == "" {
		cfg.Model = "gpt-4.1-mini"
	}
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrDisabled
	}
	temp := cfg.Temperature
	if temp <= 0 {
		temp = 0.6
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 600
	}
	return &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       cfg.Model,
		baseURL:     cfg.BaseURL,
		temperature: temp,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Enabled reports whether the client can make outbound calls.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// SeedWords asks the model for context-aware vocabulary for a concept.
func (c *Client) SeedWords(ctx context.Context, concept, category string) ([]string, error) {
	system := "You are a startup naming assistant. Reply with a strict JSON array of 8 to 15 lowercase single English words that evoke the concept and would combine well into product names. Emit nothing outside the JSON array."
	user := fmt.Sprintf("Concept: %s\nCategory: %s", strings.TrimSpace(concept), strings.TrimSpace(category))

	content, err := c.chat(ctx, system, user)
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

// Validate asks the model to judge how well a candidate name fits a concept.
func (c *Client) Validate(ctx context.Context, name, concept string) (Validation, error) {
	system := "You are a brand naming expert. Reply with a strict JSON object containing keys score and reasoning. score is a decimal between 0 and 1 measuring how memorable, pronounceable and fitting the name is for the concept. reasoning is one short sentence. Emit nothing outside the JSON object."
	user := fmt.Sprintf("Name: %s\nConcept: %s", strings.TrimSpace(name), strings.TrimSpace(concept))

	content, err := c.chat(ctx, system, user)
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

// GenerateText returns the model's plain-text reply for an arbitrary prompt.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	system := "You are a concise startup copywriter. Reply with plain text only, no quotes, no markdown."
	content, err := c.chat(ctx, system, prompt)
	if err != nil {
		return "", err
	}
	content = strings.TrimSpace(strings.Trim(strings.TrimSpace(content), `"`))
	if content == "" {
		return "", errors.New("model returned empty text")
	}
	return content, nil
}

func (c *Client) chat(ctx context.Context, system, user string) (string, error) {
	if c == nil || !c.Enabled() {
		return "", ErrDisabled
	}

	payload := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return "", fmt.Errorf("openai status %d: %v", resp.StatusCode, apiErr)
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("openai empty response")
	}
	return decoded.Choices[0].Message.Content, nil
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
