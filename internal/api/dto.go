package api

import "startup-namer/engine/internal/namer"

// GenerateRequest carries the options for a plain name-generation call.
type GenerateRequest struct {
	Category     string   `json:"category"`
	Style        string   `json:"style"`
	Count        int      `json:"count"`
	MinScore     float64  `json:"min_score"`
	Keywords     []string `json:"keywords"`
	CheckDomains bool     `json:"check_domains"`
	TLDs         []string `json:"tlds"`
}

// GenerateResponse holds the ranked candidate list.
type GenerateResponse struct {
	Candidates []namer.Candidate `json:"candidates"`
	Count      int               `json:"count"`
	DurationMs int64             `json:"duration_ms"`
}

// SuiteRequest asks for a complete naming suite for one concept.
type SuiteRequest struct {
	Concept        string   `json:"concept"`
	Category       string   `json:"category"`
	Style          string   `json:"style"`
	Count          int      `json:"count"`
	MinScore       float64  `json:"min_score"`
	Keywords       []string `json:"keywords"`
	SecondaryKind  string   `json:"secondary_kind"`
	SecondaryCount int      `json:"secondary_count"`
	CheckDomains   bool     `json:"check_domains"`
	TLDs           []string `json:"tlds"`
}

// ValidateRequest asks for a verdict on one externally supplied name.
type ValidateRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r GenerateRequest) options() namer.GenerationOptions {
	return namer.GenerationOptions{
		Category:     r.Category,
		Style:        r.Style,
		Count:        r.Count,
		MinScore:     r.MinScore,
		Keywords:     r.Keywords,
		CheckDomains: r.CheckDomains,
		TLDs:         r.TLDs,
	}
}

func (r SuiteRequest) options() namer.SuiteOptions {
	return namer.SuiteOptions{
		GenerationOptions: namer.GenerationOptions{
			Category:     r.Category,
			Style:        r.Style,
			Count:        r.Count,
			MinScore:     r.MinScore,
			Keywords:     r.Keywords,
			CheckDomains: r.CheckDomains,
			TLDs:         r.TLDs,
		},
		SecondaryKind:  r.SecondaryKind,
		SecondaryCount: r.SecondaryCount,
	}
}
