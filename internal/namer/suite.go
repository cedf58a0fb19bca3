package namer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"startup-namer/engine/internal/bank"
	"startup-namer/engine/internal/lex"
	"startup-namer/engine/internal/pattern"
	"startup-namer/engine/internal/scoring"
	"startup-namer/engine/internal/util"
)

// GenerateNamingSuite runs the full orchestration for one concept: primary
// name, secondary artifacts and tagline, assembled atomically. Failure of a
// non-primary artifact degrades quality, it does not abort the suite.
func (e *Engine) GenerateNamingSuite(ctx context.Context, concept string, opts SuiteOptions) (NamingSuite, error) {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return NamingSuite{}, fmt.Errorf("%w: concept is required", ErrInvalidOptions)
	}
	secondaryKind := strings.TrimSpace(opts.SecondaryKind)
	if secondaryKind == "" {
		secondaryKind = "features"
	}
	if secondaryKind != "features" && secondaryKind != "tiers" {
		return NamingSuite{}, fmt.Errorf("%w: unknown secondary kind %q", ErrInvalidOptions, secondaryKind)
	}
	secondaryCount := opts.SecondaryCount
	if secondaryCount <= 0 {
		secondaryCount = DefaultSecondaryCount
	}
	timer := util.StartTimer()

	gopts := opts.GenerationOptions
	gopts.Keywords = mergeKeywords(gopts.Keywords, lex.NormalizeConcept(concept).Tokens)

	primaries, err := e.generate(ctx, concept, gopts)
	if err != nil {
		return NamingSuite{}, err
	}
	if len(primaries) == 0 {
		// Everything fell below the threshold; retake with the filter open so
		// the suite still gets a primary.
		retry := gopts
		retry.MinScore = 0.01
		primaries, err = e.generate(ctx, concept, retry)
		if err != nil {
			return NamingSuite{}, err
		}
		if len(primaries) == 0 {
			return NamingSuite{}, ErrNoCandidates
		}
	}
	primary := primaries[0]

	secondary := e.secondaryCandidates(ctx, concept, primary, gopts, secondaryKind, secondaryCount)
	tagline := e.tagline(ctx, primary.Name, concept)

	suite := NamingSuite{
		ID:        uuid.NewString(),
		Concept:   concept,
		Primary:   primary,
		Secondary: secondary,
		Tagline:   tagline,
	}
	logrus.WithFields(logrus.Fields{
		"suite":     suite.ID,
		"primary":   primary.Name,
		"secondary": len(secondary),
		"duration":  timer.Elapsed(),
	}).Info("assembled naming suite")
	return suite, nil
}

// secondaryCandidates derives the suite's secondary artifacts. Feature
// generation reuses the pipeline seeded with the primary name as context;
// when it cannot fill the requested count the tier bank tops it up.
func (e *Engine) secondaryCandidates(ctx context.Context, concept string, primary Candidate, gopts GenerationOptions, kind string, count int) []Candidate {
	var secondary []Candidate
	if kind == "features" {
		fopts := gopts
		fopts.Count = count
		fopts.CheckDomains = false
		fopts.Keywords = mergeKeywords(gopts.Keywords, primary.SourceWords)
		features, err := e.generate(ctx, primary.Name+" "+concept, fopts)
		if err != nil {
			logrus.WithError(err).Warn("feature generation failed, substituting tier names")
		} else {
			secondary = excludeName(features, primary.Name)
		}
	}

	if len(secondary) < count {
		for _, tier := range e.tierCandidates(gopts.Style, count) {
			if len(secondary) >= count {
				break
			}
			if containsName(secondary, tier.Name) || strings.EqualFold(tier.Name, primary.Name) {
				continue
			}
			secondary = append(secondary, tier)
		}
	}
	if len(secondary) > count {
		secondary = secondary[:count]
	}
	return secondary
}

// tierCandidates scores the fixed tier word bank through the same scorer.
func (e *Engine) tierCandidates(style string, count int) []Candidate {
	profile, _ := bank.Style(style)
	tiers := e.bank.Lookup("", bank.Tiers)
	candidates := make([]Candidate, 0, len(tiers))
	for _, word := range tiers {
		heuristic := scoring.Heuristic(word, pattern.KindInvented, []string{word}, e.freq)
		candidates = append(candidates, Candidate{
			Name:        pattern.Title(word),
			Pattern:     pattern.KindInvented,
			SourceWords: []string{word},
			Score:       scoring.Blend(profile, pattern.KindInvented, heuristic, -1),
		})
	}
	return rank(candidates, 0, count)
}

// tagline asks the AI provider for a tagline and substitutes a template when
// the call fails, so the suite never ships without one.
func (e *Engine) tagline(ctx context.Context, name, concept string) string {
	if e.provider != nil && e.provider.Enabled() {
		tctx, cancel := context.WithTimeout(ctx, e.seedTimeout)
		defer cancel()
		prompt := fmt.Sprintf("Write a tagline of at most eight words for a product named %q that offers %s.", name, concept)
		if text, err := e.provider.GenerateText(tctx, prompt); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		} else if err != nil {
			logrus.WithError(err).WithField("name", name).Warn("tagline generation failed, substituting template")
		}
	}
	return placeholderTagline(name, concept)
}

func placeholderTagline(name, concept string) string {
	concept = strings.ToLower(strings.TrimSpace(concept))
	if runes := []rune(concept); len(runes) > 60 {
		concept = strings.TrimSpace(string(runes[:60]))
	}
	return fmt.Sprintf("%s: %s, simplified.", name, concept)
}

func mergeKeywords(base, extra []string) []string {
	out := append([]string(nil), base...)
	for _, word := range extra {
		word = strings.ToLower(strings.TrimSpace(word))
		if len(word) >= 3 {
			out = lex.AppendUnique(out, word)
		}
	}
	return out
}

func excludeName(candidates []Candidate, name string) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.EqualFold(candidate.Name, name) {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func containsName(candidates []Candidate, name string) bool {
	for _, candidate := range candidates {
		if strings.EqualFold(candidate.Name, name) {
			return true
		}
	}
	return false
}
