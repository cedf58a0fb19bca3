package namer

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"startup-namer/engine/internal/bank"
	"startup-namer/engine/internal/pattern"
	"startup-namer/engine/internal/scoring"
	"startup-namer/engine/internal/util"
)

// GenerateNames produces a ranked candidate list for the supplied options.
// Names are unique case-insensitively, scored within [0,1], at or above the
// minimum score, sorted by descending score with pattern priority breaking
// ties, and truncated to the requested count. A short list means the pattern
// space was exhausted, not an error.
func (e *Engine) GenerateNames(ctx context.Context, opts GenerationOptions) ([]Candidate, error) {
	return e.generate(ctx, "", opts)
}

// generate carries an optional concept string so suite orchestration can give
// the validation calls real context.
func (e *Engine) generate(ctx context.Context, concept string, opts GenerationOptions) ([]Candidate, error) {
	opts, err := e.normalizeOptions(opts)
	if err != nil {
		return nil, err
	}
	timer := util.StartTimer()

	ctx, cancel := context.WithTimeout(ctx, opts.Budget)
	defer cancel()

	if strings.TrimSpace(concept) == "" {
		concept = strings.Join(opts.Keywords, " ")
	}
	if strings.TrimSpace(concept) == "" {
		concept = opts.Category
	}

	seeds := e.seedWords(ctx, concept, opts.Category)
	merged := append(append([]string(nil), opts.Keywords...), seeds...)
	words := e.bank.WordsWith(opts.Category, merged)

	gen := pattern.NewGenerator(pattern.Input{
		Words:    words,
		Prefixes: e.bank.Lookup(opts.Category, bank.Prefixes),
		Suffixes: e.bank.Lookup(opts.Category, bank.Suffixes),
		Letters:  e.bank.Lookup(opts.Category, bank.Letters),
	})

	batch := opts.Count * oversample
	if batch < minOversample {
		batch = minOversample
	}
	profile, _ := bank.Style(opts.Style)

	// Draw in rounds until enough candidates clear the threshold or the
	// pattern space is exhausted. A short final batch means exhaustion;
	// batching keeps the validation fan-out intact.
	var pool, ranked []Candidate
	drawn := 0
	for {
		raws := e.draw(gen, batch)
		drawn += len(raws)
		if len(raws) > 0 {
			heuristics := make([]float64, len(raws))
			for i, raw := range raws {
				heuristics[i] = scoring.Heuristic(raw.Name, raw.Kind, raw.SourceWords, e.freq)
			}
			pool = append(pool, e.validateAll(ctx, concept, profile, raws, heuristics)...)
			ranked = rank(pool, opts.MinScore, opts.Count)
		}
		if len(ranked) >= opts.Count || len(raws) < batch || ctx.Err() != nil {
			break
		}
	}
	if drawn == 0 {
		return nil, ErrNoCandidates
	}

	if opts.CheckDomains && e.checker != nil {
		ranked = e.attachDomains(ctx, ranked, opts.TLDs)
	}

	logrus.WithFields(logrus.Fields{
		"category":   opts.Category,
		"style":      opts.Style,
		"drawn":      drawn,
		"returned":   len(ranked),
		"seed_words": len(seeds),
		"duration":   timer.Elapsed(),
	}).Debug("generated name candidates")
	return ranked, nil
}

// seedWords asks the AI provider for extra vocabulary. Failure reduces
// candidate diversity, it is not an error.
func (e *Engine) seedWords(ctx context.Context, concept, category string) []string {
	if e.provider == nil || !e.provider.Enabled() {
		return nil
	}
	sctx, cancel := context.WithTimeout(ctx, e.seedTimeout)
	defer cancel()

	words, err := e.provider.SeedWords(sctx, concept, category)
	if err != nil {
		logrus.WithError(err).WithField("category", category).Warn("seed words unavailable, using static bank only")
		return nil
	}
	return words
}

// draw pulls the next batch of raw candidates from the pattern generator,
// screening stoplisted names. A short batch means the space is exhausted.
func (e *Engine) draw(gen *pattern.Generator, batch int) []pattern.Raw {
	var raws []pattern.Raw
	for len(raws) < batch {
		raw, ok := gen.Next()
		if !ok {
			break
		}
		if severity, hits := e.stoplist.Screen(raw.Name); severity > 0 {
			logrus.WithFields(logrus.Fields{
				"name":     raw.Name,
				"severity": severity,
				"terms":    hits,
			}).Debug("candidate stoplisted")
			continue
		}
		raws = append(raws, raw)
	}
	return raws
}

// validateAll fans validation calls out across the worker pool and blends
// successful verdicts into the heuristic scores. A candidate's score is not
// finalized before its own validation call resolves or times out; candidates
// left unvalidated when the budget runs out keep their heuristic score.
func (e *Engine) validateAll(ctx context.Context, concept string, profile bank.StyleProfile, raws []pattern.Raw, heuristics []float64) []Candidate {
	candidates := make([]Candidate, len(raws))
	for i, raw := range raws {
		candidates[i] = Candidate{
			Name:        raw.Name,
			Pattern:     raw.Kind,
			SourceWords: raw.SourceWords,
			Score:       scoring.Blend(profile, raw.Kind, heuristics[i], -1),
		}
	}
	if e.provider == nil || !e.provider.Enabled() {
		return candidates
	}

	taskCh := make(chan int, len(candidates))
	for i := range candidates {
		taskCh <- i
	}
	close(taskCh)

	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range taskCh {
				select {
				case <-ctx.Done():
					return
				default:
				}
				vctx, cancel := context.WithTimeout(ctx, e.validationTimeout)
				verdict, err := e.provider.Validate(vctx, candidates[i].Name, concept)
				cancel()
				if err != nil {
					logrus.WithError(err).WithField("name", candidates[i].Name).Debug("validation unavailable, keeping heuristic score")
					continue
				}
				refined := candidates[i]
				refined.Score = scoring.Blend(profile, refined.Pattern, heuristics[i], verdict.Score)
				refined.Reasoning = verdict.Reasoning
				candidates[i] = refined
			}
		}()
	}
	wg.Wait()
	return candidates
}

// rank sorts by descending score with pattern priority breaking ties, then
// dedupes case-insensitively keeping the higher-scoring instance, drops
// candidates below minScore and truncates to count.
func rank(candidates []Candidate, minScore float64, count int) []Candidate {
	sorted := append([]Candidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		pi, pj := pattern.Priority(sorted[i].Pattern), pattern.Priority(sorted[j].Pattern)
		if pi != pj {
			return pi > pj
		}
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	seen := make(map[string]struct{}, count)
	out := make([]Candidate, 0, count)
	for _, candidate := range sorted {
		if candidate.Score < minScore {
			break
		}
		key := strings.ToLower(candidate.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, candidate)
		if len(out) == count {
			break
		}
	}
	return out
}

// attachDomains requests availability hints for each candidate in parallel.
func (e *Engine) attachDomains(ctx context.Context, candidates []Candidate, tlds []string) []Candidate {
	out := append([]Candidate(nil), candidates...)
	var wg sync.WaitGroup
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i].Domains = e.checker.CheckAvailability(ctx, out[i].Name, tlds)
		}(i)
	}
	wg.Wait()
	return out
}
