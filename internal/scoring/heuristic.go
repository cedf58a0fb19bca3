// Package scoring derives candidate scores from lexical heuristics and blends
// them with AI validation scores.
package scoring

import (
	"strings"

	"startup-namer/engine/internal/bank"
	"startup-namer/engine/internal/pattern"
)

const (
	weightLength    = 0.35
	weightPronounce = 0.30
	weightRarity    = 0.25
	weightPattern   = 0.10

	maxPriority = 6.0
)

// Heuristic computes the base score for a candidate from its length,
// pronounceability, source-word rarity and construction-pattern priority.
// The result is in [0,1].
func Heuristic(name string, kind pattern.Kind, sources []string, freq *FrequencyIndex) float64 {
	score := weightLength*lengthScore(name) +
		weightPronounce*pronounceability(name) +
		weightRarity*averageRarity(sources, freq) +
		weightPattern*(float64(pattern.Priority(kind))/maxPriority)
	return clamp(score)
}

// Blend combines a heuristic score with an AI validation score using the
// style's heuristic weight, then applies the style's pattern boost. When no
// AI score is available callers pass aiScore < 0 and the heuristic score is
// used alone.
func Blend(profile bank.StyleProfile, kind pattern.Kind, heuristic, aiScore float64) float64 {
	score := heuristic
	if aiScore >= 0 {
		w := profile.HeuristicWeight
		score = w*heuristic + (1-w)*clamp(aiScore)
	}
	return clamp(score + profile.PatternBoost[kind])
}

// lengthScore favours short names and penalizes anything past 12 characters.
func lengthScore(name string) float64 {
	n := len([]rune(name))
	switch {
	case n == 0:
		return 0
	case n <= 6:
		return 1.0
	case n <= 9:
		return 0.9
	case n <= 12:
		return 0.75
	default:
		score := 0.75 - 0.06*float64(n-12)
		if score < 0.2 {
			return 0.2
		}
		return score
	}
}

// pronounceability rewards vowel/consonant alternation and penalizes long
// consonant runs.
func pronounceability(name string) float64 {
	lower := strings.ToLower(name)
	var letters []bool // true = vowel
	for _, r := range lower {
		if r < 'a' || r > 'z' {
			continue
		}
		letters = append(letters, strings.ContainsRune("aeiouy", r))
	}
	if len(letters) < 2 {
		return 0.5
	}

	transitions := 0
	consonantRun := 0
	maxRun := 0
	for i, vowel := range letters {
		if i > 0 && vowel != letters[i-1] {
			transitions++
		}
		if vowel {
			consonantRun = 0
		} else {
			consonantRun++
			if consonantRun > maxRun {
				maxRun = consonantRun
			}
		}
	}

	score := 0.4 + 0.6*float64(transitions)/float64(len(letters)-1)
	if maxRun >= 4 {
		score -= 0.3
	} else if maxRun == 3 {
		score -= 0.15
	}
	return clamp(score)
}

func averageRarity(sources []string, freq *FrequencyIndex) float64 {
	if len(sources) == 0 {
		return freq.Rarity("")
	}
	var total float64
	for _, word := range sources {
		total += freq.Rarity(word)
	}
	return total / float64(len(sources))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
