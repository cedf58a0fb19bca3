package bank

import "startup-namer/engine/internal/pattern"

// StyleProfile carries the scoring adjustments a style implies.
//
// HeuristicWeight is the share of the final score taken from the mechanical
// heuristics when an AI validation score is available; the AI score gets the
// complement. The weight is strictly monotonic across styles, from technical
// (trust heuristics most) down to playful (trust AI creativity most).
type StyleProfile struct {
	Name            string
	HeuristicWeight float64
	PatternBoost    map[pattern.Kind]float64
}

var styleProfiles = map[string]StyleProfile{
	"technical": {
		Name:            "technical",
		HeuristicWeight: 0.80,
		PatternBoost: map[pattern.Kind]float64{
			pattern.KindPrefixWord: 0.05,
			pattern.KindWordSuffix: 0.05,
		},
	},
	"professional": {
		Name:            "professional",
		HeuristicWeight: 0.65,
		PatternBoost: map[pattern.Kind]float64{
			pattern.KindCompound:   0.05,
			pattern.KindWordSuffix: 0.03,
		},
	},
	"modern": {
		Name:            "modern",
		HeuristicWeight: 0.50,
		PatternBoost: map[pattern.Kind]float64{
			pattern.KindModified: 0.05,
			pattern.KindCompound: 0.03,
		},
	},
	"playful": {
		Name:            "playful",
		HeuristicWeight: 0.35,
		PatternBoost: map[pattern.Kind]float64{
			pattern.KindModified:   0.05,
			pattern.KindLetterWord: 0.05,
		},
	},
}

// Style returns the weighting profile for the named style. Unknown or empty
// styles fall back to the modern profile.
func Style(name string) (StyleProfile, bool) {
	profile, ok := styleProfiles[name]
	if !ok {
		return styleProfiles["modern"], false
	}
	return profile, true
}

// Styles lists the recognized style names.
func Styles() []string {
	return []string{"modern", "professional", "playful", "technical"}
}
