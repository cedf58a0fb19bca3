package pattern

// Kind identifies how a candidate name was constructed.
type Kind string

const (
	// KindPrefixWord glues a bank prefix onto a base word ("get"+"task").
	KindPrefixWord Kind = "prefix_word"
	// KindWordSuffix glues a bank suffix onto a base word ("task"+"ly").
	KindWordSuffix Kind = "word_suffix"
	// KindCompound concatenates two independently drawn words.
	KindCompound Kind = "compound"
	// KindModified applies a deterministic spelling transform to one word.
	KindModified Kind = "modified"
	// KindLetterWord prepends a brand-style initial to a word.
	KindLetterWord Kind = "letter_word"
	// KindInvented marks candidates with no deterministic derivation, such as
	// AI-proposed names or fixed tier words.
	KindInvented Kind = "invented"
)

// Priority orders kinds for tie-breaking: rarer, more distinctive
// constructions outrank common ones at equal score.
func Priority(k Kind) int {
	switch k {
	case KindInvented:
		return 6
	case KindCompound:
		return 5
	case KindPrefixWord:
		return 4
	case KindWordSuffix:
		return 3
	case KindModified:
		return 2
	case KindLetterWord:
		return 1
	default:
		return 0
	}
}

// DeterministicKinds lists the kinds the generator can construct locally, in
// the order the generator cycles through them.
func DeterministicKinds() []Kind {
	return []Kind{KindCompound, KindPrefixWord, KindWordSuffix, KindModified, KindLetterWord}
}
