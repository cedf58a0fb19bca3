package pattern

import "strings"

// TransformCount is the number of deterministic spelling transforms.
const TransformCount = 3

const (
	transformVowelDrop = iota
	transformDouble
	transformPhonetic
)

func isVowel(r byte) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// ApplyTransform applies the deterministic spelling transform identified by id
// to word. The same word and id always produce the same output. The second
// return value is false when the transform does not change the word, so
// callers can skip no-op candidates.
func ApplyTransform(word string, id int) (string, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) < 4 {
		return "", false
	}

	switch id {
	case transformVowelDrop:
		// Drop the last interior vowel ("flicker" -> "flickr").
		for i := len(word) - 2; i > 0; i-- {
			if isVowel(word[i]) {
				out := word[:i] + word[i+1:]
				return out, out != word
			}
		}
		return "", false
	case transformDouble:
		// Double the final consonant ("grab" -> "grabb").
		last := word[len(word)-1]
		if isVowel(last) {
			return "", false
		}
		return word + string(last), true
	case transformPhonetic:
		// First matching respelling rule wins.
		rules := [][2]string{
			{"ck", "k"},
			{"ph", "f"},
			{"qu", "kw"},
			{"x", "ks"},
		}
		for _, rule := range rules {
			if strings.Contains(word, rule[0]) {
				return strings.Replace(word, rule[0], rule[1], 1), true
			}
		}
		if word[0] == 'c' && !strings.HasPrefix(word, "ch") {
			return "k" + word[1:], true
		}
		return "", false
	default:
		return "", false
	}
}
