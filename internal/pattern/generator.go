package pattern

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title capitalizes a word the same way generated candidates are cased.
func Title(word string) string {
	return titleCaser.String(word)
}

// Raw is an unscored candidate emitted by the generator.
type Raw struct {
	Name        string
	Kind        Kind
	SourceWords []string
}

// Input bounds the generator's combination space. Words supplies the pooled
// vocabulary (category words, seed words, caller keywords); Prefixes,
// Suffixes and Letters come from the pattern bank. Kinds restricts which
// constructions are attempted; nil means all deterministic kinds.
type Input struct {
	Words    []string
	Prefixes []string
	Suffixes []string
	Letters  []string
	Kinds    []Kind
}

// Generator walks a finite combination space lazily, emitting each unique
// candidate exactly once. Iteration order is fully determined by the input,
// so identical inputs yield identical candidate streams.
type Generator struct {
	input   Input
	kinds   []Kind
	cursors map[Kind]int
	done    map[Kind]bool
	next    int
	seen    map[string]struct{}
}

// NewGenerator builds a generator over the supplied input.
func NewGenerator(input Input) *Generator {
	kinds := input.Kinds
	if len(kinds) == 0 {
		kinds = DeterministicKinds()
	}
	var usable []Kind
	for _, k := range kinds {
		if k == KindInvented {
			continue
		}
		usable = append(usable, k)
	}

	return &Generator{
		input:   input,
		kinds:   usable,
		cursors: make(map[Kind]int, len(usable)),
		done:    make(map[Kind]bool, len(usable)),
		seen:    make(map[string]struct{}),
	}
}

// Next returns the next unique candidate, cycling round-robin across the
// allowed kinds. The second return value is false once every kind's
// combination space is exhausted.
func (g *Generator) Next() (Raw, bool) {
	if g == nil || len(g.kinds) == 0 {
		return Raw{}, false
	}

	for {
		allDone := true
		for range g.kinds {
			kind := g.kinds[g.next%len(g.kinds)]
			g.next++
			if g.done[kind] {
				continue
			}
			allDone = false
			raw, ok := g.advance(kind)
			if !ok {
				continue
			}
			key := strings.ToLower(raw.Name)
			if _, dup := g.seen[key]; dup {
				continue
			}
			g.seen[key] = struct{}{}
			return raw, true
		}
		if allDone {
			return Raw{}, false
		}
	}
}

// advance steps one kind's cursor forward and constructs a candidate, marking
// the kind done when its space runs out. A false return with the kind still
// live means the combination was skipped (no-op transform, same-word pair).
func (g *Generator) advance(kind Kind) (Raw, bool) {
	cursor := g.cursors[kind]
	g.cursors[kind] = cursor + 1

	words := g.input.Words
	switch kind {
	case KindPrefixWord:
		prefixes := g.input.Prefixes
		if len(prefixes) == 0 || len(words) == 0 || cursor >= len(prefixes)*len(words) {
			g.done[kind] = true
			return Raw{}, false
		}
		prefix := prefixes[cursor%len(prefixes)]
		word := words[cursor/len(prefixes)]
		return Raw{
			Name:        strings.ToLower(prefix) + titleCaser.String(word),
			Kind:        kind,
			SourceWords: []string{prefix, word},
		}, true

	case KindWordSuffix:
		suffixes := g.input.Suffixes
		if len(suffixes) == 0 || len(words) == 0 || cursor >= len(suffixes)*len(words) {
			g.done[kind] = true
			return Raw{}, false
		}
		suffix := suffixes[cursor%len(suffixes)]
		word := words[cursor/len(suffixes)]
		return Raw{
			Name:        titleCaser.String(word) + titleCaser.String(suffix),
			Kind:        kind,
			SourceWords: []string{word, suffix},
		}, true

	case KindCompound:
		if len(words) < 2 || cursor >= len(words)*len(words) {
			g.done[kind] = true
			return Raw{}, false
		}
		first := words[cursor/len(words)]
		second := words[cursor%len(words)]
		if first == second {
			return Raw{}, false
		}
		return Raw{
			Name:        titleCaser.String(first) + titleCaser.String(second),
			Kind:        kind,
			SourceWords: []string{first, second},
		}, true

	case KindModified:
		if len(words) == 0 || cursor >= len(words)*TransformCount {
			g.done[kind] = true
			return Raw{}, false
		}
		word := words[cursor/TransformCount]
		transformed, ok := ApplyTransform(word, cursor%TransformCount)
		if !ok {
			return Raw{}, false
		}
		return Raw{
			Name:        titleCaser.String(transformed),
			Kind:        kind,
			SourceWords: []string{word},
		}, true

	case KindLetterWord:
		letters := g.input.Letters
		if len(letters) == 0 || len(words) == 0 || cursor >= len(letters)*len(words) {
			g.done[kind] = true
			return Raw{}, false
		}
		letter := letters[cursor%len(letters)]
		word := words[cursor/len(letters)]
		return Raw{
			Name:        strings.ToUpper(letter) + titleCaser.String(word),
			Kind:        kind,
			SourceWords: []string{letter, word},
		}, true

	default:
		g.done[kind] = true
		return Raw{}, false
	}
}
