// Package lemma reduces inflected English words to their dictionary form.
package lemma

import (
	"strings"

	"github.com/cognicore/canon/pkg/canon/lexicon"
	"github.com/cognicore/canon/pkg/canon/pos"
)

// Lemmatizer maps a word and its coarse part of speech to a lemma.
type Lemmatizer interface {
	Lemmatize(word string, cat pos.Category) (string, error)
}

// LemmatizerFunc adapts a function to the Lemmatizer interface.
type LemmatizerFunc func(word string, cat pos.Category) (string, error)

// Lemmatize calls f(word, cat).
func (f LemmatizerFunc) Lemmatize(word string, cat pos.Category) (string, error) {
	return f(word, cat)
}

type rule struct {
	suffix, ending string
}

// Detachment rules per category. Suffixes listed in stemmed are handled by
// resolveStem, which tries e-restoration and consonant un-doubling.
var rules = map[pos.Category][]rule{
	pos.Noun: {
		{"s", ""}, {"ses", "s"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	pos.Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
	},
}

var stemmed = map[pos.Category][]string{
	pos.Verb:      {"ing", "ed"},
	pos.Adjective: {"est", "er"},
}

// Morphy is a rule-based lemmatizer in the style of WordNet's morphy:
// irregular forms take their candidates from the lexicon's exception table,
// regular forms are found by detaching suffixes and keeping candidates the
// lexicon knows. The shortest candidate wins; unknown words are returned
// unchanged.
type Morphy struct {
	lex *lexicon.Lexicon
}

// NewMorphy returns a lemmatizer backed by lex.
func NewMorphy(lex *lexicon.Lexicon) *Morphy {
	return &Morphy{lex: lex}
}

// Lemmatize never fails.
func (m *Morphy) Lemmatize(word string, cat pos.Category) (string, error) {
	if word == "" {
		return word, nil
	}
	lower := strings.ToLower(word)
	if lemmas := m.lex.Lemmas(cat, lower); len(lemmas) > 0 {
		return shortest(exceptionCandidates(lower, lemmas)), nil
	}

	var candidates []string
	if m.lex.Contains(lower) {
		candidates = append(candidates, lower)
	}
	for _, r := range rules[cat] {
		if !strings.HasSuffix(lower, r.suffix) || len(lower) <= len(r.suffix) {
			continue
		}
		if c := lower[:len(lower)-len(r.suffix)] + r.ending; m.valid(c) {
			candidates = append(candidates, c)
		}
	}
	for _, suffix := range stemmed[cat] {
		if !strings.HasSuffix(lower, suffix) || len(lower) <= len(suffix) {
			continue
		}
		if c, ok := m.resolveStem(lower[:len(lower)-len(suffix)]); ok {
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		return word, nil
	}
	return shortest(candidates), nil
}

// exceptionCandidates orders the listed lemmas of an irregular form. The form
// itself goes first when it is listed as one of its own lemmas, so it wins a
// tie: "best" stays "best" as an adjective, "better" becomes "good".
func exceptionCandidates(form string, lemmas []string) []string {
	out := make([]string, 0, len(lemmas))
	for _, l := range lemmas {
		if l == form {
			out = append(out, form)
		}
	}
	for _, l := range lemmas {
		if l != form {
			out = append(out, l)
		}
	}
	return out
}

// shortest returns the shortest candidate, the earliest one on a tie.
func shortest(candidates []string) string {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

// resolveStem picks the base form for a stem left by -ing, -ed, -er or -est:
// hop+ing -> hope, walk+ed -> walk, larg+er -> large, runn+ing -> run.
func (m *Morphy) resolveStem(stem string) (string, bool) {
	// A doubled final consonant after a short vowel is undone first, so
	// shopp+ing gives shop rather than shoppe. Doubled l, s, f and z are
	// usually part of the word itself (call, kiss, stuff, buzz).
	if n := len(stem); n >= 4 && stem[n-1] == stem[n-2] && isConsonant(stem[n-1]) &&
		!strings.ContainsRune("lsfz", rune(stem[n-1])) {
		if undoubled := stem[:n-1]; endsCVC(undoubled) && m.valid(undoubled) {
			return undoubled, true
		}
	}

	withE := stem + "e"
	if endsCVC(stem) && m.valid(withE) {
		return withE, true
	}
	if m.valid(stem) {
		return stem, true
	}
	if m.valid(withE) {
		return withE, true
	}
	if n := len(stem); n >= 3 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) {
		if undoubled := stem[:n-1]; m.valid(undoubled) {
			return undoubled, true
		}
	}
	return "", false
}

// valid reports whether a rule-derived candidate may be returned.
func (m *Morphy) valid(c string) bool {
	return len(c) >= 2 && !m.lex.IsClosed(c) && m.lex.Contains(c)
}

// endsCVC reports whether s ends consonant-vowel-consonant (or is a two-letter
// vowel-consonant word), the shape after which a silent e is usually dropped.
func endsCVC(s string) bool {
	n := len(s)
	switch {
	case n == 2:
		return isVowel(s[0]) && isConsonant(s[1])
	case n >= 3:
		last := s[n-1]
		return isConsonant(s[n-3]) && isVowel(s[n-2]) && isConsonant(last) &&
			last != 'w' && last != 'x' && last != 'y'
	}
	return false
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isConsonant(c byte) bool {
	return c >= 'a' && c <= 'z' && !isVowel(c)
}
