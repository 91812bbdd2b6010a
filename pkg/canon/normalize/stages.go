package normalize

import (
	"fmt"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/cognicore/canon/pkg/canon/internalerr"
	"github.com/cognicore/canon/pkg/canon/lemma"
	"github.com/cognicore/canon/pkg/canon/logging"
	"github.com/cognicore/canon/pkg/canon/numwords"
	"github.com/cognicore/canon/pkg/canon/pos"
)

// CompoundSplit segments the whole string and joins the words with single
// spaces.
func CompoundSplit(seg Segmenter, s string) (string, error) {
	words, err := seg.Segment(s)
	if err != nil {
		return "", internalerr.Wrap(StageCompound, s, err)
	}
	return strings.Join(words, " "), nil
}

// ConvertNumbers replaces every whitespace-separated token whose numeric
// characters can be spelled. A token keeps only its digits, '.' and ',' for
// the attempt ("$2.00p" is spelled from "2.00"); when nothing numeric remains
// or the speller fails, the token is left as it was.
func ConvertNumbers(speller NumberSpeller, s string, logger logging.Logger) string {
	logger = logging.OrNop(logger)
	tokens := strings.Fields(s)
	for i, tok := range tokens {
		numeric := numwords.KeepNumeric(tok)
		if numeric == "" {
			continue
		}
		words, err := speller.Spell(numeric)
		if err != nil {
			logger.Debug("number not converted", "token", tok, "numeric", numeric, "error", err)
			continue
		}
		tokens[i] = words
	}
	return strings.Join(tokens, " ")
}

var asciiPunct = runes.Predicate(func(r rune) bool {
	return r < 0x80 && strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r)
})

// StripPunctuation removes every ASCII punctuation character. Nothing is
// inserted in its place and whitespace is left untouched, so
// "this-is / an ' example.com" becomes "thisis  an  examplecom".
func StripPunctuation(s string) string {
	out, _, err := transform.String(runes.Remove(asciiPunct), s)
	if err != nil {
		return s
	}
	return out
}

// Lemmatize tags the whitespace tokens of s in a single call and replaces each
// token with its lemma for the tag's coarse category. The result has exactly
// one lemma per input token, in order, joined by single spaces.
func Lemmatize(tagger pos.Tagger, lemmatizer lemma.Lemmatizer, s string) (string, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return "", nil
	}

	tagged, err := tagger.Tag(tokens)
	if err != nil {
		return "", internalerr.Wrap(StageLemmatize, s, err)
	}
	if len(tagged) != len(tokens) {
		return "", internalerr.Wrap(StageLemmatize, s,
			fmt.Errorf("%w: %d tokens, %d tags", internalerr.ErrMisaligned, len(tokens), len(tagged)))
	}

	words, cats := pos.Split(tagged)
	lemmas := make([]string, len(words))
	for i, w := range words {
		l, err := lemmatizer.Lemmatize(w, cats[i])
		if err != nil {
			return "", internalerr.Wrap(StageLemmatize, w, err)
		}
		lemmas[i] = l
	}
	return strings.Join(lemmas, " "), nil
}
