package pos

import (
	"fmt"
	"strings"

	"github.com/cognicore/canon/pkg/canon/internalerr"
)

// Category is the coarse part of speech consumed by the lemmatizer.
type Category uint8

const (
	Noun Category = iota
	Verb
	Adjective
	Adverb
)

// Categories lists every coarse category in a stable order.
var Categories = []Category{Noun, Verb, Adjective, Adverb}

func (c Category) String() string {
	switch c {
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	default:
		return "noun"
	}
}

// ParseCategory reads a category name as written in configuration files.
// Short WordNet-style names (n, v, a, r) are accepted as well.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "noun", "n":
		return Noun, nil
	case "verb", "v":
		return Verb, nil
	case "adjective", "adj", "a":
		return Adjective, nil
	case "adverb", "adv", "r":
		return Adverb, nil
	}
	return Noun, fmt.Errorf("%w: unknown part of speech %q", internalerr.ErrInvalidInput, s)
}

// Coarse maps a fine-grained (Penn Treebank style) tag to a coarse category.
// Only the first character is inspected; anything unrecognised, including
// the empty tag, is a Noun.
func Coarse(tag string) Category {
	if tag == "" {
		return Noun
	}
	switch tag[0] {
	case 'J':
		return Adjective
	case 'V':
		return Verb
	case 'R':
		return Adverb
	default:
		return Noun
	}
}
