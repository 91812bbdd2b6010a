// Package fold holds the character-level transforms of the normalizer:
// case folding and accent folding.
package fold

import (
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Lower applies a direct lower-case mapping. A fresh Caser is built per call
// because Casers carry state between writes.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Folder replaces accented and non-ASCII characters with close ASCII
// equivalents.
type Folder struct{}

// NewFolder returns the default accent folder.
func NewFolder() *Folder { return &Folder{} }

// FoldAccents implements the accent folding collaborator of the normalizer.
func (f *Folder) FoldAccents(s string) (string, error) {
	return Accents(s), nil
}

// Accents strips combining marks and transliterates what remains to ASCII
// ("Málaga" -> "Malaga", "straße" -> "strasse").
func Accents(s string) string {
	stripped, _, err := transform.String(stripMarks(), s)
	if err != nil {
		stripped = s
	}
	return unidecode.Unidecode(stripped)
}

func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
