// Package segment splits run-together English text into words using a
// frequency-ranked word list.
package segment

import (
	"math"
	"strings"

	"github.com/cognicore/canon/pkg/canon/lexicon"
)

// unknownPerByte is the per-byte cost of a span that is not in the word list.
const unknownPerByte = 1.5

// Segmenter finds the cheapest split of each piece of text into words.
// Known words cost log((rank+1)*log N). An unknown span costs as much as the
// rarest known word plus a charge per byte. A piece that is itself a listed
// word is never split.
type Segmenter struct {
	lex     *lexicon.Lexicon
	maxLen  int
	logN    float64
	unknown float64 // fixed cost of an unknown span
	perByte float64 // additional cost per byte of an unknown span
}

// New builds a segmenter over the lexicon's word list.
// Words added to the lexicon later are not seen.
func New(lex *lexicon.Lexicon) *Segmenter {
	s := &Segmenter{lex: lex, perByte: unknownPerByte}
	words := lex.Words()
	if len(words) == 0 {
		return s
	}

	s.logN = math.Log(float64(len(words)))
	if s.logN <= 0 {
		s.logN = 1
	}
	for _, w := range words {
		if len(w) > s.maxLen {
			s.maxLen = len(w)
		}
	}
	s.unknown = s.cost(len(words) - 1)
	return s
}

func (s *Segmenter) cost(rank int) float64 {
	return math.Log(float64(rank+1) * s.logN)
}

// Segment splits text into words. Characters other than ASCII letters, digits
// and apostrophes separate pieces and are dropped; letters and digits never
// share a word; every piece is split independently. It never fails.
func (s *Segmenter) Segment(text string) ([]string, error) {
	var out []string
	for _, piece := range Pieces(text) {
		out = append(out, s.Split(piece)...)
	}
	return out, nil
}

// Split segments a single piece. Digit runs and listed words are returned
// whole.
func (s *Segmenter) Split(piece string) []string {
	if piece == "" {
		return nil
	}
	if s.maxLen == 0 || isDigits(piece) {
		return []string{piece}
	}

	lower := strings.ToLower(piece)
	if _, ok := s.lex.Rank(lower); ok {
		return []string{piece}
	}
	n := len(lower)
	best := make([]float64, n+1)
	from := make([]int, n+1)

	// bestUnknown tracks min over j of best[j] - perByte*j, so an unknown span
	// ending at i costs bestUnknown + unknown + perByte*i.
	bestUnknown, bestUnknownAt := 0.0, 0

	for i := 1; i <= n; i++ {
		best[i] = bestUnknown + s.unknown + s.perByte*float64(i)
		from[i] = bestUnknownAt

		lo := i - s.maxLen
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < i; j++ {
			rank, ok := s.lex.Rank(lower[j:i])
			if !ok {
				continue
			}
			if c := best[j] + s.cost(rank); c < best[i] {
				best[i] = c
				from[i] = j
			}
		}

		if v := best[i] - s.perByte*float64(i); v < bestUnknown {
			bestUnknown, bestUnknownAt = v, i
		}
	}

	var rev []string
	for i := n; i > 0; i = from[i] {
		rev = append(rev, piece[from[i]:i])
	}
	words := make([]string, 0, len(rev))
	for k := len(rev) - 1; k >= 0; k-- {
		words = append(words, rev[k])
	}
	return reattach(words)
}

// reattach joins a split-off possessive back onto the word before it.
func reattach(words []string) []string {
	out := words[:0]
	for _, w := range words {
		if (w == "'s" || w == "'") && len(out) > 0 {
			out[len(out)-1] += w
			continue
		}
		out = append(out, w)
	}
	return out
}

// Pieces breaks text into runs of ASCII letters (with apostrophes) and runs of
// ASCII digits. Everything else is a separator. Pieces made only of
// apostrophes are dropped.
func Pieces(text string) []string {
	var pieces []string
	var current strings.Builder
	digits := false

	flush := func() {
		if current.Len() > 0 {
			if p := current.String(); strings.Trim(p, "'") != "" {
				pieces = append(pieces, p)
			}
			current.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
			if !digits {
				flush()
			}
			digits = true
			current.WriteByte(c)
		case isLetter(c) || c == '\'':
			if digits {
				flush()
			}
			digits = false
			current.WriteByte(c)
		default:
			flush()
		}
	}
	flush()
	return pieces
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
