// Package chunk groups adjacent tagged tokens into phrases with a small
// regular grammar over part-of-speech tags.
package chunk

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cognicore/canon/pkg/canon/internalerr"
	"github.com/cognicore/canon/pkg/canon/pos"
)

// DefaultLabel is the phrase label used by DefaultGrammar.
const DefaultLabel = "NP"

// DefaultPatterns are the noun-phrase-like rules of DefaultGrammar, in the
// order they are applied.
var DefaultPatterns = []string{
	"<NN><NN>+",
	"<NNP><NNP>+",
	"<NN><VBG>+",
	"<RB><VBN>+",
	"<RB><VB>+",
	"<VBG><NN>+",
	"<ADJ><NN>+",
	"<CD><NNS>+",
}

// Grammar is an ordered list of tag patterns sharing one phrase label.
// A Grammar is immutable and safe for concurrent use.
type Grammar struct {
	label string
	rules []rule
}

type rule struct {
	pattern string
	re      *regexp.Regexp
}

// NewGrammar compiles tag patterns written in the usual chunk-rule notation:
// each tag is enclosed in angle brackets, regular expression operators may
// follow a tag or a parenthesised group, and '.' inside brackets matches any
// tag character. Examples: "<NN><NN>+", "<DT>?<JJ.*>*<NN.*>", "<RB|RBR><VB>".
func NewGrammar(label string, patterns ...string) (*Grammar, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: empty label", internalerr.ErrInvalidGrammar)
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no rules", internalerr.ErrInvalidGrammar)
	}

	g := &Grammar{label: label, rules: make([]rule, 0, len(patterns))}
	for _, p := range patterns {
		expr, err := translate(p)
		if err != nil {
			return nil, err
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %q: %v", internalerr.ErrInvalidGrammar, p, err)
		}
		re.Longest()
		g.rules = append(g.rules, rule{pattern: p, re: re})
	}
	return g, nil
}

// DefaultGrammar returns the built-in noun phrase grammar.
func DefaultGrammar() *Grammar {
	g, err := NewGrammar(DefaultLabel, DefaultPatterns...)
	if err != nil {
		panic(err)
	}
	return g
}

// Label returns the phrase label.
func (g *Grammar) Label() string { return g.label }

// Patterns returns the rule patterns in application order.
func (g *Grammar) Patterns() []string {
	out := make([]string, len(g.rules))
	for i, r := range g.rules {
		out[i] = r.pattern
	}
	return out
}

// translate rewrites a tag pattern as a regular expression over a string of
// bracketed tags such as "<DT><NN><NN>".
func translate(pattern string) (string, error) {
	p := strings.Join(strings.Fields(pattern), "")
	if p == "" {
		return "", fmt.Errorf("%w: empty rule", internalerr.ErrInvalidGrammar)
	}

	var b strings.Builder
	inTag := false
	tagLen := 0
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case c == '<':
			if inTag {
				return "", fmt.Errorf("%w: nested '<' in %q", internalerr.ErrInvalidGrammar, pattern)
			}
			inTag, tagLen = true, 0
			b.WriteString("(?:<(?:")
		case c == '>':
			if !inTag || tagLen == 0 {
				return "", fmt.Errorf("%w: unbalanced or empty tag in %q", internalerr.ErrInvalidGrammar, pattern)
			}
			inTag = false
			b.WriteString(")>)")
		case inTag && c == '.':
			tagLen++
			b.WriteString("[^<>]")
		case inTag:
			tagLen++
			b.WriteByte(c)
		case strings.IndexByte("()|*+?", c) >= 0:
			b.WriteByte(c)
		default:
			return "", fmt.Errorf("%w: %q outside a tag in %q", internalerr.ErrInvalidGrammar, c, pattern)
		}
	}
	if inTag {
		return "", fmt.Errorf("%w: unterminated tag in %q", internalerr.ErrInvalidGrammar, pattern)
	}
	return b.String(), nil
}

// Parse groups the tagged tokens into phrases. Rules run in order; each one
// chunks the leftmost-longest non-overlapping matches among the tokens no
// earlier rule has claimed. Unclaimed tokens stay leaves of the root.
func (g *Grammar) Parse(tagged []pos.TaggedToken) *Node {
	// owner[i] is the index of the chunk token i belongs to, or -1.
	owner := make([]int, len(tagged))
	for i := range owner {
		owner[i] = -1
	}
	var spans [][2]int

	for _, r := range g.rules {
		for start := 0; start < len(tagged); {
			if owner[start] >= 0 {
				start++
				continue
			}
			end := start
			for end < len(tagged) && owner[end] < 0 {
				end++
			}
			for _, m := range matchRun(r.re, tagged[start:end]) {
				id := len(spans)
				spans = append(spans, [2]int{start + m[0], start + m[1]})
				for i := start + m[0]; i < start+m[1]; i++ {
					owner[i] = id
				}
			}
			start = end
		}
	}

	root := &Node{Label: RootLabel}
	for i := 0; i < len(tagged); {
		if owner[i] < 0 {
			root.Children = append(root.Children, Leaf(tagged[i]))
			i++
			continue
		}
		span := spans[owner[i]]
		phrase := &Node{Label: g.label}
		for j := span[0]; j < span[1]; j++ {
			phrase.Children = append(phrase.Children, Leaf(tagged[j]))
		}
		root.Children = append(root.Children, phrase)
		i = span[1]
	}
	return root
}

// matchRun returns token index ranges [from, to) of the matches of re over
// the tags of run.
func matchRun(re *regexp.Regexp, run []pos.TaggedToken) [][2]int {
	var b strings.Builder
	// offsets[k] is the byte offset where token k's tag starts.
	offsets := make(map[int]int, len(run)+1)
	for k, tt := range run {
		offsets[b.Len()] = k
		b.WriteByte('<')
		b.WriteString(sanitizeTag(tt.Tag))
		b.WriteByte('>')
	}
	offsets[b.Len()] = len(run)

	var out [][2]int
	for _, loc := range re.FindAllStringIndex(b.String(), -1) {
		from, okFrom := offsets[loc[0]]
		to, okTo := offsets[loc[1]]
		if !okFrom || !okTo || to <= from {
			continue
		}
		out = append(out, [2]int{from, to})
	}
	return out
}

func sanitizeTag(tag string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(tag)
}
