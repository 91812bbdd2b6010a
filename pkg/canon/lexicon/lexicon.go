package lexicon

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/canon/pkg/canon/internalerr"
	"github.com/cognicore/canon/pkg/canon/pos"
)

//go:embed words.txt.gz
var defaultWords []byte

//go:embed exceptions.yaml
var defaultExceptions []byte

// Lexicon holds the English vocabulary shared by the segmenter and the
// lemmatizer:
// - Words: frequency-ranked list, rank 0 is the most frequent word
// - Exceptions: irregular form -> lemma, per coarse category
// - Closed class: function words a suffix rule must never produce
type Lexicon struct {
	words []string
	rank  map[string]int

	// category -> form -> lemmas, in the order they were added
	// Example: verb: "went" -> ["go"]; adjective: "best" -> ["good", "best"]
	exceptions map[pos.Category]map[string][]string

	// category -> lemma -> forms, kept for listing and persistence
	forms map[pos.Category]map[string][]string

	closed map[string]bool
}

// Exception is one irregular lemma with its inflected forms.
type Exception struct {
	Category pos.Category
	Lemma    string
	Forms    []string
}

// Stats summarizes the lexicon contents.
type Stats struct {
	Words      int
	Exceptions int
	Closed     int
}

// New creates an empty lexicon.
func New() *Lexicon {
	l := &Lexicon{
		rank:       make(map[string]int),
		exceptions: make(map[pos.Category]map[string][]string),
		forms:      make(map[pos.Category]map[string][]string),
		closed:     make(map[string]bool),
	}
	for _, c := range pos.Categories {
		l.exceptions[c] = make(map[string][]string)
		l.forms[c] = make(map[string][]string)
	}
	return l
}

// Default returns a fresh lexicon loaded with the embedded English word list
// and exception table.
func Default() (*Lexicon, error) {
	l := New()
	if err := l.ParseWords(bytes.NewReader(defaultWords)); err != nil {
		return nil, fmt.Errorf("default words: %w", err)
	}
	if err := l.ParseExceptions(defaultExceptions); err != nil {
		return nil, fmt.Errorf("default exceptions: %w", err)
	}
	return l, nil
}

// DefaultWords returns the embedded word list file, gzip-compressed.
func DefaultWords() []byte { return append([]byte(nil), defaultWords...) }

// DefaultExceptions returns the embedded exceptions file.
func DefaultExceptions() []byte { return append([]byte(nil), defaultExceptions...) }

// ParseWords appends words from r, one per line, in descending frequency.
// Blank lines and lines starting with '#' are skipped. Only the first field of
// a line is used, so "word count" files are accepted too. Gzip input is
// detected and decompressed.
func (l *Lexicon) ParseWords(r io.Reader) error {
	br := bufio.NewReader(r)
	var src io.Reader = br
	if magic, _ := br.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return fmt.Errorf("word list: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	sc := bufio.NewScanner(src)
	var words []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)[0])
	}
	if err := sc.Err(); err != nil {
		return err
	}
	l.AddWords(words...)
	return nil
}

// LoadWords appends the word list at path.
func (l *Lexicon) LoadWords(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return l.ParseWords(f)
}

// ParseExceptions merges a YAML exception table.
//
// Expected format:
//
//	exceptions:
//	  verb:
//	    - lemma: be
//	      forms: [is, are, was, were]
//	  noun:
//	    - lemma: foot
//	      forms: [feet]
//	closed: [a, an, the]
//
// Category keys accept the names understood by pos.ParseCategory.
func (l *Lexicon) ParseExceptions(data []byte) error {
	var file struct {
		Exceptions map[string][]struct {
			Lemma string   `yaml:"lemma"`
			Forms []string `yaml:"forms"`
		} `yaml:"exceptions"`
		Closed []string `yaml:"closed"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: %v", internalerr.ErrInvalidInput, err)
	}

	// Deterministic order so later duplicates win consistently.
	keys := make([]string, 0, len(file.Exceptions))
	for k := range file.Exceptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		cat, err := pos.ParseCategory(key)
		if err != nil {
			return err
		}
		for _, entry := range file.Exceptions[key] {
			if strings.TrimSpace(entry.Lemma) == "" {
				return fmt.Errorf("%w: empty lemma in %s exceptions", internalerr.ErrInvalidInput, key)
			}
			l.AddException(cat, entry.Lemma, entry.Forms)
		}
	}
	l.AddClosed(file.Closed...)
	return nil
}

// LoadExceptions merges the YAML exception table at path.
func (l *Lexicon) LoadExceptions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return l.ParseExceptions(data)
}

// AddWords appends words after the existing ones, so they rank lower.
// Words already present keep their rank.
func (l *Lexicon) AddWords(words ...string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := l.rank[w]; ok {
			continue
		}
		l.rank[w] = len(l.words)
		l.words = append(l.words, w)
	}
}

// AddException records lemma as a lemma of every form in the category.
// If the lemma already exists, its old forms are dropped first. A form may
// belong to several lemmas; listing a form under its own spelling marks it as
// a lemma in its own right ("best" is an adjective as well as a form of "good").
func (l *Lexicon) AddException(cat pos.Category, lemma string, forms []string) {
	lemma = strings.ToLower(strings.TrimSpace(lemma))
	byForm := l.exceptions[cat]
	byLemma := l.forms[cat]
	if byForm == nil {
		return
	}

	for _, old := range byLemma[lemma] {
		byForm[old] = without(byForm[old], lemma)
		if len(byForm[old]) == 0 {
			delete(byForm, old)
		}
	}

	seen := make(map[string]bool, len(forms))
	normalized := make([]string, 0, len(forms))
	for _, f := range forms {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		normalized = append(normalized, f)
		byForm[f] = append(byForm[f], lemma)
	}
	byLemma[lemma] = normalized
}

func without(list []string, drop string) []string {
	out := list[:0]
	for _, s := range list {
		if s != drop {
			out = append(out, s)
		}
	}
	return out
}

// AddClosed marks function words.
func (l *Lexicon) AddClosed(words ...string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			l.closed[w] = true
		}
	}
}

// Exception returns the first lemma listed for an irregular form.
func (l *Lexicon) Exception(cat pos.Category, form string) (string, bool) {
	lemmas := l.exceptions[cat][form]
	if len(lemmas) == 0 {
		return "", false
	}
	return lemmas[0], true
}

// Lemmas returns every lemma listed for form, in the order they were added.
func (l *Lexicon) Lemmas(cat pos.Category, form string) []string {
	lemmas := l.exceptions[cat][form]
	if len(lemmas) == 0 {
		return nil
	}
	return append([]string(nil), lemmas...)
}

// Forms returns the irregular forms recorded for lemma.
func (l *Lexicon) Forms(cat pos.Category, lemma string) []string {
	forms := l.forms[cat][strings.ToLower(lemma)]
	if len(forms) == 0 {
		return nil
	}
	return append([]string(nil), forms...)
}

// Contains reports whether word is in the word list.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.rank[word]
	return ok
}

// Rank returns the frequency rank of word, 0 being the most frequent.
func (l *Lexicon) Rank(word string) (int, bool) {
	r, ok := l.rank[word]
	return r, ok
}

// IsClosed reports whether word is a function word.
func (l *Lexicon) IsClosed(word string) bool {
	return l.closed[word]
}

// Closed returns the function words, sorted.
func (l *Lexicon) Closed() []string {
	out := make([]string, 0, len(l.closed))
	for w := range l.closed {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Words returns the word list in rank order.
func (l *Lexicon) Words() []string {
	return append([]string(nil), l.words...)
}

// Len returns the number of ranked words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Exceptions lists every exception entry, ordered by category then lemma.
func (l *Lexicon) Exceptions() []Exception {
	var out []Exception
	for _, cat := range pos.Categories {
		lemmas := make([]string, 0, len(l.forms[cat]))
		for lemma := range l.forms[cat] {
			lemmas = append(lemmas, lemma)
		}
		sort.Strings(lemmas)
		for _, lemma := range lemmas {
			out = append(out, Exception{
				Category: cat,
				Lemma:    lemma,
				Forms:    append([]string(nil), l.forms[cat][lemma]...),
			})
		}
	}
	return out
}

// Stats returns entry counts.
func (l *Lexicon) Stats() Stats {
	s := Stats{Words: len(l.words), Closed: len(l.closed)}
	for _, byForm := range l.exceptions {
		s.Exceptions += len(byForm)
	}
	return s
}
