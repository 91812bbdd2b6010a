package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/canon/pkg/canon/extract"
	"github.com/cognicore/canon/pkg/canon/fold"
	"github.com/cognicore/canon/pkg/canon/lexicon"
	"github.com/cognicore/canon/pkg/canon/segment"
	"github.com/cognicore/canon/pkg/canon/store"
	"github.com/cognicore/canon/pkg/canon/store/sqlite"
)

// buildConfig holds the inputs of one database build.
type buildConfig struct {
	dbPath         string
	wordsPath      string
	exceptionsPath string
	corpusPath     string
	minCount       int
	exportPath     string
}

func main() {
	var cfg buildConfig
	flag.StringVar(&cfg.dbPath, "db", "", "Resource database to create or replace (required)")
	flag.StringVar(&cfg.wordsPath, "words", "", "Ranked word list, one word per line (default: embedded)")
	flag.StringVar(&cfg.exceptionsPath, "exceptions", "", "Exceptions YAML (default: embedded)")
	flag.StringVar(&cfg.corpusPath, "corpus", "", "Text or HTML corpus whose unknown words are appended by frequency")
	flag.IntVar(&cfg.minCount, "min-count", 2, "Minimum corpus frequency for a new word")
	flag.StringVar(&cfg.exportPath, "export", "", "Also write the exception table as YAML to this path")
	flag.Parse()

	if cfg.dbPath == "" {
		log.Fatal("--db required")
	}

	stats, err := build(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	out, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(out))
}

func build(ctx context.Context, cfg buildConfig) (lexicon.Stats, error) {
	lex, err := baseLexicon(cfg)
	if err != nil {
		return lexicon.Stats{}, err
	}

	if cfg.corpusPath != "" {
		added, err := addCorpusWords(lex, cfg.corpusPath, cfg.minCount)
		if err != nil {
			return lexicon.Stats{}, fmt.Errorf("corpus: %w", err)
		}
		log.Printf("Added %d corpus words", added)
	}

	st, err := sqlite.OpenSQLite(ctx, cfg.dbPath)
	if err != nil {
		return lexicon.Stats{}, err
	}
	defer st.Close()

	if err := store.SaveLexicon(ctx, st, lex); err != nil {
		return lexicon.Stats{}, err
	}

	if cfg.exportPath != "" {
		if err := exportExceptions(ctx, st, cfg.exportPath); err != nil {
			return lexicon.Stats{}, fmt.Errorf("export: %w", err)
		}
	}
	return lex.Stats(), nil
}

func baseLexicon(cfg buildConfig) (*lexicon.Lexicon, error) {
	lex := lexicon.New()

	words := lexicon.DefaultWords()
	if cfg.wordsPath != "" {
		data, err := os.ReadFile(cfg.wordsPath)
		if err != nil {
			return nil, err
		}
		words = data
	}
	if err := lex.ParseWords(strings.NewReader(string(words))); err != nil {
		return nil, err
	}

	exceptions := lexicon.DefaultExceptions()
	if cfg.exceptionsPath != "" {
		data, err := os.ReadFile(cfg.exceptionsPath)
		if err != nil {
			return nil, err
		}
		exceptions = data
	}
	if err := lex.ParseExceptions(exceptions); err != nil {
		return nil, err
	}
	return lex, nil
}

// addCorpusWords counts the words of a corpus and appends the unknown ones
// seen at least minCount times, most frequent first.
func addCorpusWords(lex *lexicon.Lexicon, path string, minCount int) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	text := string(data)
	if strings.Contains(text, "<") {
		text = extract.String(text)
	}
	text = fold.Accents(fold.Lower(text))

	counts := make(map[string]int)
	for _, piece := range segment.Pieces(text) {
		w := strings.Trim(piece, "'")
		if len(w) < 2 || lex.Contains(w) || isDigits(w) {
			continue
		}
		counts[w]++
	}

	type wordCount struct {
		word  string
		count int
	}
	var ranked []wordCount
	for w, c := range counts {
		if c >= minCount {
			ranked = append(ranked, wordCount{w, c})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	for _, wc := range ranked {
		lex.AddWords(wc.word)
	}
	return len(ranked), nil
}

// exportExceptions writes the stored exception table in the format
// lexicon.ParseExceptions reads.
func exportExceptions(ctx context.Context, st store.Store, path string) error {
	entries, err := st.Exceptions(ctx)
	if err != nil {
		return err
	}
	closed, err := st.Closed(ctx)
	if err != nil {
		return err
	}

	type entry struct {
		Lemma string   `yaml:"lemma"`
		Forms []string `yaml:"forms,flow"`
	}
	file := struct {
		Exceptions map[string][]entry `yaml:"exceptions"`
		Closed     []string           `yaml:"closed,flow"`
	}{
		Exceptions: make(map[string][]entry),
		Closed:     closed,
	}
	for _, e := range entries {
		cat := e.Category.String()
		file.Exceptions[cat] = append(file.Exceptions[cat], entry{Lemma: e.Lemma, Forms: e.Forms})
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
