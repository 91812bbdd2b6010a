package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cognicore/canon/pkg/canon/lexicon"
	"github.com/cognicore/canon/pkg/canon/pos"
	"github.com/cognicore/canon/pkg/canon/store"
	"github.com/cognicore/canon/pkg/canon/store/sqlite"
)

func TestBuildDefaults(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := buildConfig{
		dbPath:     filepath.Join(dir, "lex.db"),
		exportPath: filepath.Join(dir, "exceptions.yaml"),
	}

	stats, err := build(ctx, cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	def, _ := lexicon.Default()
	if stats != def.Stats() {
		t.Errorf("Stats = %+v, want %+v", stats, def.Stats())
	}

	// The export must be readable back as an exception table.
	data, err := os.ReadFile(cfg.exportPath)
	if err != nil {
		t.Fatal(err)
	}
	lex := lexicon.New()
	if err := lex.ParseExceptions(data); err != nil {
		t.Fatalf("exported YAML does not parse: %v", err)
	}
	if lemma, _ := lex.Exception(pos.Verb, "went"); lemma != "go" {
		t.Errorf("exported exceptions lost went->go")
	}
	if !lex.IsClosed("the") {
		t.Error("exported closed class lost")
	}
}

func TestBuildWithCorpus(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	words := filepath.Join(dir, "words.txt")
	os.WriteFile(words, []byte("the\ntrip\n"), 0o644)
	corpus := filepath.Join(dir, "corpus.html")
	os.WriteFile(corpus, []byte("<p>The Málaga trip. Málaga again, málaga! Sevilla once.</p><script>ignored ignored</script>"), 0o644)

	cfg := buildConfig{
		dbPath:     filepath.Join(dir, "lex.db"),
		wordsPath:  words,
		corpusPath: corpus,
		minCount:   2,
	}
	stats, err := build(ctx, cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if stats.Words != 3 {
		t.Errorf("Words = %d, want 3 (the, trip, malaga)", stats.Words)
	}

	st, err := sqlite.OpenSQLite(ctx, cfg.dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	lex, err := store.LoadLexicon(ctx, st)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(lex.Words(), ","); got != "the,trip,malaga" {
		t.Errorf("Words = %s", got)
	}
}

func TestBuildMissingInputs(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "lex.db")

	for name, cfg := range map[string]buildConfig{
		"words":      {dbPath: db, wordsPath: filepath.Join(dir, "none.txt")},
		"exceptions": {dbPath: db, exceptionsPath: filepath.Join(dir, "none.yaml")},
		"corpus":     {dbPath: db, corpusPath: filepath.Join(dir, "none.txt")},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := build(context.Background(), cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}
