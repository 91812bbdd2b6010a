package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cognicore/canon/pkg/canon/pos"
)

func TestLoaderAllEmpty(t *testing.T) {
	loader := Loader{}

	comp, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Empty loader should succeed: %v", err)
	}
	defer comp.Close()

	if comp.Lexicon == nil || comp.Lexicon.Len() == 0 {
		t.Error("Should have the embedded lexicon")
	}
	if comp.Pipeline == nil || comp.Chunker == nil || comp.Grammar == nil {
		t.Error("Should have pipeline, chunker and grammar")
	}
	if comp.Store != nil {
		t.Error("Store should be nil without a database")
	}
}

func TestLoaderCustomFiles(t *testing.T) {
	dir := t.TempDir()
	words := writeFile(t, dir, "words.txt", "the\ncat\n")
	exc := writeFile(t, dir, "exc.yaml", "exceptions:\n  noun:\n    - lemma: mouse\n      forms: [mice]\n")

	comp, err := (&Loader{WordsPath: words, ExceptionsPath: exc}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Lexicon.Len() != 2 {
		t.Errorf("Lexicon has %d words, want 2", comp.Lexicon.Len())
	}
	if lemma, _ := comp.Lexicon.Exception(pos.Noun, "mice"); lemma != "mouse" {
		t.Errorf("Exception(noun, mice) = %q", lemma)
	}
	if _, ok := comp.Lexicon.Exception(pos.Verb, "went"); ok {
		t.Error("custom exceptions should replace the defaults")
	}
}

func TestLoaderWordsOnlyKeepsDefaultExceptions(t *testing.T) {
	words := writeFile(t, t.TempDir(), "words.txt", "go\n")

	comp, err := (&Loader{WordsPath: words}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lemma, _ := comp.Lexicon.Exception(pos.Verb, "went"); lemma != "go" {
		t.Errorf("Exception(verb, went) = %q, want go", lemma)
	}
}

func TestLoaderSeedsAndReusesDatabase(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	db := filepath.Join(dir, "canon.db")
	words := writeFile(t, dir, "words.txt", "alpha\nbeta\n")

	first, err := (&Loader{DBPath: db, WordsPath: words}).Load(ctx)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if first.Store == nil {
		t.Fatal("Store should be set when a database is configured")
	}
	first.Close()

	// The database now holds the seeded words; the embedded defaults are not used.
	second, err := (&Loader{DBPath: db}).Load(ctx)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	defer second.Close()

	if second.Lexicon.Len() != 2 || !second.Lexicon.Contains("beta") {
		t.Errorf("Lexicon words = %v, want [alpha beta]", second.Lexicon.Words())
	}
}

func TestLoaderErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := map[string]Loader{
		"missing config":     {ConfigPath: filepath.Join(dir, "nope.yaml")},
		"missing words":      {WordsPath: filepath.Join(dir, "nope.txt")},
		"missing exceptions": {ExceptionsPath: filepath.Join(dir, "nope.yaml")},
		"bad db path":        {DBPath: filepath.Join(dir, "no", "such", "dir", "x.db")},
	}
	for name, loader := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := loader.Load(ctx); err == nil {
				t.Error("expected error")
			}
		})
	}
}
