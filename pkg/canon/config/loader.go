package config

import (
	"context"
	"fmt"

	"github.com/cognicore/canon/pkg/canon/chunk"
	"github.com/cognicore/canon/pkg/canon/lexicon"
	"github.com/cognicore/canon/pkg/canon/normalize"
	"github.com/cognicore/canon/pkg/canon/pos"
	"github.com/cognicore/canon/pkg/canon/store"
	"github.com/cognicore/canon/pkg/canon/store/sqlite"
	"github.com/cognicore/canon/pkg/canon/tokenize"
)

// Loader loads all configuration files and constructs components.
// Paths set on the Loader override the ones in the configuration file.
type Loader struct {
	ConfigPath     string
	WordsPath      string
	ExceptionsPath string
	DBPath         string
}

// Components holds all loaded configuration components
type Components struct {
	Config   *Config
	Lexicon  *lexicon.Lexicon
	Grammar  *chunk.Grammar
	Pipeline *normalize.Pipeline
	Chunker  *chunk.Chunker
	Store    store.Store // nil unless a database is configured
}

// Close releases the store, if any.
func (c *Components) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

// Load reads all configuration files and returns initialized components
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	cfg := Default()
	if l.ConfigPath != "" {
		loaded, err := LoadConfig(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if l.WordsPath != "" {
		cfg.Resources.Words = l.WordsPath
	}
	if l.ExceptionsPath != "" {
		cfg.Resources.Exceptions = l.ExceptionsPath
	}
	if l.DBPath != "" {
		cfg.Resources.DB = l.DBPath
	}

	comp := &Components{Config: cfg}

	// Lexicon: database, then files, then embedded defaults
	if cfg.Resources.DB != "" {
		st, err := sqlite.OpenSQLite(ctx, cfg.Resources.DB)
		if err != nil {
			return nil, fmt.Errorf("open resource db: %w", err)
		}
		comp.Store = st

		lex, err := lexiconFromStore(ctx, st, cfg.Resources)
		if err != nil {
			st.Close()
			return nil, err
		}
		comp.Lexicon = lex
	} else {
		lex, err := lexiconFromFiles(cfg.Resources)
		if err != nil {
			return nil, err
		}
		comp.Lexicon = lex
	}

	grammar, err := cfg.BuildGrammar()
	if err != nil {
		comp.Close()
		return nil, fmt.Errorf("build grammar: %w", err)
	}
	comp.Grammar = grammar

	comp.Pipeline = normalize.NewDefaultPipeline(comp.Lexicon)
	comp.Chunker = chunk.New(tokenize.NewTreebank(), pos.NewPerceptronTagger(), grammar)

	return comp, nil
}

// lexiconFromFiles loads the configured word list and exception table,
// using the embedded default for whichever is not set.
func lexiconFromFiles(res Resources) (*lexicon.Lexicon, error) {
	if res.Words == "" && res.Exceptions == "" {
		return lexicon.Default()
	}

	lex := lexicon.New()
	if res.Words != "" {
		if err := lex.LoadWords(res.Words); err != nil {
			return nil, fmt.Errorf("load words: %w", err)
		}
	} else {
		def, err := lexicon.Default()
		if err != nil {
			return nil, err
		}
		lex.AddWords(def.Words()...)
	}

	if res.Exceptions != "" {
		if err := lex.LoadExceptions(res.Exceptions); err != nil {
			return nil, fmt.Errorf("load exceptions: %w", err)
		}
	} else if err := lex.ParseExceptions(lexicon.DefaultExceptions()); err != nil {
		return nil, fmt.Errorf("load exceptions: %w", err)
	}
	return lex, nil
}

// lexiconFromStore reads the lexicon from st. An empty database is seeded
// from the files (or embedded defaults) first.
func lexiconFromStore(ctx context.Context, st store.Store, res Resources) (*lexicon.Lexicon, error) {
	words, err := st.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	if len(words) == 0 {
		seed, err := lexiconFromFiles(res)
		if err != nil {
			return nil, err
		}
		if err := store.SaveLexicon(ctx, st, seed); err != nil {
			return nil, fmt.Errorf("seed resource db: %w", err)
		}
		return seed, nil
	}
	return store.LoadLexicon(ctx, st)
}
