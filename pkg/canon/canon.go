// Package canon normalizes free-form English text into a canonical lemmatized
// form and extracts noun-phrase-like chunks, for intent classifiers and
// search indexers.
package canon

import (
	"github.com/cognicore/canon/pkg/canon/chunk"
	"github.com/cognicore/canon/pkg/canon/lexicon"
	"github.com/cognicore/canon/pkg/canon/logging"
	"github.com/cognicore/canon/pkg/canon/normalize"
	"github.com/cognicore/canon/pkg/canon/pos"
	"github.com/cognicore/canon/pkg/canon/store"
)

// Canon is the main text normalization facade
type Canon struct {
	pipeline *normalize.Pipeline
	chunker  *chunk.Chunker
	store    store.Store
	logger   logging.Logger
}

// Options configures a Canon instance. Nil fields get defaults built on the
// embedded lexicon.
type Options struct {
	Pipeline *normalize.Pipeline
	Chunker  *chunk.Chunker
	Store    store.Store // closed by Close when set
	Logger   logging.Logger
}

// New creates a Canon instance with the given dependencies.
func New(opts Options) (*Canon, error) {
	c := &Canon{
		pipeline: opts.Pipeline,
		chunker:  opts.Chunker,
		store:    opts.Store,
		logger:   logging.OrNop(opts.Logger),
	}
	if c.pipeline == nil {
		lex, err := lexicon.Default()
		if err != nil {
			return nil, err
		}
		c.pipeline = normalize.NewDefaultPipeline(lex)
	}
	if c.chunker == nil {
		c.chunker = chunk.NewDefault()
	}
	c.pipeline.SetLogger(c.logger)
	return c, nil
}

// NewDefault creates a Canon instance with every default collaborator.
func NewDefault() (*Canon, error) {
	return New(Options{})
}

// Close cleanly shuts down the Canon instance
func (c *Canon) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

// Normalize returns the canonical form of raw: lower-case, ASCII, compounds
// split, numbers spelled out, punctuation removed and every word lemmatized.
// It does not fail with the default collaborators.
func (c *Canon) Normalize(raw string) (string, error) {
	out, err := c.pipeline.Process(raw)
	if err != nil {
		c.logger.Debug("normalize failed", "input", raw, "error", err)
		return "", err
	}
	c.logger.Debug("normalized", "input", raw, "output", out)
	return out, nil
}

// Trace runs Normalize and returns every intermediate stage output.
func (c *Canon) Trace(raw string) ([]normalize.StageResult, error) {
	return c.pipeline.Trace(raw)
}

// Chunk splits a sentence into single tokens and grammar-matched phrases.
func (c *Canon) Chunk(sentence string) ([]string, error) {
	chunks, err := c.chunker.Chunk(sentence)
	if err != nil {
		c.logger.Debug("chunk failed", "input", sentence, "error", err)
		return nil, err
	}
	c.logger.Debug("chunked", "input", sentence, "chunks", len(chunks))
	return chunks, nil
}

// Parse returns the chunk tree of a sentence.
func (c *Canon) Parse(sentence string) (*chunk.Node, error) {
	return c.chunker.Parse(sentence)
}

// CoarsePOS maps a Penn Treebank tag to the coarse category used for
// lemmatization.
func CoarsePOS(tag string) pos.Category {
	return pos.Coarse(tag)
}
