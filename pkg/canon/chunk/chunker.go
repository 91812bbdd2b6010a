package chunk

import (
	"fmt"

	"github.com/cognicore/canon/pkg/canon/internalerr"
	"github.com/cognicore/canon/pkg/canon/pos"
	"github.com/cognicore/canon/pkg/canon/tokenize"
)

// Stage names reported in *internalerr.StageError.
const (
	StageTokenize = "tokenize"
	StageTag      = "tag"
)

// Chunker runs tokenize → tag → parse → flatten over a sentence.
// It is not safe for concurrent use.
type Chunker struct {
	tokenizer tokenize.Tokenizer
	tagger    pos.Tagger
	grammar   *Grammar
}

// New creates a chunker. A nil grammar selects DefaultGrammar.
func New(tokenizer tokenize.Tokenizer, tagger pos.Tagger, grammar *Grammar) *Chunker {
	if grammar == nil {
		grammar = DefaultGrammar()
	}
	return &Chunker{tokenizer: tokenizer, tagger: tagger, grammar: grammar}
}

// NewDefault uses the Treebank tokenizer, the perceptron tagger and the
// default grammar.
func NewDefault() *Chunker {
	return New(tokenize.NewTreebank(), pos.NewPerceptronTagger(), DefaultGrammar())
}

// Grammar returns the grammar in use.
func (c *Chunker) Grammar() *Grammar { return c.grammar }

// Chunk returns the sentence's chunks in order: single tokens and
// space-joined phrases.
func (c *Chunker) Chunk(sentence string) ([]string, error) {
	tree, err := c.Parse(sentence)
	if err != nil {
		return nil, err
	}
	return Flatten(tree), nil
}

// Parse returns the chunk tree of the sentence.
func (c *Chunker) Parse(sentence string) (*Node, error) {
	tokens, err := c.tokenizer.Tokenize(sentence)
	if err != nil {
		return nil, internalerr.Wrap(StageTokenize, sentence, err)
	}
	if len(tokens) == 0 {
		return &Node{Label: RootLabel}, nil
	}

	tagged, err := c.tagger.Tag(tokens)
	if err != nil {
		return nil, internalerr.Wrap(StageTag, sentence, err)
	}
	if len(tagged) != len(tokens) {
		return nil, internalerr.Wrap(StageTag, sentence,
			fmt.Errorf("%w: %d tokens, %d tags", internalerr.ErrMisaligned, len(tokens), len(tagged)))
	}
	return c.grammar.Parse(tagged), nil
}
