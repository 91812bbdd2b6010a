package pos

import (
	"github.com/jdkato/prose/tag"
)

// TaggedToken is a token with its fine-grained part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tagger assigns one tag per token, preserving order.
type Tagger interface {
	Tag(tokens []string) ([]TaggedToken, error)
}

// Split turns one tagging result into two parallel sequences: the tokens and
// their coarse categories.
func Split(tagged []TaggedToken) ([]string, []Category) {
	tokens := make([]string, len(tagged))
	cats := make([]Category, len(tagged))
	for i, tt := range tagged {
		tokens[i] = tt.Text
		cats[i] = Coarse(tt.Tag)
	}
	return tokens, cats
}

// PerceptronTagger tags tokens with the averaged perceptron Penn Treebank
// model shipped with prose. It is not safe for concurrent use.
type PerceptronTagger struct {
	model *tag.PerceptronTagger
}

// NewPerceptronTagger loads the embedded perceptron model.
func NewPerceptronTagger() *PerceptronTagger {
	return &PerceptronTagger{model: tag.NewPerceptronTagger()}
}

// Tag implements Tagger.
func (t *PerceptronTagger) Tag(tokens []string) ([]TaggedToken, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]TaggedToken, 0, len(tokens))
	for _, tok := range t.model.Tag(tokens) {
		out = append(out, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}

// TaggerFunc adapts a plain function to the Tagger interface.
type TaggerFunc func(tokens []string) ([]TaggedToken, error)

// Tag implements Tagger.
func (f TaggerFunc) Tag(tokens []string) ([]TaggedToken, error) { return f(tokens) }
