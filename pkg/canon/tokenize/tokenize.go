// Package tokenize splits sentences into word tokens for the chunker.
package tokenize

import (
	"strings"

	"github.com/jdkato/prose/tokenize"
)

// Tokenizer splits a sentence into tokens.
type Tokenizer interface {
	Tokenize(sentence string) ([]string, error)
}

// Treebank tokenizes with the Penn Treebank conventions: punctuation is split
// off and contractions are separated ("don't" -> "do", "n't").
type Treebank struct {
	tok *tokenize.TreebankWordTokenizer
}

// NewTreebank returns the default tokenizer.
func NewTreebank() *Treebank {
	return &Treebank{tok: tokenize.NewTreebankWordTokenizer()}
}

// Tokenize implements Tokenizer. It never fails.
func (t *Treebank) Tokenize(sentence string) ([]string, error) {
	if strings.TrimSpace(sentence) == "" {
		return nil, nil
	}
	raw := t.tok.Tokenize(sentence)
	tokens := raw[:0]
	for _, tok := range raw {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

// Func adapts a plain function to the Tokenizer interface.
type Func func(sentence string) ([]string, error)

// Tokenize implements Tokenizer.
func (f Func) Tokenize(sentence string) ([]string, error) { return f(sentence) }
