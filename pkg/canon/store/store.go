// Package store persists the lexical resources behind the normalizer: the
// ranked word list, irregular-form exceptions and the closed-class list.
// Normalization results are never stored.
package store

import (
	"context"
	"fmt"

	"github.com/cognicore/canon/pkg/canon/lexicon"
)

// Store is the interface for persisting lexical resources.
type Store interface {
	Close() error

	// Words returns the word list in rank order.
	Words(ctx context.Context) ([]string, error)
	// PutWords replaces the word list; position in words is the rank.
	PutWords(ctx context.Context, words []string) error

	// Exceptions returns every exception entry ordered by category and lemma.
	Exceptions(ctx context.Context) ([]lexicon.Exception, error)
	// PutException adds or replaces the forms of one lemma.
	PutException(ctx context.Context, e lexicon.Exception) error

	Closed(ctx context.Context) ([]string, error)
	PutClosed(ctx context.Context, words []string) error
}

// LoadLexicon builds a lexicon from the resources in st.
func LoadLexicon(ctx context.Context, st Store) (*lexicon.Lexicon, error) {
	words, err := st.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	exceptions, err := st.Exceptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exceptions: %w", err)
	}
	closed, err := st.Closed(ctx)
	if err != nil {
		return nil, fmt.Errorf("load closed class: %w", err)
	}

	lex := lexicon.New()
	lex.AddWords(words...)
	for _, e := range exceptions {
		lex.AddException(e.Category, e.Lemma, e.Forms)
	}
	lex.AddClosed(closed...)
	return lex, nil
}

// SaveLexicon writes every resource of lex to st, replacing the word list and
// the closed-class list.
func SaveLexicon(ctx context.Context, st Store, lex *lexicon.Lexicon) error {
	if err := st.PutWords(ctx, lex.Words()); err != nil {
		return fmt.Errorf("save words: %w", err)
	}
	for _, e := range lex.Exceptions() {
		if err := st.PutException(ctx, e); err != nil {
			return fmt.Errorf("save exception %s/%s: %w", e.Category, e.Lemma, err)
		}
	}
	if err := st.PutClosed(ctx, lex.Closed()); err != nil {
		return fmt.Errorf("save closed class: %w", err)
	}
	return nil
}
