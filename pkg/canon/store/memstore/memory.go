package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/canon/pkg/canon/lexicon"
	"github.com/cognicore/canon/pkg/canon/pos"
	"github.com/cognicore/canon/pkg/canon/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu         sync.RWMutex
	words      []string
	exceptions map[exceptionKey][]string
	closed     map[string]struct{}
}

type exceptionKey struct {
	cat   pos.Category
	lemma string
}

var _ store.Store = (*Store)(nil)

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		exceptions: make(map[exceptionKey][]string),
		closed:     make(map[string]struct{}),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Words returns the word list in rank order.
func (s *Store) Words(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.words...), nil
}

// PutWords replaces the word list.
func (s *Store) PutWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = append([]string(nil), words...)
	return nil
}

// Exceptions returns all exception entries.
func (s *Store) Exceptions(ctx context.Context) ([]lexicon.Exception, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]lexicon.Exception, 0, len(s.exceptions))
	for k, forms := range s.exceptions {
		out = append(out, lexicon.Exception{
			Category: k.cat,
			Lemma:    k.lemma,
			Forms:    append([]string(nil), forms...),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Lemma < out[j].Lemma
	})
	return out, nil
}

// PutException adds or replaces one lemma's forms.
func (s *Store) PutException(ctx context.Context, e lexicon.Exception) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exceptions[exceptionKey{e.Category, e.Lemma}] = append([]string(nil), e.Forms...)
	return nil
}

// Closed returns the closed-class words, sorted.
func (s *Store) Closed(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.closed))
	for w := range s.closed {
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}

// PutClosed replaces the closed-class list.
func (s *Store) PutClosed(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = make(map[string]struct{}, len(words))
	for _, w := range words {
		s.closed[w] = struct{}{}
	}
	return nil
}
