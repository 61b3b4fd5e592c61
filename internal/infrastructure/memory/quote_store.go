package memory

import (
	"context"
	"sync"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
)

// QuoteStore is an in-memory implementation of domain.QuoteStore. All
// operations take the same mutex so check-then-insert is atomic and the
// at-most-one-quote-per-case invariant holds under concurrent callers.
type QuoteStore struct {
	mu       sync.Mutex
	byCaseID map[string]*domain.Quote
	ordered  []*domain.Quote
}

// NewQuoteStore creates an empty store
func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		byCaseID: make(map[string]*domain.Quote),
	}
}

// InsertIfAbsent stores the quote unless one already exists for its case id.
// Returns the stored quote and whether this call inserted it.
func (s *QuoteStore) InsertIfAbsent(_ context.Context, quote *domain.Quote) (*domain.Quote, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byCaseID[quote.CaseID]; ok {
		return existing, false, nil
	}

	s.byCaseID[quote.CaseID] = quote
	s.ordered = append(s.ordered, quote)
	return quote, true, nil
}

// FindByCaseID returns the quote for a case, or nil when none exists
func (s *QuoteStore) FindByCaseID(_ context.Context, caseID string) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byCaseID[caseID], nil
}

// FindAll returns all quotes in insertion order
func (s *QuoteStore) FindAll(_ context.Context) ([]*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Quote, len(s.ordered))
	copy(out, s.ordered)
	return out, nil
}

// Remove deletes the quote for a case. Removing an absent case is a no-op.
func (s *QuoteStore) Remove(_ context.Context, caseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byCaseID[caseID]; !ok {
		return nil
	}
	delete(s.byCaseID, caseID)
	for i, q := range s.ordered {
		if q.CaseID == caseID {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored quotes
func (s *QuoteStore) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ordered), nil
}
