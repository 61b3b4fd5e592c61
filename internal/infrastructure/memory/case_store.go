package memory

import (
	"context"
	"sync"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
)

// CaseStore is an in-memory implementation of domain.CaseStore. Status
// updates live in a separate map so the loaded fixture records stay
// untouched.
type CaseStore struct {
	mu       sync.RWMutex
	byCaseID map[string]*domain.AOGCase
	ordered  []*domain.AOGCase
	statuses map[string]string
}

// NewCaseStore creates an empty store
func NewCaseStore() *CaseStore {
	return &CaseStore{
		byCaseID: make(map[string]*domain.AOGCase),
		statuses: make(map[string]string),
	}
}

// Load replaces the store contents with the given cases
func (s *CaseStore) Load(cases []*domain.AOGCase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byCaseID = make(map[string]*domain.AOGCase, len(cases))
	s.ordered = make([]*domain.AOGCase, 0, len(cases))
	s.statuses = make(map[string]string, len(cases))
	for _, c := range cases {
		if c == nil || c.CaseID == "" {
			continue
		}
		if _, exists := s.byCaseID[c.CaseID]; exists {
			continue
		}
		s.byCaseID[c.CaseID] = c
		s.ordered = append(s.ordered, c)
	}
}

// FindByCaseID returns the case with any status override applied, or nil
func (s *CaseStore) FindByCaseID(_ context.Context, caseID string) (*domain.AOGCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byCaseID[caseID]
	if !ok {
		return nil, nil
	}
	return s.withStatus(c), nil
}

// FindAll returns all cases in load order with status overrides applied
func (s *CaseStore) FindAll(_ context.Context) ([]*domain.AOGCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.AOGCase, 0, len(s.ordered))
	for _, c := range s.ordered {
		out = append(out, s.withStatus(c))
	}
	return out, nil
}

// SetStatus records a status for the case id. The write is idempotent and
// does not require the case to exist, matching the quoting flow where a
// quote may reference a case id the fixtures never listed.
func (s *CaseStore) SetStatus(_ context.Context, caseID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[caseID] = status
	return nil
}

// CountByStatus tallies cases per effective status
func (s *CaseStore) CountByStatus(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, c := range s.ordered {
		counts[s.effectiveStatus(c)]++
	}
	return counts, nil
}

func (s *CaseStore) withStatus(c *domain.AOGCase) *domain.AOGCase {
	out := *c
	out.Status = s.effectiveStatus(c)
	return &out
}

func (s *CaseStore) effectiveStatus(c *domain.AOGCase) string {
	if status, ok := s.statuses[c.CaseID]; ok {
		return status
	}
	if c.Status != "" {
		return c.Status
	}
	return domain.CaseStatusActive
}
