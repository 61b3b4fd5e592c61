package memory

import (
	"context"
	"sync"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
)

// CustomerRepository is an in-memory implementation of
// domain.CustomerRepository
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []*domain.Customer
	summary   *domain.FinancialSummary
}

// NewCustomerRepository creates an empty repository
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// Load replaces the customer list and financial summary
func (r *CustomerRepository) Load(customers []*domain.Customer, summary *domain.FinancialSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers = make([]*domain.Customer, 0, len(customers))
	for _, c := range customers {
		if c == nil {
			continue
		}
		r.customers = append(r.customers, c)
	}
	r.summary = summary
}

// FindAll returns all customers in load order
func (r *CustomerRepository) FindAll(_ context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

// FinancialSummary returns the loaded summary, or nil when the dataset was
// missing
func (r *CustomerRepository) FinancialSummary(_ context.Context) (*domain.FinancialSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.summary, nil
}
