package memory

import (
	"context"
	"sync"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
)

// CatalogRepository is an in-memory implementation of
// domain.CatalogRepository holding the parts catalog and its pricing table
type CatalogRepository struct {
	mu      sync.RWMutex
	entries []*domain.CatalogEntry
	pricing domain.PricingModel
}

// NewCatalogRepository creates an empty repository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{pricing: domain.PricingModel{}}
}

// Load replaces the catalog entries and pricing table
func (r *CatalogRepository) Load(entries []*domain.CatalogEntry, pricing domain.PricingModel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make([]*domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		r.entries = append(r.entries, e)
	}
	if pricing == nil {
		pricing = domain.PricingModel{}
	}
	r.pricing = pricing
}

// Entries returns the catalog in load order
func (r *CatalogRepository) Entries(_ context.Context) ([]*domain.CatalogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.CatalogEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// Pricing returns the pricing table
func (r *CatalogRepository) Pricing(_ context.Context) (domain.PricingModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pricing, nil
}
