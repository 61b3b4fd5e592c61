package memory

import (
	"context"
	"sync"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
)

// InventoryRepository is an in-memory implementation of
// domain.InventoryRepository. Records are indexed by part number; FindAll
// preserves load order.
type InventoryRepository struct {
	mu      sync.RWMutex
	byPart  map[string]*domain.PartStockRecord
	ordered []*domain.PartStockRecord
}

// NewInventoryRepository creates an empty repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		byPart: make(map[string]*domain.PartStockRecord),
	}
}

// Load replaces the repository contents with the given records
func (r *InventoryRepository) Load(records []*domain.PartStockRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPart = make(map[string]*domain.PartStockRecord, len(records))
	r.ordered = make([]*domain.PartStockRecord, 0, len(records))
	for _, rec := range records {
		if rec == nil || rec.PartNumber == "" {
			continue
		}
		if _, exists := r.byPart[rec.PartNumber]; exists {
			continue
		}
		r.byPart[rec.PartNumber] = rec
		r.ordered = append(r.ordered, rec)
	}
}

// FindByPartNumber returns the record for a part, or nil when untracked
func (r *InventoryRepository) FindByPartNumber(_ context.Context, partNumber string) (*domain.PartStockRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byPart[partNumber], nil
}

// FindAll returns all records in load order
func (r *InventoryRepository) FindAll(_ context.Context) ([]*domain.PartStockRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.PartStockRecord, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}
