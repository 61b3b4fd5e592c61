package application

import (
	"context"
	"fmt"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/api"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/errors"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/logging"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/metrics"
)

// InventoryQueryService answers stock health questions over the loaded
// inventory dataset. All computations are read-only.
type InventoryQueryService struct {
	repo    domain.InventoryRepository
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewInventoryQueryService creates a new InventoryQueryService. The metrics
// sink may be nil.
func NewInventoryQueryService(repo domain.InventoryRepository, logger *logging.Logger, m *metrics.Metrics) *InventoryQueryService {
	return &InventoryQueryService{
		repo:    repo,
		logger:  logger.WithComponent("inventory-query"),
		metrics: m,
	}
}

// GetPartMetrics computes stock health for one part. An untracked part is a
// not-found error, distinct from a tracked part with zero stock.
func (s *InventoryQueryService) GetPartMetrics(ctx context.Context, query GetPartMetricsQuery) (*PartMetricsDTO, error) {
	record, err := s.repo.FindByPartNumber(ctx, query.PartNumber)
	if err != nil {
		s.logger.Error("Failed to look up part", "part_number", query.PartNumber, "error", err)
		return nil, fmt.Errorf("failed to look up part: %w", err)
	}

	if record == nil {
		s.recordLookup(false)
		return nil, errors.ErrNotFoundWithID("part", query.PartNumber)
	}
	s.recordLookup(true)

	return ToPartMetricsDTO(record.ComputeMetrics()), nil
}

// ListPartMetrics computes stock health for every tracked part, paginated
// in dataset order
func (s *InventoryQueryService) ListPartMetrics(ctx context.Context, page api.PageRequest) (api.PageResponse[*PartMetricsDTO], error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list inventory", "error", err)
		return api.PageResponse[*PartMetricsDTO]{}, fmt.Errorf("failed to list inventory: %w", err)
	}

	all := make([]*PartMetricsDTO, 0, len(records))
	for _, r := range records {
		if dto := ToPartMetricsDTO(r.ComputeMetrics()); dto != nil {
			all = append(all, dto)
		}
	}

	return api.Paginate(all, page), nil
}

// GetLowStock returns every part currently in critical or low status, in
// dataset order
func (s *InventoryQueryService) GetLowStock(ctx context.Context) ([]*PartMetricsDTO, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to scan inventory for low stock", "error", err)
		return nil, fmt.Errorf("failed to scan inventory: %w", err)
	}

	out := make([]*PartMetricsDTO, 0)
	for _, r := range records {
		m := r.ComputeMetrics()
		if m == nil {
			continue
		}
		if m.Status == domain.StatusCritical || m.Status == domain.StatusLow {
			out = append(out, ToPartMetricsDTO(m))
		}
	}
	return out, nil
}

// GetGlobalMetrics aggregates stock health across the whole dataset. An
// empty dataset yields zeroed metrics, not an error.
func (s *InventoryQueryService) GetGlobalMetrics(ctx context.Context) (*GlobalMetricsDTO, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to aggregate inventory", "error", err)
		return nil, fmt.Errorf("failed to aggregate inventory: %w", err)
	}

	return ToGlobalMetricsDTO(domain.ComputeGlobalMetrics(records)), nil
}

func (s *InventoryQueryService) recordLookup(found bool) {
	if s.metrics != nil {
		s.metrics.RecordInventoryLookup(found)
	}
}
