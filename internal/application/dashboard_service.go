package application

import (
	"context"
	"fmt"
	"time"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/errors"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/logging"
)

// DashboardService serves the case list, customer list and the aggregated
// landing-page summary
type DashboardService struct {
	cases     domain.CaseStore
	customers domain.CustomerRepository
	quotes    domain.QuoteStore
	inventory *InventoryQueryService
	logger    *logging.Logger
	clock     func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	cases domain.CaseStore,
	customers domain.CustomerRepository,
	quotes domain.QuoteStore,
	inventory *InventoryQueryService,
	logger *logging.Logger,
) *DashboardService {
	return &DashboardService{
		cases:     cases,
		customers: customers,
		quotes:    quotes,
		inventory: inventory,
		logger:    logger.WithComponent("dashboard"),
		clock:     time.Now,
	}
}

// ListCases returns cases in dataset order, optionally filtered by status
func (s *DashboardService) ListCases(ctx context.Context, query ListCasesQuery) ([]*CaseDTO, error) {
	cases, err := s.cases.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	out := make([]*CaseDTO, 0, len(cases))
	for _, c := range cases {
		if query.Status != "" && c.Status != query.Status {
			continue
		}
		out = append(out, ToCaseDTO(c))
	}
	return out, nil
}

// GetCase returns one AOG case
func (s *DashboardService) GetCase(ctx context.Context, query GetCaseQuery) (*CaseDTO, error) {
	c, err := s.cases.FindByCaseID(ctx, query.CaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up case: %w", err)
	}
	if c == nil {
		return nil, errors.ErrNotFoundWithID("case", query.CaseID)
	}
	return ToCaseDTO(c), nil
}

// ListCustomers returns the contracted airline accounts
func (s *DashboardService) ListCustomers(ctx context.Context) ([]*CustomerDTO, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	out := make([]*CustomerDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, ToCustomerDTO(c))
	}
	return out, nil
}

// Summary builds the landing-page overview: global stock health, case
// counts, quote volume and value, and the headline financials
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummaryDTO, error) {
	global, err := s.inventory.GetGlobalMetrics(ctx)
	if err != nil {
		return nil, err
	}

	caseCounts, err := s.cases.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}

	quotes, err := s.quotes.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	quotedValue := 0
	for _, q := range quotes {
		quotedValue += q.TotalCost
	}

	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	financial, err := s.customers.FinancialSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read financial summary: %w", err)
	}

	return &DashboardSummaryDTO{
		Inventory:       global,
		CasesByStatus:   caseCounts,
		ActiveCases:     caseCounts[domain.CaseStatusActive],
		QuotesGenerated: len(quotes),
		QuotedValue:     quotedValue,
		Customers:       len(customers),
		Financial:       ToFinancialSummaryDTO(financial),
		GeneratedAt:     s.clock(),
	}, nil
}
