package application

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/errors"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/logging"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/metrics"
)

// Placeholder values used when a quote request omits the part fields. The
// request still prices through the degraded branch instead of failing.
const (
	unknownPartName   = "Unknown Part"
	unknownPartNumber = "N/A"
)

// QuoteService prices AOG part requests. Catalog and pricing data are
// preferred; bounded randomization fills in when data is missing. At most
// one quote exists per case id regardless of how many times it is requested.
type QuoteService struct {
	catalog   domain.CatalogRepository
	inventory domain.InventoryRepository
	quotes    domain.QuoteStore
	cases     domain.CaseStore
	logger    *logging.Logger
	metrics   *metrics.Metrics

	mu    sync.Mutex
	rng   *rand.Rand
	clock func() time.Time
}

// NewQuoteService creates a new QuoteService. The random source is injected
// so pricing fallbacks are reproducible under test; pass a time-seeded one
// in production. The metrics sink may be nil.
func NewQuoteService(
	catalog domain.CatalogRepository,
	inventory domain.InventoryRepository,
	quotes domain.QuoteStore,
	cases domain.CaseStore,
	rng *rand.Rand,
	logger *logging.Logger,
	m *metrics.Metrics,
) *QuoteService {
	return &QuoteService{
		catalog:   catalog,
		inventory: inventory,
		quotes:    quotes,
		cases:     cases,
		rng:       rng,
		clock:     time.Now,
		logger:    logger.WithComponent("quote-service"),
		metrics:   m,
	}
}

// GenerateQuote prices a part request for a case. Repeated calls for the
// same case id return the stored quote unchanged; the insert is atomic so
// concurrent first calls still produce exactly one quote.
func (s *QuoteService) GenerateQuote(ctx context.Context, cmd GenerateQuoteCommand) (*QuoteDTO, error) {
	existing, err := s.quotes.FindByCaseID(ctx, cmd.CaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing quotes: %w", err)
	}
	if existing != nil {
		s.logger.Info("Returning existing quote", "case_id", cmd.CaseID, "quote_id", existing.QuoteID)
		return ToQuoteDTO(existing), nil
	}

	quote, err := s.buildQuote(ctx, cmd)
	if err != nil {
		return nil, err
	}

	stored, inserted, err := s.quotes.InsertIfAbsent(ctx, quote)
	if err != nil {
		return nil, fmt.Errorf("failed to store quote: %w", err)
	}
	if !inserted {
		// Lost a race with a concurrent call for the same case id
		s.logger.Info("Returning existing quote", "case_id", cmd.CaseID, "quote_id", stored.QuoteID)
		return ToQuoteDTO(stored), nil
	}

	if err := s.cases.SetStatus(ctx, cmd.CaseID, domain.CaseStatusQuoted); err != nil {
		s.logger.Error("Failed to mark case quoted", "case_id", cmd.CaseID, "error", err)
	}

	if s.metrics != nil {
		s.metrics.RecordQuoteGenerated(string(quote.PricingSource), quote.TotalCost)
	}
	s.logger.Info("Generated quote",
		"case_id", cmd.CaseID,
		"quote_id", quote.QuoteID,
		"part_number", quote.PartNumber,
		"pricing_source", quote.PricingSource,
		"total_cost", quote.TotalCost,
	)

	return ToQuoteDTO(stored), nil
}

func (s *QuoteService) buildQuote(ctx context.Context, cmd GenerateQuoteCommand) (*domain.Quote, error) {
	entries, err := s.catalog.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	pricing, err := s.catalog.Pricing(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing: %w", err)
	}

	partNeeded := cmd.PartNeeded
	if partNeeded == "" {
		partNeeded = unknownPartName
	}
	partNumber := cmd.PartNumber
	if partNumber == "" {
		partNumber = unknownPartNumber
	}

	entry := domain.MatchCatalog(entries, cmd.PartNumber, cmd.PartNeeded)

	var breakdown domain.CostBreakdown
	var deliveryTime string
	var source domain.PricingSource

	s.mu.Lock()
	switch {
	case entry != nil:
		if regionPricing, ok := pricing.Region(entry.PartNumber, domain.PricingRegionLondon); ok {
			breakdown = domain.CatalogBreakdown(regionPricing)
			deliveryTime = domain.ClassifyLeadTime(entry.LeadTime)
			source = domain.PricingSourceCatalog
		} else {
			breakdown = domain.EstimatedBreakdown(s.rng)
			deliveryTime = domain.DeliveryNFO
			source = domain.PricingSourceEstimated
		}
	default:
		breakdown = domain.DegradedBreakdown(s.rng)
		deliveryTime = domain.DeliveryNFO
		source = domain.PricingSourceDegraded
	}

	now := s.clock()
	quoteID := domain.NewQuoteID(now, s.rng)
	confidence := domain.NewConfidenceScore(s.rng)
	advantage := domain.NewCompetitiveAdvantage(s.rng)
	s.mu.Unlock()

	quote := &domain.Quote{
		QuoteID:              quoteID,
		CaseID:               cmd.CaseID,
		Airline:              cmd.Airline,
		Aircraft:             cmd.Aircraft,
		PartNeeded:           partNeeded,
		PartNumber:           partNumber,
		Breakdown:            breakdown,
		TotalCost:            breakdown.Total(),
		DeliveryTime:         deliveryTime,
		RealDataUsed:         entry != nil,
		PricingSource:        source,
		ConfidenceScore:      confidence,
		CompetitiveAdvantage: advantage,
		Timestamp:            now,
	}

	if err := s.crossReferenceInventory(ctx, cmd.PartNumber, quote); err != nil {
		return nil, err
	}

	return quote, nil
}

// crossReferenceInventory fills in the sourcing fields from current stock.
// An untracked part defaults to the primary hub with availability unknown.
func (s *QuoteService) crossReferenceInventory(ctx context.Context, partNumber string, quote *domain.Quote) error {
	record, err := s.inventory.FindByPartNumber(ctx, partNumber)
	if err != nil {
		return fmt.Errorf("failed to cross-reference inventory: %w", err)
	}

	m := record.ComputeMetrics()
	quote.InventoryStatus = m

	if m == nil {
		quote.SourceHub = domain.PrimaryHub
		quote.RecommendedSource = domain.PrimaryHub
		quote.InventoryAvailability = "Unknown - part not tracked in inventory"
		return nil
	}

	if len(m.BestHubs) > 0 {
		best := m.BestHubs[0]
		quote.SourceHub = best.Hub
		quote.RecommendedSource = best.Hub
		quote.InventoryAvailability = fmt.Sprintf("%d units available at %s", best.Available, best.Hub)
		return nil
	}

	quote.SourceHub = domain.PrimaryHub
	quote.RecommendedSource = domain.PrimaryHub
	if m.NextArrivalDate != "" {
		quote.InventoryAvailability = fmt.Sprintf("Out of stock - next arrival %s", m.NextArrivalDate)
	} else {
		quote.InventoryAvailability = "Out of stock - lead time required"
	}
	return nil
}

// GetQuote returns the stored quote for a case
func (s *QuoteService) GetQuote(ctx context.Context, query GetQuoteQuery) (*QuoteDTO, error) {
	quote, err := s.quotes.FindByCaseID(ctx, query.CaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up quote: %w", err)
	}
	if quote == nil {
		return nil, errors.ErrNotFoundWithID("quote", query.CaseID)
	}
	return ToQuoteDTO(quote), nil
}

// ListQuotes returns every stored quote in generation order
func (s *QuoteService) ListQuotes(ctx context.Context) ([]*QuoteDTO, error) {
	quotes, err := s.quotes.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return ToQuoteDTOs(quotes), nil
}

// DeleteQuote removes the quote for a case. The case itself keeps its
// quoted status; a new quote can then be generated for it.
func (s *QuoteService) DeleteQuote(ctx context.Context, query GetQuoteQuery) error {
	quote, err := s.quotes.FindByCaseID(ctx, query.CaseID)
	if err != nil {
		return fmt.Errorf("failed to look up quote: %w", err)
	}
	if quote == nil {
		return errors.ErrNotFoundWithID("quote", query.CaseID)
	}

	if err := s.quotes.Remove(ctx, query.CaseID); err != nil {
		return fmt.Errorf("failed to remove quote: %w", err)
	}

	s.logger.Info("Removed quote", "case_id", query.CaseID, "quote_id", quote.QuoteID)
	return nil
}
