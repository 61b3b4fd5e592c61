package application

import "github.com/srourslaw/bh-worldwide-dashboard/internal/domain"

// ToPartMetricsDTO converts domain part metrics to its API shape. Returns
// nil for nil input so absent inventory stays absent in responses.
func ToPartMetricsDTO(m *domain.PartMetrics) *PartMetricsDTO {
	if m == nil {
		return nil
	}

	hubs := make([]HubAvailabilityDTO, 0, len(m.BestHubs))
	for _, h := range m.BestHubs {
		hubs = append(hubs, HubAvailabilityDTO{Hub: h.Hub, Available: h.Available})
	}

	return &PartMetricsDTO{
		PartNumber:          m.PartNumber,
		TotalStock:          m.TotalStock,
		TotalAvailable:      m.TotalAvailable,
		TotalReserved:       m.TotalReserved,
		Status:              string(m.Status),
		StatusColor:         m.StatusColor,
		AvailableByLocation: m.AvailableByLocation,
		BestHubs:            hubs,
		TotalIncoming:       m.TotalIncoming,
		NextArrivalDate:     m.NextArrivalDate,
	}
}

// ToGlobalMetricsDTO converts global metrics to its API shape
func ToGlobalMetricsDTO(g domain.GlobalMetrics) *GlobalMetricsDTO {
	return &GlobalMetricsDTO{
		TotalParts:       g.TotalParts,
		CriticalParts:    g.CriticalParts,
		LowStockParts:    g.LowStockParts,
		OverstockedParts: g.OverstockedParts,
		HealthyParts:     g.HealthyParts,
		HealthScore:      g.HealthScore,
		LocationTotals:   g.LocationTotals,
	}
}

// ToQuoteDTO converts a domain quote to its API shape
func ToQuoteDTO(q *domain.Quote) *QuoteDTO {
	if q == nil {
		return nil
	}

	return &QuoteDTO{
		QuoteID:    q.QuoteID,
		CaseID:     q.CaseID,
		Airline:    q.Airline,
		Aircraft:   q.Aircraft,
		PartNeeded: q.PartNeeded,
		PartNumber: q.PartNumber,
		Breakdown: CostBreakdownDTO{
			BaseTransport:   q.Breakdown.BaseTransport,
			ExpediteCharges: q.Breakdown.ExpediteCharges,
			Insurance:       q.Breakdown.Insurance,
		},
		TotalCost:             q.TotalCost,
		DeliveryTime:          q.DeliveryTime,
		SourceHub:             q.SourceHub,
		RecommendedSource:     q.RecommendedSource,
		InventoryAvailability: q.InventoryAvailability,
		InventoryStatus:       ToPartMetricsDTO(q.InventoryStatus),
		RealDataUsed:          q.RealDataUsed,
		PricingSource:         string(q.PricingSource),
		ConfidenceScore:       q.ConfidenceScore,
		CompetitiveAdvantage:  q.CompetitiveAdvantage,
		Timestamp:             q.Timestamp,
	}
}

// ToQuoteDTOs converts a slice of quotes
func ToQuoteDTOs(quotes []*domain.Quote) []*QuoteDTO {
	out := make([]*QuoteDTO, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, ToQuoteDTO(q))
	}
	return out
}

// ToCaseDTO converts an AOG case to its API shape
func ToCaseDTO(c *domain.AOGCase) *CaseDTO {
	if c == nil {
		return nil
	}
	return &CaseDTO{
		CaseID:       c.CaseID,
		Airline:      c.Airline,
		Aircraft:     c.Aircraft,
		Registration: c.Registration,
		PartNeeded:   c.PartNeeded,
		PartNumber:   c.PartNumber,
		Urgency:      c.Urgency,
		Location:     c.Location,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
	}
}

// ToCustomerDTO converts a customer to its API shape
func ToCustomerDTO(c *domain.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}
	return &CustomerDTO{
		Name:           c.Name,
		Region:         c.Region,
		Tier:           c.Tier,
		FleetSize:      c.FleetSize,
		AnnualAOGCases: c.AnnualAOGCases,
	}
}

// ToFinancialSummaryDTO converts the financial summary to its API shape
func ToFinancialSummaryDTO(f *domain.FinancialSummary) *FinancialSummaryDTO {
	if f == nil {
		return nil
	}
	return &FinancialSummaryDTO{
		AnnualRevenue:      f.AnnualRevenue,
		AOGRevenue:         f.AOGRevenue,
		OnTimeDeliveryRate: f.OnTimeDeliveryRate,
		AvgResponseMinutes: f.AvgResponseMinutes,
	}
}
