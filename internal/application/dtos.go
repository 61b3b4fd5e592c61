package application

import "time"

// HubAvailabilityDTO is one hub's available quantity in API responses
type HubAvailabilityDTO struct {
	Hub       string `json:"hub"`
	Available int    `json:"available"`
}

// PartMetricsDTO is the API shape of per-part stock health
type PartMetricsDTO struct {
	PartNumber          string               `json:"part_number"`
	TotalStock          int                  `json:"total_stock"`
	TotalAvailable      int                  `json:"total_available"`
	TotalReserved       int                  `json:"total_reserved"`
	Status              string               `json:"status"`
	StatusColor         string               `json:"status_color"`
	AvailableByLocation map[string]int       `json:"available_by_location"`
	BestHubs            []HubAvailabilityDTO `json:"best_hubs"`
	TotalIncoming       int                  `json:"total_incoming"`
	NextArrivalDate     string               `json:"next_arrival_date,omitempty"`
}

// GlobalMetricsDTO is the API shape of fleet-wide stock health
type GlobalMetricsDTO struct {
	TotalParts       int            `json:"total_parts"`
	CriticalParts    int            `json:"critical_parts"`
	LowStockParts    int            `json:"low_stock_parts"`
	OverstockedParts int            `json:"overstocked_parts"`
	HealthyParts     int            `json:"healthy_parts"`
	HealthScore      float64        `json:"health_score"`
	LocationTotals   map[string]int `json:"location_totals"`
}

// CostBreakdownDTO itemizes quote cost in API responses
type CostBreakdownDTO struct {
	BaseTransport   int `json:"base_transport"`
	ExpediteCharges int `json:"expedite_charges"`
	Insurance       int `json:"insurance"`
}

// QuoteDTO is the API shape of a generated quote
type QuoteDTO struct {
	QuoteID               string           `json:"quote_id"`
	CaseID                string           `json:"case_id"`
	Airline               string           `json:"airline"`
	Aircraft              string           `json:"aircraft"`
	PartNeeded            string           `json:"part_needed"`
	PartNumber            string           `json:"part_number"`
	Breakdown             CostBreakdownDTO `json:"breakdown"`
	TotalCost             int              `json:"total_cost"`
	DeliveryTime          string           `json:"delivery_time"`
	SourceHub             string           `json:"source_hub"`
	RecommendedSource     string           `json:"recommended_source"`
	InventoryAvailability string           `json:"inventory_availability"`
	InventoryStatus       *PartMetricsDTO  `json:"inventory_status"`
	RealDataUsed          bool             `json:"real_data_used"`
	PricingSource         string           `json:"pricing_source"`
	ConfidenceScore       int              `json:"confidence_score"`
	CompetitiveAdvantage  string           `json:"competitive_advantage"`
	Timestamp             time.Time        `json:"timestamp"`
}

// CaseDTO is the API shape of an AOG case
type CaseDTO struct {
	CaseID       string `json:"case_id"`
	Airline      string `json:"airline"`
	Aircraft     string `json:"aircraft"`
	Registration string `json:"registration,omitempty"`
	PartNeeded   string `json:"part_needed"`
	PartNumber   string `json:"part_number"`
	Urgency      string `json:"urgency,omitempty"`
	Location     string `json:"location,omitempty"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// CustomerDTO is the API shape of a contracted airline account
type CustomerDTO struct {
	Name           string `json:"name"`
	Region         string `json:"region"`
	Tier           string `json:"tier"`
	FleetSize      int    `json:"fleet_size"`
	AnnualAOGCases int    `json:"annual_aog_cases"`
}

// FinancialSummaryDTO is the API shape of the headline business figures
type FinancialSummaryDTO struct {
	AnnualRevenue      float64 `json:"annual_revenue"`
	AOGRevenue         float64 `json:"aog_revenue"`
	OnTimeDeliveryRate float64 `json:"on_time_delivery_rate"`
	AvgResponseMinutes int     `json:"avg_response_minutes"`
}

// DashboardSummaryDTO is the one-call overview the dashboard landing page
// renders from
type DashboardSummaryDTO struct {
	Inventory       *GlobalMetricsDTO    `json:"inventory"`
	CasesByStatus   map[string]int       `json:"cases_by_status"`
	ActiveCases     int                  `json:"active_cases"`
	QuotesGenerated int                  `json:"quotes_generated"`
	QuotedValue     int                  `json:"quoted_value"`
	Customers       int                  `json:"customers"`
	Financial       *FinancialSummaryDTO `json:"financial,omitempty"`
	GeneratedAt     time.Time            `json:"generated_at"`
}
