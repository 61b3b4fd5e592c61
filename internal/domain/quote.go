package domain

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// PricingSource tags how a quote's numbers were produced. Catalog quotes are
// priced from real data; estimated quotes had a catalog match but no pricing
// entry; degraded quotes had nothing to go on at all.
type PricingSource string

const (
	PricingSourceCatalog   PricingSource = "catalog"
	PricingSourceEstimated PricingSource = "estimated"
	PricingSourceDegraded  PricingSource = "degraded"
)

// Insurance and expedite rates for the three pricing branches
const (
	catalogInsuranceRate = 0.015

	estimatedBaseMin       = 15000
	estimatedBaseMax       = 85000
	estimatedExpediteRate  = 0.35
	estimatedInsuranceRate = 0.015

	degradedBaseMin       = 25000
	degradedBaseMax       = 75000
	degradedExpediteRate  = 0.30
	degradedInsuranceRate = 0.012
)

// CostBreakdown itemizes a quote in integer currency units
type CostBreakdown struct {
	BaseTransport   int `json:"base_transport"`
	ExpediteCharges int `json:"expedite_charges"`
	Insurance       int `json:"insurance"`
}

// Total sums the three cost components
func (b CostBreakdown) Total() int {
	return b.BaseTransport + b.ExpediteCharges + b.Insurance
}

// CatalogBreakdown prices from a pricing table entry. The surcharge is a
// percentage of the base price; insurance is a fixed 1.5% of base.
func CatalogBreakdown(pricing RegionPricing) CostBreakdown {
	return CostBreakdown{
		BaseTransport:   int(math.Round(pricing.BasePrice)),
		ExpediteCharges: int(math.Round(pricing.BasePrice * pricing.ExpediteSurchargePct / 100)),
		Insurance:       int(math.Round(pricing.BasePrice * catalogInsuranceRate)),
	}
}

// EstimatedBreakdown prices a part that has a catalog entry but no pricing
// data: bounded random base with 35% expedite and 1.5% insurance.
func EstimatedBreakdown(rng *rand.Rand) CostBreakdown {
	base := estimatedBaseMin + rng.Intn(estimatedBaseMax-estimatedBaseMin+1)
	return CostBreakdown{
		BaseTransport:   base,
		ExpediteCharges: int(float64(base) * estimatedExpediteRate),
		Insurance:       int(float64(base) * estimatedInsuranceRate),
	}
}

// DegradedBreakdown prices a part with no catalog match at all: bounded
// random base with 30% expedite and 1.2% insurance.
func DegradedBreakdown(rng *rand.Rand) CostBreakdown {
	base := degradedBaseMin + rng.Intn(degradedBaseMax-degradedBaseMin+1)
	return CostBreakdown{
		BaseTransport:   base,
		ExpediteCharges: int(float64(base) * degradedExpediteRate),
		Insurance:       int(float64(base) * degradedInsuranceRate),
	}
}

// Quote is a priced, timed delivery estimate for one AOG case. At most one
// quote exists per case id.
type Quote struct {
	QuoteID               string        `json:"quote_id"`
	CaseID                string        `json:"case_id"`
	Airline               string        `json:"airline"`
	Aircraft              string        `json:"aircraft"`
	PartNeeded            string        `json:"part_needed"`
	PartNumber            string        `json:"part_number"`
	Breakdown             CostBreakdown `json:"breakdown"`
	TotalCost             int           `json:"total_cost"`
	DeliveryTime          string        `json:"delivery_time"`
	SourceHub             string        `json:"source_hub"`
	RecommendedSource     string        `json:"recommended_source"`
	InventoryAvailability string        `json:"inventory_availability"`
	InventoryStatus       *PartMetrics  `json:"inventory_status"`
	RealDataUsed          bool          `json:"real_data_used"`
	PricingSource         PricingSource `json:"pricing_source"`
	ConfidenceScore       int           `json:"confidence_score"`
	CompetitiveAdvantage  string        `json:"competitive_advantage"`
	Timestamp             time.Time     `json:"timestamp"`
}

// NewQuoteID builds a quote identifier from the quote date and a random
// four-digit suffix
func NewQuoteID(now time.Time, rng *rand.Rand) string {
	return fmt.Sprintf("BHW-%s-%04d", now.Format("20060102"), rng.Intn(10000))
}

// NewConfidenceScore returns a bounded random score in [94, 99]
func NewConfidenceScore(rng *rand.Rand) int {
	return 94 + rng.Intn(6)
}

// NewCompetitiveAdvantage returns a bounded random percentage in [12, 18]
func NewCompetitiveAdvantage(rng *rand.Rand) string {
	return fmt.Sprintf("%d%%", 12+rng.Intn(7))
}
