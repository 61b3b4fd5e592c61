package domain

import (
	"strconv"
	"strings"
)

// Delivery service levels offered on a quote
const (
	DeliverySameDay  = "Same Day Express"
	DeliveryNFO      = "Next Flight Out (NFO)"
	DeliveryStandard = "Standard Freight"
)

// CatalogEntry describes one orderable part
type CatalogEntry struct {
	PartNumber       string `json:"part_number"`
	Description      string `json:"description"`
	LeadTime         string `json:"lead_time"`
	CriticalityLevel string `json:"criticality_level"`
}

// ClassifyLeadTime maps a free-text catalog lead time onto a delivery
// service level. Lead times are stated like "4 hours" or "2 days"; the
// numeric value is taken from the first whitespace-delimited token. Anything
// unparseable falls through to standard freight.
func ClassifyLeadTime(leadTime string) string {
	lower := strings.ToLower(leadTime)
	if strings.Contains(lower, "hour") {
		return DeliverySameDay
	}
	if strings.Contains(lower, "day") {
		fields := strings.Fields(lower)
		if len(fields) > 0 {
			if days, err := strconv.Atoi(fields[0]); err == nil && days <= 3 {
				return DeliveryNFO
			}
		}
	}
	return DeliveryStandard
}

// MatchCatalog resolves a requested part against the catalog. Exact part
// number match wins; otherwise the first entry whose description contains
// any whitespace-delimited token of the free-text part name is taken.
// First match, not best match. Returns nil when nothing matches.
func MatchCatalog(entries []*CatalogEntry, partNumber, partName string) *CatalogEntry {
	for _, e := range entries {
		if e.PartNumber == partNumber {
			return e
		}
	}

	tokens := strings.Fields(strings.ToLower(partName))
	if len(tokens) == 0 {
		return nil
	}
	for _, e := range entries {
		desc := strings.ToLower(e.Description)
		for _, tok := range tokens {
			if strings.Contains(desc, tok) {
				return e
			}
		}
	}
	return nil
}

// PricingRegionLondon is the pricing table region quotes are priced from
const PricingRegionLondon = "london"

// RegionPricing is one region's price entry for a part
type RegionPricing struct {
	BasePrice              float64 `json:"base_price"`
	ExpediteSurchargePct   float64 `json:"expedite_surcharge_percentage"`
	Currency               string  `json:"currency,omitempty"`
	ContractDiscountPct    float64 `json:"contract_discount_percentage,omitempty"`
	DangerousGoodsHandling bool    `json:"dangerous_goods_handling,omitempty"`
}

// PricingModel maps part number -> region -> pricing entry
type PricingModel map[string]map[string]RegionPricing

// Region looks up the pricing entry for a part in one region
func (p PricingModel) Region(partNumber, region string) (RegionPricing, bool) {
	regions, ok := p[partNumber]
	if !ok {
		return RegionPricing{}, false
	}
	entry, ok := regions[region]
	return entry, ok
}
