package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Stock status thresholds on total available quantity. The thresholds are
// absolute, not proportional to part criticality.
const (
	LowStockThreshold    = 3
	MediumStockThreshold = 10
	OverstockThreshold   = 50
)

// StockStatus classifies a part's availability
type StockStatus string

const (
	StatusCritical StockStatus = "critical"
	StatusLow      StockStatus = "low"
	StatusMedium   StockStatus = "medium"
	StatusGood     StockStatus = "good"
)

// Color returns the presentation color for the status. Not used in any
// decision logic.
func (s StockStatus) Color() string {
	switch s {
	case StatusCritical:
		return "red"
	case StatusLow:
		return "orange"
	case StatusMedium:
		return "yellow"
	default:
		return "green"
	}
}

// ClassifyAvailability maps a total available quantity onto a StockStatus
func ClassifyAvailability(available int) StockStatus {
	switch {
	case available == 0:
		return StatusCritical
	case available <= LowStockThreshold:
		return StatusLow
	case available <= MediumStockThreshold:
		return StatusMedium
	default:
		return StatusGood
	}
}

// LocationQuantity is one hub's on-hand quantity for a part
type LocationQuantity struct {
	Location string `json:"location"`
	Quantity int    `json:"quantity"`
}

// LocationQuantities preserves the hub order of the source data. Best-hub
// ties are broken by this order, so a plain map would not do.
type LocationQuantities []LocationQuantity

// Get returns the quantity recorded for a location
func (l LocationQuantities) Get(location string) (int, bool) {
	for _, lq := range l {
		if lq.Location == location {
			return lq.Quantity, true
		}
	}
	return 0, false
}

// UnmarshalJSON decodes a JSON object of location -> quantity while keeping
// the key order of the document.
func (l *LocationQuantities) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("stock levels: expected JSON object, got %v", tok)
	}

	out := LocationQuantities{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("stock levels: expected string key, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return fmt.Errorf("stock levels: quantity for %q is not a number", key)
		}
		qty, err := num.Int64()
		if err != nil {
			return fmt.Errorf("stock levels: quantity for %q: %w", key, err)
		}

		out = append(out, LocationQuantity{Location: key, Quantity: int(qty)})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*l = out
	return nil
}

// MarshalJSON encodes back to a location -> quantity object in source order
func (l LocationQuantities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, lq := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(lq.Location)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", lq.Quantity)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// IncomingShipment is a scheduled inbound replenishment for one location
type IncomingShipment struct {
	Quantity    int    `json:"quantity"`
	ArrivalDate string `json:"arrival_date"`
}

// PartStockRecord holds the raw per-location stock picture for one part
// number. Reserved and incoming entries for locations that carry no stock
// are ignored by the metric computation; the fixture loader logs them.
type PartStockRecord struct {
	PartNumber  string                       `json:"part_number"`
	StockLevels LocationQuantities           `json:"stock_levels"`
	Reserved    map[string]int               `json:"reserved"`
	Incoming    map[string]*IncomingShipment `json:"incoming"`
}

// HubAvailability is one hub's available-to-promise quantity
type HubAvailability struct {
	Hub       string `json:"hub"`
	Available int    `json:"available"`
}

// PartMetrics is the derived stock health for one part
type PartMetrics struct {
	PartNumber          string            `json:"part_number"`
	TotalStock          int               `json:"total_stock"`
	TotalAvailable      int               `json:"total_available"`
	TotalReserved       int               `json:"total_reserved"`
	Status              StockStatus       `json:"status"`
	StatusColor         string            `json:"status_color"`
	AvailableByLocation map[string]int    `json:"available_by_location"`
	BestHubs            []HubAvailability `json:"best_hubs"`
	TotalIncoming       int               `json:"total_incoming"`
	NextArrivalDate     string            `json:"next_arrival_date,omitempty"`
}

// BestHub returns the hub with the highest available quantity, or ""
func (m *PartMetrics) BestHub() string {
	if m == nil || len(m.BestHubs) == 0 {
		return ""
	}
	return m.BestHubs[0].Hub
}

// ComputeMetrics derives the stock health for the record. The iteration is
// driven by the stock entries: available-to-promise is floored at zero even
// when the source data reserves more than is on hand. Returns nil for a nil
// record so callers can distinguish "no record" from "zero stock".
func (r *PartStockRecord) ComputeMetrics() *PartMetrics {
	if r == nil {
		return nil
	}

	m := &PartMetrics{
		PartNumber:          r.PartNumber,
		AvailableByLocation: make(map[string]int, len(r.StockLevels)),
	}

	hubs := make([]HubAvailability, 0, len(r.StockLevels))
	for _, ls := range r.StockLevels {
		reserved := r.Reserved[ls.Location]
		available := ls.Quantity - reserved
		if available < 0 {
			available = 0
		}

		m.TotalStock += ls.Quantity
		m.TotalReserved += reserved
		m.TotalAvailable += available
		m.AvailableByLocation[ls.Location] = available

		if available > 0 {
			hubs = append(hubs, HubAvailability{Hub: ls.Location, Available: available})
		}
	}

	// Stable sort so equal-quantity hubs keep their source order
	sort.SliceStable(hubs, func(i, j int) bool {
		return hubs[i].Available > hubs[j].Available
	})
	m.BestHubs = hubs

	for _, shipment := range r.Incoming {
		if shipment == nil || shipment.Quantity == 0 {
			continue
		}
		m.TotalIncoming += shipment.Quantity
		if shipment.Quantity > 0 && shipment.ArrivalDate != "" {
			// Lexical comparison; arrival dates are ISO 8601 in the fixtures
			if m.NextArrivalDate == "" || shipment.ArrivalDate < m.NextArrivalDate {
				m.NextArrivalDate = shipment.ArrivalDate
			}
		}
	}

	m.Status = ClassifyAvailability(m.TotalAvailable)
	m.StatusColor = m.Status.Color()

	return m
}

// PrimaryHubs is the hub network the dashboard reports on. Global location
// totals are pre-seeded with these so an empty hub still appears with zero.
var PrimaryHubs = []string{"London", "Dubai", "Singapore", "Sydney", "New York"}

// PrimaryHub is the default source hub when no inventory record exists
const PrimaryHub = "London"

// GlobalMetrics aggregates stock health across all tracked parts
type GlobalMetrics struct {
	TotalParts       int            `json:"total_parts"`
	CriticalParts    int            `json:"critical_parts"`
	LowStockParts    int            `json:"low_stock_parts"`
	OverstockedParts int            `json:"overstocked_parts"`
	HealthyParts     int            `json:"healthy_parts"`
	HealthScore      float64        `json:"health_score"`
	LocationTotals   map[string]int `json:"location_totals"`
}

// ComputeGlobalMetrics buckets every part into exactly one of critical, low,
// overstocked or healthy and sums raw stock per hub. Location totals cover
// the union of the primary hub set and every hub observed in the records, so
// no location is silently dropped.
func ComputeGlobalMetrics(records []*PartStockRecord) GlobalMetrics {
	g := GlobalMetrics{
		LocationTotals: make(map[string]int, len(PrimaryHubs)),
	}
	for _, hub := range PrimaryHubs {
		g.LocationTotals[hub] = 0
	}

	for _, r := range records {
		m := r.ComputeMetrics()
		if m == nil {
			continue
		}

		g.TotalParts++
		switch {
		case m.Status == StatusCritical:
			g.CriticalParts++
		case m.Status == StatusLow:
			g.LowStockParts++
		case m.TotalAvailable > OverstockThreshold:
			g.OverstockedParts++
		default:
			g.HealthyParts++
		}

		for _, ls := range r.StockLevels {
			g.LocationTotals[ls.Location] += ls.Quantity
		}
	}

	if g.TotalParts > 0 {
		g.HealthScore = float64(g.HealthyParts) / float64(g.TotalParts) * 100
	}

	return g
}
