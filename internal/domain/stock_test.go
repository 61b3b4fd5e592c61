package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAvailability(t *testing.T) {
	tests := []struct {
		available int
		expected  StockStatus
	}{
		{0, StatusCritical},
		{1, StatusLow},
		{3, StatusLow},
		{4, StatusMedium},
		{10, StatusMedium},
		{11, StatusGood},
		{100, StatusGood},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyAvailability(tt.available), "available=%d", tt.available)
	}
}

func TestStockStatusColor(t *testing.T) {
	assert.Equal(t, "red", StatusCritical.Color())
	assert.Equal(t, "orange", StatusLow.Color())
	assert.Equal(t, "yellow", StatusMedium.Color())
	assert.Equal(t, "green", StatusGood.Color())
}

func TestLocationQuantitiesPreserveOrder(t *testing.T) {
	var lq LocationQuantities
	err := json.Unmarshal([]byte(`{"Singapore": 5, "London": 12, "Dubai": 8}`), &lq)
	require.NoError(t, err)

	require.Len(t, lq, 3)
	assert.Equal(t, "Singapore", lq[0].Location)
	assert.Equal(t, "London", lq[1].Location)
	assert.Equal(t, "Dubai", lq[2].Location)
	assert.Equal(t, 12, lq[1].Quantity)
}

func TestLocationQuantitiesRoundTrip(t *testing.T) {
	lq := LocationQuantities{
		{Location: "London", Quantity: 3},
		{Location: "Dubai", Quantity: 0},
	}

	data, err := json.Marshal(lq)
	require.NoError(t, err)
	assert.JSONEq(t, `{"London": 3, "Dubai": 0}`, string(data))

	var decoded LocationQuantities
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, lq, decoded)
}

func TestLocationQuantitiesRejectNonObject(t *testing.T) {
	var lq LocationQuantities
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &lq))
	assert.Error(t, json.Unmarshal([]byte(`{"London": "many"}`), &lq))
}

func TestComputeMetricsNilRecord(t *testing.T) {
	var r *PartStockRecord
	assert.Nil(t, r.ComputeMetrics())
}

func TestComputeMetricsAvailabilityFloorsAtZero(t *testing.T) {
	r := &PartStockRecord{
		PartNumber: "HYD-PUMP-A320",
		StockLevels: LocationQuantities{
			{Location: "london", Quantity: 10},
			{Location: "dubai", Quantity: 0},
		},
		Reserved: map[string]int{"london": 12},
	}

	m := r.ComputeMetrics()
	require.NotNil(t, m)

	assert.Equal(t, map[string]int{"london": 0, "dubai": 0}, m.AvailableByLocation)
	assert.Equal(t, 0, m.TotalAvailable)
	assert.Equal(t, 10, m.TotalStock)
	assert.Equal(t, 12, m.TotalReserved)
	assert.Equal(t, StatusCritical, m.Status)
	assert.Equal(t, "red", m.StatusColor)
	assert.Empty(t, m.BestHubs)
	assert.Equal(t, "", m.BestHub())
}

func TestComputeMetricsTotals(t *testing.T) {
	r := &PartStockRecord{
		PartNumber: "APU-START-B737",
		StockLevels: LocationQuantities{
			{Location: "London", Quantity: 12},
			{Location: "Dubai", Quantity: 8},
			{Location: "Singapore", Quantity: 5},
		},
		Reserved: map[string]int{"London": 4, "Dubai": 2},
	}

	m := r.ComputeMetrics()
	require.NotNil(t, m)

	assert.Equal(t, 25, m.TotalStock)
	assert.Equal(t, 6, m.TotalReserved)
	assert.Equal(t, 19, m.TotalAvailable)

	sum := 0
	for _, v := range m.AvailableByLocation {
		assert.GreaterOrEqual(t, v, 0)
		sum += v
	}
	assert.Equal(t, m.TotalAvailable, sum)
	assert.LessOrEqual(t, m.TotalAvailable, m.TotalStock)
	assert.Equal(t, StatusGood, m.Status)
}

func TestComputeMetricsBestHubs(t *testing.T) {
	r := &PartStockRecord{
		PartNumber: "FUEL-VLV-A330",
		StockLevels: LocationQuantities{
			{Location: "Singapore", Quantity: 5},
			{Location: "London", Quantity: 9},
			{Location: "Dubai", Quantity: 5},
			{Location: "Sydney", Quantity: 0},
		},
	}

	m := r.ComputeMetrics()
	require.NotNil(t, m)

	// Descending, zero-availability hubs excluded, ties keep source order
	require.Len(t, m.BestHubs, 3)
	assert.Equal(t, HubAvailability{Hub: "London", Available: 9}, m.BestHubs[0])
	assert.Equal(t, HubAvailability{Hub: "Singapore", Available: 5}, m.BestHubs[1])
	assert.Equal(t, HubAvailability{Hub: "Dubai", Available: 5}, m.BestHubs[2])
	assert.Equal(t, "London", m.BestHub())
}

func TestComputeMetricsIncoming(t *testing.T) {
	r := &PartStockRecord{
		PartNumber: "BRK-ASSY-B777",
		StockLevels: LocationQuantities{
			{Location: "London", Quantity: 2},
			{Location: "Singapore", Quantity: 1},
			{Location: "Dubai", Quantity: 1},
		},
		Incoming: map[string]*IncomingShipment{
			"London":    {Quantity: 6, ArrivalDate: "2026-09-04"},
			"Singapore": {Quantity: 4, ArrivalDate: "2026-09-01"},
			"Dubai":     nil,
		},
	}

	m := r.ComputeMetrics()
	require.NotNil(t, m)

	assert.Equal(t, 10, m.TotalIncoming)
	assert.Equal(t, "2026-09-01", m.NextArrivalDate)
}

func TestComputeMetricsIncomingIgnoresZeroQuantity(t *testing.T) {
	r := &PartStockRecord{
		PartNumber: "NAV-DISP-A350",
		StockLevels: LocationQuantities{
			{Location: "London", Quantity: 5},
			{Location: "Dubai", Quantity: 5},
		},
		Incoming: map[string]*IncomingShipment{
			"London": {Quantity: 0, ArrivalDate: "2026-08-31"},
			"Dubai":  {Quantity: 3, ArrivalDate: "2026-09-15"},
		},
	}

	m := r.ComputeMetrics()
	require.NotNil(t, m)

	assert.Equal(t, 3, m.TotalIncoming)
	assert.Equal(t, "2026-09-15", m.NextArrivalDate)
}

func TestComputeMetricsCountsIncomingAtUnstockedLocations(t *testing.T) {
	r := &PartStockRecord{
		PartNumber: "FUEL-VLV-A330",
		StockLevels: LocationQuantities{
			{Location: "London", Quantity: 1},
		},
		Incoming: map[string]*IncomingShipment{
			"New York": {Quantity: 2, ArrivalDate: "2026-09-02"},
		},
	}

	m := r.ComputeMetrics()
	require.NotNil(t, m)

	assert.Equal(t, 2, m.TotalIncoming)
	assert.Equal(t, "2026-09-02", m.NextArrivalDate)
}

func TestComputeMetricsSkipsReservationOnlyLocations(t *testing.T) {
	r := &PartStockRecord{
		PartNumber: "WHEEL-NLG-E190",
		StockLevels: LocationQuantities{
			{Location: "London", Quantity: 4},
		},
		Reserved: map[string]int{"London": 1, "Miami": 7},
	}

	m := r.ComputeMetrics()
	require.NotNil(t, m)

	assert.Equal(t, 1, m.TotalReserved)
	assert.Equal(t, 3, m.TotalAvailable)
	_, tracked := m.AvailableByLocation["Miami"]
	assert.False(t, tracked)
}

func TestComputeGlobalMetricsEmpty(t *testing.T) {
	g := ComputeGlobalMetrics(nil)

	assert.Equal(t, 0, g.TotalParts)
	assert.Equal(t, 0.0, g.HealthScore)
	for _, hub := range PrimaryHubs {
		total, ok := g.LocationTotals[hub]
		assert.True(t, ok, "hub %s missing from totals", hub)
		assert.Equal(t, 0, total)
	}
}

func TestComputeGlobalMetricsBuckets(t *testing.T) {
	records := []*PartStockRecord{
		{
			PartNumber:  "P-CRITICAL",
			StockLevels: LocationQuantities{{Location: "London", Quantity: 2}},
			Reserved:    map[string]int{"London": 2},
		},
		{
			PartNumber:  "P-LOW",
			StockLevels: LocationQuantities{{Location: "Dubai", Quantity: 3}},
		},
		{
			PartNumber:  "P-OVERSTOCKED",
			StockLevels: LocationQuantities{{Location: "London", Quantity: 60}},
		},
		{
			PartNumber:  "P-HEALTHY",
			StockLevels: LocationQuantities{{Location: "Singapore", Quantity: 20}},
		},
	}

	g := ComputeGlobalMetrics(records)

	assert.Equal(t, 4, g.TotalParts)
	assert.Equal(t, 1, g.CriticalParts)
	assert.Equal(t, 1, g.LowStockParts)
	assert.Equal(t, 1, g.OverstockedParts)
	assert.Equal(t, 1, g.HealthyParts)
	assert.Equal(t, 4, g.CriticalParts+g.LowStockParts+g.OverstockedParts+g.HealthyParts)
	assert.InDelta(t, 25.0, g.HealthScore, 0.0001)

	assert.Equal(t, 62, g.LocationTotals["London"])
	assert.Equal(t, 3, g.LocationTotals["Dubai"])
	assert.Equal(t, 20, g.LocationTotals["Singapore"])
}

func TestComputeGlobalMetricsIncludesUnknownHubs(t *testing.T) {
	records := []*PartStockRecord{
		{
			PartNumber:  "P-REMOTE",
			StockLevels: LocationQuantities{{Location: "Reykjavik", Quantity: 7}},
		},
	}

	g := ComputeGlobalMetrics(records)

	assert.Equal(t, 7, g.LocationTotals["Reykjavik"])
	assert.Equal(t, 0, g.LocationTotals["London"])
}

func TestPartStockRecordUnmarshal(t *testing.T) {
	raw := `{
		"part_number": "HYD-PUMP-A320",
		"stock_levels": {"London": 12, "Dubai": 8},
		"reserved": {"London": 4},
		"incoming": {"London": {"quantity": 6, "arrival_date": "2026-09-04"}}
	}`

	var r PartStockRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "HYD-PUMP-A320", r.PartNumber)
	require.Len(t, r.StockLevels, 2)
	assert.Equal(t, "London", r.StockLevels[0].Location)
	assert.Equal(t, 4, r.Reserved["London"])
	require.NotNil(t, r.Incoming["London"])
	assert.Equal(t, 6, r.Incoming["London"].Quantity)
}
