package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/api"
	apperrors "github.com/srourslaw/bh-worldwide-dashboard/pkg/errors"
)

func testInventory() *fakeInventoryRepo {
	return newFakeInventoryRepo(
		&domain.PartStockRecord{
			PartNumber: "HYD-PUMP-A320",
			StockLevels: domain.LocationQuantities{
				{Location: "London", Quantity: 12},
				{Location: "Dubai", Quantity: 8},
			},
			Reserved: map[string]int{"London": 4},
		},
		&domain.PartStockRecord{
			PartNumber:  "BRK-ASSY-B777",
			StockLevels: domain.LocationQuantities{{Location: "London", Quantity: 2}},
			Reserved:    map[string]int{"London": 2},
		},
		&domain.PartStockRecord{
			PartNumber:  "APU-START-B737",
			StockLevels: domain.LocationQuantities{{Location: "Dubai", Quantity: 3}},
		},
	)
}

func TestGetPartMetrics(t *testing.T) {
	service := NewInventoryQueryService(testInventory(), testLogger(), nil)

	m, err := service.GetPartMetrics(context.Background(), GetPartMetricsQuery{PartNumber: "HYD-PUMP-A320"})
	require.NoError(t, err)

	assert.Equal(t, "HYD-PUMP-A320", m.PartNumber)
	assert.Equal(t, 20, m.TotalStock)
	assert.Equal(t, 16, m.TotalAvailable)
	assert.Equal(t, "good", m.Status)
	assert.Equal(t, "green", m.StatusColor)
}

func TestGetPartMetricsNotFound(t *testing.T) {
	service := NewInventoryQueryService(testInventory(), testLogger(), nil)

	_, err := service.GetPartMetrics(context.Background(), GetPartMetricsQuery{PartNumber: "NO-SUCH-PART"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestListPartMetricsPagination(t *testing.T) {
	service := NewInventoryQueryService(testInventory(), testLogger(), nil)

	page, err := service.ListPartMetrics(context.Background(), api.PageRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.TotalItems)
	assert.Equal(t, int64(2), page.TotalPages)
	assert.True(t, page.HasNext)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "HYD-PUMP-A320", page.Data[0].PartNumber)
	assert.Equal(t, "BRK-ASSY-B777", page.Data[1].PartNumber)

	page, err = service.ListPartMetrics(context.Background(), api.PageRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "APU-START-B737", page.Data[0].PartNumber)
}

func TestGetLowStock(t *testing.T) {
	service := NewInventoryQueryService(testInventory(), testLogger(), nil)

	low, err := service.GetLowStock(context.Background())
	require.NoError(t, err)

	require.Len(t, low, 2)
	assert.Equal(t, "BRK-ASSY-B777", low[0].PartNumber)
	assert.Equal(t, "critical", low[0].Status)
	assert.Equal(t, "APU-START-B737", low[1].PartNumber)
	assert.Equal(t, "low", low[1].Status)
}

func TestGetGlobalMetrics(t *testing.T) {
	service := NewInventoryQueryService(testInventory(), testLogger(), nil)

	g, err := service.GetGlobalMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, g.TotalParts)
	assert.Equal(t, 1, g.CriticalParts)
	assert.Equal(t, 1, g.LowStockParts)
	assert.Equal(t, 1, g.HealthyParts)
	assert.Equal(t, 14, g.LocationTotals["London"])
	assert.Equal(t, 11, g.LocationTotals["Dubai"])
}

func TestGetGlobalMetricsEmptyDataset(t *testing.T) {
	service := NewInventoryQueryService(newFakeInventoryRepo(), testLogger(), nil)

	g, err := service.GetGlobalMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, g.TotalParts)
	assert.Equal(t, 0.0, g.HealthScore)
}
