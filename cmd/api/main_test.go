package main

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/application"
	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
	"github.com/srourslaw/bh-worldwide-dashboard/internal/infrastructure/memory"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/logging"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/middleware"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logConfig := logging.DefaultConfig("test")
	logConfig.Output = io.Discard
	logger := logging.New(logConfig)

	middleware.InitValidator()

	inventoryRepo := memory.NewInventoryRepository()
	inventoryRepo.Load([]*domain.PartStockRecord{
		{
			PartNumber: "HYD-PUMP-A320",
			StockLevels: domain.LocationQuantities{
				{Location: "London", Quantity: 12},
				{Location: "Dubai", Quantity: 8},
			},
			Reserved: map[string]int{"London": 4},
		},
	})

	catalogRepo := memory.NewCatalogRepository()
	catalogRepo.Load(
		[]*domain.CatalogEntry{
			{PartNumber: "HYD-PUMP-A320", Description: "Hydraulic pump assembly", LeadTime: "4 hours"},
		},
		domain.PricingModel{
			"HYD-PUMP-A320": {"london": {BasePrice: 42500, ExpediteSurchargePct: 25}},
		},
	)

	caseStore := memory.NewCaseStore()
	customerRepo := memory.NewCustomerRepository()
	quoteStore := memory.NewQuoteStore()

	rng := rand.New(rand.NewSource(42))
	inventoryService := application.NewInventoryQueryService(inventoryRepo, logger, nil)
	quoteService := application.NewQuoteService(catalogRepo, inventoryRepo, quoteStore, caseStore, rng, logger, nil)
	dashboardService := application.NewDashboardService(caseStore, customerRepo, quoteStore, inventoryService, logger)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/inventory/:partNumber", getPartMetricsHandler(inventoryService, logger))
	v1.POST("/quotes", generateQuoteHandler(quoteService, logger))
	v1.GET("/quotes/:caseId", getQuoteHandler(quoteService, logger))
	v1.GET("/dashboard/summary", dashboardSummaryHandler(dashboardService, logger))
	return router
}

func TestGetPartMetricsEndpoint(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/HYD-PUMP-A320", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body application.PartMetricsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "HYD-PUMP-A320", body.PartNumber)
	assert.Equal(t, 16, body.TotalAvailable)
	assert.Equal(t, "good", body.Status)
}

func TestGetPartMetricsEndpointNotFound(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/NO-SUCH-PART", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RESOURCE_NOT_FOUND")
}

func TestGenerateQuoteEndpoint(t *testing.T) {
	router := testRouter(t)

	payload := `{
		"case_id": "AOG-2026-0847",
		"airline": "Emirates",
		"aircraft": "A380-800",
		"part_needed": "Hydraulic pump assembly",
		"part_number": "HYD-PUMP-A320"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var quote application.QuoteDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, 42500, quote.Breakdown.BaseTransport)
	assert.Equal(t, quote.Breakdown.BaseTransport+quote.Breakdown.ExpediteCharges+quote.Breakdown.Insurance, quote.TotalCost)
	assert.Equal(t, "catalog", quote.PricingSource)

	// Same case id returns the same quote
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(payload))
	req2.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w2, req2)

	require.Equal(t, http.StatusOK, w2.Code)
	var second application.QuoteDTO
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &second))
	assert.Equal(t, quote.QuoteID, second.QuoteID)

	// And the quote is retrievable by case id
	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/AOG-2026-0847", nil)
	router.ServeHTTP(w3, req3)
	assert.Equal(t, http.StatusOK, w3.Code)
}

func TestGenerateQuoteEndpointRejectsBadCaseID(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(`{"case_id": "nope"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var summary application.DashboardSummaryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.NotNil(t, summary.Inventory)
	assert.Equal(t, 1, summary.Inventory.TotalParts)
}
