package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/application"
	"github.com/srourslaw/bh-worldwide-dashboard/internal/infrastructure/fixtures"
	"github.com/srourslaw/bh-worldwide-dashboard/internal/infrastructure/memory"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/api"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/logging"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/metrics"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/middleware"
)

const serviceName = "aog-quoting-service"

func main() {
	logConfig := logging.DefaultConfig(serviceName)
	logConfig.Level = logging.LogLevel(getEnv("LOG_LEVEL", "info"))
	logger := logging.New(logConfig)
	logger.SetDefault()

	logger.Info("Starting aog-quoting-service API")

	config := loadConfig()

	metricsConfig := metrics.DefaultConfig(serviceName)
	m := metrics.New(metricsConfig)
	logger.Info("Metrics initialized")

	middleware.InitValidator()

	// Load fixture datasets; missing files degrade to empty data
	loader := fixtures.NewLoader(config.DataDir, logger, m)
	data := loader.Load()
	logger.Info("Fixtures loaded", "dir", config.DataDir, "datasets", data.Describe())

	inventoryRepo := memory.NewInventoryRepository()
	inventoryRepo.Load(data.Inventory)

	catalogRepo := memory.NewCatalogRepository()
	catalogRepo.Load(data.Catalog, data.Pricing)

	caseStore := memory.NewCaseStore()
	caseStore.Load(data.Cases)

	customerRepo := memory.NewCustomerRepository()
	customerRepo.Load(data.Customers, data.Financial)

	quoteStore := memory.NewQuoteStore()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	inventoryService := application.NewInventoryQueryService(inventoryRepo, logger, m)
	quoteService := application.NewQuoteService(catalogRepo, inventoryRepo, quoteStore, caseStore, rng, logger, m)
	dashboardService := application.NewDashboardService(caseStore, customerRepo, quoteStore, inventoryService, logger)

	router := gin.New()

	middlewareConfig := middleware.DefaultConfig(serviceName, logger.Logger)
	middleware.Setup(router, middlewareConfig)
	router.Use(middleware.MetricsMiddleware(m))

	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	router.GET("/health", middleware.HealthCheck(serviceName))
	router.GET("/ready", middleware.ReadinessCheck(serviceName, func() error {
		return nil
	}))
	router.GET("/metrics", middleware.MetricsEndpoint(m))

	v1 := router.Group("/api/v1")
	{
		inventory := v1.Group("/inventory")
		{
			inventory.GET("", listInventoryHandler(inventoryService, logger))
			inventory.GET("/low-stock", lowStockHandler(inventoryService, logger))
			inventory.GET("/global", globalMetricsHandler(inventoryService, logger))
			inventory.GET("/:partNumber", getPartMetricsHandler(inventoryService, logger))
		}

		quotes := v1.Group("/quotes")
		{
			quotes.POST("", generateQuoteHandler(quoteService, logger))
			quotes.GET("", listQuotesHandler(quoteService, logger))
			quotes.GET("/:caseId", getQuoteHandler(quoteService, logger))
			quotes.DELETE("/:caseId", deleteQuoteHandler(quoteService, logger))
		}

		cases := v1.Group("/cases")
		{
			cases.GET("", listCasesHandler(dashboardService, logger))
			cases.GET("/:caseId", getCaseHandler(dashboardService, logger))
		}

		v1.GET("/customers", listCustomersHandler(dashboardService, logger))
		v1.GET("/dashboard/summary", dashboardSummaryHandler(dashboardService, logger))
	}

	srv := &http.Server{
		Addr:         config.ServerAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
		}
	}()
	logger.Info("Server started", "addr", config.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server stopped")
}

// Config holds application configuration
type Config struct {
	ServerAddr string
	DataDir    string
}

func loadConfig() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		DataDir:    getEnv("DATA_DIR", "data"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func listInventoryHandler(service *application.InventoryQueryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		page := api.ParsePagination(c)
		result, err := service.ListPartMetrics(c.Request.Context(), page)
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func lowStockHandler(service *application.InventoryQueryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		result, err := service.GetLowStock(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"parts": result, "count": len(result)})
	}
}

func globalMetricsHandler(service *application.InventoryQueryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		result, err := service.GetGlobalMetrics(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func getPartMetricsHandler(service *application.InventoryQueryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		query := application.GetPartMetricsQuery{PartNumber: c.Param("partNumber")}
		result, err := service.GetPartMetrics(c.Request.Context(), query)
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func generateQuoteHandler(service *application.QuoteService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.GenerateQuoteCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		result, err := service.GenerateQuote(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func listQuotesHandler(service *application.QuoteService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		result, err := service.ListQuotes(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"quotes": result, "count": len(result)})
	}
}

func getQuoteHandler(service *application.QuoteService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		query := application.GetQuoteQuery{CaseID: c.Param("caseId")}
		result, err := service.GetQuote(c.Request.Context(), query)
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func deleteQuoteHandler(service *application.QuoteService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		query := application.GetQuoteQuery{CaseID: c.Param("caseId")}
		if err := service.DeleteQuote(c.Request.Context(), query); err != nil {
			responder.RespondWithError(err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func listCasesHandler(service *application.DashboardService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		query := application.ListCasesQuery{Status: c.Query("status")}
		result, err := service.ListCases(c.Request.Context(), query)
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"cases": result, "count": len(result)})
	}
}

func getCaseHandler(service *application.DashboardService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		query := application.GetCaseQuery{CaseID: c.Param("caseId")}
		result, err := service.GetCase(c.Request.Context(), query)
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func listCustomersHandler(service *application.DashboardService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		result, err := service.ListCustomers(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"customers": result, "count": len(result)})
	}
}

func dashboardSummaryHandler(service *application.DashboardService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		result, err := service.Summary(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
