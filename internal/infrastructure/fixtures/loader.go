package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/logging"
	"github.com/srourslaw/bh-worldwide-dashboard/pkg/metrics"
)

// Dataset file names expected under the data directory
const (
	PartsCatalogFile     = "parts_catalog.json"
	PricingModelFile     = "current_pricing_model.json"
	InventoryFile        = "inventory_locations.json"
	ActiveCasesFile      = "active_cases.json"
	MajorCustomersFile   = "major_customers.json"
	FinancialSummaryFile = "financial_summary.json"
)

// Fixtures holds every dataset the service runs on. A missing dataset is
// loaded as empty, never as an error, so the service can still start and
// answer from what it has.
type Fixtures struct {
	Catalog   []*domain.CatalogEntry
	Pricing   domain.PricingModel
	Inventory []*domain.PartStockRecord
	Cases     []*domain.AOGCase
	Customers []*domain.Customer
	Financial *domain.FinancialSummary
}

// Loader reads JSON fixture datasets from a directory
type Loader struct {
	dir     string
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewLoader creates a loader for the given data directory. The metrics
// sink may be nil.
func NewLoader(dir string, logger *logging.Logger, m *metrics.Metrics) *Loader {
	return &Loader{
		dir:     dir,
		logger:  logger.WithComponent("fixtures"),
		metrics: m,
	}
}

// Load reads every dataset. Individual datasets degrade to empty on missing
// or malformed files; Load itself never fails.
func (l *Loader) Load() *Fixtures {
	f := &Fixtures{Pricing: domain.PricingModel{}}

	loadDataset(l, PartsCatalogFile, &f.Catalog)
	loadDataset(l, PricingModelFile, &f.Pricing)
	loadDataset(l, InventoryFile, &f.Inventory)
	loadDataset(l, ActiveCasesFile, &f.Cases)
	loadDataset(l, MajorCustomersFile, &f.Customers)
	loadDataset(l, FinancialSummaryFile, &f.Financial)

	if f.Pricing == nil {
		f.Pricing = domain.PricingModel{}
	}

	l.logReservationOnlyLocations(f.Inventory)
	l.recordCounts(f)

	return f
}

// loadDataset decodes one JSON file into out. On any failure out is left at
// its zero value and the failure is logged once.
func loadDataset[T any](l *Loader, name string, out *T) {
	path := filepath.Join(l.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("Dataset file missing, continuing with empty data", "dataset", name)
		} else {
			l.logger.WithError(err).Warn("Failed to read dataset, continuing with empty data", "dataset", name)
		}
		l.logger.DatasetLoad(name, 0, false)
		return
	}

	if err := json.Unmarshal(data, out); err != nil {
		l.logger.WithError(err).Warn("Failed to parse dataset, continuing with empty data", "dataset", name)
		var zero T
		*out = zero
		l.logger.DatasetLoad(name, 0, false)
		return
	}

	l.logger.DatasetLoad(name, datasetLen(*out), true)
}

func datasetLen(v any) int {
	switch t := v.(type) {
	case []*domain.CatalogEntry:
		return len(t)
	case []*domain.PartStockRecord:
		return len(t)
	case []*domain.AOGCase:
		return len(t)
	case []*domain.Customer:
		return len(t)
	case domain.PricingModel:
		return len(t)
	case *domain.FinancialSummary:
		if t == nil {
			return 0
		}
		return 1
	default:
		return 0
	}
}

// logReservationOnlyLocations reports locations that carry reservations but
// no stock entry. The metric computation skips them, so they are surfaced
// here once at load time instead of disappearing silently.
func (l *Loader) logReservationOnlyLocations(records []*domain.PartStockRecord) {
	for _, r := range records {
		if r == nil {
			continue
		}
		for location, reserved := range r.Reserved {
			if _, ok := r.StockLevels.Get(location); !ok {
				l.logger.Warn("Reservation recorded for location with no stock entry",
					"part_number", r.PartNumber,
					"location", location,
					"reserved", reserved,
				)
			}
		}
	}
}

func (l *Loader) recordCounts(f *Fixtures) {
	if l.metrics == nil {
		return
	}
	l.metrics.SetFixtureRecords("parts_catalog", len(f.Catalog))
	l.metrics.SetFixtureRecords("pricing_model", len(f.Pricing))
	l.metrics.SetFixtureRecords("inventory_locations", len(f.Inventory))
	l.metrics.SetFixtureRecords("active_cases", len(f.Cases))
	l.metrics.SetFixtureRecords("major_customers", len(f.Customers))
}

// Describe returns a short human summary of what was loaded, used in the
// startup log line
func (f *Fixtures) Describe() string {
	return fmt.Sprintf("catalog=%d pricing=%d inventory=%d cases=%d customers=%d",
		len(f.Catalog), len(f.Pricing), len(f.Inventory), len(f.Cases), len(f.Customers))
}
