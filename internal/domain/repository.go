package domain

import "context"

// InventoryRepository provides read access to per-part stock records
type InventoryRepository interface {
	FindByPartNumber(ctx context.Context, partNumber string) (*PartStockRecord, error)
	FindAll(ctx context.Context) ([]*PartStockRecord, error)
}

// CatalogRepository provides read access to the parts catalog and the
// pricing table it is sold from
type CatalogRepository interface {
	Entries(ctx context.Context) ([]*CatalogEntry, error)
	Pricing(ctx context.Context) (PricingModel, error)
}

// QuoteStore owns generated quotes. InsertIfAbsent is the atomic
// check-then-insert that keeps at most one quote per case id under
// concurrent callers.
type QuoteStore interface {
	InsertIfAbsent(ctx context.Context, quote *Quote) (*Quote, bool, error)
	FindByCaseID(ctx context.Context, caseID string) (*Quote, error)
	FindAll(ctx context.Context) ([]*Quote, error)
	Remove(ctx context.Context, caseID string) error
	Len(ctx context.Context) (int, error)
}

// CaseStore owns AOG cases and their statuses
type CaseStore interface {
	FindByCaseID(ctx context.Context, caseID string) (*AOGCase, error)
	FindAll(ctx context.Context) ([]*AOGCase, error)
	SetStatus(ctx context.Context, caseID, status string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// CustomerRepository provides read access to contracted airline accounts
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]*Customer, error)
	FinancialSummary(ctx context.Context) (*FinancialSummary, error)
}
