package domain

// Case lifecycle statuses
const (
	CaseStatusActive = "active"
	CaseStatusQuoted = "quoted"
	CaseStatusClosed = "closed"
)

// AOGCase is one aircraft-on-ground incident awaiting a part
type AOGCase struct {
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

// Customer is one contracted airline account
type Customer struct {
	Name           string `json:"name"`
	Region         string `json:"region"`
	Tier           string `json:"tier"`
	FleetSize      int    `json:"fleet_size"`
	AnnualAOGCases int    `json:"annual_aog_cases"`
}

// FinancialSummary is the headline business figures shown on the dashboard
type FinancialSummary struct {
	AnnualRevenue      float64 `json:"annual_revenue"`
	AOGRevenue         float64 `json:"aog_revenue"`
	OnTimeDeliveryRate float64 `json:"on_time_delivery_rate"`
	AvgResponseMinutes int     `json:"avg_response_minutes"`
}
