package application

// GenerateQuoteCommand requests a quote for an AOG case. PartNeeded and
// PartNumber may be empty; the engine substitutes placeholders and prices
// through the degraded branch rather than rejecting the request.
type GenerateQuoteCommand struct {
	CaseID     string `json:"case_id" binding:"required,case_id"`
	Airline    string `json:"airline" binding:"omitempty,safe_string,max=100"`
	Aircraft   string `json:"aircraft" binding:"omitempty,safe_string,max=100"`
	PartNeeded string `json:"part_needed" binding:"omitempty,safe_string,max=200"`
	PartNumber string `json:"part_number" binding:"omitempty,max=50"`
}

// GetPartMetricsQuery looks up stock health for one part
type GetPartMetricsQuery struct {
	PartNumber string
}

// GetQuoteQuery looks up the quote for one case
type GetQuoteQuery struct {
	CaseID string
}

// GetCaseQuery looks up one AOG case
type GetCaseQuery struct {
	CaseID string
}

// ListCasesQuery lists cases, optionally filtered by status
type ListCasesQuery struct {
	Status string
}
