package dto

// DepartmentCount is one row of the per-department student breakdown
type DepartmentCount struct {
	Department string `json:"department"`
	Students   int64  `json:"students"`
}

// OverviewResponse aggregates counts for the admin dashboard
type OverviewResponse struct {
	Students        int64             `json:"students"`
	Faculty         int64             `json:"faculty"`
	PendingFees     int64             `json:"pendingFees"`
	CollectedAmount float64           `json:"collectedAmount"`
	Departments     []DepartmentCount `json:"departments"`
}
