package models

// ClaimVolumeStats holds raw per-status counts and money totals from the
// claims table.
type ClaimVolumeStats struct {
	TotalClaims    int64   `json:"total_claims" db:"total_claims"`
	Approved       int64   `json:"approved" db:"approved"`
	Rejected       int64   `json:"rejected" db:"rejected"`
	Partial        int64   `json:"partial" db:"partial"`
	ManualReview   int64   `json:"manual_review" db:"manual_review"`
	TotalDisbursed float64 `json:"total_disbursed" db:"total_disbursed"`
	TotalClaimed   float64 `json:"total_claimed" db:"total_claimed"`
}

// DashboardStats is the volume stats plus derived ratios served to the UI.
type DashboardStats struct {
	ClaimVolumeStats
	AutoAdjudicationRate float64 `json:"auto_adjudication_rate"`
}
