package models

import (
	"time"

	"claims-service/internal/utils"
)

// Claim is the persisted record produced for every submitted document.
// Rows are created once per submission and never mutated afterwards.
type Claim struct {
	ID              int64             `json:"id" db:"id"`
	ClaimID         string            `json:"claim_id" db:"claim_id"`
	PatientName     *string           `json:"patient_name" db:"patient_name"`
	Diagnosis       *string           `json:"diagnosis" db:"diagnosis"`
	TreatmentDate   *string           `json:"treatment_date" db:"treatment_date"`
	TotalAmount     float64           `json:"total_amount" db:"total_amount"`
	ApprovedAmount  float64           `json:"approved_amount" db:"approved_amount"`
	Status          ClaimStatus       `json:"status" db:"status"`
	ConfidenceScore float64           `json:"confidence_score" db:"confidence_score"`
	Reasons         utils.JSONStrings `json:"reasons" db:"reasons"`
	ExtractedData   utils.JSONMap     `json:"extracted_data" db:"extracted_data"`
	DocumentPath    string            `json:"document_path" db:"document_path"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
}

// ClaimDetailResponse is a claim plus a time-limited URL to the source document.
type ClaimDetailResponse struct {
	Claim       *Claim `json:"claim"`
	DocumentURL string `json:"document_url,omitempty"`
}
