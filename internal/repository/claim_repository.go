package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"claims-service/internal/models"

	"github.com/jmoiron/sqlx"
)

// ErrClaimNotFound distinguishes a missing claim from a database failure.
var ErrClaimNotFound = errors.New("claim not found")

type ClaimRepository struct {
	db *sqlx.DB
}

func NewClaimRepository(db *sqlx.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create inserts a new claim record and fills in its database id and
// creation timestamp.
func (r *ClaimRepository) Create(ctx context.Context, claim *models.Claim) error {
	query := `
		INSERT INTO claims (claim_id, patient_name, diagnosis, treatment_date,
		       total_amount, approved_amount, status, confidence_score,
		       reasons, extracted_data, document_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		claim.ClaimID,
		claim.PatientName,
		claim.Diagnosis,
		claim.TreatmentDate,
		claim.TotalAmount,
		claim.ApprovedAmount,
		claim.Status,
		claim.ConfidenceScore,
		claim.Reasons,
		claim.ExtractedData,
		claim.DocumentPath,
	).Scan(&claim.ID, &claim.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert claim: %w", err)
	}

	return nil
}

// GetByClaimID retrieves a claim by its public claim identifier
func (r *ClaimRepository) GetByClaimID(ctx context.Context, claimID string) (*models.Claim, error) {
	var claim models.Claim
	query := `
		SELECT id, claim_id, patient_name, diagnosis, treatment_date,
		       total_amount, approved_amount, status, confidence_score,
		       reasons, extracted_data, document_path, created_at
		FROM claims
		WHERE claim_id = $1
	`

	err := r.db.GetContext(ctx, &claim, query, claimID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("claim %s: %w", claimID, ErrClaimNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get claim by claim_id: %w", err)
	}

	return &claim, nil
}

// List retrieves claims newest first with offset pagination
func (r *ClaimRepository) List(ctx context.Context, skip, limit int) ([]models.Claim, error) {
	var claims []models.Claim
	query := `
		SELECT id, claim_id, patient_name, diagnosis, treatment_date,
		       total_amount, approved_amount, status, confidence_score,
		       reasons, extracted_data, document_path, created_at
		FROM claims
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`

	err := r.db.SelectContext(ctx, &claims, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	return claims, nil
}

// ApprovedTotalByPatient returns the cumulative approved spend for a patient
// across previously approved and partially approved claims. Patients with no
// history yield 0.
func (r *ClaimRepository) ApprovedTotalByPatient(ctx context.Context, patientName string) (float64, error) {
	var total float64
	query := `
		SELECT COALESCE(SUM(approved_amount), 0)
		FROM claims
		WHERE patient_name = $1
		  AND status IN ($2, $3)
	`

	err := r.db.GetContext(ctx, &total, query, patientName, models.ClaimApproved, models.ClaimPartial)
	if err != nil {
		return 0, fmt.Errorf("failed to sum approved amounts for patient: %w", err)
	}

	return total, nil
}

// Exists checks if a claim exists by its public identifier
func (r *ClaimRepository) Exists(ctx context.Context, claimID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM claims WHERE claim_id = $1)`

	err := r.db.GetContext(ctx, &exists, query, claimID)
	if err != nil {
		return false, fmt.Errorf("failed to check claim existence: %w", err)
	}

	return exists, nil
}
