package repository

import (
	"context"
	"log/slog"

	"claims-service/internal/models"

	"github.com/jmoiron/sqlx"
)

type DashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// GetClaimVolumeStats returns per-status counts and money totals across all
// claims in a single scan.
func (r *DashboardRepository) GetClaimVolumeStats(ctx context.Context) (*models.ClaimVolumeStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_claims,
			COUNT(*) FILTER (WHERE status = 'APPROVED')      AS approved,
			COUNT(*) FILTER (WHERE status = 'REJECTED')      AS rejected,
			COUNT(*) FILTER (WHERE status = 'PARTIAL')       AS partial,
			COUNT(*) FILTER (WHERE status = 'MANUAL_REVIEW') AS manual_review,
			COALESCE(SUM(approved_amount), 0) AS total_disbursed,
			COALESCE(SUM(total_amount), 0)    AS total_claimed
		FROM claims
	`

	var stats models.ClaimVolumeStats
	err := r.db.GetContext(ctx, &stats, query)
	if err != nil {
		slog.Error("failed to get claim volume stats", "error", err)
		return nil, err
	}

	return &stats, nil
}
