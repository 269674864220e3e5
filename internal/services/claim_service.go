package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"claims-service/internal/adjudication"
	"claims-service/internal/database/minio"
	"claims-service/internal/event"
	"claims-service/internal/models"
	"claims-service/internal/repository"
	"claims-service/internal/utils"

	"github.com/google/uuid"
)

const documentURLExpiry = 1 * time.Hour

type ClaimService struct {
	claimRepo        *repository.ClaimRepository
	extraction       *ExtractionService
	storage          *minio.MinioClient
	engine           *adjudication.Engine
	publisher        *event.ClaimPublisher
	dashboardService *DashboardService
}

func NewClaimService(
	claimRepo *repository.ClaimRepository,
	extraction *ExtractionService,
	storage *minio.MinioClient,
	engine *adjudication.Engine,
	publisher *event.ClaimPublisher,
	dashboardService *DashboardService,
) *ClaimService {
	return &ClaimService{
		claimRepo:        claimRepo,
		extraction:       extraction,
		storage:          storage,
		engine:           engine,
		publisher:        publisher,
		dashboardService: dashboardService,
	}
}

// SubmitClaim runs the full submission pipeline: store the document, extract
// structured data, fetch the patient's approved-spend history, adjudicate,
// and persist the resulting claim record.
func (s *ClaimService) SubmitClaim(ctx context.Context, filename, contentType string, content []byte) (*models.Claim, error) {
	if err := s.extraction.ValidateDocument(content, contentType); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	objectName := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	if err := s.storage.UploadBytes(ctx, minio.Storage.ClaimDocuments, objectName, content, contentType); err != nil {
		return nil, fmt.Errorf("failed to store claim document: %w", err)
	}

	extracted, rawData, err := s.extraction.Extract(ctx, content, contentType)
	if err != nil {
		return nil, err
	}

	var priorApproved float64
	if patient := extracted.Patient(); patient != "" {
		priorApproved, err = s.claimRepo.ApprovedTotalByPatient(ctx, patient)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch patient claim history: %w", err)
		}
	}

	decision := s.engine.Adjudicate(extracted, priorApproved)

	claim := &models.Claim{
		ClaimID:         newClaimID(),
		PatientName:     extracted.PatientName,
		Diagnosis:       extracted.Diagnosis,
		TreatmentDate:   extracted.DateOfService,
		TotalAmount:     extracted.ClaimedAmount(),
		ApprovedAmount:  decision.ApprovedAmount,
		Status:          decision.Status,
		ConfidenceScore: extracted.Confidence(),
		Reasons:         utils.JSONStrings(decision.ReasonStrings()),
		ExtractedData:   rawData,
		DocumentPath:    objectName,
	}

	if err := s.claimRepo.Create(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to persist claim: %w", err)
	}

	slog.Info("Claim adjudicated",
		"claim_id", claim.ClaimID,
		"status", claim.Status,
		"claimed", claim.TotalAmount,
		"approved", claim.ApprovedAmount,
		"reasons", len(decision.Reasons))

	s.dashboardService.InvalidateCache(ctx)

	s.publisher.PublishDecision(ctx, event.ClaimDecisionEvent{
		ClaimID:        claim.ClaimID,
		PatientName:    extracted.Patient(),
		Status:         claim.Status,
		ApprovedAmount: claim.ApprovedAmount,
		Reasons:        decision.ReasonStrings(),
		DecidedAt:      claim.CreatedAt,
	})

	return claim, nil
}

// GetClaimHistory retrieves claims newest first with offset pagination
func (s *ClaimService) GetClaimHistory(ctx context.Context, skip, limit int) ([]models.Claim, error) {
	claims, err := s.claimRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}

	if claims == nil {
		claims = []models.Claim{}
	}
	return claims, nil
}

// GetClaimDetail retrieves a claim plus a presigned URL for its source
// document. A failed presign is logged and the claim returned without a URL.
func (s *ClaimService) GetClaimDetail(ctx context.Context, claimID string) (*models.ClaimDetailResponse, error) {
	claim, err := s.claimRepo.GetByClaimID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claim %s: %w", claimID, err)
	}

	detail := &models.ClaimDetailResponse{Claim: claim}
	if claim.DocumentPath != "" {
		url, err := s.storage.GetPresignedURL(ctx, minio.Storage.ClaimDocuments, claim.DocumentPath, documentURLExpiry)
		if err != nil {
			slog.Warn("failed to presign claim document", "claim_id", claimID, "error", err)
		} else {
			detail.DocumentURL = url
		}
	}

	return detail, nil
}

func newClaimID() string {
	return "CLM-" + strings.ToUpper(uuid.New().String()[:8])
}
