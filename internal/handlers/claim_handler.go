package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"claims-service/internal/repository"
	"claims-service/internal/services"
	"claims-service/internal/utils"

	"github.com/gofiber/fiber/v3"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

type ClaimHandler struct {
	claimService *services.ClaimService
}

func NewClaimHandler(claimService *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

func (h *ClaimHandler) Register(app *fiber.App) {
	claimGr := app.Group("claims/api/v1")

	claimGr.Post("/submit", h.SubmitClaim)             // POST /claims/api/v1/submit - Upload and adjudicate a claim document
	claimGr.Get("/history", h.GetClaimHistory)         // GET  /claims/api/v1/history - Paginated claim history, newest first
	claimGr.Get("/detail/:claim_id", h.GetClaimDetail) // GET  /claims/api/v1/detail/{claim_id} - Full claim record with document URL
}

func (h *ClaimHandler) SubmitClaim(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("MISSING_FILE", "A claim document must be uploaded in the 'file' field"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("failed to open uploaded file", "filename", fileHeader.Filename, "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_FILE", "Unable to read uploaded file"))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read uploaded file", "filename", fileHeader.Filename, "error", err)
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_FILE", "Unable to read uploaded file"))
	}

	claim, err := h.claimService.SubmitClaim(c.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), content)
	if err != nil {
		slog.Error("claim submission failed", "filename", fileHeader.Filename, "error", err)
		switch {
		case strings.Contains(err.Error(), "invalid document"):
			return c.Status(http.StatusBadRequest).JSON(
				utils.CreateErrorResponse("INVALID_DOCUMENT", err.Error()))
		case strings.Contains(err.Error(), "extraction"):
			return c.Status(http.StatusBadGateway).JSON(
				utils.CreateErrorResponse("EXTRACTION_FAILED", "Document extraction failed, please retry"))
		default:
			return c.Status(http.StatusInternalServerError).JSON(
				utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to process claim"))
		}
	}

	return c.Status(http.StatusCreated).JSON(utils.CreateSuccessResponse(claim))
}

func (h *ClaimHandler) GetClaimHistory(c fiber.Ctx) error {
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", defaultHistoryLimit)
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}

	claims, err := h.claimService.GetClaimHistory(c.Context(), skip, limit)
	if err != nil {
		slog.Error("failed to get claim history", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to get claim history"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(claims))
}

func (h *ClaimHandler) GetClaimDetail(c fiber.Ctx) error {
	claimID := c.Params("claim_id")
	if claimID == "" {
		return c.Status(http.StatusBadRequest).JSON(
			utils.CreateErrorResponse("INVALID_REQUEST", "claim_id is required"))
	}

	detail, err := h.claimService.GetClaimDetail(c.Context(), claimID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return c.Status(http.StatusNotFound).JSON(
				utils.CreateErrorResponse("CLAIM_NOT_FOUND", "No claim exists with the given id"))
		}
		slog.Error("failed to get claim detail", "claim_id", claimID, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to get claim detail"))
	}

	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(detail))
}

func queryInt(c fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
