package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"claims-service/internal/ai/gemini"
	"claims-service/internal/models"
	"claims-service/internal/utils"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// maxPDFPages caps how large a document we hand to the extraction model.
const maxPDFPages = 20

// ExtractionService turns an uploaded claim document into the structured
// record the adjudication engine consumes.
type ExtractionService struct {
	selector *gemini.ClientSelector
}

func NewExtractionService(selector *gemini.ClientSelector) *ExtractionService {
	return &ExtractionService{selector: selector}
}

// ValidateDocument rejects documents the extraction model cannot work with.
// PDFs must parse and stay within the page cap; other media types are left to
// the model itself.
func (s *ExtractionService) ValidateDocument(content []byte, contentType string) error {
	if len(content) == 0 {
		return fmt.Errorf("document is empty")
	}

	if isPDF(content, contentType) {
		conf := model.NewDefaultConfiguration()
		pageCount, err := api.PageCount(bytes.NewReader(content), conf)
		if err != nil {
			return fmt.Errorf("corrupt PDF document: %w", err)
		}
		if pageCount == 0 {
			return fmt.Errorf("PDF document has no pages")
		}
		if pageCount > maxPDFPages {
			return fmt.Errorf("PDF document has %d pages, maximum is %d", pageCount, maxPDFPages)
		}
	}

	return nil
}

// Extract sends the document to Gemini and decodes the response. It returns
// both the typed record and the raw JSON map; the raw map preserves fields the
// typed record does not know about and is what gets persisted.
func (s *ExtractionService) Extract(ctx context.Context, content []byte, contentType string) (models.ExtractedClaimData, utils.JSONMap, error) {
	raw, err := gemini.SendAIWithDocumentAndRetry(ctx, gemini.ExtractionPrompt, contentType, content, s.selector)
	if err != nil {
		return models.ExtractedClaimData{}, nil, fmt.Errorf("extraction failed: %w", err)
	}

	var extracted models.ExtractedClaimData
	if err := json.Unmarshal(raw, &extracted); err != nil {
		return models.ExtractedClaimData{}, nil, fmt.Errorf("extraction returned malformed JSON: %w", err)
	}

	var rawMap utils.JSONMap
	if err := json.Unmarshal(raw, &rawMap); err != nil {
		slog.Warn("extraction response is not a JSON object, persisting typed fields only", "error", err)
		rawMap = nil
	}

	return extracted, rawMap, nil
}

func isPDF(content []byte, contentType string) bool {
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return true
	}
	return bytes.HasPrefix(content, []byte("%PDF"))
}
