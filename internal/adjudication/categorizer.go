package adjudication

import (
	"strings"

	"claims-service/internal/models"
	"claims-service/internal/policy"
)

// categoryKeywords is scanned top to bottom and the first category with a
// matching keyword wins. The order is part of the policy semantics: a claim
// mentioning both "consultation" and "root canal" is dental.
var categoryKeywords = []struct {
	category policy.Category
	keywords []string
}{
	{policy.CategoryDental, []string{"root canal", "tooth", "filling"}},
	{policy.CategoryConsultation, []string{"consultation"}},
	{policy.CategoryDiagnostics, []string{"mri", "scan", "x-ray", "blood"}},
	{policy.CategoryPharmacy, []string{"pharmacy", "tablet", "mg"}},
}

// Categorize classifies a claim from its diagnosis text and line-item
// descriptions. Matching is case-insensitive substring search over a single
// text blob; claims matching nothing fall through to the general category.
func Categorize(diagnosis string, lineItems []models.LineItem) policy.Category {
	parts := []string{diagnosis}
	for _, item := range lineItems {
		if item.Item != nil {
			parts = append(parts, *item.Item)
		}
	}
	blob := strings.ToLower(strings.Join(parts, " "))

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(blob, keyword) {
				return entry.category
			}
		}
	}
	return policy.CategoryGeneral
}
