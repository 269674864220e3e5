package adjudication

import (
	"testing"

	"claims-service/internal/models"
	"claims-service/internal/policy"

	"github.com/stretchr/testify/assert"
)

func lineItem(desc string, cost float64) models.LineItem {
	return models.LineItem{Item: &desc, Cost: &cost}
}

func TestCategorize_PriorityOrder(t *testing.T) {
	cases := []struct {
		name      string
		diagnosis string
		items     []models.LineItem
		want      policy.Category
	}{
		{"dental beats consultation", "root canal consultation", nil, policy.CategoryDental},
		{"consultation beats diagnostics", "consultation with MRI referral", nil, policy.CategoryConsultation},
		{"diagnostics beats pharmacy", "Blood test, 2 tablets dispensed", nil, policy.CategoryDiagnostics},
		{"pharmacy from dosage", "Paracetamol 500 mg", nil, policy.CategoryPharmacy},
		{"general fallback", "fever", nil, policy.CategoryGeneral},
		{"case insensitive", "TOOTH extraction", nil, policy.CategoryDental},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Categorize(tc.diagnosis, tc.items))
		})
	}
}

func TestCategorize_LineItemsContribute(t *testing.T) {
	items := []models.LineItem{
		lineItem("Chest X-Ray", 1200),
		lineItem("Reporting charges", 300),
	}

	assert.Equal(t, policy.CategoryDiagnostics, Categorize("chest pain", items))
}

func TestCategorize_NilItemDescriptionsIgnored(t *testing.T) {
	cost := 100.0
	items := []models.LineItem{{Cost: &cost}}

	assert.Equal(t, policy.CategoryGeneral, Categorize("", items))
}
