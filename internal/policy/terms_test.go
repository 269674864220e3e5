package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	terms := Default()

	assert.NoError(t, terms.Validate())
	assert.Equal(t, "PLUM_OPD_2024", terms.PolicyID)
	assert.Equal(t, 50000.0, terms.Coverage.AnnualLimit)
	assert.Equal(t, 5000.0, terms.Coverage.PerClaimLimit)
}

func TestCoverage_UnknownCategoryYieldsEmptyRule(t *testing.T) {
	rule := Default().Coverage.Rule(CategoryGeneral)

	assert.Nil(t, rule.SubLimit)
	assert.Nil(t, rule.CoPayPercentage)
}

func TestCoverage_ConsultationRule(t *testing.T) {
	rule := Default().Coverage.Rule(CategoryConsultation)

	require.NotNil(t, rule.SubLimit)
	assert.Equal(t, 2000.0, *rule.SubLimit)
	require.NotNil(t, rule.CoPayPercentage)
	assert.Equal(t, 10.0, *rule.CoPayPercentage)
}

func TestValidate_RejectsBadEffectiveDate(t *testing.T) {
	terms := Default()
	terms.EffectiveDate = "01/01/2024"

	assert.Error(t, terms.Validate())
}

func TestValidate_RejectsNegativeLimits(t *testing.T) {
	terms := Default()
	terms.Coverage.AnnualLimit = -1

	assert.Error(t, terms.Validate())
}

func TestValidate_RejectsCoPayOver100(t *testing.T) {
	terms := Default()
	terms.Coverage.Categories[CategoryConsultation] = CategoryRule{CoPayPercentage: f64(120)}

	assert.Error(t, terms.Validate())
}

func TestLoadFromFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.json")
	content := `{
		"policy_id": "TEST_2025",
		"effective_date": "2025-01-01",
		"coverage_details": {
			"annual_limit": 10000,
			"per_claim_limit": 2500,
			"categories": {
				"pharmacy": {"sub_limit": 1500, "copay_percentage": 20}
			}
		},
		"waiting_periods": {
			"initial_waiting": 15,
			"specific_ailments": [{"ailment": "asthma", "days": 60}]
		},
		"exclusions": ["experimental"],
		"claim_requirements": {"submission_timeline_days": 45, "minimum_claim_amount": 100}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	terms, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "TEST_2025", terms.PolicyID)
	assert.Equal(t, 15, terms.WaitingPeriods.InitialDays)
	require.Len(t, terms.WaitingPeriods.Ailments, 1)
	assert.Equal(t, "asthma", terms.WaitingPeriods.Ailments[0].Ailment)

	rule := terms.Coverage.Rule(CategoryPharmacy)
	require.NotNil(t, rule.SubLimit)
	assert.Equal(t, 1500.0, *rule.SubLimit)
}

func TestLoadFromFile_InvalidTermsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"policy_id":"X","effective_date":"soon"}`), 0o644))

	_, err := LoadFromFile(path)

	assert.Error(t, err)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json"))

	assert.Error(t, err)
}
