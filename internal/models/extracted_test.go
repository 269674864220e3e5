package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractedClaimData_DecodeDropsMalformedLineItems(t *testing.T) {
	raw := `{
		"diagnosis": "fever",
		"line_items": [
			{"item": "Consultation", "cost": 800},
			"free text junk",
			42,
			{"item": "Paracetamol"}
		]
	}`

	var data ExtractedClaimData
	require.NoError(t, json.Unmarshal([]byte(raw), &data))

	require.Len(t, data.LineItems, 2)
	assert.Equal(t, "Consultation", *data.LineItems[0].Item)
	assert.Equal(t, 800.0, *data.LineItems[0].Cost)
	assert.Equal(t, "Paracetamol", *data.LineItems[1].Item)
	assert.Nil(t, data.LineItems[1].Cost)
}

func TestExtractedClaimData_DecodeToleratesNonListLineItems(t *testing.T) {
	var data ExtractedClaimData
	require.NoError(t, json.Unmarshal([]byte(`{"line_items": "none"}`), &data))

	assert.Nil(t, data.LineItems)
}

func TestExtractedClaimData_UnknownFieldsIgnored(t *testing.T) {
	raw := `{"confidence_score": 0.9, "some_future_field": {"nested": true}}`

	var data ExtractedClaimData
	require.NoError(t, json.Unmarshal([]byte(raw), &data))

	assert.Equal(t, 0.9, data.Confidence())
}

func TestExtractedClaimData_AccessorDefaults(t *testing.T) {
	var data ExtractedClaimData

	assert.Equal(t, 0.0, data.Confidence())
	assert.Equal(t, 0.0, data.ClaimedAmount())
	assert.Empty(t, data.DiagnosisText())
	assert.Empty(t, data.ServiceDate())
	assert.Empty(t, data.Patient())
	assert.Empty(t, data.RegistrationNo())
	assert.False(t, data.NecessityFailed())
	assert.Equal(t, "fallback", data.NecessityReason("fallback"))
}

func TestExtractedClaimData_NecessityVerdict(t *testing.T) {
	fail := string(NecessityFail)
	why := "Whitening for a cavity diagnosis"
	data := ExtractedClaimData{
		MedicalNecessityCheck:  &fail,
		MedicalNecessityReason: &why,
	}

	assert.True(t, data.NecessityFailed())
	assert.Equal(t, why, data.NecessityReason("fallback"))
}
