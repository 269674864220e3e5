package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSuccessResponse(t *testing.T) {
	resp := CreateSuccessResponse(map[string]string{"claim_id": "CLM-ABC12345"})

	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.False(t, resp.Timestamp.IsZero())

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"error"`)
}

func TestCreateErrorResponse(t *testing.T) {
	resp := CreateErrorResponse("CLAIM_NOT_FOUND", "No claim exists with the given id")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CLAIM_NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "No claim exists with the given id", resp.Error.Message)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"data"`)
}
