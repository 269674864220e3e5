package services

import (
	"strings"
	"testing"

	"claims-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAutoAdjudicationRate(t *testing.T) {
	tests := []struct {
		name   string
		total  int64
		manual int64
		want   float64
	}{
		{"no claims", 0, 0, 0},
		{"all automatic", 10, 0, 100},
		{"all manual", 5, 5, 0},
		{"rounded to one decimal", 3, 1, 66.7},
		{"two thirds", 6, 2, 66.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := autoAdjudicationRate(&models.ClaimVolumeStats{
				TotalClaims:  tt.total,
				ManualReview: tt.manual,
			})
			assert.Equal(t, tt.want, rate)
		})
	}
}

func TestNewClaimID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newClaimID()
		assert.Len(t, id, 12)
		assert.Equal(t, "CLM-", id[:4])
		assert.Equal(t, id[4:], strings.ToUpper(id[4:]))
		assert.False(t, seen[id], "claim ids should not repeat")
		seen[id] = true
	}
}

func TestIsPDF(t *testing.T) {
	assert.True(t, isPDF([]byte("%PDF-1.7 ..."), "application/octet-stream"))
	assert.True(t, isPDF([]byte{0x00}, "application/pdf"))
	assert.False(t, isPDF([]byte{0x89, 'P', 'N', 'G'}, "image/png"))
}
