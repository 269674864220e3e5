package adjudication

import (
	"testing"
	"time"

	"claims-service/internal/policy"

	"github.com/stretchr/testify/assert"
)

func TestDaysSincePolicyStart_ValidDate(t *testing.T) {
	days, treatDate, ok := DaysSincePolicyStart(policy.Default(), "2024-01-31")

	assert.True(t, ok)
	assert.Equal(t, 30, days)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), treatDate)
}

func TestDaysSincePolicyStart_BeforePolicyStart(t *testing.T) {
	days, _, ok := DaysSincePolicyStart(policy.Default(), "2023-12-15")

	assert.True(t, ok)
	assert.Equal(t, -17, days)
}

func TestDaysSincePolicyStart_InvalidDates(t *testing.T) {
	for _, raw := range []string{"", "yesterday", "2024/01/05", "05-01-2024"} {
		days, _, ok := DaysSincePolicyStart(policy.Default(), raw)
		assert.False(t, ok, "input %q", raw)
		assert.Equal(t, -1, days, "input %q", raw)
	}
}

func TestCheckWaitingPeriod_InitialPeriodFailsClosed(t *testing.T) {
	ok, msg := CheckWaitingPeriod(policy.Default(), "fever", 12)

	assert.False(t, ok)
	assert.Equal(t, "General Waiting Period not met (Policy age: 12 days)", msg)
}

func TestCheckWaitingPeriod_AilmentSpecific(t *testing.T) {
	ok, msg := CheckWaitingPeriod(policy.Default(), "Hypertension stage 1", 45)

	assert.False(t, ok)
	assert.Equal(t, "Waiting Period for Hypertension not met (90 days required)", msg)
}

func TestCheckWaitingPeriod_FirstFailingAilmentWins(t *testing.T) {
	// Both diabetes (90d) and joint_replacement (730d) are unmet at day 45;
	// the entry declared first is the one reported.
	ok, msg := CheckWaitingPeriod(policy.Default(), "diabetes, joint_replacement planned", 45)

	assert.False(t, ok)
	assert.Contains(t, msg, "Diabetes")
}

func TestCheckWaitingPeriod_LaterAilmentStillChecked(t *testing.T) {
	// Diabetes cleared at day 100, joint replacement still inside its 730d.
	ok, msg := CheckWaitingPeriod(policy.Default(), "diabetes, joint_replacement planned", 100)

	assert.False(t, ok)
	assert.Equal(t, "Waiting Period for Joint_Replacement not met (730 days required)", msg)
}

func TestCheckWaitingPeriod_MixedCaseAilmentKeyword(t *testing.T) {
	terms := policy.Default()
	terms.WaitingPeriods.Ailments = []policy.AilmentWait{{Ailment: "Diabetes", Days: 90}}

	ok, msg := CheckWaitingPeriod(terms, "diabetes mellitus", 45)

	assert.False(t, ok)
	assert.Equal(t, "Waiting Period for Diabetes not met (90 days required)", msg)
}

func TestCheckWaitingPeriod_AllClear(t *testing.T) {
	ok, msg := CheckWaitingPeriod(policy.Default(), "diabetes management", 120)

	assert.True(t, ok)
	assert.Empty(t, msg)
}

func TestCheckWaitingPeriod_EmptyDiagnosis(t *testing.T) {
	ok, _ := CheckWaitingPeriod(policy.Default(), "", 60)

	assert.True(t, ok)
}
