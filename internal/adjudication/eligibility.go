package adjudication

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"claims-service/internal/policy"
)

// DaysSincePolicyStart parses the treatment date and returns the policy age in
// days at the time of treatment. An absent or unparseable date yields
// (-1, zero time, false); callers must branch on ok rather than expect an
// error.
func DaysSincePolicyStart(terms policy.Terms, treatmentDate string) (int, time.Time, bool) {
	treatDate, err := time.Parse(policy.DateLayout, treatmentDate)
	if err != nil {
		return -1, time.Time{}, false
	}
	days := int(treatDate.Sub(terms.StartDate()).Hours() / 24)
	return days, treatDate, true
}

// CheckWaitingPeriod validates the general and ailment-specific waiting
// periods. It fails closed on the initial waiting period, then scans the
// ailment entries in their declared order; the first ailment found in the
// diagnosis whose waiting period is not yet met fails the check and the rest
// are not examined.
func CheckWaitingPeriod(terms policy.Terms, diagnosis string, daysActive int) (bool, string) {
	diagnosis = strings.ToLower(diagnosis)

	if daysActive < terms.WaitingPeriods.InitialDays {
		return false, fmt.Sprintf("General Waiting Period not met (Policy age: %d days)", daysActive)
	}

	for _, wait := range terms.WaitingPeriods.Ailments {
		if strings.Contains(diagnosis, strings.ToLower(wait.Ailment)) && daysActive < wait.Days {
			return false, fmt.Sprintf("Waiting Period for %s not met (%d days required)", titleWords(wait.Ailment), wait.Days)
		}
	}

	return true, ""
}

// titleWords upper-cases the first letter of every word, treating any
// non-letter as a word boundary ("joint_replacement" -> "Joint_Replacement").
func titleWords(s string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range s {
		if !unicode.IsLetter(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
