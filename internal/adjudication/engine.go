package adjudication

import (
	"fmt"
	"math"
	"strings"
	"time"

	"claims-service/internal/models"
	"claims-service/internal/policy"
)

const defaultNecessityReason = "Treatment does not match diagnosis"

// confidenceThreshold is the minimum extraction confidence below which a claim
// is routed straight to manual review.
const confidenceThreshold = 0.70

// Result is the adjudication outcome: a status, the payable amount rounded to
// two decimal places, and the findings in the order the checks ran. That order
// is part of the contract; callers display the reasons in sequence.
type Result struct {
	Status         models.ClaimStatus `json:"status"`
	ApprovedAmount float64            `json:"approved_amount"`
	Reasons        []Reason           `json:"reasons"`
}

// ReasonStrings renders the reasons as "CODE: message" lines for persistence
// and API responses.
func (r Result) ReasonStrings() []string {
	out := make([]string, 0, len(r.Reasons))
	for _, reason := range r.Reasons {
		out = append(out, reason.String())
	}
	return out
}

// Engine adjudicates extracted claim data against a fixed set of policy
// terms. It is a pure synchronous computation: no I/O, no shared state, safe
// for concurrent use. The only non-pure input is the evaluation clock, which
// is injectable for tests.
type Engine struct {
	terms policy.Terms
	now   func() time.Time
}

func NewEngine(terms policy.Terms) *Engine {
	return &Engine{terms: terms, now: time.Now}
}

// NewEngineWithClock builds an engine with a fixed evaluation clock.
func NewEngineWithClock(terms policy.Terms, now func() time.Time) *Engine {
	return &Engine{terms: terms, now: now}
}

// Terms returns the policy terms the engine adjudicates against.
func (e *Engine) Terms() policy.Terms {
	return e.terms
}

// Adjudicate runs the full decision sequence for one claim.
// priorApproved is the claimant's cumulative approved spend for the policy
// period; pass 0 when unknown.
func (e *Engine) Adjudicate(data models.ExtractedClaimData, priorApproved float64) Result {
	return e.AdjudicateAt(data, priorApproved, e.now())
}

// AdjudicateAt is Adjudicate with an explicit evaluation time. Identical
// inputs and evaluation time always produce an identical result.
func (e *Engine) AdjudicateAt(data models.ExtractedClaimData, priorApproved float64, at time.Time) Result {
	status := models.ClaimApproved
	reasons := []Reason{}
	rawAmount := data.ClaimedAmount()
	approvedAmount := rawAmount

	// Step 1: confidence gate. The only terminal check; everything else keeps
	// accumulating reasons.
	if data.Confidence() < confidenceThreshold {
		return Result{
			Status:         models.ClaimManualReview,
			ApprovedAmount: 0,
			Reasons:        []Reason{reason(ReasonLowConfidence, "Low AI Confidence Score")},
		}
	}

	// Step 2: sanity checks, evaluated independently.
	if data.RegistrationNo() == "" {
		status = models.ClaimRejected
		reasons = append(reasons, reason(ReasonDoctorRegInvalid, "Missing Registration Number"))
	}
	if minAmount := e.terms.ClaimRequirements.MinimumClaimAmount; rawAmount < minAmount {
		status = models.ClaimRejected
		reasons = append(reasons, reasonAmount(ReasonBelowMinAmount,
			fmt.Sprintf("Claim is below the minimum amount of %.2f", minAmount), minAmount))
	}

	// Step 3: medical necessity verdict from the extraction.
	if data.NecessityFailed() {
		status = models.ClaimRejected
		reasons = append(reasons, reason(ReasonNotMedicallyNecessary, data.NecessityReason(defaultNecessityReason)))
	}

	// Step 4: temporal eligibility.
	daysActive, treatDate, dateOK := DaysSincePolicyStart(e.terms, data.ServiceDate())
	if dateOK {
		daysSinceTreatment := int(at.Sub(treatDate).Hours() / 24)
		if daysSinceTreatment > e.terms.ClaimRequirements.SubmissionTimelineDays {
			status = models.ClaimRejected
			reasons = append(reasons, reasonAmount(ReasonLateSubmission,
				fmt.Sprintf("Submitted %d days after treatment", daysSinceTreatment), float64(daysSinceTreatment)))
		}

		if eligible, waitMsg := CheckWaitingPeriod(e.terms, data.DiagnosisText(), daysActive); !eligible {
			status = models.ClaimRejected
			reasons = append(reasons, reason(ReasonWaitingPeriod, waitMsg))
		}
	} else {
		reasons = append(reasons, reason(ReasonDateInvalid, "Could not parse Date of Service"))
		// Overrides an earlier rejection; the de-escalating precedence is
		// pinned by tests.
		status = models.ClaimManualReview
	}

	// Step 5: exclusions, matched case-insensitively. First matching keyword
	// wins, remaining entries are not scanned. The cosmetic-dental rule fires
	// independently.
	diagnosis := strings.ToLower(data.DiagnosisText())
	for _, excl := range e.terms.Exclusions {
		if strings.Contains(diagnosis, strings.ToLower(excl)) {
			status = models.ClaimRejected
			reasons = append(reasons, reason(ReasonExcludedCondition, strings.ToUpper(excl)))
			break
		}
	}

	category := Categorize(diagnosis, data.LineItems)
	if category == policy.CategoryDental &&
		(strings.Contains(diagnosis, "whitening") || strings.Contains(diagnosis, "cosmetic")) {
		status = models.ClaimRejected
		reasons = append(reasons, reason(ReasonExcludedCondition, "Cosmetic Dental Procedure"))
	}

	// Step 6: monetary cascade. Skipped entirely once rejected; each sub-step
	// caps the amount as mutated by the previous one.
	if status != models.ClaimRejected {
		rule := e.terms.Coverage.Rule(category)

		remainingAnnual := e.terms.Coverage.AnnualLimit - priorApproved
		if remainingAnnual <= 0 {
			status = models.ClaimRejected
			reasons = append(reasons, reasonAmount(ReasonAnnualLimitExceeded,
				fmt.Sprintf("History: %.2f, Limit: %.2f", priorApproved, e.terms.Coverage.AnnualLimit),
				e.terms.Coverage.AnnualLimit))
			approvedAmount = 0
		} else if approvedAmount > remainingAnnual {
			reasons = append(reasons, reasonAmount(ReasonAnnualLimitExceeded,
				fmt.Sprintf("Capped at remaining %.2f", remainingAnnual), remainingAnnual))
			approvedAmount = remainingAnnual
			if status == models.ClaimApproved {
				status = models.ClaimPartial
			}
		}

		if rule.SubLimit != nil && approvedAmount > *rule.SubLimit {
			reasons = append(reasons, reasonAmount(ReasonSubLimitExceeded,
				fmt.Sprintf("%s limit is %.2f", titleWords(string(category)), *rule.SubLimit), *rule.SubLimit))
			approvedAmount = *rule.SubLimit
			if status == models.ClaimApproved {
				status = models.ClaimPartial
			}
		}

		// Co-pay applies whenever the category configures it, even on an
		// amount already zeroed by the annual limit (a no-op then).
		if rule.CoPayPercentage != nil {
			coPayAmount := approvedAmount * (*rule.CoPayPercentage / 100)
			approvedAmount -= coPayAmount
			reasons = append(reasons, reasonAmount(ReasonCoPayDeduction,
				fmt.Sprintf("%.0f%% co-pay applied", *rule.CoPayPercentage), coPayAmount))
			if status == models.ClaimApproved {
				status = models.ClaimPartial
			}
		}

		if perClaim := e.terms.Coverage.PerClaimLimit; approvedAmount > perClaim {
			reasons = append(reasons, reasonAmount(ReasonPerClaimExceeded,
				fmt.Sprintf("Capped at %.2f", perClaim), perClaim))
			approvedAmount = perClaim
			if status == models.ClaimApproved {
				status = models.ClaimPartial
			}
		}
	}

	// Step 7: final floor. Nothing payable means rejection, except a claim
	// already routed to manual review.
	if approvedAmount <= 0 && status != models.ClaimManualReview {
		status = models.ClaimRejected
		approvedAmount = 0
	}

	return Result{
		Status:         status,
		ApprovedAmount: round2(approvedAmount),
		Reasons:        reasons,
	}
}

// round2 rounds to cents, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
