package adjudication

import "fmt"

// ReasonCode is the stable machine-readable tag attached to every reason
// entry. Callers and tests match on the code; the message is display text.
type ReasonCode string

const (
	ReasonLowConfidence         ReasonCode = "LOW_CONFIDENCE"
	ReasonDoctorRegInvalid      ReasonCode = "DOCTOR_REG_INVALID"
	ReasonBelowMinAmount        ReasonCode = "BELOW_MIN_AMOUNT"
	ReasonNotMedicallyNecessary ReasonCode = "NOT_MEDICALLY_NECESSARY"
	ReasonLateSubmission        ReasonCode = "LATE_SUBMISSION"
	ReasonWaitingPeriod         ReasonCode = "WAITING_PERIOD"
	ReasonDateInvalid           ReasonCode = "DATE_INVALID"
	ReasonExcludedCondition     ReasonCode = "EXCLUDED_CONDITION"
	ReasonAnnualLimitExceeded   ReasonCode = "ANNUAL_LIMIT_EXCEEDED"
	ReasonSubLimitExceeded      ReasonCode = "SUB_LIMIT_EXCEEDED"
	ReasonCoPayDeduction        ReasonCode = "CO_PAY_DEDUCTION"
	ReasonPerClaimExceeded      ReasonCode = "PER_CLAIM_EXCEEDED"
)

// Reason is one adjudication finding. Amount carries the numeric context of
// monetary reasons (threshold, cap, or deducted value) so callers can assert
// on it independently of the message wording.
type Reason struct {
	Code    ReasonCode `json:"code"`
	Message string     `json:"message"`
	Amount  *float64   `json:"amount,omitempty"`
}

func (r Reason) String() string {
	if r.Message == "" {
		return string(r.Code)
	}
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

func reason(code ReasonCode, message string) Reason {
	return Reason{Code: code, Message: message}
}

func reasonAmount(code ReasonCode, message string, amount float64) Reason {
	return Reason{Code: code, Message: message, Amount: &amount}
}
