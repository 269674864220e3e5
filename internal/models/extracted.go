package models

import "encoding/json"

// ExtractedClaimData is the structured record the AI extraction returns for an
// uploaded document. Every field is optional: the record is untrusted and may
// be partial, so consumers go through the accessor methods instead of
// dereferencing pointers directly.
type ExtractedClaimData struct {
	DocumentType           *string      `json:"document_type,omitempty"`
	PatientName            *string      `json:"patient_name,omitempty"`
	DateOfService          *string      `json:"date_of_service,omitempty"`
	DoctorName             *string      `json:"doctor_name,omitempty"`
	DoctorRegNo            *string      `json:"doctor_reg_no,omitempty"`
	Diagnosis              *string      `json:"diagnosis,omitempty"`
	Medicines              []string     `json:"medicines,omitempty"`
	TotalClaimedAmount     *float64     `json:"total_claimed_amount,omitempty"`
	LineItems              LineItemList `json:"line_items,omitempty"`
	HospitalName           *string      `json:"hospital_name,omitempty"`
	IsHandwritten          *bool        `json:"is_handwritten,omitempty"`
	ConfidenceScore        *float64     `json:"confidence_score,omitempty"`
	MedicalNecessityCheck  *string      `json:"medical_necessity_check,omitempty"`
	MedicalNecessityReason *string      `json:"medical_necessity_reason,omitempty"`
}

type LineItem struct {
	Item *string  `json:"item,omitempty"`
	Cost *float64 `json:"cost,omitempty"`
}

// LineItemList drops malformed entries (anything that is not a JSON object)
// instead of failing the whole document decode.
type LineItemList []LineItem

func (l *LineItemList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not a list at all; treat as absent.
		*l = nil
		return nil
	}

	items := make(LineItemList, 0, len(raw))
	for _, entry := range raw {
		var item LineItem
		if err := json.Unmarshal(entry, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	*l = items
	return nil
}

// Confidence returns the extraction confidence score, 0 when absent.
func (d ExtractedClaimData) Confidence() float64 {
	if d.ConfidenceScore == nil {
		return 0
	}
	return *d.ConfidenceScore
}

// ClaimedAmount returns the total claimed amount, 0 when absent.
func (d ExtractedClaimData) ClaimedAmount() float64 {
	if d.TotalClaimedAmount == nil {
		return 0
	}
	return *d.TotalClaimedAmount
}

// DiagnosisText returns the diagnosis, empty when absent.
func (d ExtractedClaimData) DiagnosisText() string {
	if d.Diagnosis == nil {
		return ""
	}
	return *d.Diagnosis
}

// ServiceDate returns the raw date-of-service string, empty when absent.
func (d ExtractedClaimData) ServiceDate() string {
	if d.DateOfService == nil {
		return ""
	}
	return *d.DateOfService
}

// Patient returns the patient name, empty when absent.
func (d ExtractedClaimData) Patient() string {
	if d.PatientName == nil {
		return ""
	}
	return *d.PatientName
}

// RegistrationNo returns the doctor registration number, empty when absent.
func (d ExtractedClaimData) RegistrationNo() string {
	if d.DoctorRegNo == nil {
		return ""
	}
	return *d.DoctorRegNo
}

// NecessityFailed reports whether the extraction flagged the treatment as not
// medically necessary.
func (d ExtractedClaimData) NecessityFailed() bool {
	return d.MedicalNecessityCheck != nil && NecessityVerdict(*d.MedicalNecessityCheck) == NecessityFail
}

// NecessityReason returns the extraction's necessity explanation, or the given
// fallback when absent.
func (d ExtractedClaimData) NecessityReason(fallback string) string {
	if d.MedicalNecessityReason == nil || *d.MedicalNecessityReason == "" {
		return fallback
	}
	return *d.MedicalNecessityReason
}
