package models

type ClaimStatus string

const (
	ClaimApproved     ClaimStatus = "APPROVED"
	ClaimPartial      ClaimStatus = "PARTIAL"
	ClaimRejected     ClaimStatus = "REJECTED"
	ClaimManualReview ClaimStatus = "MANUAL_REVIEW"
)

type DocumentType string

const (
	DocumentBill         DocumentType = "BILL"
	DocumentPrescription DocumentType = "PRESCRIPTION"
	DocumentReport       DocumentType = "REPORT"
	DocumentUnknown      DocumentType = "UNKNOWN"
)

type NecessityVerdict string

const (
	NecessityPass NecessityVerdict = "PASS"
	NecessityFail NecessityVerdict = "FAIL"
)
