package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DateLayout is the calendar-date format used by policy effective dates and
// extracted treatment dates.
const DateLayout = "2006-01-02"

type Category string

const (
	CategoryDental       Category = "dental"
	CategoryConsultation Category = "consultation_fees"
	CategoryDiagnostics  Category = "diagnostic_tests"
	CategoryPharmacy     Category = "pharmacy"
	CategoryGeneral      Category = "general"
)

// CategoryRule holds the per-category coverage rules. All fields are optional;
// an absent field means the rule does not apply to the category.
type CategoryRule struct {
	SubLimit          *float64 `json:"sub_limit,omitempty"`
	CoPayPercentage   *float64 `json:"copay_percentage,omitempty"`
	PreAuthRequired   []string `json:"pre_auth_required,omitempty"`
	CoveredProcedures []string `json:"procedures_covered,omitempty"`
	CosmeticCovered   *bool    `json:"cosmetic_procedures,omitempty"`
}

type Coverage struct {
	AnnualLimit   float64                   `json:"annual_limit"`
	PerClaimLimit float64                   `json:"per_claim_limit"`
	Categories    map[Category]CategoryRule `json:"categories"`
}

// Rule returns the rule set for a category. An unknown category yields an
// empty rule set, never an error.
func (c Coverage) Rule(category Category) CategoryRule {
	return c.Categories[category]
}

// AilmentWait pairs an ailment keyword with its required policy age in days.
// Entries are scanned in declared order and the first failing entry wins, so
// this is a slice rather than a map.
type AilmentWait struct {
	Ailment string `json:"ailment"`
	Days    int    `json:"days"`
}

type WaitingPeriods struct {
	InitialDays int           `json:"initial_waiting"`
	Ailments    []AilmentWait `json:"specific_ailments"`
}

type ClaimRequirements struct {
	SubmissionTimelineDays int     `json:"submission_timeline_days"`
	MinimumClaimAmount     float64 `json:"minimum_claim_amount"`
}

// Terms is the full policy configuration. It is constructed once at startup
// and treated as immutable for the life of the process.
type Terms struct {
	PolicyID          string            `json:"policy_id"`
	EffectiveDate     string            `json:"effective_date"`
	Coverage          Coverage          `json:"coverage_details"`
	WaitingPeriods    WaitingPeriods    `json:"waiting_periods"`
	Exclusions        []string          `json:"exclusions"`
	ClaimRequirements ClaimRequirements `json:"claim_requirements"`
}

// StartDate returns the parsed effective date. Validate guarantees it parses.
func (t Terms) StartDate() time.Time {
	start, _ := time.Parse(DateLayout, t.EffectiveDate)
	return start
}

// Validate checks the structural invariants: the effective date parses and all
// monetary and day values are non-negative.
func (t Terms) Validate() error {
	if _, err := time.Parse(DateLayout, t.EffectiveDate); err != nil {
		return fmt.Errorf("invalid effective_date %q: %w", t.EffectiveDate, err)
	}
	if t.Coverage.AnnualLimit < 0 {
		return fmt.Errorf("annual_limit must be non-negative, got %v", t.Coverage.AnnualLimit)
	}
	if t.Coverage.PerClaimLimit < 0 {
		return fmt.Errorf("per_claim_limit must be non-negative, got %v", t.Coverage.PerClaimLimit)
	}
	for category, rule := range t.Coverage.Categories {
		if rule.SubLimit != nil && *rule.SubLimit < 0 {
			return fmt.Errorf("category %s: sub_limit must be non-negative", category)
		}
		if rule.CoPayPercentage != nil && (*rule.CoPayPercentage < 0 || *rule.CoPayPercentage > 100) {
			return fmt.Errorf("category %s: copay_percentage must be within [0,100]", category)
		}
	}
	if t.WaitingPeriods.InitialDays < 0 {
		return fmt.Errorf("initial_waiting must be non-negative, got %d", t.WaitingPeriods.InitialDays)
	}
	for _, wait := range t.WaitingPeriods.Ailments {
		if wait.Days < 0 {
			return fmt.Errorf("ailment %s: waiting days must be non-negative", wait.Ailment)
		}
	}
	if t.ClaimRequirements.SubmissionTimelineDays < 0 {
		return fmt.Errorf("submission_timeline_days must be non-negative, got %d", t.ClaimRequirements.SubmissionTimelineDays)
	}
	if t.ClaimRequirements.MinimumClaimAmount < 0 {
		return fmt.Errorf("minimum_claim_amount must be non-negative, got %v", t.ClaimRequirements.MinimumClaimAmount)
	}
	return nil
}

// LoadFromFile reads a policy terms document from a JSON file.
func LoadFromFile(path string) (Terms, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Terms{}, fmt.Errorf("failed to read policy terms file: %w", err)
	}

	var terms Terms
	if err := json.Unmarshal(content, &terms); err != nil {
		return Terms{}, fmt.Errorf("failed to parse policy terms file %s: %w", path, err)
	}

	if err := terms.Validate(); err != nil {
		return Terms{}, fmt.Errorf("policy terms file %s: %w", path, err)
	}

	return terms, nil
}

// Default returns the built-in PLUM_OPD_2024 policy terms.
func Default() Terms {
	return Terms{
		PolicyID:      "PLUM_OPD_2024",
		EffectiveDate: "2024-01-01",
		Coverage: Coverage{
			AnnualLimit:   50000,
			PerClaimLimit: 5000,
			Categories: map[Category]CategoryRule{
				CategoryConsultation: {
					SubLimit:        f64(2000),
					CoPayPercentage: f64(10),
				},
				CategoryDiagnostics: {
					SubLimit:        f64(10000),
					PreAuthRequired: []string{"MRI", "CT Scan"},
				},
				CategoryPharmacy: {
					SubLimit: f64(15000),
				},
				CategoryDental: {
					SubLimit:          f64(10000),
					CoveredProcedures: []string{"Filling", "Extraction", "Root canal", "Cleaning"},
					CosmeticCovered:   boolPtr(false),
				},
			},
		},
		WaitingPeriods: WaitingPeriods{
			InitialDays: 30,
			Ailments: []AilmentWait{
				{Ailment: "diabetes", Days: 90},
				{Ailment: "hypertension", Days: 90},
				{Ailment: "joint_replacement", Days: 730},
			},
		},
		Exclusions: []string{
			"cosmetic", "weight loss", "infertility", "experimental",
			"self-inflicted", "adventure sports", "alcoholism", "drug abuse",
			"whitening", "hair transplant",
		},
		ClaimRequirements: ClaimRequirements{
			SubmissionTimelineDays: 30,
			MinimumClaimAmount:     500,
		},
	}
}

func f64(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }
