// Package roster loads employee roster exports and normalizes them into a
// canonical schema suitable for lookup. Source files come from uncontrolled
// external systems: headers drift, carry diacritics, appear in any order and
// may be duplicated. Normalization is total — a row never fails, it degrades
// to empty fields.
package roster

// Canonical field names. Every normalized record carries all of them;
// the empty string is the "unknown" sentinel, never an absent value.
const (
	FieldEmployeeID           = "employeeId"
	FieldLastName             = "lastName"
	FieldFirstName            = "firstName"
	FieldNationalID           = "nationalId"
	FieldSocialInsuranceBase  = "socialInsuranceBase"
	FieldSocialInsuranceCheck = "socialInsuranceCheck"
)

// CanonicalFields lists the canonical schema in display order.
var CanonicalFields = []string{
	FieldEmployeeID,
	FieldLastName,
	FieldFirstName,
	FieldNationalID,
	FieldSocialInsuranceBase,
	FieldSocialInsuranceCheck,
}

// Widths for reconstructed identifiers.
const (
	NationalIDWidth     = 8
	InsuranceCheckWidth = 2

	// MinInsuranceNumberLen is the minimum length for a reconstructed
	// social-insurance number. Shorter concatenations are unusable
	// downstream and are stored as empty.
	MinInsuranceNumberLen = 8
)

// Record is one normalized employee row. Duplicated employee IDs in the
// source are retained verbatim — the roster is a sequence, not a map.
type Record struct {
	EmployeeID            string `json:"employeeId"`
	LastName              string `json:"lastName"`
	FirstName             string `json:"firstName"`
	NationalID            string `json:"nationalId"`
	SocialInsuranceBase   string `json:"socialInsuranceBase"`
	SocialInsuranceCheck  string `json:"socialInsuranceCheck"`
	SocialInsuranceNumber string `json:"socialInsuranceNumber"`
}

// FullName returns "LastName FirstName" with single spacing, the display
// form used by name search and letter payloads.
func (r Record) FullName() string {
	switch {
	case r.LastName == "":
		return r.FirstName
	case r.FirstName == "":
		return r.LastName
	default:
		return r.LastName + " " + r.FirstName
	}
}
