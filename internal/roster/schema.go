package roster

import (
	"fmt"
	"strings"
)

// headerRule maps a folded-header substring onto a canonical field.
// Rules are evaluated in order and the first match wins, so specific
// substrings must precede the generic ones they contain: "prenom" before
// "nom", and the insurance check key before the insurance number it
// embeds. The table is data — new header variants are added here without
// touching the matcher.
type headerRule struct {
	contains []string
	field    string
}

var headerRules = []headerRule{
	{contains: []string{"matric"}, field: FieldEmployeeID},
	{contains: []string{"prenom"}, field: FieldFirstName},
	{contains: []string{"nom"}, field: FieldLastName},
	{contains: []string{"carte de sejour", "carte de travail"}, field: FieldNationalID},
	{contains: []string{"cle du numero de securite"}, field: FieldSocialInsuranceCheck},
	{contains: []string{"numero de securite"}, field: FieldSocialInsuranceBase},
}

// headerAliases maps headers that already carry a source-canonical name
// onto the schema. These are exact matches only — "cin" as a substring
// would misfire on words like "médecin".
var headerAliases = map[string]string{
	"cin":  FieldNationalID,
	"cnss": FieldSocialInsuranceBase,
	"num":  FieldSocialInsuranceCheck,
}

// classifyHeader returns the canonical field for a raw header, or "" when
// no rule matches. Matching is accent- and case-insensitive; exact
// aliases are consulted before the substring rules.
func classifyHeader(header string) string {
	key := strings.TrimSpace(Fold(header))
	if field, ok := headerAliases[key]; ok {
		return field
	}
	for _, rule := range headerRules {
		for _, sub := range rule.contains {
			if strings.Contains(key, sub) {
				return rule.field
			}
		}
	}
	return ""
}

// DeduplicateHeaders makes header names unique while preserving order:
// the first occurrence keeps its name, the k-th repeat becomes "name.k".
func DeduplicateHeaders(headers []string) []string {
	seen := make(map[string]int, len(headers))
	out := make([]string, len(headers))
	for i, h := range headers {
		n, dup := seen[h]
		if !dup {
			seen[h] = 0
			out[i] = h
			continue
		}
		seen[h] = n + 1
		out[i] = fmt.Sprintf("%s.%d", h, n+1)
	}
	return out
}

// NormalizeTable maps a raw header row and table body onto the canonical
// schema. It never fails: unmapped source columns are dropped from the
// canonical view, canonical fields with no source column come back as
// empty strings, and when two source columns claim the same canonical
// field only the first one's data is kept. Cell values are expected to be
// sanitized already; fields are trimmed on the way out.
func NormalizeTable(headers []string, rows [][]string) []Record {
	deduped := DeduplicateHeaders(headers)

	// First source column wins per canonical field.
	colFor := make(map[string]int, len(CanonicalFields))
	for i, h := range deduped {
		field := classifyHeader(h)
		if field == "" {
			continue
		}
		if _, claimed := colFor[field]; !claimed {
			colFor[field] = i
		}
	}

	pick := func(row []string, field string) string {
		i, ok := colFor[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record{
			EmployeeID:           pick(row, FieldEmployeeID),
			LastName:             pick(row, FieldLastName),
			FirstName:            pick(row, FieldFirstName),
			NationalID:           pick(row, FieldNationalID),
			SocialInsuranceBase:  pick(row, FieldSocialInsuranceBase),
			SocialInsuranceCheck: pick(row, FieldSocialInsuranceCheck),
		})
	}
	return records
}

// ReconstructIdentifiers rebuilds the composite identifiers on a record:
// the national ID is zero-padded to 8 digits, the insurance check segment
// to 2, and the full insurance number is base+check. A concatenation
// shorter than 8 characters is not a usable number — it is stored empty
// rather than kept as a fragment.
func ReconstructIdentifiers(rec Record) Record {
	rec.NationalID = PadDigits(rec.NationalID, NationalIDWidth)
	rec.SocialInsuranceCheck = PadDigits(rec.SocialInsuranceCheck, InsuranceCheckWidth)

	number := strings.TrimSpace(rec.SocialInsuranceBase) + rec.SocialInsuranceCheck
	if len(number) < MinInsuranceNumberLen {
		number = ""
	}
	rec.SocialInsuranceNumber = number
	return rec
}
