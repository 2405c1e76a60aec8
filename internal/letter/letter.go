// Package letter assembles referral letter payloads from roster records
// and user-entered fields, renders them, and records each issuance in the
// registry ledger.
package letter

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Hospital is one entry of the fixed admission-facility directory.
// The directory is configuration data chosen at startup; end users pick
// from it but never edit it.
type Hospital struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// DefaultHospitals is the built-in facility directory, used when no
// override file is configured.
var DefaultHospitals = []Hospital{
	{Name: "Hôpital Korba", Address: "Rue Abou Kacem CHEBBI, 8070 KORBA NABEUL"},
	{Name: "Groupement Médecine du Travail", Address: "Av. Hédi Nouira, 8000 Nabeul"},
	{Name: "Polyclinique El Hakim", Address: "Km 1 Route Korba Tazarka, 8024 Korba, Nabeul Gouvernorat"},
	{Name: "Polyclinique El Amen", Address: "Av. Hédi Nouira, Nabeul"},
}

// LoadHospitals reads a facility directory from a JSON file: an array of
// {name, address} objects. Entries without a name are rejected so a
// misconfigured directory fails at startup, not at issuance time.
func LoadHospitals(path string) ([]Hospital, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hospitals file: %w", err)
	}
	var hospitals []Hospital
	if err := json.Unmarshal(data, &hospitals); err != nil {
		return nil, fmt.Errorf("parse hospitals file %s: %w", path, err)
	}
	if len(hospitals) == 0 {
		return nil, fmt.Errorf("hospitals file %s lists no facilities", path)
	}
	for i, h := range hospitals {
		if strings.TrimSpace(h.Name) == "" {
			return nil, fmt.Errorf("hospitals file %s: entry %d has no name", path, i)
		}
	}
	return hospitals, nil
}

// Company identifies the requesting employer on letter heads.
type Company struct {
	Name    string
	Address string
	Phone   string
	Fax     string
}

// Payload carries every resolved field of one letter. It is built fresh
// per issuance and never mutated afterwards.
type Payload struct {
	EmployeeID            string `json:"employeeId"`
	LastName              string `json:"lastName"`
	FirstName             string `json:"firstName"`
	NationalID            string `json:"nationalId"`
	SocialInsuranceNumber string `json:"socialInsuranceNumber"`
	RequestingPhysician   string `json:"requestingPhysician"`
	TreatingPhysicians    string `json:"treatingPhysicians"`
	AdmissionDateTime     string `json:"admissionDateTime"`
	CareType              string `json:"careType"`
	HospitalName          string `json:"hospitalName"`
	HospitalAddress       string `json:"hospitalAddress"`
}

// FullName returns the display form "LastName FirstName".
func (p Payload) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.LastName) + " " + strings.TrimSpace(p.FirstName))
}

// SplitFullName splits free-text "full name" entry on whitespace: first
// token is the last name, second the first name. Multi-part names beyond
// two tokens fold the remainder into the first name. The split is
// deliberately simple; manual entry can always override the result.
func SplitFullName(full string) (lastName, firstName string) {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
