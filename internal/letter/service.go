package letter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"liaison/internal/logging"
	"liaison/internal/registry"
	"liaison/internal/roster"
)

// AdmissionLayout is the display format for admission timestamps,
// day/month/year hour:minute:second. The value is carried as an opaque
// string — it keys the registry but is never parsed beyond that.
const AdmissionLayout = "02/01/2006 15:04:05"

// ErrUnknownHospital is returned when an issuance names a facility
// outside the configured directory.
var ErrUnknownHospital = errors.New("unknown hospital")

// IssueRequest carries the form fields for one letter. Identity fields
// may come from a roster selection or be typed manually — manual entry
// always wins because the request is taken verbatim.
type IssueRequest struct {
	EmployeeID            string `json:"employeeId"`
	FullName              string `json:"fullName"`
	NationalID            string `json:"nationalId"`
	SocialInsuranceNumber string `json:"socialInsuranceNumber"`
	RequestingPhysician   string `json:"requestingPhysician"`
	TreatingPhysicians    string `json:"treatingPhysicians"`
	AdmissionDateTime     string `json:"admissionDateTime"`
	CareType              string `json:"careType"`
	Hospital              string `json:"hospital"`
}

// IssueResult is the outcome of a letter issuance. The document has
// always been rendered when err is nil; AlreadyRecorded and RegistryErr
// report what happened at the ledger, which never blocks the letter.
type IssueResult struct {
	LetterID        string  `json:"letterId"`
	Document        string  `json:"document"`
	Payload         Payload `json:"payload"`
	AlreadyRecorded bool    `json:"alreadyRecorded"`
	RegistryErr     string  `json:"registryError,omitempty"`
}

// Service owns the hospital directory and wires the renderer to the
// issuance registry.
type Service struct {
	hospitals       []Hospital
	defaultCareType string
	renderer        Renderer
	registry        *registry.Store
	now             func() time.Time
}

// NewService builds a Service. An empty hospitals slice falls back to
// the built-in directory.
func NewService(hospitals []Hospital, defaultCareType string, renderer Renderer, reg *registry.Store) *Service {
	if len(hospitals) == 0 {
		hospitals = DefaultHospitals
	}
	return &Service{
		hospitals:       hospitals,
		defaultCareType: defaultCareType,
		renderer:        renderer,
		registry:        reg,
		now:             time.Now,
	}
}

// Hospitals returns the configured facility directory.
func (s *Service) Hospitals() []Hospital {
	return s.hospitals
}

func (s *Service) lookupHospital(name string) (Hospital, bool) {
	for _, h := range s.hospitals {
		if h.Name == name {
			return h, true
		}
	}
	return Hospital{}, false
}

// PayloadFromRecord copies a roster selection into a payload skeleton.
// It does not touch the roster record.
func PayloadFromRecord(rec roster.Record) Payload {
	return Payload{
		EmployeeID:            rec.EmployeeID,
		LastName:              rec.LastName,
		FirstName:             rec.FirstName,
		NationalID:            rec.NationalID,
		SocialInsuranceNumber: rec.SocialInsuranceNumber,
	}
}

// Issue renders a letter for req and records it in the registry. The
// render must succeed; the registry append must not — a ledger failure
// is logged as a warning and reported in the result, because the letter
// has already been produced and is not rolled back.
func (s *Service) Issue(ctx context.Context, req IssueRequest) (IssueResult, error) {
	hospital, ok := s.lookupHospital(req.Hospital)
	if !ok {
		return IssueResult{}, fmt.Errorf("%w: %q", ErrUnknownHospital, req.Hospital)
	}

	lastName, firstName := SplitFullName(req.FullName)

	careType := req.CareType
	if careType == "" {
		careType = s.defaultCareType
	}
	admission := req.AdmissionDateTime
	if admission == "" {
		admission = s.now().Format(AdmissionLayout)
	}

	payload := Payload{
		EmployeeID:            roster.CleanCell(req.EmployeeID),
		LastName:              lastName,
		FirstName:             firstName,
		NationalID:            roster.PadDigits(req.NationalID, roster.NationalIDWidth),
		SocialInsuranceNumber: roster.CleanCell(req.SocialInsuranceNumber),
		RequestingPhysician:   roster.CleanCell(req.RequestingPhysician),
		TreatingPhysicians:    roster.CleanCell(req.TreatingPhysicians),
		AdmissionDateTime:     admission,
		CareType:              careType,
		HospitalName:          hospital.Name,
		HospitalAddress:       hospital.Address,
	}

	document, err := s.renderer.Render(payload)
	if err != nil {
		return IssueResult{}, fmt.Errorf("render letter: %w", err)
	}

	result := IssueResult{
		LetterID: uuid.NewString(),
		Document: document,
		Payload:  payload,
	}

	wrote, err := s.registry.Append(registry.Record{
		EmployeeID:            payload.EmployeeID,
		FullName:              payload.FullName(),
		NationalID:            payload.NationalID,
		SocialInsuranceNumber: payload.SocialInsuranceNumber,
		AdmissionDateTime:     payload.AdmissionDateTime,
		CareType:              payload.CareType,
		HospitalName:          payload.HospitalName,
	})
	switch {
	case err != nil:
		// The letter stands; the ledger gap is an operator concern.
		logging.FromContext(ctx).Warn("registry append failed",
			"employee_id", payload.EmployeeID,
			"admission", payload.AdmissionDateTime,
			"error", err,
		)
		result.RegistryErr = err.Error()
	case !wrote:
		result.AlreadyRecorded = true
	}

	return result, nil
}

// RegistryRecords exposes the persisted ledger for the read-only listing.
func (s *Service) RegistryRecords() ([]registry.Record, error) {
	return s.registry.Records()
}
