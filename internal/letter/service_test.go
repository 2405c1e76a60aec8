package letter

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"liaison/internal/registry"
	"liaison/internal/roster"
)

type failingRenderer struct{}

func (failingRenderer) Render(Payload) (string, error) {
	return "", errors.New("printer on fire")
}

func testService(t *testing.T) *Service {
	t.Helper()
	reg := registry.NewStore(filepath.Join(t.TempDir(), "issuances.csv"))
	svc := NewService(nil, "Consultation médicale", TextRenderer{Company: Company{Name: "CF MAIER ITAP"}}, reg)
	svc.now = func() time.Time {
		return time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestServiceIssue(t *testing.T) {
	req := IssueRequest{
		EmployeeID:        "230065",
		FullName:          "Dupont Claire",
		NationalID:        "12345",
		AdmissionDateTime: "14/03/2025 09:00:00",
		Hospital:          "Polyclinique El Amen",
	}

	t.Run("renders and records", func(t *testing.T) {
		svc := testService(t)

		res, err := svc.Issue(context.Background(), req)
		if err != nil {
			t.Fatalf("Issue returned error: %v", err)
		}
		if res.LetterID == "" {
			t.Error("expected a letter id")
		}
		if res.Document == "" {
			t.Error("expected a rendered document")
		}
		if res.AlreadyRecorded {
			t.Error("first issuance must not be flagged as already recorded")
		}
		if res.Payload.NationalID != "00012345" {
			t.Errorf("NationalID = %q, want padded %q", res.Payload.NationalID, "00012345")
		}
		if res.Payload.LastName != "Dupont" || res.Payload.FirstName != "Claire" {
			t.Errorf("name split = (%q, %q)", res.Payload.LastName, res.Payload.FirstName)
		}
		if res.Payload.HospitalAddress == "" {
			t.Error("expected hospital address resolved from the directory")
		}

		records, err := svc.RegistryRecords()
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 ledger row, got %d", len(records))
		}
		if records[0].FullName != "Dupont Claire" {
			t.Errorf("ledger FullName = %q", records[0].FullName)
		}
	})

	t.Run("duplicate submission is informational", func(t *testing.T) {
		svc := testService(t)

		if _, err := svc.Issue(context.Background(), req); err != nil {
			t.Fatal(err)
		}
		res, err := svc.Issue(context.Background(), req)
		if err != nil {
			t.Fatalf("duplicate issue returned error: %v", err)
		}
		if !res.AlreadyRecorded {
			t.Error("expected AlreadyRecorded on key match")
		}
		if res.Document == "" {
			t.Error("duplicate must still produce a letter")
		}

		records, _ := svc.RegistryRecords()
		if len(records) != 1 {
			t.Errorf("expected 1 ledger row after both submissions, got %d", len(records))
		}
	})

	t.Run("unknown hospital rejected", func(t *testing.T) {
		svc := testService(t)

		bad := req
		bad.Hospital = "Clinique Inconnue"
		if _, err := svc.Issue(context.Background(), bad); !errors.Is(err, ErrUnknownHospital) {
			t.Errorf("expected ErrUnknownHospital, got %v", err)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		svc := testService(t)

		blank := req
		blank.CareType = ""
		blank.AdmissionDateTime = ""
		res, err := svc.Issue(context.Background(), blank)
		if err != nil {
			t.Fatal(err)
		}
		if res.Payload.CareType != "Consultation médicale" {
			t.Errorf("CareType = %q, want configured default", res.Payload.CareType)
		}
		if res.Payload.AdmissionDateTime != "14/03/2025 09:00:00" {
			t.Errorf("AdmissionDateTime = %q, want stamped now", res.Payload.AdmissionDateTime)
		}
	})

	t.Run("registry failure does not block the letter", func(t *testing.T) {
		// Registry path points into a directory that does not exist, so
		// the rewrite fails while rendering succeeds.
		reg := registry.NewStore(filepath.Join(t.TempDir(), "no-such-dir", "issuances.csv"))
		svc := NewService(nil, "Consultation médicale", TextRenderer{}, reg)

		res, err := svc.Issue(context.Background(), req)
		if err != nil {
			t.Fatalf("Issue returned error: %v", err)
		}
		if res.RegistryErr == "" {
			t.Error("expected registry failure to be reported in the result")
		}
		if res.Document == "" {
			t.Error("letter must still render when the ledger is unavailable")
		}
	})

	t.Run("render failure aborts", func(t *testing.T) {
		reg := registry.NewStore(filepath.Join(t.TempDir(), "issuances.csv"))
		svc := NewService(nil, "", failingRenderer{}, reg)

		if _, err := svc.Issue(context.Background(), req); err == nil {
			t.Fatal("expected render error to propagate")
		}
		records, _ := svc.RegistryRecords()
		if len(records) != 0 {
			t.Error("failed render must not reach the ledger")
		}
	})
}

func TestPayloadFromRecord(t *testing.T) {
	rec := roster.Record{
		EmployeeID:            "42",
		LastName:              "Dupont",
		FirstName:             "Jean",
		NationalID:            "00000042",
		SocialInsuranceNumber: "12345678",
	}
	p := PayloadFromRecord(rec)
	if p.EmployeeID != "42" || p.LastName != "Dupont" || p.FirstName != "Jean" {
		t.Errorf("unexpected payload: %+v", p)
	}
	if p.SocialInsuranceNumber != "12345678" {
		t.Errorf("SocialInsuranceNumber = %q", p.SocialInsuranceNumber)
	}
}
