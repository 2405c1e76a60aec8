// Package registry persists the ledger of issued referral letters as a
// flat CSV table. Appends are idempotent on (employeeId, admissionDateTime):
// re-submitting the same admission is a recorded no-op, never a duplicate
// row. The store follows a read-append-overwrite discipline — the whole
// table is read, checked and rewritten on each novel append — which is
// safe for the single-operator, single-process use this ledger serves.
// Concurrent writer processes are out of contract.
package registry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IssuedAtLayout is the display format stamped on ledger rows,
// day/month/year hour:minute:second.
const IssuedAtLayout = "02/01/2006 15:04:05"

// Header is the fixed column set of the persisted table. The id column is
// appended last so older ledgers without it still align by position.
var Header = []string{
	"employeeId",
	"fullName",
	"nationalId",
	"socialInsuranceNumber",
	"admissionDateTime",
	"careType",
	"hospitalName",
	"issuedAt",
	"id",
}

// Record is one issuance. EmployeeID and AdmissionDateTime form the
// uniqueness key; everything else is descriptive.
type Record struct {
	EmployeeID            string `json:"employeeId"`
	FullName              string `json:"fullName"`
	NationalID            string `json:"nationalId"`
	SocialInsuranceNumber string `json:"socialInsuranceNumber"`
	AdmissionDateTime     string `json:"admissionDateTime"`
	CareType              string `json:"careType"`
	HospitalName          string `json:"hospitalName"`
	IssuedAt              string `json:"issuedAt"`
	ID                    string `json:"id"`
}

// Store owns the ledger file. The mutex serializes appends within the
// process so the read-check-rewrite sequence stays atomic here; it does
// nothing against other processes, per the single-writer assumption.
type Store struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewStore returns a store bound to the ledger at path. The file does not
// need to exist yet; the first append creates it.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Append records an issuance. It returns (false, nil) when a row with the
// same (employeeId, admissionDateTime) already exists — an informational
// no-op, not an error — and (true, nil) after persisting a novel record
// with a fresh issuedAt stamp and id. Errors mean the ledger could not be
// read or written; the caller treats them as warnings, since the letter
// itself has already been produced.
func (s *Store) Append(rec Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return false, err
	}

	for _, row := range existing {
		if row.EmployeeID == rec.EmployeeID && row.AdmissionDateTime == rec.AdmissionDateTime {
			return false, nil
		}
	}

	rec.IssuedAt = s.now().Format(IssuedAtLayout)
	rec.ID = uuid.NewString()
	existing = append(existing, rec)

	if err := s.write(existing); err != nil {
		return false, err
	}
	return true, nil
}

// Records returns every persisted issuance in ledger order. A missing
// ledger file reads as an empty table.
func (s *Store) Records() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open registry table: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	// Header row; an empty file reads as an empty table.
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read registry header: %w", err)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read registry row %d: %w", len(records)+2, err)
		}
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

// recordFromRow maps a ledger row by position, tolerating short rows from
// older files written before a column existed.
func recordFromRow(row []string) Record {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return Record{
		EmployeeID:            get(0),
		FullName:              get(1),
		NationalID:            get(2),
		SocialInsuranceNumber: get(3),
		AdmissionDateTime:     get(4),
		CareType:              get(5),
		HospitalName:          get(6),
		IssuedAt:              get(7),
		ID:                    get(8),
	}
}

// write rewrites the whole table through a temp file and rename, so a
// failed write never truncates the existing ledger.
func (s *Store) write(records []Record) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".registry-*.csv")
	if err != nil {
		return fmt.Errorf("create registry temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	cw := csv.NewWriter(tmp)
	if err := cw.Write(Header); err != nil {
		tmp.Close()
		return fmt.Errorf("write registry header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.EmployeeID,
			rec.FullName,
			rec.NationalID,
			rec.SocialInsuranceNumber,
			rec.AdmissionDateTime,
			rec.CareType,
			rec.HospitalName,
			rec.IssuedAt,
			rec.ID,
		}
		if err := cw.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write registry row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush registry table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close registry temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace registry table: %w", err)
	}
	return nil
}
