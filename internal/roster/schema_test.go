package roster

import (
	"reflect"
	"testing"
)

func TestDeduplicateHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    []string
	}{
		{
			name:    "no duplicates untouched",
			headers: []string{"Matricule", "Nom", "CIN"},
			want:    []string{"Matricule", "Nom", "CIN"},
		},
		{
			name:    "repeats get dotted suffixes",
			headers: []string{"Nom", "Nom", "Nom"},
			want:    []string{"Nom", "Nom.1", "Nom.2"},
		},
		{
			name:    "order and alignment preserved",
			headers: []string{"Matricule", "Nom", "Nom", "CIN"},
			want:    []string{"Matricule", "Nom", "Nom.1", "CIN"},
		},
		{
			name:    "empty input",
			headers: []string{},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeduplicateHeaders(tt.headers)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeduplicateHeaders(%v) = %v, want %v", tt.headers, got, tt.want)
			}
		})
	}
}

func TestClassifyHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "Matricule", want: FieldEmployeeID},
		{header: "MATRIC.", want: FieldEmployeeID},
		{header: "Prénom", want: FieldFirstName},
		{header: "prenom salarié", want: FieldFirstName},
		{header: "Nom", want: FieldLastName},
		{header: "Nom de famille", want: FieldLastName},
		{header: "N° Carte de séjour", want: FieldNationalID},
		{header: "Carte de travail", want: FieldNationalID},
		{header: "Numéro de sécurité sociale", want: FieldSocialInsuranceBase},
		{header: "Clé du numéro de sécurité sociale", want: FieldSocialInsuranceCheck},
		{header: "CIN", want: FieldNationalID},
		{header: "CNSS", want: FieldSocialInsuranceBase},
		{header: "Num", want: FieldSocialInsuranceCheck},
		{header: "Médecin", want: ""},
		{header: "Date d'embauche", want: ""},
		{header: "", want: ""},
	}

	for _, tt := range tests {
		if got := classifyHeader(tt.header); got != tt.want {
			t.Errorf("classifyHeader(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestNormalizeTable(t *testing.T) {
	t.Run("duplicate header keeps first column", func(t *testing.T) {
		// Second "Nom" column maps to lastName too; its data is discarded.
		headers := []string{"Matricule", "Nom", "Nom", "CIN carte de séjour"}
		rows := [][]string{{"230065", "Dupont", "Martin", "12345"}}

		got := NormalizeTable(headers, rows)
		if len(got) != 1 {
			t.Fatalf("expected 1 record, got %d", len(got))
		}
		rec := got[0]
		if rec.EmployeeID != "230065" {
			t.Errorf("EmployeeID = %q, want %q", rec.EmployeeID, "230065")
		}
		if rec.LastName != "Dupont" {
			t.Errorf("LastName = %q, want %q", rec.LastName, "Dupont")
		}
		if rec.FirstName != "" {
			t.Errorf("FirstName = %q, want empty (ambiguous column discarded)", rec.FirstName)
		}
		if rec.NationalID != "12345" {
			t.Errorf("NationalID = %q, want %q", rec.NationalID, "12345")
		}
	})

	t.Run("unrecognizable headers still yield complete records", func(t *testing.T) {
		headers := []string{"Foo", "Bar"}
		rows := [][]string{{"a", "b"}, {"c", "d"}}

		got := NormalizeTable(headers, rows)
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
		for i, rec := range got {
			if rec != (Record{}) {
				t.Errorf("record %d = %+v, want all-empty canonical fields", i, rec)
			}
		}
	})

	t.Run("short rows read as empty cells", func(t *testing.T) {
		headers := []string{"Matricule", "Nom", "Prénom"}
		rows := [][]string{{"100"}}

		got := NormalizeTable(headers, rows)
		if got[0].EmployeeID != "100" || got[0].LastName != "" || got[0].FirstName != "" {
			t.Errorf("unexpected record: %+v", got[0])
		}
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		headers := []string{"Matricule", "Nom"}
		rows := [][]string{{" 42 ", " Dupont "}}

		got := NormalizeTable(headers, rows)
		if got[0].EmployeeID != "42" || got[0].LastName != "Dupont" {
			t.Errorf("unexpected record: %+v", got[0])
		}
	})
}

func TestReconstructIdentifiers(t *testing.T) {
	tests := []struct {
		name       string
		in         Record
		wantCIN    string
		wantCheck  string
		wantNumber string
	}{
		{
			name:       "national id padded to 8",
			in:         Record{NationalID: "1234"},
			wantCIN:    "00001234",
			wantCheck:  "",
			wantNumber: "",
		},
		{
			name:       "base plus padded check kept at length 9",
			in:         Record{SocialInsuranceBase: "1234567", SocialInsuranceCheck: "8"},
			wantCIN:    "",
			wantCheck:  "08",
			wantNumber: "123456708",
		},
		{
			name:       "short concatenation discarded",
			in:         Record{SocialInsuranceBase: "", SocialInsuranceCheck: "5"},
			wantCIN:    "",
			wantCheck:  "05",
			wantNumber: "",
		},
		{
			name:       "base trimmed before concatenation",
			in:         Record{SocialInsuranceBase: " 123456 ", SocialInsuranceCheck: "78"},
			wantCIN:    "",
			wantCheck:  "78",
			wantNumber: "12345678",
		},
		{
			name:       "everything empty stays empty",
			in:         Record{},
			wantCIN:    "",
			wantCheck:  "",
			wantNumber: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconstructIdentifiers(tt.in)
			if got.NationalID != tt.wantCIN {
				t.Errorf("NationalID = %q, want %q", got.NationalID, tt.wantCIN)
			}
			if got.SocialInsuranceCheck != tt.wantCheck {
				t.Errorf("SocialInsuranceCheck = %q, want %q", got.SocialInsuranceCheck, tt.wantCheck)
			}
			if got.SocialInsuranceNumber != tt.wantNumber {
				t.Errorf("SocialInsuranceNumber = %q, want %q", got.SocialInsuranceNumber, tt.wantNumber)
			}
		})
	}
}
