package roster

import "testing"

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain value", input: "230065", want: "230065"},
		{name: "surrounding whitespace", input: "  Dupont  ", want: "Dupont"},
		{name: "excel literal wrapper", input: `="230065"`, want: "230065"},
		{name: "wrapper with inner whitespace", input: `=" 230065 "`, want: "230065"},
		{name: "wrapper around empty", input: `=""`, want: ""},
		{name: "lone equals sign kept", input: "=", want: "="},
		{name: "unterminated wrapper kept", input: `="230065`, want: `="230065`},
		{name: "empty input", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCell(tt.input); got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPadDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{name: "pads short national id", input: "1234", width: 8, want: "00001234"},
		{name: "already at width", input: "12345678", width: 8, want: "12345678"},
		{name: "longer than width kept", input: "123456789", width: 8, want: "123456789"},
		{name: "strips non-digits before padding", input: " 12-34 ", width: 8, want: "00001234"},
		{name: "single digit check segment", input: "8", width: 2, want: "08"},
		{name: "no digits yields empty", input: "abc", width: 8, want: ""},
		{name: "empty yields empty not zeros", input: "", width: 8, want: ""},
		{name: "whitespace yields empty", input: "  ", width: 2, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadDigits(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("PadDigits(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
			if tt.want != "" && len(got) < tt.width {
				t.Errorf("PadDigits(%q, %d) = %q, shorter than target width", tt.input, tt.width, got)
			}
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "José", want: "jose"},
		{input: "Dupônt", want: "dupont"},
		{input: "Clé du Numéro de Sécurité", want: "cle du numero de securite"},
		{input: "PRÉNOM", want: "prenom"},
		{input: "plain ascii", want: "plain ascii"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
