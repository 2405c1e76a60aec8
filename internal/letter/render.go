package letter

import (
	"fmt"
	"strings"
)

// Renderer turns a resolved payload into a printable document body.
// Pagination, fonts and the logo/stamp overlay live in the external
// renderer; this interface only fixes the hand-off.
type Renderer interface {
	Render(p Payload) (string, error)
}

// TextRenderer produces the plain-text letter body: company block,
// titles, patient and physician details, then the coverage paragraph.
type TextRenderer struct {
	Company Company
}

// Render implements Renderer. It never fails for a well-formed payload;
// the error return exists for renderers with real I/O.
func (r TextRenderer) Render(p Payload) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Nom de l'entreprise : %s\n", r.Company.Name)
	fmt.Fprintf(&b, "Adresse : %s\n", r.Company.Address)
	fmt.Fprintf(&b, "Téléphone : %s\n", r.Company.Phone)
	fmt.Fprintf(&b, "Fax : %s\n", r.Company.Fax)
	b.WriteString("\n")

	b.WriteString("LETTRE DE LIAISON\n")
	b.WriteString("ADMISSION D'UN PATIENT\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "La société %s demande au %s l'admission d'un patient affilié %s :\n",
		r.Company.Name, p.HospitalName, r.Company.Name)
	fmt.Fprintf(&b, "Lieu d'admission : %s\n", p.HospitalName)
	fmt.Fprintf(&b, "Adresse : %s\n", p.HospitalAddress)
	fmt.Fprintf(&b, "Matricule : %s\n", p.EmployeeID)
	fmt.Fprintf(&b, "Nom du patient : %s\n", p.FullName())
	fmt.Fprintf(&b, "Numéro CIN : %s\n", p.NationalID)
	fmt.Fprintf(&b, "CNSS : %s\n", p.SocialInsuranceNumber)
	fmt.Fprintf(&b, "Médecin requérant : %s\n", p.RequestingPhysician)
	fmt.Fprintf(&b, "Médecin(s) traitant(s) : %s\n", p.TreatingPhysicians)
	fmt.Fprintf(&b, "Date d'admission : %s\n", p.AdmissionDateTime)
	fmt.Fprintf(&b, "Type de prise en charge : %s\n", p.CareType)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Prise en charge Totale par %s : La facture du %s est à régler totalement par %s.\n",
		r.Company.Name, p.HospitalName, r.Company.Name)
	b.WriteString("\n")
	b.WriteString("Signature et cachet\n")
	fmt.Fprintf(&b, "%s\n", r.Company.Name)

	return b.String(), nil
}
