// internal/service/document/pdf.go
package document

import (
	"bytes"
	"fmt"
	"strings"

	"skadeportal-service/internal/domain/claim"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// Swedish field labels, matching the printed confirmation document.
const confirmationText = "Härmed intygas riktigheten av ovanstående uppgifter samt att " +
	"försäkringen omfattar glasruteskada och att premien var betald vid " +
	"skadetillfället. Godkänner försäkringsbolaget inte skadan som " +
	"försäkringsgrundande är fordonsägaren alltid betalningsskyldig."

// Service renders the fixed-layout claim confirmation document.
type Service struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Title is the document heading per category.
func Title(category claim.Category) string {
	switch category {
	case claim.CategoryGlass:
		return "Glasskadeanmälan"
	case claim.CategoryKeys:
		return "Nyckelbeställning"
	}
	return "Skadeanmälan"
}

// Render produces the A4 confirmation PDF embedding the claim's fields, the
// customer's signature image and the tenant logo. Logo bytes may be nil.
func (s *Service) Render(category claim.Category, c *claim.Claim, signaturePNG, logoPNG []byte) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(18, 12, 18)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(Title(category)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	field := func(label, value string) {
		pdf.SetFont("Helvetica", "", 6.5)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 3.2, tr(label), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(17, 24, 39)
		pdf.CellFormat(0, 5, tr(value), "B", 1, "L", false, 0, "")
		pdf.Ln(1)
	}

	// Customer and vehicle block
	field("Försäkringsbolag", c.InsuranceCompany)
	field("Namn", c.CustomerName())
	field("Registreringsnummer", strings.ToUpper(c.RegistrationNumber))
	field("Person-/Organisationsnummer", c.PersonalNumber)
	field("Momspliktig", yesNo(c.VATLiable))
	field("Telefonnummer", c.Phone)
	field("E-post", c.Email)
	pdf.Ln(4)

	// Incident block; the glass-only attributes are omitted when unset.
	if c.DamageType.Valid {
		field("Skademoment", c.DamageType.String)
	}
	if c.DamageCause.Valid {
		field("Skadeorsak", c.DamageCause.String)
	}
	if c.DamageWindow.Valid {
		field("Skadat fönster", c.DamageWindow.String)
	}
	if c.IncidentDate.Valid {
		field("Skadedatum", c.IncidentDate.Time.Format("2006-01-02"))
	}
	if c.Odometer.Valid {
		field("Mätarställning", c.Odometer.String+" km")
	}
	if c.Description.Valid {
		field("Beskrivning", c.Description.String)
	}
	pdf.Ln(4)

	// Signature block
	pdf.SetFont("Helvetica", "", 6.5)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 3.2, tr("Försäkringstagares signatur"), "", 1, "L", false, 0, "")
	if len(signaturePNG) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("signature", opts, bytes.NewReader(signaturePNG))
		pdf.ImageOptions("signature", pdf.GetX(), pdf.GetY(), 60, 0, true, opts, 0, "")
	}
	pdf.Ln(2)
	field("Försäkringstagarens namnförtydligande", c.SignedByName)

	// Logo and attestation pinned near the bottom.
	pdf.SetY(-70)
	if len(logoPNG) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(logoPNG))
		pdf.ImageOptions("logo", pdf.GetX(), pdf.GetY(), 40, 0, true, opts, 0, "")
		pdf.Ln(4)
	}
	pdf.SetFont("Helvetica", "B", 6.5)
	pdf.SetTextColor(17, 24, 39)
	pdf.MultiCell(0, 3.2, tr(confirmationText), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	s.logger.Debug("document rendered",
		zap.String("claim_id", c.ID),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

func yesNo(v bool) string {
	if v {
		return "Ja"
	}
	return "Nej"
}
