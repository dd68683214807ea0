package voucher

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/mfkayan044/securedrive-sub000/internal/domain"
)

// Placeholder is shown for every value that could not be resolved
const Placeholder = "-"

// ErrRender is returned when the PDF engine fails
var ErrRender = errors.New("voucher: render failed")

// Extra is an extra service line on the voucher
type Extra struct {
	Name  string
	Price float64
}

// Data is the canonical voucher content. Empty strings render as Placeholder.
type Data struct {
	ReservationNumber string
	CustomerName      string
	From              string
	To                string
	TripType          string
	DepartureDate     string
	DepartureTime     string
	ReturnDate        string
	ReturnTime        string
	FlightCode        string
	ReturnFlightCode  string
	Passengers        int
	PassengerNames    []string
	Vehicle           string
	Extras            []Extra
	PaymentStatus     string
	Total             float64
	Discount          float64
}

// Settings are the site values printed in the header and footer
type Settings struct {
	CompanyName  string
	SupportPhone string
	SupportEmail string
	Website      string
	Currency     string
	Footer       string
}

// FileName returns the attachment name for the voucher.
// Only ASCII letters, digits, '_' and '-' of the reservation number are kept.
func FileName(reservationNumber string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return -1
	}, reservationNumber)
	if name == "" {
		name = "voucher"
	}
	return fmt.Sprintf("voucher_%s.pdf", name)
}

// FromReservation builds voucher data from a stored reservation.
// Location and vehicle names are resolved by the caller.
func FromReservation(r *domain.Reservation, from, to, vehicle string) Data {
	d := Data{
		ReservationNumber: r.ReservationNumber,
		CustomerName:      r.CustomerName,
		From:              from,
		To:                to,
		TripType:          string(r.TripType),
		DepartureDate:     r.DepartureDate.Format(domain.DateFormat),
		DepartureTime:     r.DepartureTime.String(),
		Passengers:        r.Passengers,
		PassengerNames:    domain.ResizePassengerNames(r.PassengerNames, r.Passengers),
		Vehicle:           vehicle,
		PaymentStatus:     string(r.PaymentStatus),
		Total:             r.TotalPrice,
		Discount:          r.DiscountAmount,
	}
	if r.ReturnDate != nil {
		d.ReturnDate = r.ReturnDate.Format(domain.DateFormat)
	}
	if r.ReturnTime != nil {
		d.ReturnTime = r.ReturnTime.String()
	}
	if r.FlightCode != nil {
		d.FlightCode = *r.FlightCode
	}
	if r.ReturnFlight != nil {
		d.ReturnFlightCode = *r.ReturnFlight
	}
	for _, e := range r.Extras {
		d.Extras = append(d.Extras, Extra{Name: e.Name, Price: e.Price})
	}
	return d
}

// Core PDF fonts are cp1252, which lacks these Turkish letters
var turkishFold = strings.NewReplacer(
	"ğ", "g", "Ğ", "G",
	"ş", "s", "Ş", "S",
	"ı", "i", "İ", "I",
)

const (
	pageWidth   = 210.0
	margin      = 15.0
	contentW    = pageWidth - 2*margin
	labelWidth  = 55.0
	rowHeight   = 8.0
	fontFamily  = "Helvetica"
	accentRed   = 20
	accentGreen = 60
	accentBlue  = 110
)

// Render draws a one-page A4 voucher and returns the PDF bytes
func Render(d Data, s Settings) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(v string) string { return tr(turkishFold.Replace(orPlaceholder(v))) }

	pdf.SetTitle("Voucher "+orPlaceholder(d.ReservationNumber), true)
	pdf.SetCreator(orPlaceholder(s.CompanyName), true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()

	// header
	pdf.SetFillColor(accentRed, accentGreen, accentBlue)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(contentW, 14, text(s.CompanyName), "", 1, "L", true, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(contentW, 8, text("TRANSFER VOUCHER  #"+orPlaceholder(d.ReservationNumber)), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	// salutation banner
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(235, 241, 250)
	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(contentW, 11, text("Sayın "+orPlaceholder(d.CustomerName)), "", 1, "L", true, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.MultiCell(contentW, 6, text("Transfer rezervasyonunuz aşağıda özetlenmiştir. Lütfen bu belgeyi sürücünüze gösteriniz."), "", "L", false)
	pdf.Ln(4)

	// details table
	pdf.SetDrawColor(200, 205, 215)
	for _, row := range rows(d, s) {
		pdf.SetFont(fontFamily, "B", 10)
		pdf.CellFormat(labelWidth, rowHeight, text(row.label), "1", 0, "L", true, 0, "")
		pdf.SetFont(fontFamily, "", 10)
		pdf.CellFormat(contentW-labelWidth, rowHeight, text(row.value), "1", 1, "L", false, 0, "")
	}

	// footer
	pdf.SetY(-45)
	pdf.SetFont(fontFamily, "", 9)
	pdf.SetTextColor(90, 90, 90)
	if strings.TrimSpace(s.Footer) != "" {
		pdf.MultiCell(contentW, 5, text(s.Footer), "", "C", false)
	}
	contact := strings.Join(nonEmpty(s.SupportPhone, s.SupportEmail, s.Website), "  |  ")
	if contact != "" {
		pdf.CellFormat(contentW, 6, text(contact), "T", 1, "C", false, 0, "")
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrRender, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

type row struct {
	label string
	value string
}

func rows(d Data, s Settings) []row {
	out := []row{
		{"Güzergah", orPlaceholder(d.From) + " > " + orPlaceholder(d.To)},
		{"Transfer Tipi", tripTypeLabel(d.TripType)},
		{"Gidiş", joinDateTime(d.DepartureDate, d.DepartureTime)},
	}
	if d.TripType == string(domain.TripRoundTrip) || d.ReturnDate != "" {
		out = append(out, row{"Dönüş", joinDateTime(d.ReturnDate, d.ReturnTime)})
	}
	out = append(out,
		row{"Uçuş Kodu", d.FlightCode},
	)
	if d.TripType == string(domain.TripRoundTrip) || d.ReturnFlightCode != "" {
		out = append(out, row{"Dönüş Uçuş Kodu", d.ReturnFlightCode})
	}
	out = append(out,
		row{"Yolcular", passengersLabel(d.Passengers, d.PassengerNames)},
		row{"Araç", d.Vehicle},
		row{"Ek Hizmetler", extrasLabel(d.Extras, s.Currency)},
		row{"Ödeme Durumu", paymentLabel(d.PaymentStatus)},
	)
	if d.Discount > 0 {
		out = append(out,
			row{"İndirim", money(d.Discount, s.Currency)},
			row{"Ödenecek Tutar", money(payable(d.Total, d.Discount), s.Currency)},
		)
	}
	out = append(out, row{"Toplam", money(d.Total, s.Currency)})
	return out
}

func tripTypeLabel(t string) string {
	switch domain.TripType(t) {
	case domain.TripOneWay:
		return "Tek Yön"
	case domain.TripRoundTrip:
		return "Gidiş - Dönüş"
	}
	return t
}

func paymentLabel(s string) string {
	switch domain.PaymentStatus(s) {
	case domain.PaymentPending:
		return "Ödeme Bekleniyor"
	case domain.PaymentPaid:
		return "Ödendi"
	case domain.PaymentRefunded:
		return "İade Edildi"
	case domain.PaymentFailed:
		return "Ödeme Başarısız"
	}
	return s
}

func passengersLabel(count int, names []string) string {
	filled := nonEmpty(names...)
	switch {
	case len(filled) > 0 && count > 0:
		return strconv.Itoa(count) + " - " + strings.Join(filled, ", ")
	case len(filled) > 0:
		return strings.Join(filled, ", ")
	case count > 0:
		return strconv.Itoa(count)
	}
	return ""
}

func extrasLabel(extras []Extra, currency string) string {
	parts := make([]string, 0, len(extras))
	for _, e := range extras {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		if e.Price > 0 {
			parts = append(parts, fmt.Sprintf("%s (%s)", e.Name, money(e.Price, currency)))
			continue
		}
		parts = append(parts, e.Name)
	}
	return strings.Join(parts, ", ")
}

func joinDateTime(date, clock string) string {
	return strings.TrimSpace(strings.Join(nonEmpty(date, clock), " "))
}

func money(v float64, currency string) string {
	return strings.TrimSpace(strconv.FormatFloat(v, 'f', 2, 64) + " " + currency)
}

func payable(total, discount float64) float64 {
	if discount >= total {
		return 0
	}
	return total - discount
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return Placeholder
	}
	return v
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}
	return out
}
