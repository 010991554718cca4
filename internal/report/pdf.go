package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"go-catalog-api/internal/model"
)

// Payload aggregates one queried ledger period for PDF rendering.
// Row order is taken as-is from the ledger query, tidak diurutkan ulang di sini.
type Payload struct {
	StartDate   string // ISO YYYY-MM-DD
	EndDate     string
	GeneratedAt time.Time
	Summary     model.LedgerSummary
	Rows        []Row
}

// Row is one rendered table line of the financial report.
type Row struct {
	Date        string
	TypeLabel   string
	Description string
	Amount      string
	PIC         string
}

var shortMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// BuildPayload converts queried entries plus their aggregates into a Payload,
// preserving the query's row ordering exactly.
func BuildPayload(entries []model.LedgerEntry, summary model.LedgerSummary, startDate, endDate string, generatedAt time.Time) Payload {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		label := "Pemasukan"
		amount := FormatRupiah(e.Amount)
		if e.Type == model.EntryExpense {
			label = "Pengeluaran"
			amount = "-" + amount
		}
		rows = append(rows, Row{
			Date:        e.Date,
			TypeLabel:   label,
			Description: e.Description,
			Amount:      amount,
			PIC:         e.PIC,
		})
	}

	return Payload{
		StartDate:   startDate,
		EndDate:     endDate,
		GeneratedAt: generatedAt,
		Summary:     summary,
		Rows:        rows,
	}
}

// Filename embeds the period boundaries, e.g.
// Laporan_Keuangan_2023-10-01_sd_2023-10-31.pdf
func Filename(startDate, endDate string) string {
	return fmt.Sprintf("Laporan_Keuangan_%s_sd_%s.pdf", startDate, endDate)
}

// FormatRupiah renders an integer amount as "Rp 1.234.567":
// tanpa desimal, ribuan dipisah titik.
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}

// FormatDateHuman turns an ISO date into the Indonesian medium form,
// e.g. "15 Okt 2023". Tanggal yang tidak valid dikembalikan apa adanya.
func FormatDateHuman(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

// Render writes the report as a PDF document. Content order: title, period,
// generation date, the three summary lines, then the transaction table.
func (p Payload) Render(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Laporan Keuangan")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 6, fmt.Sprintf("Periode: %s - %s", FormatDateHuman(p.StartDate), FormatDateHuman(p.EndDate)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Dibuat pada: %s", p.GeneratedAt.Format("02/01/2006")))
	pdf.Ln(10)

	// Summary
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 7, fmt.Sprintf("Total Pemasukan: %s", FormatRupiah(p.Summary.TotalIncome)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Total Pengeluaran: %s", FormatRupiah(p.Summary.TotalExpense)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Saldo Bersih: %s", FormatRupiah(p.Summary.NetBalance)))
	pdf.Ln(10)

	// Table header
	colWidths := []float64{25, 28, 70, 37, 30}
	headers := []string{"Tanggal", "Tipe", "Keterangan", "Jumlah", "PIC"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// Table body, urutan baris persis mengikuti hasil query ledger
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range p.Rows {
		cells := []string{row.Date, row.TypeLabel, row.Description, row.Amount, row.PIC}
		for i, cell := range cells {
			align := "L"
			if i == 3 {
				align = "R"
			}
			pdf.CellFormat(colWidths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
