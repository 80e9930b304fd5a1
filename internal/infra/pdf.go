package infra

// pdf.go — monthly dashboard report generation using go-pdf/fpdf.
// Layout: title header, a 2×2 grid of metric cards (revenue, occupancy,
// average stay, distinct clients) and a generated-at footer. The file is
// written to storagePath/dashboard_report_{MM}_{YYYY}.pdf and the caller
// streams it back.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hotelier/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateDashboardPDF renders the monthly report and returns the path to
// the generated file. storagePath is created if needed.
func GenerateDashboardPDF(stats *dto.DashboardResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("dashboard_report_%02d_%d.pdf", stats.Month, stats.Year)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 36

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(51, 102, 153)
	pdf.CellFormat(contentW, 12, fmt.Sprintf("Hotel Report - %02d/%d", stats.Month, stats.Year), "", 1, "L", false, 0, "")

	pdf.SetDrawColor(204, 76, 25)
	pdf.SetLineWidth(1)
	pdf.Line(18, pdf.GetY()+2, pageW-18, pdf.GetY()+2)
	pdf.Ln(12)

	// ── Metric cards (2×2) ───────────────────────────────────────────────────
	type card struct{ label, value string }
	cards := []card{
		{"Total revenue", "$" + stats.TotalRevenue.StringFixed(2)},
		{"Occupancy", fmt.Sprintf("%.2f%%", stats.OccupancyPct)},
		{"Average stay", fmt.Sprintf("%.2f nights", stats.AvgStayDays)},
		{"Distinct clients", fmt.Sprintf("%d", stats.TotalClients)},
	}

	cardW := (contentW - 10) / 2
	cardH := 34.0
	startY := pdf.GetY()

	for i, cd := range cards {
		x := 18 + float64(i%2)*(cardW+10)
		y := startY + float64(i/2)*(cardH+10)

		pdf.SetFillColor(242, 242, 242)
		pdf.SetDrawColor(179, 179, 179)
		pdf.SetLineWidth(0.3)
		pdf.RoundedRect(x, y, cardW, cardH, 3, "1234", "FD")

		pdf.SetXY(x+6, y+7)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(51, 102, 153)
		pdf.CellFormat(cardW-12, 6, cd.label, "", 0, "L", false, 0, "")

		pdf.SetXY(x+6, y+19)
		pdf.SetFont("Helvetica", "", 15)
		pdf.SetTextColor(26, 26, 26)
		pdf.CellFormat(cardW-12, 8, cd.value, "", 0, "L", false, 0, "")
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.SetY(-28)
	pdf.SetDrawColor(179, 179, 179)
	pdf.SetLineWidth(0.3)
	pdf.Line(18, pdf.GetY(), pageW-18, pdf.GetY())
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(contentW, 5, "Generated "+time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
