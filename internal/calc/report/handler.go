package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	floater "Floatex/internal/calc/floater"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string         `json:"project"`
	Author  string         `json:"author"`
	Title   string         `json:"title"`
	Notes   string         `json:"notes"`
	Config  floater.Config `json:"config"`
}

type Handler struct{}

// Generate evaluates the configuration and renders a one-page A4 study
// report with the hydrostatic table and both eigenperiods.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Floater Hydrostatics Report"
	}

	res, err := floater.Evaluate(input.Config)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Columns: %d   Mass items: %d   Lower plates: %d x %.1f m x %.1f m",
		len(input.Config.Columns), len(input.Config.MassItems),
		input.Config.LowerPlates.NPlates, input.Config.LowerPlates.LengthM, input.Config.LowerPlates.WidthM))
	pdf.Ln(10)

	rows := []struct {
		label string
		value string
	}{
		{"Displacement volume", fmt.Sprintf("%.1f m3", res.DisplacementM3)},
		{"Displaced mass", fmt.Sprintf("%.1f t", res.DisplacedMassT)},
		{"Waterplane area", fmt.Sprintf("%.1f m2", res.WaterplaneM2)},
		{"zB (CoB)", fmt.Sprintf("%.2f m", res.ZBM)},
		{"zG (CoG)", fmt.Sprintf("%.2f m", res.ZGM)},
		{"BG", fmt.Sprintf("%.2f m", res.BGM)},
		{"BM (pitch)", fmt.Sprintf("%.2f m", res.BMM)},
		{"GM (pitch)", fmt.Sprintf("%.2f m", res.GMM)},
		{"C33 heave stiffness", fmt.Sprintf("%.3e N/m", res.C33NM)},
		{"C-pitch stiffness", fmt.Sprintf("%.3e Nm/rad", res.CPitchNmRad)},
		{"Heave period T33", fmt.Sprintf("%.2f s", res.HeavePeriodS)},
		{"Pitch/roll period", fmt.Sprintf("%.2f s", res.PitchPeriodS)},
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 7, "Quantity", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, "Value", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(90, 7, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, row.value, "1", 1, "R", false, 0, "")
	}

	if input.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"floater-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
