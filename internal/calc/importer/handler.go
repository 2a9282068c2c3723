package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	floater "Floatex/internal/calc/floater"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type FloaterImportResult struct {
	Columns   int            `json:"columns"`
	MassItems int            `json:"mass_items"`
	Result    floater.Result `json:"result"`
}

// Floater builds one study configuration from an uploaded workbook and
// evaluates it. Expected layout:
//
//	sheet "Columns": radius_m, diameter_m, draft_m, freeboard_m
//	sheet "Masses":  mass_t, z_m
//	sheet "Plates":  n_plates, length_m, width_m (single data row)
//
// Each sheet carries one header row. Reference calibration data cannot be
// imported; the default added-mass ratio applies.
func (h *Handler) Floater(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	cfg, err := ParseWorkbook(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := floater.Evaluate(cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FloaterImportResult{
		Columns:   len(cfg.Columns),
		MassItems: len(cfg.MassItems),
		Result:    res,
	})
}

// ParseWorkbook reads the Columns/Masses/Plates sheets into a Config.
func ParseWorkbook(r io.Reader) (floater.Config, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return floater.Config{}, fmt.Errorf("invalid workbook")
	}
	defer f.Close()

	var cfg floater.Config

	colRows, err := f.GetRows("Columns")
	if err != nil || len(colRows) < 2 {
		return floater.Config{}, fmt.Errorf("sheet Columns missing or empty")
	}
	for i := 1; i < len(colRows); i++ {
		col, err := parseColumnRow(colRows[i])
		if err != nil {
			return floater.Config{}, fmt.Errorf("Columns row %d: %w", i+1, err)
		}
		cfg.Columns = append(cfg.Columns, col)
	}

	massRows, err := f.GetRows("Masses")
	if err != nil || len(massRows) < 2 {
		return floater.Config{}, fmt.Errorf("sheet Masses missing or empty")
	}
	for i := 1; i < len(massRows); i++ {
		item, err := parseMassRow(massRows[i])
		if err != nil {
			return floater.Config{}, fmt.Errorf("Masses row %d: %w", i+1, err)
		}
		cfg.MassItems = append(cfg.MassItems, item)
	}

	plateRows, err := f.GetRows("Plates")
	if err != nil || len(plateRows) < 2 {
		return floater.Config{}, fmt.Errorf("sheet Plates missing or empty")
	}
	plates, err := parsePlateRow(plateRows[1])
	if err != nil {
		return floater.Config{}, fmt.Errorf("Plates row 2: %w", err)
	}
	cfg.LowerPlates = plates

	return cfg, nil
}

func parseColumnRow(row []string) (floater.Column, error) {
	if len(row) < 4 {
		return floater.Column{}, fmt.Errorf("need radius, diameter, draft, freeboard")
	}
	radius, err := toFloat(row[0])
	if err != nil {
		return floater.Column{}, err
	}
	diameter, err := toFloat(row[1])
	if err != nil {
		return floater.Column{}, err
	}
	draft, err := toFloat(row[2])
	if err != nil {
		return floater.Column{}, err
	}
	freeboard, err := toFloat(row[3])
	if err != nil {
		return floater.Column{}, err
	}
	return floater.Column{
		RadiusM:    radius,
		DiameterM:  diameter,
		DraftM:     draft,
		FreeboardM: freeboard,
	}, nil
}

func parseMassRow(row []string) (floater.MassItem, error) {
	if len(row) < 2 {
		return floater.MassItem{}, fmt.Errorf("need mass and z")
	}
	mass, err := toFloat(row[0])
	if err != nil {
		return floater.MassItem{}, err
	}
	z, err := toFloat(row[1])
	if err != nil {
		return floater.MassItem{}, err
	}
	return floater.MassItem{MassT: mass, ZM: z}, nil
}

func parsePlateRow(row []string) (floater.LowerPlates, error) {
	if len(row) < 3 {
		return floater.LowerPlates{}, fmt.Errorf("need n_plates, length, width")
	}
	n, err := toFloat(row[0])
	if err != nil {
		return floater.LowerPlates{}, err
	}
	length, err := toFloat(row[1])
	if err != nil {
		return floater.LowerPlates{}, err
	}
	width, err := toFloat(row[2])
	if err != nil {
		return floater.LowerPlates{}, err
	}
	return floater.LowerPlates{NPlates: int(n), LengthM: length, WidthM: width}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
