package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Columns"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	colRows := [][]any{
		{"radius_m", "diameter_m", "draft_m", "freeboard_m"},
		{30, 10, 20, 12},
		{30, 10, 20, 12},
	}
	for i, row := range colRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Columns", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	if _, err := f.NewSheet("Masses"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	massRows := [][]any{
		{"mass_t", "z_m"},
		{1500, -12},
		{800, 40},
	}
	for i, row := range massRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Masses", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	if _, err := f.NewSheet("Plates"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	plateRows := [][]any{
		{"n_plates", "length_m", "width_m"},
		{3, 50, 12},
	}
	for i, row := range plateRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Plates", cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf
}

func TestParseWorkbook(t *testing.T) {
	cfg, err := ParseWorkbook(buildWorkbook(t))
	if err != nil {
		t.Fatalf("ParseWorkbook: %v", err)
	}
	if len(cfg.Columns) != 2 {
		t.Errorf("columns = %d, want 2", len(cfg.Columns))
	}
	if len(cfg.MassItems) != 2 {
		t.Errorf("mass items = %d, want 2", len(cfg.MassItems))
	}
	if cfg.LowerPlates.NPlates != 3 || cfg.LowerPlates.LengthM != 50 {
		t.Errorf("plates = %+v", cfg.LowerPlates)
	}
	if cfg.Columns[0].DiameterM != 10 || cfg.Columns[0].DraftM != 20 {
		t.Errorf("column 0 = %+v", cfg.Columns[0])
	}
}

func TestFloaterUpload(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "hull.xlsx")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(buildWorkbook(t).Bytes()); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/tools/floater/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Floater(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}

	var out FloaterImportResult
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Columns != 2 || out.MassItems != 2 {
		t.Errorf("counts = %d columns, %d masses", out.Columns, out.MassItems)
	}
	if out.Result.HeavePeriodS <= 0 {
		t.Errorf("heave period = %f, want > 0", out.Result.HeavePeriodS)
	}
}

func TestFloaterUpload_MissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tools/floater/import", nil)
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Floater(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
