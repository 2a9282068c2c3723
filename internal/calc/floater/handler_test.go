package floater

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func postCalc(t *testing.T, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/tools/floater/calc", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	return rec
}

func TestHandlerCalc_OK(t *testing.T) {
	body, err := json.Marshal(ExampleConfig24MW())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rec := postCalc(t, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}

	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.HeavePeriodS <= 0 {
		t.Errorf("heave period = %f, want > 0", res.HeavePeriodS)
	}
}

func TestHandlerCalc_BadPayload(t *testing.T) {
	rec := postCalc(t, []byte("{not json"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerCalc_InvalidGeometry(t *testing.T) {
	cfg := ExampleConfig24MW()
	cfg.Columns[0].DiameterM = -1
	body, _ := json.Marshal(cfg)

	rec := postCalc(t, body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerCalc_UnstableHull(t *testing.T) {
	cfg := singleColumnConfig(10, 20)
	cfg.MassItems = []MassItem{{MassT: 2000, ZM: 80}}
	body, _ := json.Marshal(cfg)

	rec := postCalc(t, body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}
