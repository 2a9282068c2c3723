package floater

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEvaluate_SingleColumnScenario(t *testing.T) {
	cfg := singleColumnConfig(10, 20)

	res, err := Evaluate(cfg)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	within := func(name string, got, want, relTol float64) {
		t.Helper()
		if math.Abs(got-want) > relTol*math.Abs(want) {
			t.Errorf("%s = %f, want %f within %.2f%%", name, got, want, relTol*100)
		}
	}

	within("displacement", res.DisplacementM3, math.Pi*25.0*20.0, 1e-9)
	within("waterplane", res.WaterplaneM2, math.Pi*25.0, 1e-9)
	within("C33", res.C33NM, 789590.0, 0.005)
	within("displaced mass", res.DisplacedMassT, math.Pi*25.0*20.0*1025.0/1000.0, 1e-9)

	if res.ZBM != -10.0 {
		t.Errorf("zB = %f, want -10", res.ZBM)
	}
	if got := res.GMM; math.Abs(got-(res.BMM-res.BGM)) > 1e-12 {
		t.Errorf("GM = %f inconsistent with BM-BG = %f", got, res.BMM-res.BGM)
	}
	if got := res.BGM; math.Abs(got-(res.ZGM-res.ZBM)) > 1e-12 {
		t.Errorf("BG = %f inconsistent with zG-zB = %f", got, res.ZGM-res.ZBM)
	}
}

func TestEvaluate_SymmetricMassesCancel(t *testing.T) {
	cfg := singleColumnConfig(10, 20)
	cfg.MassItems = []MassItem{
		{MassT: 100, ZM: 10},
		{MassT: 100, ZM: -10},
	}

	res, err := Evaluate(cfg)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.ZGM != 0 {
		t.Errorf("zG = %f, want exactly 0", res.ZGM)
	}
}

func TestEvaluate_Example24MW(t *testing.T) {
	res, err := Evaluate(ExampleConfig24MW())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	// 6 columns at 9 m OD + 1 at 10 m OD, 24 m draft.
	wantV := (6.0*math.Pi*4.5*4.5 + math.Pi*25.0) * 24.0
	if math.Abs(res.DisplacementM3-wantV) > 1e-6 {
		t.Errorf("displacement = %f, want %f", res.DisplacementM3, wantV)
	}
	if res.GMM <= 0 {
		t.Errorf("example hull is unstable: GM = %f", res.GMM)
	}
	if res.HeavePeriodS <= 0 || res.PitchPeriodS <= 0 {
		t.Errorf("non-positive periods: T33=%f Tpitch=%f", res.HeavePeriodS, res.PitchPeriodS)
	}
}

func TestEvaluate_TopHeavyHullFailsStability(t *testing.T) {
	// The CoG far above the waterline drives BG past BM and GM well
	// below zero.
	cfg := singleColumnConfig(10, 20)
	cfg.MassItems = []MassItem{{MassT: 2000, ZM: 80}}

	_, err := Evaluate(cfg)
	if !errors.Is(err, ErrUnstableHydrostatics) {
		t.Errorf("err = %v, want ErrUnstableHydrostatics", err)
	}
}

func TestEvaluate_ZeroMassFails(t *testing.T) {
	cfg := singleColumnConfig(10, 20)
	cfg.MassItems = []MassItem{{MassT: 0, ZM: -10}}

	_, err := Evaluate(cfg)
	if !errors.Is(err, ErrDegenerateMass) {
		t.Errorf("err = %v, want ErrDegenerateMass", err)
	}
}

func TestValidate(t *testing.T) {
	base := singleColumnConfig(10, 20)

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"no columns", func(c *Config) { c.Columns = nil }, "column"},
		{"zero diameter", func(c *Config) { c.Columns[0].DiameterM = 0 }, "diameter"},
		{"negative draft", func(c *Config) { c.Columns[0].DraftM = -1 }, "draft"},
		{"negative radius", func(c *Config) { c.Columns[0].RadiusM = -2 }, "radius"},
		{"negative mass", func(c *Config) { c.MassItems[0].MassT = -1 }, "mass"},
		{"zero plate count", func(c *Config) { c.LowerPlates.NPlates = 0 }, "plates"},
		{"zero plate width", func(c *Config) { c.LowerPlates.WidthM = 0 }, "plates"},
		{"negative density", func(c *Config) { c.WaterDensity = -1 }, "density"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Columns = append([]Column(nil), base.Columns...)
			cfg.MassItems = append([]MassItem(nil), base.MassItems...)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("err = %v, want ErrInvalidGeometry", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %q", err.Error(), tt.field)
			}
		})
	}

	if err := base.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
