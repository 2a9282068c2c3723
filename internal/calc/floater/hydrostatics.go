package floater

import "math"

// DisplacementVolume returns the displaced volume [m3], treating every
// column as a right circular cylinder of constant section over its draft.
func DisplacementVolume(cfg Config) float64 {
	v := 0.0
	for _, col := range cfg.Columns {
		area := math.Pi * (col.DiameterM / 2.0) * (col.DiameterM / 2.0)
		v += area * col.DraftM
	}
	return v
}

// WaterplaneArea returns the total cut area at the still-water line [m2].
// Only the waterplane diameter matters; draft does not enter.
func WaterplaneArea(cfg Config) float64 {
	a := 0.0
	for _, col := range cfg.Columns {
		a += math.Pi * (col.DiameterM / 2.0) * (col.DiameterM / 2.0)
	}
	return a
}

// CenterOfBuoyancyZ approximates the vertical center of buoyancy [m] as
// -mean(draft)/2. Good for equal drafts; degrades as drafts diverge.
func CenterOfBuoyancyZ(cfg Config) float64 {
	sum := 0.0
	for _, col := range cfg.Columns {
		sum += col.DraftM
	}
	mean := sum / float64(len(cfg.Columns))
	return -mean / 2.0
}

// CenterOfGravityZ returns the mass-weighted vertical CoG [m]. A zero total
// mass returns 0 rather than dividing by zero.
func CenterOfGravityZ(cfg Config) float64 {
	total := cfg.TotalMassT()
	if total == 0 {
		return 0
	}
	moment := 0.0
	for _, m := range cfg.MassItems {
		moment += m.MassT * m.ZM
	}
	return moment / total
}

// PitchBM returns the metacentric radius [m] for pitch/roll from the
// ring-column approximation I_wp = sum(A_col * r^2 / 2), BM = I_wp / V.
//
// The half factor is an empirical fit for a ring of columns, not an exact
// parallel-axis second moment. Downstream calibration constants were tuned
// against this exact formula, so it must not be "corrected".
func PitchBM(cfg Config, dispVolume float64) float64 {
	iwp := 0.0
	for _, col := range cfg.Columns {
		a := math.Pi * (col.DiameterM / 2.0) * (col.DiameterM / 2.0)
		iwp += a * col.RadiusM * col.RadiusM / 2.0
	}
	return iwp / dispVolume
}
