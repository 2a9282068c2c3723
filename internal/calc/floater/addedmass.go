package floater

import "math"

// DefaultAddedMassRatio is the fallback a33/m when no reference calibration
// data is present. Typical for this class of plated multi-column hull.
const DefaultAddedMassRatio = 4.0

// refPlateCount is the number of lower plates on the reference design.
const refPlateCount = 3.0

// CalibrateHeaveAddedMassRatio back-solves the added-mass ratio a33/m of the
// reference design from its known total mass, heave stiffness and heave
// natural period, using the undamped SDOF relation
//
//	T = 2*pi * sqrt((m + a33) / C33)  =>  a33 = (T/2pi)^2 * C33 - m.
//
// If any of the three reference fields is absent the documented default
// ratio is returned instead.
func CalibrateHeaveAddedMassRatio(cfg Config) float64 {
	if cfg.RefMassTotalKg == nil || cfg.RefC33NM == nil || cfg.RefHeavePeriodS == nil {
		return DefaultAddedMassRatio
	}

	m := *cfg.RefMassTotalKg
	c33 := *cfg.RefC33NM
	t := *cfg.RefHeavePeriodS

	mEff := (t / (2.0 * math.Pi)) * (t / (2.0 * math.Pi)) * c33
	a33 := mEff - m
	return a33 / m
}

// ScaleHeaveAddedMassRatio scales a calibrated ratio by the ratio of total
// lower-plate area between this design and the reference:
//
//	ratio_new = ref_ratio * (A_new / A_ref)
//
// encoding the assumption that heave added mass grows about linearly with
// submerged plate area near the keel. Missing reference plate dimensions
// leave the ratio unscaled.
func ScaleHeaveAddedMassRatio(cfg Config, refRatio float64) float64 {
	if cfg.RefPlateLengthM == nil || cfg.RefPlateWidthM == nil {
		return refRatio
	}

	aRef := *cfg.RefPlateLengthM * *cfg.RefPlateWidthM * refPlateCount

	p := cfg.LowerPlates
	aNew := p.LengthM * p.WidthM * float64(p.NPlates)

	return refRatio * (aNew / aRef)
}
