package floater

import (
	"fmt"
	"math"
)

// HeavePeriod returns the heave natural period T33 [s], including the lower
// plate added mass. The added-mass ratio is calibrated on the reference
// design (or defaulted) and scaled to this design's plate area.
func HeavePeriod(cfg Config, dispVolume, aw float64) (float64, error) {
	mStruct := cfg.TotalMassT() * 1000.0 // t -> kg
	if mStruct <= 0 {
		return 0, fmt.Errorf("%w: total structural mass %.1f kg", ErrDegenerateMass, mStruct)
	}

	c33 := HeaveStiffness(cfg, aw)
	if c33 <= 0 {
		return 0, fmt.Errorf("%w: heave stiffness %.3e N/m", ErrUnstableHydrostatics, c33)
	}

	refRatio := CalibrateHeaveAddedMassRatio(cfg)
	ratio := ScaleHeaveAddedMassRatio(cfg, refRatio)

	mEff := mStruct * (1.0 + ratio)
	return 2.0 * math.Pi * math.Sqrt(mEff/c33), nil
}

// PitchPeriod returns the pitch/roll natural period [s] from the structural
// inertia about the still-water line, I = sum(m_i * z_i^2). Rotational added
// inertia from the plates is small and ignored.
func PitchPeriod(cfg Config, gm float64) (float64, error) {
	if cfg.TotalMassT() <= 0 {
		return 0, fmt.Errorf("%w: total structural mass %.1f t", ErrDegenerateMass, cfg.TotalMassT())
	}

	iStruct := 0.0 // t*m2
	for _, m := range cfg.MassItems {
		iStruct += m.MassT * m.ZM * m.ZM
	}
	iStruct *= 1000.0 // -> kg*m2

	v := DisplacementVolume(cfg)
	cTheta := PitchStiffness(cfg, v, gm)
	if cTheta <= 0 {
		return 0, fmt.Errorf("%w: pitch stiffness %.3e Nm/rad (GM %.2f m)", ErrUnstableHydrostatics, cTheta, gm)
	}

	return 2.0 * math.Pi * math.Sqrt(iStruct/cTheta), nil
}
