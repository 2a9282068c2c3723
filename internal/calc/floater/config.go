// Package floater computes hydrostatic properties and rigid-body natural
// periods for multi-column floating platforms (semi-submersible floating
// wind turbine hulls). All computations are closed-form and stateless:
// a Config goes in, derived quantities come out, nothing is cached.
package floater

import "fmt"

// Physical defaults, applied when the corresponding Config field is zero.
const (
	SeawaterDensity = 1025.0 // kg/m3
	Gravity         = 9.81   // m/s2
)

// Column is a single vertical cylindrical column of the hull.
type Column struct {
	RadiusM    float64 `json:"radius_m"`    // radial distance from centerline
	DiameterM  float64 `json:"diameter_m"`  // OD at the waterplane
	DraftM     float64 `json:"draft_m"`     // submerged length
	FreeboardM float64 `json:"freeboard_m"` // height above SWL
}

// MassItem is one lumped mass (tower, RNA, steel, ballast, equipment).
type MassItem struct {
	MassT float64 `json:"mass_t"` // tonnes
	ZM    float64 `json:"z_m"`    // positive up, 0 at SWL
}

// LowerPlates describes the set of radial lower flanges near the keel.
// Each plate is approximated as a rectangle length x width.
type LowerPlates struct {
	NPlates int     `json:"n_plates"` // typically 3
	LengthM float64 `json:"length_m"` // radial extent, center to outer edge
	WidthM  float64 `json:"width_m"`
}

// Config is one floater study definition. It is constructed once and read
// only; every function in this package is a pure function of it.
//
// The Ref* fields carry the known reference design used to calibrate the
// heave added-mass ratio. They are optional: any missing field selects the
// documented fallback (see CalibrateHeaveAddedMassRatio and
// ScaleHeaveAddedMassRatio) instead of failing.
type Config struct {
	Columns      []Column    `json:"columns"`
	LowerPlates  LowerPlates `json:"lower_plates"`
	MassItems    []MassItem  `json:"mass_items"`
	WaterDensity float64     `json:"water_density"` // kg/m3, 0 means seawater
	GravityMS2   float64     `json:"gravity_ms2"`   // m/s2, 0 means standard

	RefMassTotalKg  *float64 `json:"ref_mass_total_kg,omitempty"`
	RefC33NM        *float64 `json:"ref_c33_n_per_m,omitempty"`
	RefHeavePeriodS *float64 `json:"ref_heave_period_s,omitempty"`
	RefPlateLengthM *float64 `json:"ref_plate_length_m,omitempty"`
	RefPlateWidthM  *float64 `json:"ref_plate_width_m,omitempty"`
}

// Density returns the water density with the seawater default applied.
func (c Config) Density() float64 {
	if c.WaterDensity > 0 {
		return c.WaterDensity
	}
	return SeawaterDensity
}

// G returns the gravitational acceleration with the standard default applied.
func (c Config) G() float64 {
	if c.GravityMS2 > 0 {
		return c.GravityMS2
	}
	return Gravity
}

// Validate rejects geometry that makes the hydrostatics undefined. It runs
// before any computation; a validated Config cannot produce a division by
// zero or a negative waterplane inside this package.
func (c Config) Validate() error {
	if len(c.Columns) == 0 {
		return fmt.Errorf("%w: at least one column required", ErrInvalidGeometry)
	}
	for i, col := range c.Columns {
		if col.DiameterM <= 0 {
			return fmt.Errorf("%w: column %d diameter must be positive", ErrInvalidGeometry, i)
		}
		if col.DraftM <= 0 {
			return fmt.Errorf("%w: column %d draft must be positive", ErrInvalidGeometry, i)
		}
		if col.RadiusM < 0 {
			return fmt.Errorf("%w: column %d radius must not be negative", ErrInvalidGeometry, i)
		}
		if col.FreeboardM < 0 {
			return fmt.Errorf("%w: column %d freeboard must not be negative", ErrInvalidGeometry, i)
		}
	}
	for i, m := range c.MassItems {
		if m.MassT < 0 {
			return fmt.Errorf("%w: mass item %d mass must not be negative", ErrInvalidGeometry, i)
		}
	}
	p := c.LowerPlates
	if p.NPlates <= 0 || p.LengthM <= 0 || p.WidthM <= 0 {
		return fmt.Errorf("%w: lower plates need positive count, length and width", ErrInvalidGeometry)
	}
	if c.WaterDensity < 0 {
		return fmt.Errorf("%w: water density must not be negative", ErrInvalidGeometry)
	}
	if c.GravityMS2 < 0 {
		return fmt.Errorf("%w: gravity must not be negative", ErrInvalidGeometry)
	}
	return nil
}

// TotalMassT sums the lumped masses in tonnes.
func (c Config) TotalMassT() float64 {
	total := 0.0
	for _, m := range c.MassItems {
		total += m.MassT
	}
	return total
}

func float64Ptr(v float64) *float64 { return &v }
