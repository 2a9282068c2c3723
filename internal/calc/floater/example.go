package floater

import "math"

// ExampleConfig24MW is the 24 MW 6+1 study layout: three arms 120 degrees
// apart with an inner and an outer column each, plus a center column, three
// lower plates, and lumped masses for tower, RNA, hull steel and ballast.
// Heave added mass is calibrated against the 15 MW reference hull
// (7 columns at 10.5 m OD, 16 s heave period).
//
// Only radii enter the hydrostatics, so the arm angles never appear.
func ExampleConfig24MW() Config {
	const (
		draft     = 24.0
		freeboard = 12.0
		rIn       = 50.0
		rOut      = 84.0
	)

	columns := make([]Column, 0, 7)
	for i := 0; i < 3; i++ {
		columns = append(columns,
			Column{RadiusM: rIn, DiameterM: 9.0, DraftM: draft, FreeboardM: freeboard},
			Column{RadiusM: rOut, DiameterM: 9.0, DraftM: draft, FreeboardM: freeboard},
		)
	}
	columns = append(columns, Column{RadiusM: 0.0, DiameterM: 10.0, DraftM: draft, FreeboardM: freeboard})

	// 15 MW reference: displaced mass, waterplane of 7 columns at 10.5 m OD.
	refMass := 7975.0 * 1000.0
	awRef := 7.0 * math.Pi * (10.5 / 2.0) * (10.5 / 2.0)
	refC33 := SeawaterDensity * Gravity * awRef

	return Config{
		Columns: columns,
		LowerPlates: LowerPlates{
			NPlates: 3,
			LengthM: rOut,
			WidthM:  14.5,
		},
		MassItems: []MassItem{
			{MassT: 1170.0, ZM: 80.0},  // tower
			{MassT: 1350.0, ZM: 160.0}, // RNA
			{MassT: 5100.0, ZM: -5.0},  // hull steel
			{MassT: 4000.0, ZM: -20.0}, // ballast
		},
		RefMassTotalKg:  float64Ptr(refMass),
		RefC33NM:        float64Ptr(refC33),
		RefHeavePeriodS: float64Ptr(16.0),
		RefPlateLengthM: float64Ptr(67.22),
		RefPlateWidthM:  float64Ptr(14.0),
	}
}
