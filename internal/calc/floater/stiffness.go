package floater

// HeaveStiffness returns the heave hydrostatic restoring stiffness
// C33 = rho * g * Aw [N/m].
func HeaveStiffness(cfg Config, aw float64) float64 {
	return cfg.Density() * cfg.G() * aw
}

// PitchStiffness returns the pitch/roll hydrostatic restoring stiffness
// C_theta = rho * g * V * GM [Nm/rad]. GM = BM - BG is the caller's to
// assemble from the hydrostatics outputs.
func PitchStiffness(cfg Config, dispVolume, gm float64) float64 {
	return cfg.Density() * cfg.G() * dispVolume * gm
}
