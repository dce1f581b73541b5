package fitbit

// InferPounds converts a raw weight value of unknown unit to pounds.
// The bands reflect plausible adult body-weight ranges per unit:
// kilograms land in [50,200), stones in [8,25). Values in [25,50) are
// treated as a decimal-stones encoding. The [25,50) band is ambiguous;
// an adult under ~50 kg collides with the assumed-pounds range, and the
// boundaries are kept as-is rather than guessing a different cutoff.
func InferPounds(raw float64) float64 {
	switch {
	case raw >= 50 && raw < 200:
		return raw * 2.20462
	case raw >= 25 && raw < 50:
		return raw * 14
	case raw >= 8 && raw < 25:
		return raw * 14
	default:
		return raw
	}
}
