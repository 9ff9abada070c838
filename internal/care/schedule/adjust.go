package schedule

// MicroAdjustDays computes the per-plant day offset for local microclimate:
// 3 days per 1000 ft of elevation plus up to 5 days of urban heat-island
// shift. The result may be fractional; callers apply it before truncating
// an instant to its date.
func MicroAdjustDays(elevationFt, urbanDensity float64) float64 {
	return (elevationFt/1000)*3 + urbanDensity*5
}
