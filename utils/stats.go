package utils

import "math"

// Clamp01 caps a rate to the [0, 1] interval. Enrollment counted by an
// independent system can nominally exceed the recorded population baseline,
// so rates are reported as at most 100% coverage.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation, 0 for fewer than two
// values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := Mean(values)
	ss := 0.0
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}

// SlopeByIndex fits an ordinary least-squares line of values against their
// observation index 0..n-1 and returns the slope. Index spacing is used
// instead of calendar dates because snapshots arrive irregularly. The slope
// is 0 for fewer than two values or a zero-variance series, where a fit
// would be degenerate.
func SlopeByIndex(values []float64) float64 {
	n := len(values)
	if n < 2 || StdDev(values) == 0 {
		return 0
	}
	// x = 0..n-1, so the x statistics have closed forms.
	meanX := float64(n-1) / 2
	meanY := Mean(values)
	var num, den float64
	for i, y := range values {
		dx := float64(i) - meanX
		num += dx * (y - meanY)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// Round to the given number of decimal places, for API presentation.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
