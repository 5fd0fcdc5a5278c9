package stats

import "math"

// PearsonCorrelation calculates the Pearson correlation coefficient between
// two equal-length series using the raw-sums form:
//
//	r = (n*Σxy − Σx*Σy) / sqrt((n*Σx²−(Σx)²)(n*Σy²−(Σy)²))
//
// A zero denominator (zero variance in either series) yields 0 rather than
// NaN, and series shorter than 2 yield 0. The result is otherwise in [-1,1].
func PearsonCorrelation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	denom := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denom == 0 {
		return 0
	}

	r := (n*sumXY - sumX*sumY) / denom

	// Floating-point error can push |r| marginally past 1.
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return r
}

// PercentChange returns the relative change from before to after as a
// percentage, and whether it is defined. A zero before-value yields
// ok=false; callers skip the computation rather than propagate Inf/NaN.
func PercentChange(before, after float64) (float64, bool) {
	if before == 0 {
		return 0, false
	}
	return (after - before) / before * 100, true
}
