package spatial

import "math"

// minResultantLength keeps CircularStdDevDegrees finite when all mass
// cancels out (R -> 0 would send -2*ln(R) to infinity).
const minResultantLength = 1e-12

// CircularMeanDegrees calculates the circular mean of angles given in
// degrees, normalized to [0,360). Returns NaN for an empty input.
func CircularMeanDegrees(angles []float64) float64 {
	if len(angles) == 0 {
		return math.NaN()
	}

	var sumSin, sumCos float64
	for _, angle := range angles {
		rad := angle * math.Pi / 180
		sumSin += math.Sin(rad)
		sumCos += math.Cos(rad)
	}

	meanDeg := math.Atan2(sumSin, sumCos) * 180 / math.Pi
	return math.Mod(meanDeg+360, 360)
}

// MeanResultantLength calculates R, the mean resultant length of the
// angles (degrees). R ranges from 0 (uniform spread) to 1 (all identical).
func MeanResultantLength(angles []float64) float64 {
	if len(angles) == 0 {
		return 0
	}

	var sumSin, sumCos float64
	for _, angle := range angles {
		rad := angle * math.Pi / 180
		sumSin += math.Sin(rad)
		sumCos += math.Cos(rad)
	}

	return math.Sqrt(sumSin*sumSin+sumCos*sumCos) / float64(len(angles))
}

// CircularStdDevDegrees calculates the circular standard deviation of the
// angles (degrees), via sqrt(-2 ln R). Returns NaN for an empty input.
func CircularStdDevDegrees(angles []float64) float64 {
	if len(angles) == 0 {
		return math.NaN()
	}

	r := MeanResultantLength(angles)
	if r < minResultantLength {
		r = minResultantLength
	}
	if r > 1 {
		r = 1
	}

	return math.Sqrt(math.Max(0, -2*math.Log(r))) * 180 / math.Pi
}

// AngularDistanceDegrees calculates the smaller arc between two angles in
// degrees. Result is in [0,180].
func AngularDistanceDegrees(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 360)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
