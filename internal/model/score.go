package model

import "math"

// ComputeTotalScore derives a feature's priority from its impact and effort
// scores. Higher impact is better, lower effort is better. Inputs are
// expected to be validated to [0,100] upstream, which keeps the result in
// [0,100] as well.
func ComputeTotalScore(impactScore, effortScore int) int {
	return int(math.Floor(float64(impactScore)*0.7 + float64(100-effortScore)*0.3))
}
