package service

import "math"

// epsilon is the gap between 1 and the next float64, added before rounding so
// values like 1.005 that are stored just below the half round up.
const epsilon = 2.220446049250313e-16

// RoundToNDecimal rounds value to the given number of fractional digits.
func RoundToNDecimal(value float64, decimals int) float64 {
	d := math.Pow(10, float64(decimals))
	return math.Round((value+epsilon)*d) / d
}

// roundTo2Decimals rounds to cents.
func roundTo2Decimals(value float64) float64 {
	return RoundToNDecimal(value, 2)
}
