// Package utils contains small numeric helpers shared by the geometry and tree packages.
package utils

import (
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Float64AlmostEqual compares two float64s and returns if the difference between them is less
// than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// PowerOfTwo returns 2^exp for small non-negative exponents.
func PowerOfTwo(exp uint) int {
	return 1 << exp
}

// PowerOfFour returns 4^exp for small non-negative exponents.
func PowerOfFour(exp uint) int {
	return 1 << (2 * exp)
}
