package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversion(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldEqual, math.Pi)
	test.That(t, DegToRad(45), test.ShouldAlmostEqual, math.Pi/4)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90.0)
	test.That(t, RadToDeg(DegToRad(33.3)), test.ShouldAlmostEqual, 33.3)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1, 1+1e-9, 1e-8), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1, 1.1, 1e-8), test.ShouldBeFalse)
	test.That(t, Float64AlmostEqual(-2, -2, 0), test.ShouldBeTrue)
}

func TestPowers(t *testing.T) {
	test.That(t, PowerOfTwo(0), test.ShouldEqual, 1)
	test.That(t, PowerOfTwo(5), test.ShouldEqual, 32)
	test.That(t, PowerOfFour(0), test.ShouldEqual, 1)
	test.That(t, PowerOfFour(3), test.ShouldEqual, 64)
}
