package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{2 * math.Pi, 0},
		{5 * math.Pi, math.Pi},
		{-7 * math.Pi / 2, math.Pi / 2},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, NormalizeAngle(c.in), 1e-9, "in=%v", c.in)
	}
}

func TestNormalizeAngleHugeInputsStayInRange(t *testing.T) {
	for _, a := range []float64{1e12, -1e12, 1e300, -1e-300} {
		got := NormalizeAngle(a)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 2*math.Pi)
	}
}

func TestAngleDiffTakesShortestArc(t *testing.T) {
	assert.InDelta(t, math.Pi/2, AngleDiff(0, math.Pi/2), 1e-12)
	assert.InDelta(t, -math.Pi/2, AngleDiff(0, 3*math.Pi/2), 1e-12)
	assert.InDelta(t, 0.2, AngleDiff(2*math.Pi-0.1, 0.1), 1e-12)
}

func TestLerpAngle(t *testing.T) {
	assert.InDelta(t, 2*math.Pi-0.05, LerpAngle(2*math.Pi-0.1, 0.1, 0.25), 1e-12)
	assert.InDelta(t, 1.0, LerpAngle(1.0, 2.0, 0), 1e-12)
	assert.InDelta(t, 2.0, LerpAngle(1.0, 2.0, 1), 1e-12)
}
