package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEllipseNormDist(t *testing.T) {
	e := Ellipse{Center: Point2D{X: 50, Y: 60}, RX: 35, RY: 40}

	assert.InDelta(t, 0.0, e.NormDist(Point2D{X: 50, Y: 60}), 1e-9)
	assert.InDelta(t, 1.0, e.NormDist(Point2D{X: 85, Y: 60}), 1e-9)
	assert.InDelta(t, 1.0, e.NormDist(Point2D{X: 50, Y: 100}), 1e-9)
	assert.Greater(t, e.NormDist(Point2D{X: 0, Y: 0}), 1.0)
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(0.7, 1.0, 0.5))
	assert.Equal(t, 1.0, Smoothstep(0.7, 1.0, 1.2))
	assert.InDelta(t, 0.5, Smoothstep(0, 1, 0.5), 1e-9)

	// Monotonic across the transition band.
	prev := -1.0
	for x := 0.0; x <= 1.0; x += 0.01 {
		v := Smoothstep(0.25, 0.75, x)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
}
