package harmonic

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmpPhase(t *testing.T) {
	a, g := ampPhase(1, 0)
	assert.InDelta(t, 1.0, a, 1e-12)
	assert.InDelta(t, 0.0, g, 1e-12)

	a, g = ampPhase(0, 1)
	assert.InDelta(t, 1.0, a, 1e-12)
	assert.InDelta(t, 90.0, g, 1e-12)

	a, g = ampPhase(-1, -1)
	assert.InDelta(t, math.Sqrt2, a, 1e-12)
	assert.InDelta(t, 225.0, g, 1e-12)
}

func TestRotaryInvertsEllipse(t *testing.T) {
	// rotary and cs2cep are inverse transformations: the counter-rotating
	// amplitudes of an ellipse must synthesize the cartesian coefficients it
	// was derived from.
	rng := rand.New(rand.NewSource(17))
	for trial := 0; trial < 50; trial++ {
		xu := rng.NormFloat64()
		yu := rng.NormFloat64()
		xv := rng.NormFloat64()
		yv := rng.NormFloat64()

		e := cs2cep(xu, yu, xv, yv)
		ap, am := rotary(e)

		wantAp := complex((xu+yv)/2, (xv-yu)/2)
		wantAm := complex((xu-yv)/2, (xv+yu)/2)
		assert.InDelta(t, real(wantAp), real(ap), 1e-9)
		assert.InDelta(t, imag(wantAp), imag(ap), 1e-9)
		assert.InDelta(t, real(wantAm), real(am), 1e-9)
		assert.InDelta(t, imag(wantAm), imag(am), 1e-9)

		// Axis lengths from the rotary magnitudes.
		assert.InDelta(t, cmplx.Abs(wantAp)+cmplx.Abs(wantAm), e.Lsmaj, 1e-9)
		assert.InDelta(t, cmplx.Abs(wantAp)-cmplx.Abs(wantAm), e.Lsmin, 1e-9)

		assert.GreaterOrEqual(t, e.Theta, 0.0)
		assert.Less(t, e.Theta, 180.0)
		assert.GreaterOrEqual(t, e.G, 0.0)
		assert.Less(t, e.G, 360.0)
	}
}

func TestEllipseDegenerateCases(t *testing.T) {
	// Pure counterclockwise rotation: equal axes, positive Lsmin.
	e := cs2cep(1, 0, 0, 1)
	assert.InDelta(t, 1.0, e.Lsmaj, 1e-12)
	assert.InDelta(t, 1.0, e.Lsmin, 1e-12)

	// Pure clockwise rotation: Lsmin flips sign.
	e = cs2cep(1, 0, 0, -1)
	assert.InDelta(t, 1.0, e.Lsmaj, 1e-12)
	assert.InDelta(t, -1.0, e.Lsmin, 1e-12)

	// Rectilinear east-west motion.
	e = cs2cep(1, 0, 0, 0)
	assert.InDelta(t, 1.0, e.Lsmaj, 1e-12)
	assert.InDelta(t, 0.0, e.Lsmin, 1e-12)
	assert.InDelta(t, 0.0, math.Mod(e.Theta, 180), 1e-9)
}
