package harmonic

import (
	"math"
	"math/cmplx"
)

const rad = math.Pi / 180

// ellipse holds the current-ellipse parameters of one constituent: the
// semi-major and semi-minor axes, the inclination theta, and the Greenwich
// phase g (both degrees).
type ellipse struct {
	Lsmaj, Lsmin, Theta, G float64
}

// cs2cep converts fitted cosine/sine coefficients of the two velocity
// components into ellipse parameters via the counter-rotating circular
// components ap (counter-clockwise) and am (clockwise).
func cs2cep(xu, yu, xv, yv float64) ellipse {
	ap := complex((xu+yv)/2, (xv-yu)/2)
	am := complex((xu-yv)/2, (xv+yu)/2)
	mp, mm := cmplx.Abs(ap), cmplx.Abs(am)
	epsp := cmplx.Phase(ap) / rad
	epsm := cmplx.Phase(am) / rad
	theta := mod((epsp+epsm)/2, 180)
	return ellipse{
		Lsmaj: mp + mm,
		Lsmin: mp - mm,
		Theta: theta,
		G:     mod(theta-epsp, 360),
	}
}

// ampPhase converts a scalar cosine/sine coefficient pair into amplitude
// and phase (degrees in [0, 360)).
func ampPhase(x, y float64) (a, g float64) {
	return math.Hypot(x, y), mod(math.Atan2(y, x)/rad, 360)
}

// rotary recovers the counter-rotating complex amplitudes from ellipse
// parameters; inverse of cs2cep up to the fold of theta.
func rotary(e ellipse) (ap, am complex128) {
	ap = complex(0.5*(e.Lsmaj+e.Lsmin), 0) * cmplx.Exp(complex(0, (e.Theta-e.G)*rad))
	am = complex(0.5*(e.Lsmaj-e.Lsmin), 0) * cmplx.Exp(complex(0, (e.Theta+e.G)*rad))
	return ap, am
}

func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
