package astro

import (
	"fmt"
	"math"

	"github.com/coastref/gotide/constituent"
)

// MaxHours bounds the validity window of the mean-longitude polynomials:
// 200 years (73,050 days) either side of the 1899-12-31 12:00 UT epoch.
const MaxHours = 73050 * 24

// RangeError reports a time outside the validity window of the
// astronomical polynomials.
type RangeError struct {
	Hours float64 // offending time, hours since the tidal epoch
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("astro: time %.0f hours from the 1899-12-31 epoch is outside the +/-%d hour validity window", e.Hours, int(MaxHours))
}

// Args holds the fundamental astronomical arguments at one time, each as a
// fraction of a cycle in [0, 1).
type Args struct {
	Tau float64 // lunar time
	S   float64 // mean longitude of the moon
	H   float64 // mean longitude of the sun
	P   float64 // longitude of the lunar perigee
	NP  float64 // negative longitude of the ascending lunar node
	PP  float64 // longitude of the solar perigee
}

// Schureman polynomial coefficients for the mean longitudes, in degrees.
// Terms multiply [1, d, D^2, D^3] with d days since epoch and D = d/10000.
var (
	polyS  = [4]float64{270.434164, 13.1763965268, -0.0000850, 0.000000039}
	polyH  = [4]float64{279.696678, 0.9856473354, 0.00002267, 0}
	polyP  = [4]float64{334.329556, 0.1114040803, -0.0007739, -0.00000026}
	polyNP = [4]float64{-259.183275, 0.0529539222, -0.0001557, -0.00000005}
	polyPP = [4]float64{281.220844, 0.0000470684, 0.0000339, 0.00000007}
)

func evalCycles(p [4]float64, d, dd float64) float64 {
	deg := p[0] + p[1]*d + p[2]*dd*dd + p[3]*dd*dd*dd
	c := math.Mod(deg/360, 1)
	if c < 0 {
		c++
	}
	return c
}

// Arguments evaluates the fundamental astronomical arguments at th hours
// since the tidal epoch. It fails with a *RangeError when th lies outside
// the polynomial validity window.
func Arguments(th float64) (Args, error) {
	if math.IsNaN(th) || math.Abs(th) > MaxHours {
		return Args{}, &RangeError{Hours: th}
	}
	d := th / 24
	dd := d / 10000

	a := Args{
		S:  evalCycles(polyS, d, dd),
		H:  evalCycles(polyH, d, dd),
		P:  evalCycles(polyP, d, dd),
		NP: evalCycles(polyNP, d, dd),
		PP: evalCycles(polyPP, d, dd),
	}

	// The epoch is at noon, so the solar day fraction is d + 0.5.
	frac := math.Mod(d+0.5, 1)
	if frac < 0 {
		frac++
	}
	tau := frac + a.H - a.S
	tau = math.Mod(tau, 1)
	if tau < 0 {
		tau++
	}
	a.Tau = tau
	return a, nil
}

// Phase returns the equilibrium phase of c at the time the arguments were
// evaluated, in cycles in [0, 1). Compound constituents sum their parents'
// phases weighted by the composition factors.
func Phase(c *constituent.Constituent, a Args) float64 {
	var v float64
	if c.Compound() {
		for _, comp := range c.Shallow {
			parent, ok := constituent.Lookup(comp.Name)
			if !ok {
				continue
			}
			v += comp.Factor * Phase(parent, a)
		}
	} else {
		d := c.Doodson
		v = float64(d[0])*a.Tau + float64(d[1])*a.S + float64(d[2])*a.H +
			float64(d[3])*a.P + float64(d[4])*a.NP + float64(d[5])*a.PP + c.Semi
	}
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}
