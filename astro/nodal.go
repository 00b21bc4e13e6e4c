package astro

import (
	"math"

	"github.com/coastref/gotide/constituent"
)

// Correction holds the nodal modulation of one constituent at one time:
// the amplitude factor F (> 0) and the phase correction U in radians.
type Correction struct {
	F float64
	U float64
}

const (
	rad = math.Pi / 180
	twoPi = 2 * math.Pi
)

// NodalCorrection evaluates the nodal correction of c at th hours since the
// tidal epoch. Compound constituents take the product of their parents'
// amplitude factors (each raised to the magnitude of its composition
// factor) and the weighted sum of their parents' phase corrections.
func NodalCorrection(c *constituent.Constituent, th float64) (Correction, error) {
	a, err := Arguments(th)
	if err != nil {
		return Correction{}, err
	}
	return nodal(c, a), nil
}

// NodalSet evaluates nodal corrections for a whole selected set at once,
// sharing a single astronomical-argument evaluation.
func NodalSet(set []*constituent.Constituent, th float64) ([]Correction, error) {
	a, err := Arguments(th)
	if err != nil {
		return nil, err
	}
	out := make([]Correction, len(set))
	for i, c := range set {
		out[i] = nodal(c, a)
	}
	return out, nil
}

func nodal(c *constituent.Constituent, a Args) Correction {
	if c.Compound() {
		corr := Correction{F: 1}
		for _, comp := range c.Shallow {
			parent, ok := constituent.Lookup(comp.Name)
			if !ok {
				continue
			}
			pc := nodal(parent, a)
			corr.F *= math.Pow(pc.F, math.Abs(comp.Factor))
			corr.U += comp.Factor * pc.U
		}
		return corr
	}

	// Longitude of the ascending node (NP is its negative) and of the
	// lunar perigee, in radians.
	n := -a.NP * twoPi
	p := a.P * twoPi
	return family(c.Formula, n, p)
}

// family evaluates the node-cosine series for one correction family.
// Coefficients are the standard Schureman / Doodson-Warburg expansions; u
// series are tabulated in degrees and converted on return.
func family(f constituent.Formula, n, p float64) Correction {
	cosN, sinN := math.Cos(n), math.Sin(n)
	cos2N, sin2N := math.Cos(2*n), math.Sin(2*n)
	cos3N, sin3N := math.Cos(3*n), math.Sin(3*n)

	switch f {
	case constituent.FormulaMm:
		return Correction{F: 1.0 - 0.1300*cosN + 0.0013*cos2N}
	case constituent.FormulaMf:
		return Correction{
			F: 1.0429 + 0.4135*cosN - 0.0040*cos2N,
			U: (-23.74*sinN + 2.68*sin2N - 0.38*sin3N) * rad,
		}
	case constituent.FormulaO1:
		return Correction{
			F: 1.0089 + 0.1871*cosN - 0.0147*cos2N + 0.0014*cos3N,
			U: (10.80*sinN - 1.34*sin2N + 0.19*sin3N) * rad,
		}
	case constituent.FormulaK1:
		return Correction{
			F: 1.0060 + 0.1150*cosN - 0.0088*cos2N + 0.0006*cos3N,
			U: (-8.86*sinN + 0.68*sin2N - 0.07*sin3N) * rad,
		}
	case constituent.FormulaJ1:
		return Correction{
			F: 1.0129 + 0.1676*cosN - 0.0170*cos2N + 0.0016*cos3N,
			U: (-12.94*sinN + 1.34*sin2N - 0.19*sin3N) * rad,
		}
	case constituent.FormulaOO1:
		return Correction{
			F: 1.1027 + 0.6504*cosN + 0.0317*cos2N - 0.0014*cos3N,
			U: (-36.68*sinN + 4.02*sin2N - 0.57*sin3N) * rad,
		}
	case constituent.FormulaM2:
		return Correction{
			F: 1.0004 - 0.0373*cosN + 0.0002*cos2N,
			U: -2.14 * sinN * rad,
		}
	case constituent.FormulaK2:
		return Correction{
			F: 1.0241 + 0.2863*cosN + 0.0083*cos2N - 0.0015*cos3N,
			U: (-17.74*sinN + 0.68*sin2N - 0.04*sin3N) * rad,
		}
	case constituent.FormulaM1:
		// M1 modulates with the perigee cycle; f and u come from the
		// in-phase and quadrature sums.
		fc := 2*math.Cos(p) + 0.4*math.Cos(p-n)
		fs := math.Sin(p) + 0.2*math.Sin(p-n)
		return Correction{F: math.Hypot(fc, fs), U: math.Atan2(fs, fc)}
	case constituent.FormulaL2:
		fc := 1 - 0.2505*math.Cos(2*p) - 0.1102*math.Cos(2*p-n) -
			0.0156*math.Cos(2*p-2*n) - 0.0370*cosN
		fs := -0.2505*math.Sin(2*p) - 0.1102*math.Sin(2*p-n) -
			0.0156*math.Sin(2*p-2*n) - 0.0370*sinN
		return Correction{F: math.Hypot(fc, fs), U: math.Atan2(fs, fc)}
	default:
		return Correction{F: 1}
	}
}
