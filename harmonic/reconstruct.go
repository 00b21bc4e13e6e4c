package harmonic

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/coastref/gotide/constituent"
)

// ReconstructSeries evaluates a single-series Coef at the given times,
// returning the synthesized signal (and the second component for a current
// fit, nil otherwise). See Reconstruct for the model and the filtering
// options.
func ReconstructSeries(t []float64, c *Coef, opts *ReconstructOptions) (u, v []float64, err error) {
	if c.NSeries != 1 {
		return nil, nil, fmt.Errorf("harmonic: ReconstructSeries on a batch of %d series; use Reconstruct", c.NSeries)
	}
	ub, vb, err := Reconstruct(t, c, opts)
	if err != nil {
		return nil, nil, err
	}
	if vb != nil {
		return ub[0], vb[0], nil
	}
	return ub[0], nil, nil
}

// Reconstruct synthesizes the fitted harmonic model at arbitrary times, one
// output series per batch entry. The constituent basis is rebuilt at the
// new times against the original reference time, with nodal corrections
// re-evaluated for the new window exactly as Solve evaluated them (once at
// the mean time, or per sample under NodalDrift). The trend, when fitted,
// is extrapolated linearly for all t, without bound, beyond the original
// record's span.
//
// Constituents are filtered by opts: an explicit name list wins; otherwise
// entries below MinSNR or MinPE are excluded per series (no filtering when
// the Coef carries no SNR diagnostics and both thresholds are unused).
func Reconstruct(t []float64, c *Coef, opts *ReconstructOptions) (u, v [][]float64, err error) {
	if opts == nil {
		opts = DefaultReconstructOptions()
	}
	if len(t) == 0 {
		return nil, nil, &ShapeMismatchError{What: "time vector", Want: 1, Got: 0}
	}

	nc := len(c.Names)
	set := make([]*constituent.Constituent, nc)
	for k, name := range c.Names {
		cn, ok := constituent.Lookup(name)
		if !ok {
			return nil, nil, fmt.Errorf("harmonic: coefficient bunch names unknown constituent %q", name)
		}
		set[k] = cn
	}

	var explicit map[string]bool
	if len(opts.Constituents) > 0 {
		explicit = make(map[string]bool, len(opts.Constituents))
		for _, name := range opts.Constituents {
			if cn, ok := constituent.Lookup(name); ok {
				explicit[cn.Name] = true
			}
		}
	}
	include := func(j, k int) bool {
		if explicit != nil {
			return explicit[c.Names[k]]
		}
		if opts.MinSNR > 0 && c.SNR != nil && !(c.SNR[j][k] >= opts.MinSNR) {
			return false
		}
		if opts.MinPE > 0 && c.PE != nil && !(c.PE[j][k] >= opts.MinPE) {
			return false
		}
		return true
	}

	opt := c.Aux.Opt
	bas, err := makeBasis(set, t, c.Aux.RefTime, opt.Nodal, opt.NodalDrift, opt.RawPhase)
	if err != nil {
		return nil, nil, err
	}

	nb := c.NSeries
	u = alloc2(nb, len(t))
	if c.TwoDim {
		v = alloc2(nb, len(t))
	}

	for j := 0; j < nb; j++ {
		if c.TwoDim {
			reconstructEllipse(c, bas, t, j, include, u[j], v[j])
		} else {
			reconstructScalar(c, bas, t, j, include, u[j])
		}
	}
	return u, v, nil
}

func reconstructScalar(c *Coef, bas *basis, t []float64, j int, include func(int, int) bool, out []float64) {
	tref := c.Aux.RefTime
	for i, ti := range t {
		x := c.Mean[j]
		if c.Slope != nil {
			x += c.Slope[j] * (ti - tref)
		}
		for k := range bas.set {
			if !include(j, k) {
				continue
			}
			f, uk := bas.corrAt(k, i)
			th := bas.theta(k, ti, tref) + uk
			x += f * c.A[j][k] * math.Cos(th-c.G[j][k]*rad)
		}
		out[i] = x
	}
}

func reconstructEllipse(c *Coef, bas *basis, t []float64, j int, include func(int, int) bool, outU, outV []float64) {
	tref := c.Aux.RefTime
	nc := len(bas.set)

	// Counter-rotating complex amplitudes per constituent.
	ap := make([]complex128, nc)
	am := make([]complex128, nc)
	for k := 0; k < nc; k++ {
		ap[k], am[k] = rotary(ellipse{
			Lsmaj: c.Lsmaj[j][k], Lsmin: c.Lsmin[j][k],
			Theta: c.Theta[j][k], G: c.G[j][k],
		})
	}

	for i, ti := range t {
		w := complex(0, 0)
		for k := 0; k < nc; k++ {
			if !include(j, k) {
				continue
			}
			f, uk := bas.corrAt(k, i)
			th := bas.theta(k, ti, tref) + uk
			e := complex(f, 0) * cmplx.Exp(complex(0, th))
			w += e*ap[k] + cmplx.Conj(e)*am[k]
		}
		uu := real(w) + c.UMean[j]
		vv := imag(w) + c.VMean[j]
		if c.USlope != nil {
			uu += c.USlope[j] * (ti - tref)
			vv += c.VSlope[j] * (ti - tref)
		}
		outU[i] = uu
		outV[i] = vv
	}
}
