package harmonic

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/coastref/gotide/astro"
	"github.com/coastref/gotide/constituent"
)

// basis bundles the per-constituent quantities shared by the design matrix
// and the reconstructor: frequencies, equilibrium phases at the reference
// time, and nodal corrections. It is computed once per call and read-only
// afterward.
type basis struct {
	set  []*constituent.Constituent
	freq []float64 // cycles/hour
	v    []float64 // equilibrium phase at tref, cycles; zero when raw

	// Nodal corrections: one row per constituent. A single column when
	// corrections are evaluated once at the central time, one column per
	// sample under NodalDrift.
	f [][]float64
	u [][]float64 // radians
	perSample bool
}

// makeBasis evaluates frequencies, equilibrium phases at tref, and nodal
// corrections for the selected set. Nodal corrections are evaluated at the
// mean of t, or at every sample when drift is set.
func makeBasis(set []*constituent.Constituent, t []float64, tref float64, nodal, drift, raw bool) (*basis, error) {
	nc := len(set)
	b := &basis{
		set:  set,
		freq: make([]float64, nc),
		v:    make([]float64, nc),
		f:    make([][]float64, nc),
		u:    make([][]float64, nc),
	}
	for i, c := range set {
		b.freq[i] = c.Frequency()
	}

	if !raw {
		args, err := astro.Arguments(tref)
		if err != nil {
			return nil, err
		}
		for i, c := range set {
			b.v[i] = astro.Phase(c, args)
		}
	}

	switch {
	case nodal && drift:
		b.perSample = true
		for i := range set {
			b.f[i] = make([]float64, len(t))
			b.u[i] = make([]float64, len(t))
		}
		for j, tj := range t {
			corr, err := astro.NodalSet(set, tj)
			if err != nil {
				return nil, err
			}
			for i := range set {
				b.f[i][j] = corr[i].F
				b.u[i][j] = corr[i].U
			}
		}
	case nodal:
		tm := mean(t)
		corr, err := astro.NodalSet(set, tm)
		if err != nil {
			return nil, err
		}
		for i := range set {
			b.f[i] = []float64{corr[i].F}
			b.u[i] = []float64{corr[i].U}
		}
	default:
		for i := range set {
			b.f[i] = []float64{1}
			b.u[i] = []float64{0}
		}
	}

	if raw {
		// Raw phases: drop the nodal phase from the basis as well, keeping
		// only the amplitude modulation.
		for i := range set {
			for j := range b.u[i] {
				b.u[i][j] = 0
			}
		}
	}
	return b, nil
}

// corrAt returns the nodal correction of constituent i at sample j.
func (b *basis) corrAt(i, j int) (f, u float64) {
	if b.perSample {
		return b.f[i][j], b.u[i][j]
	}
	return b.f[i][0], b.u[i][0]
}

// theta returns the full basis angle of constituent i at time tj, radians.
func (b *basis) theta(i int, tj, tref float64) float64 {
	return 2 * math.Pi * (b.freq[i]*(tj-tref) + b.v[i])
}

// buildDesign assembles the regression design matrix for the time vector.
// Column layout: a cos/sin pair per constituent in set order, then the mean
// column, then (optionally) the trend column (t-tref)/span. The trend is
// pre-scaled by the record span so its coefficient is O(signal) and the
// column is well conditioned against the mean.
func buildDesign(b *basis, t []float64, tref, span float64, trend bool) *mat.Dense {
	nc := len(b.set)
	m := 2*nc + 1
	if trend {
		m++
	}
	d := mat.NewDense(len(t), m, nil)
	for j, tj := range t {
		for i := 0; i < nc; i++ {
			f, u := b.corrAt(i, j)
			th := b.theta(i, tj, tref) + u
			d.Set(j, 2*i, f*math.Cos(th))
			d.Set(j, 2*i+1, f*math.Sin(th))
		}
		d.Set(j, 2*nc, 1)
		if trend {
			d.Set(j, 2*nc+1, (tj-tref)/span)
		}
	}
	return d
}

func mean(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s / float64(len(x))
}
