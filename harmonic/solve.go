package harmonic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// SolveSeries fits the tidal harmonic model to a single series. u is the
// observed signal; v, when non-nil, is the orthogonal component of a
// current record and switches the fit to ellipse (rotary) form. Times are
// hours since the tidal epoch; lat is the site latitude in degrees.
//
// It is the single-series form of Solve: the result is a Coef with
// NSeries == 1.
func SolveSeries(t, u, v []float64, lat float64, opts *Options) (*Coef, error) {
	ub := [][]float64{u}
	var vb [][]float64
	if v != nil {
		vb = [][]float64{v}
	}
	return Solve(t, ub, vb, lat, opts)
}

// Solve fits the tidal harmonic model to a batch of series sharing one
// time vector. Every row of u (and v, for current records) is an
// independent series aligned 1:1 with t; all rows are fit against a single
// shared design matrix and one QR factorization, which is what makes the
// batch form cheaper than repeated single-series calls.
//
// The site latitude is recorded in the result's Aux; the node-cosine nodal
// formulation used here does not otherwise depend on it.
func Solve(t []float64, u, v [][]float64, lat float64, opts *Options) (*Coef, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("harmonic: latitude %g outside [-90, 90]", lat)
	}

	nt := len(t)
	nb := len(u)
	if nb == 0 {
		return nil, &ShapeMismatchError{What: "signal batch", Want: 1, Got: 0}
	}
	for j := range u {
		if len(u[j]) != nt {
			return nil, &ShapeMismatchError{What: fmt.Sprintf("u[%d]", j), Want: nt, Got: len(u[j])}
		}
	}
	twodim := v != nil
	if twodim {
		if len(v) != nb {
			return nil, &ShapeMismatchError{What: "v batch", Want: nb, Got: len(v)}
		}
		for j := range v {
			if len(v[j]) != nt {
				return nil, &ShapeMismatchError{What: fmt.Sprintf("v[%d]", j), Want: nt, Got: len(v[j])}
			}
		}
	}
	if nt < 2 {
		return nil, &InvalidTimeSpanError{Span: 0}
	}

	span := t[nt-1] - t[0]
	tref := 0.5 * (t[0] + t[nt-1])

	set, err := selectConstituents(span, opts.Constituents, opts.RayleighMin, opts.AutoDrop)
	if err != nil {
		return nil, err
	}
	nc := len(set)

	bas, err := makeBasis(set, t, tref, opts.Nodal, opts.NodalDrift, opts.RawPhase)
	if err != nil {
		return nil, err
	}

	m := 2*nc + 1
	if opts.Trend {
		m++
	}
	minSamples := m
	if opts.ConfMethod == ConfLinear {
		// One spare degree of freedom for the residual variance.
		minSamples = m + 1
	}
	if nt < minSamples {
		return nil, &UnderdeterminedSystemError{Samples: nt, Columns: m, MinSamples: minSamples}
	}

	design := buildDesign(bas, t, tref, span, opts.Trend)

	// Right-hand sides: the u series as columns, then the v series.
	nrhs := nb
	if twodim {
		nrhs = 2 * nb
	}
	rhs := mat.NewDense(nt, nrhs, nil)
	for j := 0; j < nb; j++ {
		for i := 0; i < nt; i++ {
			rhs.Set(i, j, u[j][i])
			if twodim {
				rhs.Set(i, nb+j, v[j][i])
			}
		}
	}

	// One factorization shared by every right-hand side.
	var qr mat.QR
	qr.Factorize(design)
	var coefs mat.Dense
	if err := qr.SolveTo(&coefs, false, rhs); err != nil {
		// Rank-deficient despite Rayleigh filtering; never fall back to a
		// least-norm solution.
		return nil, &UnderdeterminedSystemError{Samples: nt, Columns: m, MinSamples: minSamples}
	}

	var model mat.Dense
	model.Mul(design, &coefs)
	var resid mat.Dense
	resid.Sub(rhs, &model)

	names := make([]string, nc)
	for i, c := range set {
		names[i] = c.Name
	}
	coef := &Coef{
		Names:   names,
		NSeries: nb,
		TwoDim:  twodim,
		Aux: Aux{
			RefTime:  tref,
			Span:     span,
			Latitude: lat,
			Freq:     append([]float64(nil), bas.freq...),
			Opt:      *opts,
		},
	}
	unpack(coef, &coefs, nc, nb, span, opts.Trend)

	if opts.ConfMethod == ConfLinear {
		if err := applyConfidence(coef, design, &resid, bas, t, span, opts); err != nil {
			return nil, err
		}
	}
	fillDiagnostics(coef, rhs, &resid)
	return coef, nil
}

// unpack converts raw regression coefficients into amplitude/phase (or
// ellipse) form plus mean and trend, one batch series at a time.
func unpack(c *Coef, coefs *mat.Dense, nc, nb int, span float64, trend bool) {
	meanRow := 2 * nc
	trendRow := 2*nc + 1

	c.G = alloc2(nb, nc)
	if c.TwoDim {
		c.Lsmaj = alloc2(nb, nc)
		c.Lsmin = alloc2(nb, nc)
		c.Theta = alloc2(nb, nc)
		c.UMean = make([]float64, nb)
		c.VMean = make([]float64, nb)
		if trend {
			c.USlope = make([]float64, nb)
			c.VSlope = make([]float64, nb)
		}
	} else {
		c.A = alloc2(nb, nc)
		c.Mean = make([]float64, nb)
		if trend {
			c.Slope = make([]float64, nb)
		}
	}

	for j := 0; j < nb; j++ {
		for k := 0; k < nc; k++ {
			xu := coefs.At(2*k, j)
			yu := coefs.At(2*k+1, j)
			if c.TwoDim {
				xv := coefs.At(2*k, nb+j)
				yv := coefs.At(2*k+1, nb+j)
				e := cs2cep(xu, yu, xv, yv)
				c.Lsmaj[j][k] = e.Lsmaj
				c.Lsmin[j][k] = e.Lsmin
				c.Theta[j][k] = e.Theta
				c.G[j][k] = e.G
			} else {
				c.A[j][k], c.G[j][k] = ampPhase(xu, yu)
			}
		}
		if c.TwoDim {
			c.UMean[j] = coefs.At(meanRow, j)
			c.VMean[j] = coefs.At(meanRow, nb+j)
			if trend {
				c.USlope[j] = coefs.At(trendRow, j) / span
				c.VSlope[j] = coefs.At(trendRow, nb+j) / span
			}
		} else {
			c.Mean[j] = coefs.At(meanRow, j)
			if trend {
				c.Slope[j] = coefs.At(trendRow, j) / span
			}
		}
	}
}

// fillDiagnostics adds percent energy, SNR (when confidence intervals were
// computed), and percent variance explained.
func fillDiagnostics(c *Coef, rhs, resid *mat.Dense) {
	nb := c.NSeries
	nc := len(c.Names)
	c.PE = alloc2(nb, nc)
	haveCI := c.ACI != nil || c.LsmajCI != nil
	if haveCI {
		c.SNR = alloc2(nb, nc)
	}
	c.VarExplained = make([]float64, nb)

	for j := 0; j < nb; j++ {
		total := 0.0
		for k := 0; k < nc; k++ {
			total += c.energy(j, k)
		}
		for k := 0; k < nc; k++ {
			if total > 0 {
				c.PE[j][k] = 100 * c.energy(j, k) / total
			}
			if haveCI {
				var noise float64
				if c.TwoDim {
					noise = sq(c.LsmajCI[j][k]/1.96) + sq(c.LsminCI[j][k]/1.96)
				} else {
					noise = sq(c.ACI[j][k] / 1.96)
				}
				if noise > 0 {
					c.SNR[j][k] = c.energy(j, k) / noise
				} else {
					c.SNR[j][k] = math.Inf(1)
				}
			}
		}

		varRaw := colVariance(rhs, j)
		varRes := colVariance(resid, j)
		if c.TwoDim {
			varRaw += colVariance(rhs, nb+j)
			varRes += colVariance(resid, nb+j)
		}
		if varRaw > 0 {
			c.VarExplained[j] = 100 * (1 - varRes/varRaw)
		}
	}
}

func colVariance(m *mat.Dense, j int) float64 {
	col := mat.Col(nil, j, m)
	return stat.Variance(col, nil)
}

func alloc2(n, m int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, m)
	}
	return out
}

func sq(x float64) float64 { return x * x }
