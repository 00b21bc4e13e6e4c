package harmonic

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// applyConfidence computes linear (analytic) 95% confidence intervals.
//
// The covariance structure of the regression is shared by every batch
// entry: only diag((B'B)^-1) is materialized, whose size scales with the
// column count, never with the batch. Per-entry residual variances then
// scale that diagonal. With White unset, per-coefficient variances are
// additionally scaled by the band-averaged residual spectral density of the
// constituent's tidal species.
func applyConfidence(c *Coef, design, resid *mat.Dense, bas *basis, t []float64, span float64, opts *Options) error {
	nt, m := design.Dims()
	dof := nt - m

	var btb mat.SymDense
	btb.SymOuterK(1, design.T())
	var chol mat.Cholesky
	if ok := chol.Factorize(&btb); !ok {
		return &UnderdeterminedSystemError{Samples: nt, Columns: m, MinSamples: m + 1}
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return &UnderdeterminedSystemError{Samples: nt, Columns: m, MinSamples: m + 1}
	}
	dinv := make([]float64, m)
	for k := range dinv {
		dinv[k] = inv.At(k, k)
	}

	_, nrhs := resid.Dims()
	sigma2 := make([]float64, nrhs)
	for j := 0; j < nrhs; j++ {
		col := mat.Col(nil, j, resid)
		sigma2[j] = floats.Dot(col, col) / float64(dof)
	}

	// Colored residual spectrum: per-(rhs, constituent) variance scale.
	var ratios [][]float64
	if !opts.White {
		var fallback bool
		ratios, fallback = bandRatios(resid, t, bas.freq)
		c.WhiteFallback = fallback
	}

	// varCoef returns the variance of regression coefficient col for rhs
	// column j; k >= 0 applies the constituent's spectral scale.
	varCoef := func(j, col, k int) float64 {
		v := sigma2[j] * dinv[col]
		if ratios != nil && k >= 0 {
			v *= ratios[j][k]
		}
		return v
	}

	nb := c.NSeries
	nc := len(bas.set)
	meanCol := 2 * nc
	trendCol := 2*nc + 1

	c.GCI = alloc2(nb, nc)
	c.PhaseUndefined = make([][]bool, nb)
	for j := range c.PhaseUndefined {
		c.PhaseUndefined[j] = make([]bool, nc)
	}
	if c.TwoDim {
		c.LsmajCI = alloc2(nb, nc)
		c.LsminCI = alloc2(nb, nc)
		c.ThetaCI = alloc2(nb, nc)
		c.UMeanCI = make([]float64, nb)
		c.VMeanCI = make([]float64, nb)
		if opts.Trend {
			c.USlopeCI = make([]float64, nb)
			c.VSlopeCI = make([]float64, nb)
		}
	} else {
		c.ACI = alloc2(nb, nc)
		c.MeanCI = make([]float64, nb)
		if opts.Trend {
			c.SlopeCI = make([]float64, nb)
		}
	}

	for j := 0; j < nb; j++ {
		for k := 0; k < nc; k++ {
			if c.TwoDim {
				confidenceEllipse(c, j, k,
					varCoef(j, 2*k, k), varCoef(j, 2*k+1, k),
					varCoef(nb+j, 2*k, k), varCoef(nb+j, 2*k+1, k))
			} else {
				confidenceScalar(c, j, k, varCoef(j, 2*k, k), varCoef(j, 2*k+1, k))
			}
		}
		if c.TwoDim {
			c.UMeanCI[j] = 1.96 * math.Sqrt(varCoef(j, meanCol, -1))
			c.VMeanCI[j] = 1.96 * math.Sqrt(varCoef(nb+j, meanCol, -1))
			if opts.Trend {
				c.USlopeCI[j] = 1.96 * math.Sqrt(varCoef(j, trendCol, -1)) / span
				c.VSlopeCI[j] = 1.96 * math.Sqrt(varCoef(nb+j, trendCol, -1)) / span
			}
		} else {
			c.MeanCI[j] = 1.96 * math.Sqrt(varCoef(j, meanCol, -1))
			if opts.Trend {
				c.SlopeCI[j] = 1.96 * math.Sqrt(varCoef(j, trendCol, -1)) / span
			}
		}
	}
	return nil
}

// confidenceScalar propagates cos/sin coefficient variances into amplitude
// and phase bounds for one (series, constituent) pair.
func confidenceScalar(c *Coef, j, k int, varX, varY float64) {
	a := c.A[j][k]
	g := c.G[j][k] * rad
	x := a * math.Cos(g)
	y := a * math.Sin(g)

	if a*a > 0 {
		c.ACI[j][k] = 1.96 * math.Sqrt((x*x*varX+y*y*varY)/(a*a))
	} else {
		c.ACI[j][k] = 1.96 * math.Sqrt((varX+varY)/2)
	}

	// A phase is meaningless when the amplitude is lost in its own
	// uncertainty; report that instead of a tiny interval.
	if a*a <= varX+varY {
		c.GCI[j][k] = math.NaN()
		c.PhaseUndefined[j][k] = true
		return
	}
	sigG := math.Sqrt(y*y*varX+x*x*varY) / (a * a) // radians
	c.GCI[j][k] = 1.96 * sigG / rad
}

// confidenceEllipse propagates the four component variances into ellipse
// parameter bounds for one (series, constituent) pair.
func confidenceEllipse(c *Coef, j, k int, varXu, varYu, varXv, varYv float64) {
	e := ellipse{
		Lsmaj: c.Lsmaj[j][k], Lsmin: c.Lsmin[j][k],
		Theta: c.Theta[j][k], G: c.G[j][k],
	}
	ap, am := rotary(e)

	varRe := (varXu + varYv) / 4
	varIm := (varXv + varYu) / 4

	sigAp2, sigEp2 := polarVariance(real(ap), imag(ap), varRe, varIm)
	sigAm2, sigEm2 := polarVariance(real(am), imag(am), varRe, varIm)

	axisCI := 1.96 * math.Sqrt(sigAp2+sigAm2)
	c.LsmajCI[j][k] = axisCI
	c.LsminCI[j][k] = axisCI

	energy := e.Lsmaj*e.Lsmaj + e.Lsmin*e.Lsmin
	if energy <= 2*(varRe+varIm) {
		c.ThetaCI[j][k] = math.NaN()
		c.GCI[j][k] = math.NaN()
		c.PhaseUndefined[j][k] = true
		return
	}
	// Theta and g are half-sum and half-difference of the component
	// phases, so they share one uncertainty.
	angCI := 1.96 * 0.5 * math.Sqrt(sigEp2+sigEm2) / rad
	c.ThetaCI[j][k] = angCI
	c.GCI[j][k] = angCI
}

// polarVariance converts variances of the cartesian parts of a complex
// amplitude into variances of its magnitude and phase (radians squared).
func polarVariance(re, im, varRe, varIm float64) (varMag, varPhase float64) {
	m2 := re*re + im*im
	if m2 == 0 {
		return (varRe + varIm) / 2, math.Inf(1)
	}
	varMag = (re*re*varRe + im*im*varIm) / m2
	varPhase = (im*im*varRe + re*re*varIm) / (m2 * m2)
	return varMag, varPhase
}
