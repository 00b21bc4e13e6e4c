// Package harmonic fits and reconstructs tidal harmonic models.
//
// Solve regresses one series, a (u, v) current pair, or a whole batch of
// co-located series sharing one time base onto a set of tidal constituent
// frequencies, returning a Coef with amplitudes, phases, confidence
// intervals, and diagnostics. Reconstruct evaluates a fitted Coef at
// arbitrary times.
//
// # Basic Usage
//
//	opts := harmonic.DefaultOptions()
//	coef, err := harmonic.SolveSeries(t, h, nil, 43.5, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, name := range coef.Names {
//	    fmt.Printf("%-5s A=%.3f +/- %.3f  g=%.1f\n",
//	        name, coef.A[0][i], coef.ACI[0][i], coef.G[0][i])
//	}
//	tide, _, err := harmonic.ReconstructSeries(t2, coef, nil)
//
// # Batched analysis
//
// Solve accepts a batch of series ([][]float64) sharing the time vector.
// Constituent selection, astronomical corrections, the design matrix, and
// its QR factorization are computed once and shared across the batch; every
// batch entry is solved as an additional right-hand side of the same
// factorization. Results carry a leading batch dimension and are otherwise
// identical to running the single-series path per entry.
//
// # Model
//
// With constituent frequencies sigma_k, equilibrium phases V_k at the
// central time tref, and nodal corrections (f_k, u_k), the scalar model is
//
//	x(t) = mean + slope*(t-tref)
//	     + sum_k f_k * A_k * cos(2*pi*sigma_k*(t-tref) + V_k + u_k - g_k)
//
// so fitted phases g are Greenwich phase lags. Current pairs are fit as
// u + i*v and reported as ellipse parameters (Lsmaj, Lsmin, Theta, G) of
// the counter-rotating components.
//
// Times are hours since the tidal epoch, 1899-12-31 12:00 UT; see the
// timeseries package for conversions.
package harmonic
