package harmonic

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

// speciesBands are the frequency bands (cycles/hour) used to band-average
// the residual periodogram, one per tidal species from long-period through
// eighth-diurnal. A constituent's coefficient variance is scaled by the
// average residual power in its band relative to the record-wide average.
var speciesBands = [...][2]float64{
	{0, 0.005},
	{0.005, 0.0625},
	{0.0625, 0.1042},
	{0.1042, 0.1458},
	{0.1458, 0.1875},
	{0.1875, 0.2292},
	{0.2292, 0.2708},
	{0.2708, 0.3125},
	{0.3125, 0.5},
}

// uniformStep returns the common sample interval of t, or false when the
// spacing is not uniform.
func uniformStep(t []float64) (float64, bool) {
	if len(t) < 2 {
		return 0, false
	}
	dt := t[1] - t[0]
	if dt <= 0 {
		return 0, false
	}
	tol := 1e-6 * dt
	for i := 2; i < len(t); i++ {
		if math.Abs(t[i]-t[i-1]-dt) > tol {
			return 0, false
		}
	}
	return dt, true
}

// bandRatios computes, for every residual column, the per-constituent
// spectral scale: band-averaged periodogram power around the constituent's
// species divided by the record-wide average power. The boolean result
// reports a fallback to the white assumption (all ratios 1) because the
// time vector is not uniformly spaced.
func bandRatios(resid *mat.Dense, t []float64, freqs []float64) ([][]float64, bool) {
	dt, ok := uniformStep(t)
	if !ok {
		return nil, true
	}

	nt, nrhs := resid.Dims()
	nc := len(freqs)
	nyquist := 0.5 / dt

	fft := fourier.NewFFT(nt)
	ratios := alloc2(nrhs, nc)
	seq := make([]float64, nt)
	for j := 0; j < nrhs; j++ {
		mat.Col(seq, j, resid)
		coeffs := fft.Coefficients(nil, seq)

		// Periodogram power, DC excluded; only ratios are used, so the
		// absolute normalization cancels.
		var total float64
		power := make([]float64, len(coeffs))
		for i := 1; i < len(coeffs); i++ {
			re, im := real(coeffs[i]), imag(coeffs[i])
			power[i] = re*re + im*im
			total += power[i]
		}
		if total == 0 {
			for k := range ratios[j] {
				ratios[j][k] = 1
			}
			continue
		}
		overall := total / float64(len(coeffs)-1)

		bandAvg := make([]float64, len(speciesBands))
		for b, edges := range speciesBands {
			var sum float64
			var n int
			for i := 1; i < len(coeffs); i++ {
				f := float64(i) / (float64(nt) * dt)
				if f >= edges[0] && f < edges[1] {
					sum += power[i]
					n++
				}
			}
			if n > 0 {
				bandAvg[b] = sum / float64(n)
			}
		}

		for k, f := range freqs {
			ratios[j][k] = 1
			if f >= nyquist {
				continue
			}
			for b, edges := range speciesBands {
				if f >= edges[0] && f < edges[1] {
					if bandAvg[b] > 0 && overall > 0 {
						ratios[j][k] = bandAvg[b] / overall
					}
					break
				}
			}
		}
	}
	return ratios, false
}
