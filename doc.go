// Package gotide provides harmonic tidal analysis of sea level and current
// records.
//
// GoTide decomposes an observed time series into a mean, a linear trend, and
// the amplitudes and phases of astronomically defined tidal constituents by
// ordinary least squares, with nodal (18.6-year lunar cycle) corrections and
// automatic constituent selection under the Rayleigh criterion. Fitted
// coefficients can then be used to synthesize (predict) the tide at arbitrary
// times.
//
// # Quick Start
//
// Fit a sea-level record and predict from the result:
//
//	coef, err := harmonic.SolveSeries(t, h, nil, 43.5, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tide, _, _ := harmonic.ReconstructSeries(t, coef, nil)
//
// Times are hours since the tidal epoch (1899-12-31 12:00 UT); the
// timeseries package converts time.Time stamps to that axis.
//
// Fit a whole grid of co-located current records sharing one time base:
//
//	coef, err := harmonic.Solve(t, u, v, 43.5, harmonic.DefaultOptions())
//
// The batch form solves every series against a single shared design matrix
// and one matrix factorization, so fitting B series costs far less than B
// separate calls.
//
// # Packages
//
// The library is organized into the following packages:
//
//   - constituent: static catalog of tidal constituents (frequencies,
//     astronomical arguments, nodal formula families, selection priority)
//   - astro: astronomical arguments and nodal corrections at a given time
//   - harmonic: constituent selection, least-squares fit, confidence
//     intervals, and reconstruction
//   - timeseries: time series containers, time-axis conversion, CSV loading
//
// # References
//
//   - Codiga, D.L. (2011). Unified Tidal Analysis and Prediction Using the
//     UTide Matlab Functions
//   - Schureman, P. (1958). Manual of Harmonic Analysis and Prediction of
//     Tides
//   - Pawlowicz, R., Beardsley, B., & Lentz, S. (2002). Classical tidal
//     harmonic analysis including error estimates in MATLAB using T_TIDE
package gotide
