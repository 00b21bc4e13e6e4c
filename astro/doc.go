// Package astro evaluates astronomical arguments and nodal corrections for
// tidal constituents.
//
// The time axis throughout is hours since the tidal epoch, 1899-12-31 12:00
// UT (the Schureman reference). Mean longitudes of the moon, sun, lunar
// perigee, lunar node, and solar perigee are evaluated from cubic
// polynomials in time; the polynomials are valid for roughly two centuries
// either side of the epoch, and Arguments fails with a RangeError outside
// that window.
//
// Equilibrium phases follow from a constituent's Doodson coefficients:
//
//	a, err := astro.Arguments(th)
//	v := astro.Phase(m2, a) // cycles
//
// Nodal corrections modulate a constituent's effective amplitude (factor f)
// and phase (u, radians) over the 18.6-year lunar nodal cycle:
//
//	corr, err := astro.NodalCorrection(m2, th)
//	// corr.F ~ 0.96..1.04 for M2, corr.U a few degrees
//
// Compound constituents take products and weighted sums of their parents'
// corrections.
package astro
