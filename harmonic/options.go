package harmonic

import "fmt"

// ConfMethod selects how confidence intervals are estimated.
type ConfMethod int

const (
	// ConfLinear propagates the residual variance through the
	// normal-equation covariance analytically.
	ConfLinear ConfMethod = iota
	// ConfNone skips confidence intervals and SNR diagnostics.
	ConfNone
)

// DefaultRayleighMin is the conventional minimum Rayleigh criterion for
// automatic constituent selection.
const DefaultRayleighMin = 1.0

// Options configures Solve. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// Constituents lists the constituent names to fit. Empty means
	// automatic selection from the full catalog under the Rayleigh
	// criterion.
	Constituents []string

	// Nodal enables nodal/satellite corrections (f, u), evaluated once at
	// the central analysis time.
	Nodal bool

	// NodalDrift re-evaluates nodal corrections at every sample instead of
	// once per analysis. Only meaningful when Nodal is set.
	NodalDrift bool

	// Trend includes a linear trend column, centered on the central time.
	Trend bool

	// RawPhase drops the equilibrium phase V and nodal phase u from the
	// basis, so fitted phases are raw lags relative to the central time
	// rather than Greenwich phase lags.
	RawPhase bool

	// RayleighMin is the minimum Rayleigh criterion: two constituents are
	// resolvable only if their frequency difference times the record span
	// is at least this many cycles.
	RayleighMin float64

	// ConfMethod selects the confidence interval computation.
	ConfMethod ConfMethod

	// White assumes a flat residual spectrum in the confidence intervals.
	// When false, coefficient variances are scaled by band-averaged
	// residual spectral density per tidal species; this requires a
	// uniformly spaced time vector and falls back to white otherwise.
	White bool

	// AutoDrop resolves Rayleigh conflicts within an explicitly requested
	// constituent list by dropping the lower-priority member, as the
	// automatic selection does. When false such a conflict is an error.
	AutoDrop bool
}

// DefaultOptions returns the standard analysis configuration: automatic
// constituent selection, nodal corrections, trend, Greenwich phases, and
// linear confidence intervals with colored residual spectra.
func DefaultOptions() *Options {
	return &Options{
		Nodal:       true,
		Trend:       true,
		RayleighMin: DefaultRayleighMin,
		ConfMethod:  ConfLinear,
		AutoDrop:    true,
	}
}

func (o *Options) validate() error {
	if o.RayleighMin <= 0 {
		return fmt.Errorf("harmonic: RayleighMin must be positive, got %g", o.RayleighMin)
	}
	if o.ConfMethod != ConfLinear && o.ConfMethod != ConfNone {
		return fmt.Errorf("harmonic: unknown confidence method %d", o.ConfMethod)
	}
	return nil
}

// ReconstructOptions configures Reconstruct. The zero value is not usable;
// start from DefaultReconstructOptions.
type ReconstructOptions struct {
	// Constituents restricts reconstruction to the named constituents,
	// bypassing the SNR and PE thresholds. Names absent from the Coef are
	// ignored.
	Constituents []string

	// MinSNR excludes constituents whose fitted signal-to-noise ratio is
	// below this threshold. Ignored when the Coef carries no SNR.
	MinSNR float64

	// MinPE excludes constituents whose percent energy is below this
	// threshold.
	MinPE float64
}

// DefaultReconstructOptions returns the standard reconstruction
// configuration, excluding constituents with SNR below 2.
func DefaultReconstructOptions() *ReconstructOptions {
	return &ReconstructOptions{MinSNR: 2}
}
