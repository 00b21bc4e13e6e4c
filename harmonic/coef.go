package harmonic

// Aux carries the analysis metadata a Coef needs to be reconstructed,
// independent of whether the origin was a single series or a batch.
type Aux struct {
	RefTime  float64   // central time of the fitted record, hours
	Span     float64   // record span (last - first), hours
	Latitude float64   // degrees north
	Freq     []float64 // constituent frequencies, cycles/hour, Names order
	Opt      Options   // resolved options the fit was run with
}

// Coef is the immutable result of a Solve call.
//
// Per-constituent fields are indexed [series][constituent], with the
// constituent axis following Names; the leading axis has NSeries entries
// even for a single-series fit, so downstream consumers never branch on the
// origin shape. Scalar fits populate A/ACI/G/GCI; two-component (current)
// fits populate the ellipse parameters Lsmaj/Lsmin/Theta and share G/GCI
// for the Greenwich phase.
type Coef struct {
	Names   []string
	NSeries int
	TwoDim  bool

	// Scalar amplitude/phase (nil when TwoDim).
	A   [][]float64 // amplitude
	ACI [][]float64 // 95% amplitude confidence interval
	// Ellipse parameters (nil unless TwoDim).
	Lsmaj   [][]float64 // semi-major axis amplitude
	LsmajCI [][]float64
	Lsmin   [][]float64 // semi-minor axis amplitude; sign gives rotation sense
	LsminCI [][]float64
	Theta   [][]float64 // ellipse inclination, degrees in [0, 180)
	ThetaCI [][]float64
	// Greenwich phase lag, degrees in [0, 360), both shapes.
	G   [][]float64
	GCI [][]float64

	// Mean and trend. Scalar fits use Mean/Slope; two-component fits use
	// the U/V pairs. Slopes are per hour; nil when the fit had no trend.
	Mean    []float64
	MeanCI  []float64
	Slope   []float64
	SlopeCI []float64
	UMean   []float64
	UMeanCI []float64
	VMean   []float64
	VMeanCI []float64
	USlope   []float64
	USlopeCI []float64
	VSlope   []float64
	VSlopeCI []float64

	// Diagnostics.
	PE           [][]float64 // percent energy per constituent
	SNR          [][]float64 // signal-to-noise ratio; nil when ConfNone
	VarExplained []float64   // percent variance explained per series
	// PhaseUndefined flags (series, constituent) pairs whose fitted
	// amplitude is too small for a meaningful phase; the matching GCI (and
	// ThetaCI) entries are NaN rather than a misleading interval.
	PhaseUndefined [][]bool
	// WhiteFallback is set when colored confidence intervals were
	// requested but the time vector was not uniform, so the white
	// assumption was used instead.
	WhiteFallback bool

	Aux Aux
}

// constituentIndex returns the position of name in Names, or -1.
func (c *Coef) constituentIndex(name string) int {
	for i, n := range c.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// energy returns the squared-amplitude energy of constituent k for series
// j, the quantity PE and SNR are built from.
func (c *Coef) energy(j, k int) float64 {
	if c.TwoDim {
		return c.Lsmaj[j][k]*c.Lsmaj[j][k] + c.Lsmin[j][k]*c.Lsmin[j][k]
	}
	return c.A[j][k] * c.A[j][k]
}
