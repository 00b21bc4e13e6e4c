package harmonic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidenceSignalPlusNoise(t *testing.T) {
	tt := hourly(1.0e6, 30*24)
	fm2 := freqOf(t, "M2")
	rng := rand.New(rand.NewSource(42))

	u := make([]float64, len(tt))
	for i, ti := range tt {
		u[i] = math.Cos(2*math.Pi*fm2*ti) + 0.05*rng.NormFloat64()
	}

	opts := DefaultOptions()
	opts.Constituents = []string{"M2"}
	opts.Trend = false
	opts.Nodal = false
	opts.White = true
	coef, err := SolveSeries(tt, u, nil, 45, opts)
	require.NoError(t, err)

	require.NotNil(t, coef.ACI)
	aci := coef.ACI[0][0]
	assert.Greater(t, aci, 0.0)
	// Expected half-width is roughly 1.96*sigma*sqrt(2/nt) ~ 0.005.
	assert.Less(t, aci, 0.05)
	assert.InDelta(t, 1.0, coef.A[0][0], 5*aci)

	assert.False(t, coef.PhaseUndefined[0][0])
	assert.Greater(t, coef.GCI[0][0], 0.0)
	assert.False(t, math.IsNaN(coef.GCI[0][0]))
	assert.Greater(t, coef.MeanCI[0], 0.0)

	require.NotNil(t, coef.SNR)
	assert.Greater(t, coef.SNR[0][0], 100.0)
}

func TestConfidenceNoiseOnly(t *testing.T) {
	tt := hourly(1.0e6, 45*24)
	rng := rand.New(rand.NewSource(3))
	u := make([]float64, len(tt))
	for i := range u {
		u[i] = 0.1 * rng.NormFloat64()
	}

	opts := DefaultOptions()
	opts.Constituents = []string{"M2", "K1"}
	opts.Trend = false
	opts.Nodal = false
	opts.White = true
	coef, err := SolveSeries(tt, u, nil, 45, opts)
	require.NoError(t, err)

	require.Len(t, coef.PhaseUndefined, 1)
	require.Len(t, coef.PhaseUndefined[0], 2)
	for k := range coef.Names {
		// Noise-level amplitudes stay within a few interval widths of zero.
		assert.Less(t, coef.A[0][k], 5*coef.ACI[0][k], coef.Names[k])
		if coef.PhaseUndefined[0][k] {
			assert.True(t, math.IsNaN(coef.GCI[0][k]))
		} else {
			assert.GreaterOrEqual(t, coef.GCI[0][k], 0.0)
		}
	}
}

func TestColoredConfidenceUniformTime(t *testing.T) {
	tt := hourly(1.0e6, 20*24)
	fm2 := freqOf(t, "M2")
	rng := rand.New(rand.NewSource(11))
	u := make([]float64, len(tt))
	for i, ti := range tt {
		u[i] = 0.8*math.Cos(2*math.Pi*fm2*ti) + 0.03*rng.NormFloat64()
	}

	opts := DefaultOptions()
	opts.Constituents = []string{"M2"}
	opts.Trend = false
	opts.Nodal = false
	// White left false: colored intervals via the residual periodogram.
	coef, err := SolveSeries(tt, u, nil, 45, opts)
	require.NoError(t, err)

	assert.False(t, coef.WhiteFallback)
	assert.Greater(t, coef.ACI[0][0], 0.0)
}

func TestColoredConfidenceFallsBackOnIrregularTime(t *testing.T) {
	tt := hourly(1.0e6, 20*24)
	tt[100] += 0.3
	fm2 := freqOf(t, "M2")
	rng := rand.New(rand.NewSource(11))
	u := make([]float64, len(tt))
	for i, ti := range tt {
		u[i] = 0.8*math.Cos(2*math.Pi*fm2*ti) + 0.03*rng.NormFloat64()
	}

	opts := DefaultOptions()
	opts.Constituents = []string{"M2"}
	opts.Trend = false
	opts.Nodal = false
	coef, err := SolveSeries(tt, u, nil, 45, opts)
	require.NoError(t, err)

	assert.True(t, coef.WhiteFallback)
	assert.Greater(t, coef.ACI[0][0], 0.0)
}

func TestConfNoneSkipsIntervals(t *testing.T) {
	tt := hourly(1.0e6, 10*24)
	fm2 := freqOf(t, "M2")
	u := make([]float64, len(tt))
	for i, ti := range tt {
		u[i] = math.Cos(2 * math.Pi * fm2 * ti)
	}

	opts := DefaultOptions()
	opts.Constituents = []string{"M2"}
	opts.Trend = false
	opts.Nodal = false
	opts.ConfMethod = ConfNone
	coef, err := SolveSeries(tt, u, nil, 45, opts)
	require.NoError(t, err)

	assert.Nil(t, coef.ACI)
	assert.Nil(t, coef.GCI)
	assert.Nil(t, coef.SNR)
	assert.Nil(t, coef.PhaseUndefined)
	assert.NotNil(t, coef.PE)
}

func TestConfidenceEllipseIntervals(t *testing.T) {
	tt := hourly(1.0e6, 25*24)
	fm2 := freqOf(t, "M2")
	rng := rand.New(rand.NewSource(8))
	u := make([]float64, len(tt))
	v := make([]float64, len(tt))
	for i, ti := range tt {
		th := 2 * math.Pi * fm2 * ti
		u[i] = 0.6*math.Cos(th) + 0.02*rng.NormFloat64()
		v[i] = 0.2*math.Sin(th) + 0.02*rng.NormFloat64()
	}

	opts := DefaultOptions()
	opts.Constituents = []string{"M2"}
	opts.Trend = false
	opts.Nodal = false
	opts.White = true
	coef, err := SolveSeries(tt, u, v, 45, opts)
	require.NoError(t, err)

	require.NotNil(t, coef.LsmajCI)
	assert.Greater(t, coef.LsmajCI[0][0], 0.0)
	assert.Equal(t, coef.LsmajCI[0][0], coef.LsminCI[0][0])
	assert.False(t, coef.PhaseUndefined[0][0])
	assert.Greater(t, coef.ThetaCI[0][0], 0.0)
	assert.Greater(t, coef.UMeanCI[0], 0.0)
	assert.Greater(t, coef.VMeanCI[0], 0.0)
	assert.InDelta(t, 0.6, coef.Lsmaj[0][0], 5*coef.LsmajCI[0][0])
}
