package harmonic

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fitTwoConstituents(t *testing.T) (*Coef, []float64, []float64) {
	t.Helper()
	tt := hourly(1.0e6, 30*24)
	fm2 := freqOf(t, "M2")
	fk1 := freqOf(t, "K1")
	u := make([]float64, len(tt))
	for i, ti := range tt {
		u[i] = 0.4 + 1.1*math.Cos(2*math.Pi*fm2*ti-0.7) + 0.5*math.Cos(2*math.Pi*fk1*ti-2.2)
	}

	opts := DefaultOptions()
	opts.Constituents = []string{"M2", "K1"}
	opts.Trend = false
	opts.Nodal = false
	opts.ConfMethod = ConfNone
	coef, err := SolveSeries(tt, u, nil, 45, opts)
	require.NoError(t, err)
	return coef, tt, u
}

func TestReconstructExplicitSubset(t *testing.T) {
	coef, tt, u := fitTwoConstituents(t)

	full, _, err := Reconstruct(tt, coef, &ReconstructOptions{})
	require.NoError(t, err)
	m2only, _, err := Reconstruct(tt, coef, &ReconstructOptions{Constituents: []string{"M2"}})
	require.NoError(t, err)
	k1only, _, err := Reconstruct(tt, coef, &ReconstructOptions{Constituents: []string{"K1"}})
	require.NoError(t, err)

	for i := range tt {
		assert.InDelta(t, u[i], full[0][i], 1e-8)
		// The mean rides along in every reconstruction, so it appears twice
		// in the sum of the two single-constituent outputs.
		sum := m2only[0][i] + k1only[0][i] - coef.Mean[0]
		assert.InDelta(t, full[0][i], sum, 1e-9)
	}
}

func TestReconstructMinSNRFilter(t *testing.T) {
	coef, tt, _ := fitTwoConstituents(t)

	// Doctor the diagnostics so K1 falls below the threshold.
	coef.SNR = alloc2(1, 2)
	m2 := coef.constituentIndex("M2")
	k1 := coef.constituentIndex("K1")
	require.GreaterOrEqual(t, m2, 0)
	require.GreaterOrEqual(t, k1, 0)
	coef.SNR[0][m2] = 50
	coef.SNR[0][k1] = 0.5

	filtered, _, err := Reconstruct(tt, coef, &ReconstructOptions{MinSNR: 2})
	require.NoError(t, err)
	want, _, err := Reconstruct(tt, coef, &ReconstructOptions{Constituents: []string{"M2"}})
	require.NoError(t, err)

	for i := range tt {
		assert.InDelta(t, want[0][i], filtered[0][i], 1e-12)
	}
}

func TestReconstructMinPEFilter(t *testing.T) {
	coef, tt, _ := fitTwoConstituents(t)

	// K1 carries well under a third of the energy of M2.
	k1 := coef.constituentIndex("K1")
	require.Less(t, coef.PE[0][k1], 30.0)

	filtered, _, err := Reconstruct(tt, coef, &ReconstructOptions{MinPE: 30})
	require.NoError(t, err)
	want, _, err := Reconstruct(tt, coef, &ReconstructOptions{Constituents: []string{"M2"}})
	require.NoError(t, err)

	for i := range tt {
		assert.InDelta(t, want[0][i], filtered[0][i], 1e-12)
	}
}

func TestReconstructTrendExtrapolation(t *testing.T) {
	tt := hourly(9.5e5, 30*24)
	t0 := tt[0]
	fm2 := freqOf(t, "M2")
	const mean, slope, amp = 1.5, 4.0e-5, 0.9

	gen := func(ti float64) float64 {
		return mean + slope*(ti-t0) + amp*math.Cos(2*math.Pi*fm2*ti-1.3)
	}
	u := make([]float64, len(tt))
	for i, ti := range tt {
		u[i] = gen(ti)
	}

	opts := DefaultOptions()
	opts.Constituents = []string{"M2"}
	opts.Nodal = false
	opts.ConfMethod = ConfNone
	coef, err := SolveSeries(tt, u, nil, 45, opts)
	require.NoError(t, err)
	require.NotNil(t, coef.Slope)

	// Ten days beyond the fitted record the linear trend keeps going.
	future := hourly(tt[len(tt)-1]+1, 10*24)
	recon, _, err := Reconstruct(future, coef, &ReconstructOptions{})
	require.NoError(t, err)
	for i, ti := range future {
		assert.InDelta(t, gen(ti), recon[0][i], 1e-6)
	}
}

func TestReconstructVectorRoundTrip(t *testing.T) {
	tt := hourly(1.0e6, 35*24)
	fm2 := freqOf(t, "M2")
	fk1 := freqOf(t, "K1")
	u := make([]float64, len(tt))
	v := make([]float64, len(tt))
	for i, ti := range tt {
		th2 := 2 * math.Pi * fm2 * ti
		th1 := 2 * math.Pi * fk1 * ti
		u[i] = 0.05 + 0.7*math.Cos(th2) + 0.2*math.Cos(th1-0.9)
		v[i] = -0.02 + 0.3*math.Sin(th2) + 0.1*math.Sin(th1-0.9)
	}

	opts := DefaultOptions()
	opts.Constituents = []string{"M2", "K1"}
	opts.Trend = false
	opts.Nodal = false
	opts.ConfMethod = ConfNone
	coef, err := SolveSeries(tt, u, v, 45, opts)
	require.NoError(t, err)
	require.True(t, coef.TwoDim)

	ur, vr, err := ReconstructSeries(tt, coef, nil)
	require.NoError(t, err)
	require.NotNil(t, vr)
	for i := range tt {
		assert.InDelta(t, u[i], ur[i], 1e-6)
		assert.InDelta(t, v[i], vr[i], 1e-6)
	}
}

func TestReconstructBatch(t *testing.T) {
	tt := hourly(1.0e6, 20*24)
	fm2 := freqOf(t, "M2")
	batch := make([][]float64, 4)
	for j := range batch {
		amp := 0.5 + 0.25*float64(j)
		batch[j] = make([]float64, len(tt))
		for i, ti := range tt {
			batch[j][i] = amp * math.Cos(2*math.Pi*fm2*ti)
		}
	}

	opts := DefaultOptions()
	opts.Constituents = []string{"M2"}
	opts.Trend = false
	opts.Nodal = false
	opts.ConfMethod = ConfNone
	coef, err := Solve(tt, batch, nil, 45, opts)
	require.NoError(t, err)

	recon, _, err := Reconstruct(tt, coef, &ReconstructOptions{})
	require.NoError(t, err)
	require.Len(t, recon, 4)
	for j := range batch {
		for i := range tt {
			assert.InDelta(t, batch[j][i], recon[j][i], 1e-6)
		}
	}

	// The single-series wrapper refuses a batched Coef.
	_, _, err = ReconstructSeries(tt, coef, nil)
	assert.Error(t, err)
}

func TestReconstructEmptyTime(t *testing.T) {
	coef, _, _ := fitTwoConstituents(t)
	_, _, err := Reconstruct(nil, coef, nil)
	require.Error(t, err)
	var se *ShapeMismatchError
	assert.True(t, errors.As(err, &se))
}
