package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastref/gotide/constituent"
)

func TestSolarConstituentsUnmodulated(t *testing.T) {
	for _, name := range []string{"S2", "T2", "P1", "SA"} {
		c, ok := constituent.Lookup(name)
		require.True(t, ok)
		for _, th := range []float64{0, 3.3e5, -2.7e5, 1.5e6} {
			corr, err := NodalCorrection(c, th)
			require.NoError(t, err)
			assert.Equal(t, 1.0, corr.F, "%s at %g", name, th)
			assert.Equal(t, 0.0, corr.U, "%s at %g", name, th)
		}
	}
}

func TestNodalFactorsPositive(t *testing.T) {
	// Sweep one full nodal cycle (18.61 years) in weekly steps; every
	// amplitude factor must stay strictly positive.
	cat := constituent.Catalog()
	const step = 7 * 24.0
	for th := 0.0; th < 18.61*365.25*24; th += step {
		set, err := NodalSet(cat, th)
		require.NoError(t, err)
		for i, corr := range set {
			assert.Greater(t, corr.F, 0.0, "%s at %g", cat[i].Name, th)
		}
	}
}

func TestM2FactorAveragesToUnity(t *testing.T) {
	// The node-cosine terms average out over a full nodal cycle, so the mean
	// M2 factor sits near its constant term.
	m2, _ := constituent.Lookup("M2")
	sum, n := 0.0, 0
	for th := 0.0; th < 18.61*365.25*24; th += 24 {
		corr, err := NodalCorrection(m2, th)
		require.NoError(t, err)
		sum += corr.F
		n++
	}
	assert.InDelta(t, 1.0, sum/float64(n), 0.01)
}

func TestCompoundCorrections(t *testing.T) {
	m2, _ := constituent.Lookup("M2")
	m4, _ := constituent.Lookup("M4")
	m6, _ := constituent.Lookup("M6")
	msf, _ := constituent.Lookup("MSF")

	for _, th := range []float64{1.0e5, 6.6e5, 1.2e6} {
		cm2, err := NodalCorrection(m2, th)
		require.NoError(t, err)

		cm4, err := NodalCorrection(m4, th)
		require.NoError(t, err)
		assert.InDelta(t, cm2.F*cm2.F, cm4.F, 1e-12)
		assert.InDelta(t, 2*cm2.U, cm4.U, 1e-12)

		cm6, err := NodalCorrection(m6, th)
		require.NoError(t, err)
		assert.InDelta(t, cm2.F*cm2.F*cm2.F, cm6.F, 1e-12)
		assert.InDelta(t, 3*cm2.U, cm6.U, 1e-12)

		// MSF subtracts the M2 phase correction but still multiplies the
		// amplitude factors.
		cmsf, err := NodalCorrection(msf, th)
		require.NoError(t, err)
		assert.InDelta(t, cm2.F, cmsf.F, 1e-12)
		assert.InDelta(t, -cm2.U, cmsf.U, 1e-12)
	}
}

func TestNodalSetMatchesSingle(t *testing.T) {
	cat := constituent.Catalog()
	const th = 4.2e5
	set, err := NodalSet(cat, th)
	require.NoError(t, err)
	for i, c := range cat {
		single, err := NodalCorrection(c, th)
		require.NoError(t, err)
		assert.Equal(t, single, set[i], c.Name)
	}
}

func TestNodalCorrectionRangeError(t *testing.T) {
	m2, _ := constituent.Lookup("M2")
	_, err := NodalCorrection(m2, MaxHours+24)
	assert.Error(t, err)
	_, err = NodalSet(constituent.Catalog(), -(MaxHours + 24))
	assert.Error(t, err)
}
