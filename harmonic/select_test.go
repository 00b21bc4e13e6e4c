package harmonic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedNames(t *testing.T, span float64, requested []string, rmin float64, autoDrop bool) []string {
	t.Helper()
	set, err := selectConstituents(span, requested, rmin, autoDrop)
	require.NoError(t, err)
	out := make([]string, len(set))
	for i, c := range set {
		out[i] = c.Name
	}
	return out
}

func TestSelectRayleighDropsLowerPriority(t *testing.T) {
	// Over 30 days K2 is unresolvable against S2 (df ~ 0.000228 cph) and P1
	// against K1; exactly the lower-priority member of each pair goes.
	const span = 30 * 24.0

	got := selectedNames(t, span, []string{"M2", "S2", "K2"}, 1, true)
	assert.Equal(t, []string{"M2", "S2"}, got)

	got = selectedNames(t, span, []string{"K1", "P1"}, 1, true)
	assert.Equal(t, []string{"K1"}, got)

	// A year resolves both pairs.
	got = selectedNames(t, 365*24, []string{"M2", "S2", "K2"}, 1, true)
	assert.Equal(t, []string{"M2", "S2", "K2"}, got)
}

func TestSelectConflictErrorWithoutAutoDrop(t *testing.T) {
	_, err := selectConstituents(30*24, []string{"M2", "S2", "K2"}, 1, false)
	require.Error(t, err)
	var ce *ConstituentConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "S2", ce.Kept)
	assert.Equal(t, "K2", ce.Dropped)
}

func TestSelectAutomaticIsDeterministic(t *testing.T) {
	a := selectedNames(t, 45*24, nil, 1, true)
	require.NotEmpty(t, a)
	for i := 0; i < 5; i++ {
		b := selectedNames(t, 45*24, nil, 1, true)
		assert.Equal(t, a, b)
	}
}

func TestSelectResultInCanonicalOrder(t *testing.T) {
	set, err := selectConstituents(90*24, nil, 1, true)
	require.NoError(t, err)
	for i := 1; i < len(set); i++ {
		assert.Less(t, set[i-1].Frequency(), set[i].Frequency())
	}
}

func TestSelectInvalidSpan(t *testing.T) {
	for _, span := range []float64{0, -24} {
		_, err := selectConstituents(span, nil, 1, true)
		require.Error(t, err)
		var se *InvalidTimeSpanError
		assert.True(t, errors.As(err, &se))
	}
}

func TestSelectUnknownName(t *testing.T) {
	_, err := selectConstituents(30*24, []string{"M2", "Z9"}, 1, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Z9")
}

func TestSelectDeduplicatesRequest(t *testing.T) {
	got := selectedNames(t, 30*24, []string{"M2", "m2", "M2"}, 1, true)
	assert.Equal(t, []string{"M2"}, got)
}

func TestSelectLongerRecordKeepsMore(t *testing.T) {
	short := selectedNames(t, 15*24, nil, 1, true)
	long := selectedNames(t, 370*24, nil, 1, true)
	assert.Greater(t, len(long), len(short))
}
