package sequence_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/syracuse/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTerms_Shift verifies the uniform elementwise increment and wraparound.
func TestTerms_Shift(t *testing.T) {
	base := sequence.Terms{0, -5, 10}

	assert.Equal(t, sequence.Terms{3, -2, 13}, base.Shift(3))
	assert.Equal(t, sequence.Terms{0, -5, 10}, base, "Shift must not mutate the receiver")
	assert.Equal(t, sequence.Terms{math.MinInt64}, sequence.Terms{math.MaxInt64}.Shift(1))
}

// TestTerms_Compare verifies lexicographic ordering with prefix-first.
func TestTerms_Compare(t *testing.T) {
	cases := []struct {
		a, b sequence.Terms
		want int
	}{
		{sequence.Terms{1, 2}, sequence.Terms{1, 2}, 0},
		{sequence.Terms{1, 2}, sequence.Terms{1, 3}, -1},
		{sequence.Terms{2}, sequence.Terms{1, 9}, 1},
		{sequence.Terms{1}, sequence.Terms{1, 0}, -1},
		{nil, sequence.Terms{}, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.a.Compare(c.b), "%v vs %v", c.a, c.b)
	}
}

// TestTerms_CloneAndString checks the small helpers.
func TestTerms_CloneAndString(t *testing.T) {
	assert.Nil(t, sequence.Terms(nil).Clone())
	assert.Equal(t, "[]", sequence.Terms{}.String())
	assert.Equal(t, "[0 -10 7]", sequence.Terms{0, -10, 7}.String())
	assert.True(t, sequence.Terms{4, 5}.Equal(sequence.Terms{4, 5}))
	assert.False(t, sequence.Terms{4, 5}.Equal(sequence.Terms{5, 4}))
}

// TestParseMode verifies name lookup and the unknown-mode error.
func TestParseMode(t *testing.T) {
	m, err := sequence.ParseMode("Recursive")
	require.NoError(t, err)
	assert.Equal(t, sequence.Recursive, m)

	m, err = sequence.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, sequence.Rolling, m)

	_, err = sequence.ParseMode("memo")
	assert.ErrorIs(t, err, sequence.ErrUnknownMode)
	assert.Equal(t, "mode(7)", sequence.Mode(7).String())
}

// TestOptions_PanicOnMeaninglessValues verifies option constructors fail fast.
func TestOptions_PanicOnMeaninglessValues(t *testing.T) {
	assert.Panics(t, func() { sequence.WithArity(0) })
	assert.Panics(t, func() { sequence.WithMode(sequence.Mode(9)) })
	assert.Panics(t, func() { sequence.WithMaxSteps(-1) })
	assert.Panics(t, func() { sequence.WithWorkers(0) })
	assert.Panics(t, func() { sequence.WithLogger(nil) })
	assert.Panics(t, func() { sequence.WithRecorder(nil) })
	assert.NotPanics(t, func() { sequence.WithMaxSteps(0) })
}
