package sequence_test

import (
	"testing"

	"github.com/katalvlaran/syracuse/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResultMap_NilIsEmpty verifies the nil map behaves as an empty map.
func TestResultMap_NilIsEmpty(t *testing.T) {
	var m *sequence.ResultMap

	assert.Zero(t, m.Len())
	_, ok := m.Get(sequence.Terms{1})
	assert.False(t, ok)
	assert.Empty(t, m.Keys())
	assert.Equal(t, "map[]", m.String())
}

// TestResultMap_GetIsStructural verifies lookups compare by value, not slice
// identity, and that missing keys are reported.
func TestResultMap_GetIsStructural(t *testing.T) {
	seq, err := sequence.New(collatz, sequence.Terms{collatzSeed6})
	require.NoError(t, err)
	m, err := seq.LoadNUntil(3, targetOne, 1)
	require.NoError(t, err)

	got, ok := m.Get(sequence.Terms{7})
	require.True(t, ok)
	assert.Equal(t, sequence.Result{CycleLength: collatzSteps7, MaxTerm: collatzMax7}, got)

	_, ok = m.Get(sequence.Terms{9})
	assert.False(t, ok)
	_, ok = m.Get(sequence.Terms{7, 0})
	assert.False(t, ok)
}

// TestResultMap_KeysAreCopies verifies callers cannot mutate stored keys.
func TestResultMap_KeysAreCopies(t *testing.T) {
	seq, err := sequence.New(collatz, sequence.Terms{collatzSeed6})
	require.NoError(t, err)
	m, err := seq.LoadNUntil(2, targetOne, 1)
	require.NoError(t, err)

	keys := m.Keys()
	keys[0][0] = 100
	_, ok := m.Get(sequence.Terms{collatzSeed6})
	assert.True(t, ok)
}

// TestResultMap_AllStopsEarly verifies the iterator honours a false yield.
func TestResultMap_AllStopsEarly(t *testing.T) {
	seq, err := sequence.New(collatz, sequence.Terms{1})
	require.NoError(t, err)
	m, err := seq.LoadNUntil(10, targetOne, 1)
	require.NoError(t, err)

	seen := 0
	for range m.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

// TestResultMap_String checks the rendering used by the CLI and examples.
func TestResultMap_String(t *testing.T) {
	seq, err := sequence.New(collatz, sequence.Terms{collatzSeed6})
	require.NoError(t, err)
	m, err := seq.LoadNUntil(3, targetOne, 1)
	require.NoError(t, err)

	assert.Equal(t, "map[[6]:{8 16} [7]:{16 52} [8]:{3 8}]", m.String())
}
