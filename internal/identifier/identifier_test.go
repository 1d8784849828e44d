package identifier

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioPlaintext = "GRN 12345,12,3,45,SELANGOR.PETALING,SHAH ALAM,0xABCDEF0123456789"

// zeroReader yields an endless stream of zero bytes, so every salted attempt
// produces the same candidate and the random fallback always yields "000000".
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func zeroSaltCandidate(plaintext string) string {
	return DeriveDeterministic(plaintext + ":" + strings.Repeat("0", 2*saltSize))
}

func TestGenerate_FormatInvariant(t *testing.T) {
	g := NewGenerator()
	for range 200 {
		id, err := g.Generate(scenarioPlaintext, IDSet{})
		require.NoError(t, err)
		assert.True(t, IsValid(id), "invalid id %q", id)
		assert.Equal(t, strings.ToUpper(id), id)
	}
}

func TestGenerate_SequentialUniqueness(t *testing.T) {
	g := NewGenerator()
	existing := IDSet{}

	const n = 2000
	for range n {
		id, err := g.Generate(scenarioPlaintext, existing)
		require.NoError(t, err)
		require.False(t, existing.Has(id), "duplicate id %s", id)
		existing.Add(id)
	}
	assert.Len(t, existing, n)
}

func TestGenerate_DoesNotMutateExisting(t *testing.T) {
	existing := NewIDSet("A1B2C3")
	_, err := NewGenerator().Generate(scenarioPlaintext, existing)
	require.NoError(t, err)
	assert.Len(t, existing, 1)
}

func TestGenerate_SaltedCandidate(t *testing.T) {
	g := NewGeneratorWithSource(zeroReader{})

	id, err := g.Generate(scenarioPlaintext, IDSet{})
	require.NoError(t, err)
	assert.Equal(t, zeroSaltCandidate(scenarioPlaintext), id)
}

func TestGenerate_FallsBackToRandom(t *testing.T) {
	g := NewGeneratorWithSource(zeroReader{})
	existing := NewIDSet(zeroSaltCandidate(scenarioPlaintext))

	id, err := g.Generate(scenarioPlaintext, existing)
	require.NoError(t, err)
	assert.Equal(t, "000000", id)
}

func TestGenerate_ExhaustedKeyspace(t *testing.T) {
	g := NewGeneratorWithSource(zeroReader{})
	existing := NewIDSet(zeroSaltCandidate(scenarioPlaintext), "000000")

	id, err := g.Generate(scenarioPlaintext, existing)
	assert.Empty(t, id)
	assert.ErrorIs(t, err, ErrExhaustedKeyspace)
}

func TestGenerate_RandomSourceError(t *testing.T) {
	readErr := errors.New("entropy exhausted")
	g := NewGeneratorWithSource(iotest.ErrReader(readErr))

	_, err := g.Generate(scenarioPlaintext, IDSet{})
	assert.ErrorIs(t, err, readErr)
}

func TestDeriveDeterministic(t *testing.T) {
	a := DeriveDeterministic(scenarioPlaintext)
	b := DeriveDeterministic(scenarioPlaintext)

	assert.Equal(t, a, b)
	assert.Equal(t, "6EEECD", a)
	assert.Equal(t, "E3B0C4", DeriveDeterministic(""))
	assert.NotEqual(t, a, DeriveDeterministic(scenarioPlaintext+" "))
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"A1B2C3", true},
		{"a1b2c3", true},
		{"000000", true},
		{"FFFFFF", true},
		{"A1B2C", false},
		{"A1B2C3D", false},
		{"G1B2C3", false},
		{"", false},
		{" A1B2C", false},
		{"0xA1B2", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	id, err := Normalize("  a1b2c3 ")
	require.NoError(t, err)
	assert.Equal(t, "A1B2C3", id)

	_, err = Normalize("xyz")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestToDecimal(t *testing.T) {
	assert.Equal(t, "10597059", ToDecimal("A1B2C3"))
	assert.Equal(t, "16777215", ToDecimal("FFFFFF"))
	assert.Equal(t, "1", ToDecimal("000001"))
	assert.Equal(t, "0", ToDecimal("000000"))
}

func TestToDecimal_Invertible(t *testing.T) {
	g := NewGenerator()
	for range 500 {
		id, err := g.Generate(scenarioPlaintext, IDSet{})
		require.NoError(t, err)

		v, err := strconv.ParseUint(ToDecimal(id), 10, 64)
		require.NoError(t, err)
		assert.Equal(t, id, fmt.Sprintf("%06X", v))

		back, err := FromDecimal(ToDecimal(id))
		require.NoError(t, err)
		assert.Equal(t, id, back)
	}
}

func TestFromDecimal_Invalid(t *testing.T) {
	for _, in := range []string{"", "-1", "16777216", "abc", "1.5"} {
		_, err := FromDecimal(in)
		assert.ErrorIs(t, err, ErrInvalidIdentifier, in)
	}
}

func TestNewIDSet_UpperCases(t *testing.T) {
	set := NewIDSet("a1b2c3", "FFFFFF")
	assert.True(t, set.Has("A1B2C3"))
	assert.True(t, set.Has("FFFFFF"))
	assert.False(t, set.Has("a1b2c3"))
}
