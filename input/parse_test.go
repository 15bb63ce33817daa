package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"michelson/entity"
)

func TestParsePairs(t *testing.T) {
	data := `0 54.410
50 54.4275

100 54.4435
`
	s, err := ParsePairs(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{0, 50, 100}, s.Fringes())
	assert.Equal(t, []float64{54.410, 54.4275, 54.4435}, s.Displacements())
}

func TestParsePairs_FieldCount(t *testing.T) {
	_, err := ParsePairs(strings.NewReader("0 54.410\n50\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParsePairs_InvalidNumber(t *testing.T) {
	_, err := ParsePairs(strings.NewReader("0 54.410\nfifty 54.42\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid fringe count")
}

func TestParsePairs_TooFewPoints(t *testing.T) {
	_, err := ParsePairs(strings.NewReader("0 54.410\n"))
	require.ErrorIs(t, err, entity.ErrInsufficientData)
}

func TestParseColumns(t *testing.T) {
	data := `0 50 100 150
54.410 54.4275 54.4435 54.4591
`
	s, err := ParseColumns(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []float64{0, 50, 100, 150}, s.Fringes())
	assert.Equal(t, 54.4591, s.Displacement(3))
}

func TestParseColumns_LengthMismatch(t *testing.T) {
	data := `0 50 100
54.410 54.4275
`
	_, err := ParseColumns(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "differ")
}

func TestParseColumns_MissingLine(t *testing.T) {
	_, err := ParseColumns(strings.NewReader("0 50 100\n"))
	require.Error(t, err)
}

func TestParseColumns_InvalidNumber(t *testing.T) {
	data := `0 50 100
54.410 nan-ish 54.4435
`
	_, err := ParseColumns(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid displacement")
}
