package parameters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, 0.5, p.FringeReadingUncertainty)
	assert.Equal(t, 1.05, p.BacklashThresholdRatio)
	assert.Equal(t, 41.0, p.PathLengthCM)
	assert.Equal(t, 0.0, p.DeviationCM)
	assert.True(t, p.CorrectBacklash)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	data := []byte("deviation_cm: 2.5\ncorrect_backlash: false\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.5, p.DeviationCM)
	assert.False(t, p.CorrectBacklash)
	// Unset fields keep their defaults.
	assert.Equal(t, 41.0, p.PathLengthCM)
	assert.Equal(t, 0.5, p.FringeReadingUncertainty)
	assert.Equal(t, 1.05, p.BacklashThresholdRatio)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
