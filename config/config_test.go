package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lnesto74/hyperspace/config"
)

func TestNewDefaults(t *testing.T) {
	s := config.New()
	assert.Equal(t, config.Everywhere, s.OverlapMode)
	assert.Equal(t, config.DefaultKRequired, s.KRequired)
	assert.Equal(t, config.DefaultSolverTimeLimit, s.SolverTimeLimit)
	assert.NoError(t, s.Validate())
}

func TestNewWithOptions(t *testing.T) {
	s := config.New(
		config.WithKRequired(3),
		config.WithOverlapMode(config.PercentTarget),
		config.WithSeed(7),
		config.WithSolverTimeLimit(2*time.Second),
	)
	assert.Equal(t, 3, s.KRequired)
	assert.Equal(t, config.PercentTarget, s.OverlapMode)
	assert.Equal(t, int64(7), s.Seed)
	assert.Equal(t, 2*time.Second, s.SolverTimeLimit)
}

func TestValidateRejectsBadSettings(t *testing.T) {
	s := config.New(config.WithKRequired(0))
	assert.ErrorIs(t, s.Validate(), config.ErrInvalidKRequired)

	s2 := config.New(config.WithSampleSpacing(0))
	assert.ErrorIs(t, s2.Validate(), config.ErrInvalidSpacing)
}

func TestParseOverlapMode(t *testing.T) {
	m, err := config.ParseOverlapMode("critical_only")
	require.NoError(t, err)
	assert.Equal(t, config.CriticalOnly, m)
	assert.Equal(t, "critical_only", m.String())

	_, err = config.ParseOverlapMode("bogus")
	assert.ErrorIs(t, err, config.ErrInvalidOverlapMode)
}

func TestLoadFileAndDecode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	content := `
roi_polygon:
  - {x: 0, z: 0}
  - {x: 20, z: 0}
  - {x: 20, z: 15}
  - {x: 0, z: 15}
obstacles:
  - [{x: 5, z: 5}, {x: 8, z: 5}, {x: 8, z: 8}, {x: 5, z: 8}]
model:
  hfov_deg: 360
  vfov_deg: 30
  range_m: 10
  dome_mode: true
settings:
  overlap_mode: everywhere
  k_required: 2
  seed: 42
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pf, err := config.LoadFile(path)
	require.NoError(t, err)

	roi, obstacles, critical, model, settings, err := pf.Decode()
	require.NoError(t, err)
	assert.Len(t, roi, 4)
	assert.Len(t, obstacles, 1)
	assert.Len(t, critical, 0)
	assert.True(t, model.Dome)
	assert.Equal(t, config.Everywhere, settings.OverlapMode)
	assert.Equal(t, 2, settings.KRequired)
	assert.Equal(t, int64(42), settings.Seed)
}
