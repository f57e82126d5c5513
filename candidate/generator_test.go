package candidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lnesto74/hyperspace/candidate"
	"github.com/lnesto74/hyperspace/geometry"
	"github.com/lnesto74/hyperspace/sensor"
)

func square(minX, minZ, maxX, maxZ float64) geometry.Polygon {
	return geometry.Polygon{
		{X: minX, Z: minZ},
		{X: maxX, Z: minZ},
		{X: maxX, Z: maxZ},
		{X: minX, Z: maxZ},
	}
}

func TestGenerateDomeSingleYaw(t *testing.T) {
	roi := square(0, 0, 10, 10)
	cands, err := candidate.Generate(roi, nil, 2.0, 0.5, sensor.Model{Dome: true, HFOVDeg: 360}, 30, 42)
	require.NoError(t, err)
	require.NotEmpty(t, cands)
	for _, c := range cands {
		assert.Equal(t, 0.0, c.YawDeg)
	}
}

func TestGeneratePartialFOVHonorsYawStep(t *testing.T) {
	roi := square(0, 0, 10, 10)
	model := sensor.Model{HFOVDeg: 90, VFOVDeg: 60, RangeM: 10}
	cands45, err := candidate.Generate(roi, nil, 2.0, 0.5, model, 45, 42)
	require.NoError(t, err)
	cands90, err := candidate.Generate(roi, nil, 2.0, 0.5, model, 90, 42)
	require.NoError(t, err)

	// 360/45 = 8 yaws, 360/90 = 4 yaws per position => 45-step run emits
	// exactly twice as many candidates per position.
	assert.Equal(t, len(cands90)*2, len(cands45))
}

func TestGeneratePartialFOVExceedsDomeCandidateCount(t *testing.T) {
	roi := square(0, 0, 10, 10)
	dome := sensor.Model{Dome: true, HFOVDeg: 360}
	partial := sensor.Model{HFOVDeg: 90, VFOVDeg: 60, RangeM: 10}

	domeC, err := candidate.Generate(roi, nil, 2.0, 0.5, dome, 30, 42)
	require.NoError(t, err)
	partialC, err := candidate.Generate(roi, nil, 2.0, 0.5, partial, 30, 42)
	require.NoError(t, err)

	assert.Greater(t, len(partialC), len(domeC))
}

func TestGenerateExcludesKeepoutZone(t *testing.T) {
	roi := square(0, 0, 20, 15)
	obstacles := []geometry.Polygon{
		square(5, 5, 8, 8),
		square(12, 7, 15, 10),
	}
	model := sensor.Model{Dome: true, HFOVDeg: 360}
	cands, err := candidate.Generate(roi, obstacles, 1.0, 0.5, model, 30, 42)
	require.NoError(t, err)
	require.NotEmpty(t, cands)

	buffered0, err := geometry.Buffer(obstacles[0], 0.5)
	require.NoError(t, err)
	buffered1, err := geometry.Buffer(obstacles[1], 0.5)
	require.NoError(t, err)

	for _, c := range cands {
		p := geometry.Point{X: c.X, Z: c.Z}
		assert.False(t, geometry.Contains(buffered0, p))
		assert.False(t, geometry.Contains(buffered1, p))
	}
}

func TestGenerateDegenerateROI(t *testing.T) {
	_, err := candidate.Generate(geometry.Polygon{{X: 0, Z: 0}, {X: 1, Z: 1}}, nil, 1.0, 0.5, sensor.Model{Dome: true}, 30, 42)
	assert.ErrorIs(t, err, candidate.ErrDegenerateROI)
}

func TestGenerateDenseIndices(t *testing.T) {
	roi := square(0, 0, 6, 6)
	cands, err := candidate.Generate(roi, nil, 2.0, 0.5, sensor.Model{Dome: true}, 30, 42)
	require.NoError(t, err)
	for i, c := range cands {
		assert.Equal(t, i, c.Index)
	}
}
