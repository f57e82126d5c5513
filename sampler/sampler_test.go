package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lnesto74/hyperspace/geometry"
	"github.com/lnesto74/hyperspace/sampler"
)

func square(minX, minZ, maxX, maxZ float64) geometry.Polygon {
	return geometry.Polygon{
		{X: minX, Z: minZ},
		{X: maxX, Z: minZ},
		{X: maxX, Z: maxZ},
		{X: minX, Z: maxZ},
	}
}

func TestSampleDeterminism(t *testing.T) {
	roi := square(0, 0, 10, 10)
	a, err := sampler.Sample(roi, nil, 1.0, 42)
	require.NoError(t, err)
	b, err := sampler.Sample(roi, nil, 1.0, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestSampleDifferentSeedDiffers(t *testing.T) {
	roi := square(0, 0, 10, 10)
	a, err := sampler.Sample(roi, nil, 1.0, 1)
	require.NoError(t, err)
	b, err := sampler.Sample(roi, nil, 1.0, 2)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSampleExcludesObstaclesAndOutsideROI(t *testing.T) {
	roi := square(0, 0, 10, 10)
	obstacles := []geometry.Polygon{square(4, 4, 6, 6)}
	pts, err := sampler.Sample(roi, obstacles, 0.5, 7)
	require.NoError(t, err)
	require.NotEmpty(t, pts)

	for _, p := range pts {
		assert.True(t, geometry.Contains(roi, geometry.Point{X: p.X, Z: p.Z}))
		assert.False(t, geometry.Contains(obstacles[0], geometry.Point{X: p.X, Z: p.Z}))
	}
}

func TestSampleIndexesAreDenseAndOrdered(t *testing.T) {
	roi := square(0, 0, 5, 5)
	pts, err := sampler.Sample(roi, nil, 1.0, 42)
	require.NoError(t, err)
	for i, p := range pts {
		assert.Equal(t, i, p.Index)
	}
}

func TestSampleDegenerateROI(t *testing.T) {
	_, err := sampler.Sample(geometry.Polygon{{X: 0, Z: 0}, {X: 1, Z: 1}}, nil, 1.0, 42)
	assert.ErrorIs(t, err, sampler.ErrDegenerateROI)
}

func TestMarkCritical(t *testing.T) {
	roi := square(0, 0, 10, 10)
	pts, err := sampler.Sample(roi, nil, 1.0, 42)
	require.NoError(t, err)

	critical := square(0, 0, 5, 5)
	sampler.MarkCritical(pts, critical)

	anyCritical := false
	for _, p := range pts {
		if p.Critical {
			anyCritical = true
			assert.True(t, geometry.Contains(critical, geometry.Point{X: p.X, Z: p.Z}))
		}
	}
	assert.True(t, anyCritical)
}

func TestMarkCriticalNilPolygonNoOp(t *testing.T) {
	roi := square(0, 0, 5, 5)
	pts, err := sampler.Sample(roi, nil, 1.0, 42)
	require.NoError(t, err)
	sampler.MarkCritical(pts, nil)
	for _, p := range pts {
		assert.False(t, p.Critical)
	}
}
