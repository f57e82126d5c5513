package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lnesto74/hyperspace/geometry"
)

func square(minX, minZ, maxX, maxZ float64) geometry.Polygon {
	return geometry.Polygon{
		{X: minX, Z: minZ},
		{X: maxX, Z: minZ},
		{X: maxX, Z: maxZ},
		{X: minX, Z: maxZ},
	}
}

func TestContains(t *testing.T) {
	sq := square(0, 0, 10, 10)

	cases := []struct {
		name string
		p    geometry.Point
		want bool
	}{
		{"center", geometry.Point{X: 5, Z: 5}, true},
		{"outside right", geometry.Point{X: 11, Z: 5}, false},
		{"outside above", geometry.Point{X: 5, Z: 11}, false},
		{"near origin inside", geometry.Point{X: 0.1, Z: 0.1}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, geometry.Contains(sq, c.p))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, geometry.Valid(square(0, 0, 1, 1)))
	assert.False(t, geometry.Valid(geometry.Polygon{{X: 0, Z: 0}, {X: 1, Z: 1}}))
	assert.False(t, geometry.Valid(geometry.Polygon{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 2, Z: 0}}))
}

func TestBoundingBox(t *testing.T) {
	b := geometry.BoundingBox(square(1, 2, 9, 8))
	assert.Equal(t, geometry.Bounds{MinX: 1, MaxX: 9, MinZ: 2, MaxZ: 8}, b)
}

func TestBufferContainsOriginalInterior(t *testing.T) {
	sq := square(0, 0, 10, 10)
	buf, err := geometry.Buffer(sq, 1.0)
	require.NoError(t, err)
	require.True(t, geometry.Valid(buf))

	// Every point of the original square, including its corners and
	// edges, must lie inside the buffered polygon.
	for _, p := range []geometry.Point{{X: 0, Z: 0}, {X: 10, Z: 10}, {X: 5, Z: 5}, {X: 0, Z: 5}} {
		assert.True(t, geometry.Contains(buf, p), "expected buffered polygon to contain %v", p)
	}

	// A point just outside by less than the buffer distance must also be
	// contained (the buffer's whole point is to expand the forbidden
	// zone by that distance).
	assert.True(t, geometry.Contains(buf, geometry.Point{X: -0.5, Z: 5}))
	// A point far beyond the buffer must not be contained.
	assert.False(t, geometry.Contains(buf, geometry.Point{X: -5, Z: 5}))
}

func TestBufferRejectsDegenerate(t *testing.T) {
	_, err := geometry.Buffer(geometry.Polygon{{X: 0, Z: 0}, {X: 1, Z: 1}}, 1.0)
	assert.ErrorIs(t, err, geometry.ErrDegeneratePolygon)

	_, err = geometry.Buffer(square(0, 0, 1, 1), -1.0)
	assert.ErrorIs(t, err, geometry.ErrNegativeDistance)
}

func TestBufferZeroDistanceIsCopy(t *testing.T) {
	sq := square(0, 0, 10, 10)
	buf, err := geometry.Buffer(sq, 0)
	require.NoError(t, err)
	assert.Equal(t, sq, buf)
}

func TestUnion(t *testing.T) {
	u := geometry.Union([]geometry.Polygon{
		square(0, 0, 2, 2),
		square(5, 5, 7, 7),
		{{X: 0, Z: 0}, {X: 1, Z: 1}}, // degenerate, skipped
	})
	assert.False(t, u.Empty())
	assert.True(t, u.Contains(geometry.Point{X: 1, Z: 1}))
	assert.True(t, u.Contains(geometry.Point{X: 6, Z: 6}))
	assert.False(t, u.Contains(geometry.Point{X: 3, Z: 3}))

	empty := geometry.Union(nil)
	assert.True(t, empty.Empty())
	assert.False(t, empty.Contains(geometry.Point{X: 0, Z: 0}))
}

func TestBufferRoundTripDistance(t *testing.T) {
	// For a convex polygon, a point exactly `distance` beyond an edge's
	// midpoint, along the outward normal, should be (approximately) on
	// the buffered boundary, i.e. inside the buffer but not much further.
	sq := square(0, 0, 10, 10)
	d := 2.0
	buf, err := geometry.Buffer(sq, d)
	require.NoError(t, err)

	justInside := geometry.Point{X: 5, Z: -d + 0.01}
	justOutside := geometry.Point{X: 5, Z: -d - 0.5}
	assert.True(t, geometry.Contains(buf, justInside))
	assert.False(t, geometry.Contains(buf, justOutside))
}
