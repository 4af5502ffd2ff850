package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectClamped_Midpoint(t *testing.T) {
	closest, dist := ProjectClamped(Point{X: 1, Y: 1}, Point{X: 0, Y: 0}, Point{X: 2, Y: 0})
	assert.InDelta(t, 1.0, closest.X, 1e-9)
	assert.InDelta(t, 0.0, closest.Y, 1e-9)
	assert.InDelta(t, 1.0, dist, 1e-9)
}

func TestProjectClamped_ClampsToEndpoints(t *testing.T) {
	closest, dist := ProjectClamped(Point{X: -5, Y: 0}, Point{X: 0, Y: 0}, Point{X: 2, Y: 0})
	assert.Equal(t, Point{X: 0, Y: 0}, closest)
	assert.InDelta(t, 5.0, dist, 1e-9)

	closest, dist = ProjectClamped(Point{X: 10, Y: 0}, Point{X: 0, Y: 0}, Point{X: 2, Y: 0})
	assert.Equal(t, Point{X: 2, Y: 0}, closest)
	assert.InDelta(t, 8.0, dist, 1e-9)
}

func TestProjectClamped_DegenerateSegment(t *testing.T) {
	closest, dist := ProjectClamped(Point{X: 3, Y: 4}, Point{X: 0, Y: 0}, Point{X: 0, Y: 0})
	require.Equal(t, Point{X: 0, Y: 0}, closest)
	assert.InDelta(t, 5.0, dist, 1e-9)
}

func TestDist_Dist2(t *testing.T) {
	p, q := Point{X: 0, Y: 0}, Point{X: 3, Y: 4}
	assert.InDelta(t, 5.0, Dist(p, q), 1e-9)
	assert.InDelta(t, 25.0, Dist2(p, q), 1e-9)
}
