package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquirect_OriginMapsToZero(t *testing.T) {
	e := NewEquirect(4.3572, 50.8477)
	p := e.Project(4.3572, 50.8477)
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 0, p.Y, 1e-6)
}

func TestEquirect_OneDegreeLatIsRoughly111km(t *testing.T) {
	e := NewEquirect(0, 50)
	p := e.Project(0, 51)
	assert.InDelta(t, 111000, p.Y, 2000)
	assert.InDelta(t, 0, p.X, 1e-6)
}

func TestHaversine_ZeroForSamePoint(t *testing.T) {
	assert.InDelta(t, 0, Haversine(4.35, 50.84, 4.35, 50.84), 1e-9)
}

func TestHaversine_Positive(t *testing.T) {
	d := Haversine(4.35, 50.84, 4.40, 50.84)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 10000.0)
}
