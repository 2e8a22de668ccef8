package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMiles_SamePointIsZero(t *testing.T) {
	assert.Zero(t, DistanceMiles(40.7135, -74.007, 40.7135, -74.007))
}

func TestDistanceMiles_IsSymmetric(t *testing.T) {
	forward := DistanceMiles(40.7135, -74.007, 34.0522, -118.2437)
	backward := DistanceMiles(34.0522, -118.2437, 40.7135, -74.007)

	assert.InDelta(t, forward, backward, 1e-9)
}

func TestDistanceMiles_KnownPairs(t *testing.T) {
	// Financial District to Tribeca, a few blocks apart.
	short := DistanceMiles(40.7135, -74.007, 40.7174, -74.0048)
	assert.InDelta(t, 0.29, short, 0.05)

	// New York to Los Angeles.
	long := DistanceMiles(40.7128, -74.006, 34.0522, -118.2437)
	assert.InDelta(t, 2445, long, 15)
}

func TestDistanceMiles_GrowsWithSeparation(t *testing.T) {
	near := DistanceMiles(40.7135, -74.007, 40.72, -74.0)
	far := DistanceMiles(40.7135, -74.007, 41.0, -73.5)

	assert.Less(t, near, far)
}
