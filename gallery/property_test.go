package gallery

import (
	"testing"

	"github.com/artgallery-go/gallery/r2"
	"github.com/stretchr/testify/require"
)

// TestReversingOuterInputOrderYieldsSameGuardCount exercises the property
// that the guard set a region computes does not depend on the input
// winding direction of the outer boundary: NewRegion normalizes a CW outer
// ring to CCW.
func TestReversingOuterInputOrderYieldsSameGuardCount(t *testing.T) {
	forward := pts(t, [][2]int64{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}})
	reversed := make([]r2.Point, len(forward))
	for i, p := range forward {
		reversed[len(forward)-1-i] = p
	}

	r1, err := NewRegion(forward, nil)
	require.NoError(t, err)
	r2v, err := NewRegion(reversed, nil)
	require.NoError(t, err)

	g1, err := r1.Guards()
	require.NoError(t, err)
	g2, err := r2v.Guards()
	require.NoError(t, err)

	require.Equal(t, len(g1), len(g2))

	positions := make(map[string]bool)
	for _, g := range g1 {
		positions[pointKey(g.Position)] = true
	}
	for _, g := range g2 {
		require.True(t, positions[pointKey(g.Position)])
	}
}

// TestRotatingOuterStartVertexYieldsCyclicallyEqualStitchedRing checks that
// rotating which vertex of the outer boundary is listed first in the input
// never changes the stitched polygon up to cyclic rotation.
func TestRotatingOuterStartVertexYieldsCyclicallyEqualStitchedRing(t *testing.T) {
	base := pts(t, [][2]int64{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	rotated := append(append([]r2.Point{}, base[2:]...), base[:2]...)

	r1, err := NewRegion(base, nil)
	require.NoError(t, err)
	r2v, err := NewRegion(rotated, nil)
	require.NoError(t, err)

	s1, err := r1.Points()
	require.NoError(t, err)
	s2, err := r2v.Points()
	require.NoError(t, err)

	require.True(t, s1.Equal(s2))
}
