package gallery

import (
	"testing"

	"github.com/artgallery-go/gallery/r2"
	"github.com/stretchr/testify/require"
)

func TestNewRegionNoHoles(t *testing.T) {
	r, err := NewRegion(pts(t, [][2]int64{{0, 0}, {4, 0}, {4, 4}, {0, 4}}), nil)
	require.NoError(t, err)
	require.True(t, r.Outer().IsCCW())
	require.Empty(t, r.Holes())
}

func TestNewRegionRejectsHoleVertexOnBoundary(t *testing.T) {
	// S5: the hole's bottom edge runs along y=1, inside the square, but its
	// left edge sits on x=0, the outer boundary.
	outer := pts(t, [][2]int64{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	hole := [][]r2.Point{pts(t, [][2]int64{{0, 1}, {1, 1}, {1, 2}, {0, 2}})}

	_, err := NewRegion(outer, hole)
	require.ErrorIs(t, err, ErrNotSimple)
}

func TestNewRegionRejectsHoleOutsideOuter(t *testing.T) {
	outer := pts(t, [][2]int64{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	hole := [][]r2.Point{pts(t, [][2]int64{{5, 5}, {6, 5}, {6, 6}, {5, 6}})}

	_, err := NewRegion(outer, hole)
	require.ErrorIs(t, err, ErrNotSimple)
}

func TestRegionContainsPointWithHole(t *testing.T) {
	outer := pts(t, [][2]int64{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	hole := [][]r2.Point{pts(t, [][2]int64{{2, 2}, {4, 2}, {4, 4}, {2, 4}})}

	r, err := NewRegion(outer, hole)
	require.NoError(t, err)

	require.True(t, r.ContainsPoint(pt(t, 1, 1), false))
	require.False(t, r.ContainsPoint(pt(t, 3, 3), false)) // inside the hole
	require.True(t, r.ContainsPoint(pt(t, 2, 2), true))   // hole boundary, inclusive
	require.False(t, r.ContainsPoint(pt(t, 2, 2), false))
	require.False(t, r.ContainsPoint(pt(t, 20, 20), true))
}
