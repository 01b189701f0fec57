package gallery

import (
	"reflect"
	"testing"

	"github.com/artgallery-go/gallery/r2"
	"github.com/stretchr/testify/require"
)

func TestGuardsUnitSquareSeesAllFourVertices(t *testing.T) {
	// S1: 1 convex component, 1 guard, sees all 4 vertices.
	region, err := NewRegion(pts(t, [][2]int64{{0, 0}, {4, 0}, {4, 4}, {0, 4}}), nil)
	require.NoError(t, err)

	guards, err := region.Guards()
	require.NoError(t, err)
	require.Len(t, guards, 1)

	visibility, err := region.Visibility()
	require.NoError(t, err)
	stitched, err := region.Points()
	require.NoError(t, err)

	for _, seen := range visibility {
		require.Len(t, seen, stitched.Len())
	}
}

func TestGuardsLShapePlacesGuardAtReflexVertex(t *testing.T) {
	// S2: the L-shape needs exactly 1 guard, at the reflex vertex (2,2).
	region, err := NewRegion(pts(t, [][2]int64{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}), nil)
	require.NoError(t, err)

	guards, err := region.Guards()
	require.NoError(t, err)
	require.Len(t, guards, 1)

	reflex := pt(t, 2, 2)
	for _, g := range guards {
		require.True(t, g.Position.Equal(reflex))
	}
}

func TestGuardsCoverEveryStitchedVertex(t *testing.T) {
	outer := pts(t, [][2]int64{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	hole := [][]r2.Point{pts(t, [][2]int64{{2, 2}, {4, 2}, {4, 4}, {2, 4}})}

	region, err := NewRegion(outer, hole)
	require.NoError(t, err)

	stitched, err := region.Points()
	require.NoError(t, err)
	visibility, err := region.Visibility()
	require.NoError(t, err)

	covered := make(map[string]bool)
	for _, seen := range visibility {
		for _, p := range seen {
			covered[pointKey(p)] = true
		}
	}
	for _, v := range stitched.Points() {
		require.True(t, covered[pointKey(v)], "vertex %s not seen by any guard", v)
	}
}

func TestGuardsAreMemoizedAcrossRepeatedCalls(t *testing.T) {
	region, err := NewRegion(pts(t, [][2]int64{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}), nil)
	require.NoError(t, err)

	g1, err := region.Guards()
	require.NoError(t, err)
	g2, err := region.Guards()
	require.NoError(t, err)
	require.Equal(t, reflect.ValueOf(g1).Pointer(), reflect.ValueOf(g2).Pointer())
}
