package gallery

import (
	"testing"

	"github.com/artgallery-go/gallery/rat"
	"github.com/stretchr/testify/require"
)

func TestPolygonFromPointsRejectsDegenerate(t *testing.T) {
	_, err := PolygonFromPoints(pts(t, [][2]int64{{0, 0}, {1, 1}, {2, 2}}))
	require.Error(t, err)
}

func TestPolygonAreaIsUnsigned(t *testing.T) {
	ccw, err := PolygonFromPoints(pts(t, [][2]int64{{0, 0}, {4, 0}, {4, 4}, {0, 4}}))
	require.NoError(t, err)
	cw := ccw.CW()

	require.True(t, ccw.IsCCW())
	require.False(t, cw.IsCCW())
	require.True(t, rat.Equal(ccw.Area(), cw.Area()))
}

func TestPolygonPerimeter(t *testing.T) {
	p, err := PolygonFromPoints(pts(t, [][2]int64{{0, 0}, {4, 0}, {4, 4}, {0, 4}}))
	require.NoError(t, err)
	require.InDelta(t, 16.0, float64(p.Perimeter()), 1e-9)
}

func TestPolygonCCWAndCWRoundTrip(t *testing.T) {
	p, err := PolygonFromPoints(pts(t, [][2]int64{{0, 4}, {4, 4}, {4, 0}, {0, 0}}))
	require.NoError(t, err)
	require.False(t, p.IsCCW())
	require.True(t, p.CCW().IsCCW())
	require.True(t, p.CCW().CW().Ring().Equal(p.Ring()))
}
