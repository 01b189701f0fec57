package gallery

import (
	"testing"

	"github.com/artgallery-go/gallery/r2"
	"github.com/artgallery-go/gallery/rat"
)

func pt(t testing.TB, x, y int64) r2.Point {
	t.Helper()
	return r2.New(rat.FromInt64(x), rat.FromInt64(y))
}

func pts(t testing.TB, coords [][2]int64) []r2.Point {
	t.Helper()
	out := make([]r2.Point, len(coords))
	for i, c := range coords {
		out[i] = pt(t, c[0], c[1])
	}
	return out
}
