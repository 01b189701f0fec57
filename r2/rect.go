package r2

import (
	"fmt"

	"github.com/artgallery-go/gallery/r1"
)

// Rect is an axis-aligned bounding rectangle, represented as independent
// intervals on each axis.
type Rect struct {
	X, Y r1.Interval
}

// RectFromPoints returns the smallest Rect containing every given point.
// Panics if called with no points.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		panic("r2: RectFromPoints needs at least one point")
	}
	x := r1.FromPoint(pts[0].X)
	y := r1.FromPoint(pts[0].Y)
	for _, p := range pts[1:] {
		x = x.Union(r1.FromPoint(p.X))
		y = y.Union(r1.FromPoint(p.Y))
	}
	return Rect{X: x, Y: y}
}

// Union returns the smallest Rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{X: r.X.Union(o.X), Y: r.Y.Union(o.Y)}
}

// Contains reports whether r contains p, boundary included.
func (r Rect) Contains(p Point) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// Intersects reports whether r and o share at least one point.
func (r Rect) Intersects(o Rect) bool {
	return r.X.Intersects(o.X) && r.Y.Intersects(o.Y)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%s, %s}", r.X, r.Y)
}
