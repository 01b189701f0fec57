// Package r2 implements the planar geometric kernel: points, the
// orientation predicate, axis-aligned rectangles and the segment kernel.
// Every predicate here is computed over exact rational scalars (package
// rat) — never through float64 — so ties decide behavior deterministically.
package r2

import (
	"fmt"

	"github.com/artgallery-go/gallery/rat"
)

// Point is a value-typed pair of exact coordinates. Equality is
// componentwise; order is lexicographic by (X, Y).
type Point struct {
	X, Y rat.Scalar
}

// New returns the point (x, y).
func New(x, y rat.Scalar) Point {
	return Point{X: x, Y: y}
}

// FromStrings parses a pair of decimal or fractional strings into a Point,
// preserving their exact written precision.
func FromStrings(x, y string) (Point, error) {
	px, err := rat.Parse(x)
	if err != nil {
		return Point{}, fmt.Errorf("r2: invalid x coordinate: %w", err)
	}
	py, err := rat.Parse(y)
	if err != nil {
		return Point{}, fmt.Errorf("r2: invalid y coordinate: %w", err)
	}
	return Point{X: px, Y: py}, nil
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: rat.Add(p.X, q.X), Y: rat.Add(p.Y, q.Y)}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: rat.Sub(p.X, q.X), Y: rat.Sub(p.Y, q.Y)}
}

// Cross returns the scalar z-component of p × q (a 2D cross product).
func (p Point) Cross(q Point) rat.Scalar {
	return rat.Sub(rat.Mul(p.X, q.Y), rat.Mul(p.Y, q.X))
}

// Dot returns p · q.
func (p Point) Dot(q Point) rat.Scalar {
	return rat.Add(rat.Mul(p.X, q.X), rat.Mul(p.Y, q.Y))
}

// Equal reports whether p and q are the same exact point.
func (p Point) Equal(q Point) bool {
	return rat.Equal(p.X, q.X) && rat.Equal(p.Y, q.Y)
}

// Less reports whether p sorts before q in lexicographic (X, Y) order.
func (p Point) Less(q Point) bool {
	if !rat.Equal(p.X, q.X) {
		return rat.Less(p.X, q.X)
	}
	return rat.Less(p.Y, q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}
