package gallery

import (
	"github.com/artgallery-go/gallery/length"
	"github.com/artgallery-go/gallery/r2"
	"github.com/artgallery-go/gallery/rat"
)

// Polygon wraps a Ring with the additional invariant that its signed area
// is nonzero. Orientation may be CW or CCW; callers normalize where the
// spec requires a particular orientation (e.g. the stitched polygon must
// end up CCW).
type Polygon struct {
	ring Ring
}

// NewPolygon validates and wraps ring as a Polygon.
func NewPolygon(ring Ring) (Polygon, error) {
	if ring.Len() < 3 {
		return Polygon{}, wrap("polygon", ErrTooFewPoints, "")
	}
	if rat.IsZero(ring.SignedArea()) {
		return Polygon{}, wrap("polygon", ErrDegenerate, "")
	}
	return Polygon{ring: ring}, nil
}

// PolygonFromPoints is a convenience constructor combining NewRing and
// NewPolygon.
func PolygonFromPoints(pts []r2.Point) (Polygon, error) {
	ring, err := NewRing(pts)
	if err != nil {
		return Polygon{}, err
	}
	return NewPolygon(ring)
}

// Ring returns the polygon's underlying ring.
func (p Polygon) Ring() Ring { return p.ring }

// Points returns the polygon's vertices in ring order.
func (p Polygon) Points() []r2.Point { return p.ring.Points() }

// Edges returns the polygon's boundary edges.
func (p Polygon) Edges() []r2.Segment { return p.ring.Edges() }

// Bound returns the polygon's axis-aligned bounding box.
func (p Polygon) Bound() r2.Rect {
	return r2.RectFromPoints(p.ring.Points()...)
}

// SignedArea returns the polygon's exact signed area.
func (p Polygon) SignedArea() rat.Scalar { return p.ring.SignedArea() }

// Area returns the polygon's exact unsigned area.
func (p Polygon) Area() rat.Scalar {
	a := p.ring.SignedArea()
	if rat.Sign(a) < 0 {
		return rat.Neg(a)
	}
	return a
}

// IsCCW reports whether the polygon winds counter-clockwise.
func (p Polygon) IsCCW() bool { return p.ring.IsCCW() }

// CCW returns an equivalent polygon guaranteed to wind counter-clockwise.
func (p Polygon) CCW() Polygon {
	if p.IsCCW() {
		return p
	}
	return Polygon{ring: p.ring.Reverse()}
}

// CW returns an equivalent polygon guaranteed to wind clockwise.
func (p Polygon) CW() Polygon {
	if !p.IsCCW() {
		return p
	}
	return Polygon{ring: p.ring.Reverse()}
}

// IsConvex reports whether the polygon's ring is convex.
func (p Polygon) IsConvex() bool { return p.ring.IsConvex() }

// Perimeter returns the polygon's boundary length, for reporting only (each
// edge's exact squared length is converted via package length, the sole
// place a square root is taken).
func (p Polygon) Perimeter() length.Length {
	var sum length.Length
	for _, e := range p.ring.Edges() {
		sum += length.FromSquared(e.Length2())
	}
	return sum
}
