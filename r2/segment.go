package r2

import "github.com/artgallery-go/gallery/rat"

// Segment is an unordered pair of distinct endpoints. Equality ignores
// direction: Segment{A, B} == Segment{B, A}.
type Segment struct {
	A, B Point
}

// NewSegment returns the segment {a, b}. Panics if a == b; a segment must
// join two distinct points.
func NewSegment(a, b Point) Segment {
	if a.Equal(b) {
		panic("r2: a segment requires two distinct endpoints")
	}
	return Segment{A: a, B: b}
}

// Equal reports whether s and o are the same unordered pair of endpoints.
func (s Segment) Equal(o Segment) bool {
	return (s.A.Equal(o.A) && s.B.Equal(o.B)) || (s.A.Equal(o.B) && s.B.Equal(o.A))
}

// Bound returns the segment's axis-aligned bounding box.
func (s Segment) Bound() Rect {
	return RectFromPoints(s.A, s.B)
}

// Connects reports whether s and o share at least one endpoint.
func (s Segment) Connects(o Segment) bool {
	return s.A.Equal(o.A) || s.A.Equal(o.B) || s.B.Equal(o.A) || s.B.Equal(o.B)
}

// SharedEndpoint returns an endpoint common to both s and o, if any.
func (s Segment) SharedEndpoint(o Segment) (Point, bool) {
	switch {
	case s.A.Equal(o.A) || s.A.Equal(o.B):
		return s.A, true
	case s.B.Equal(o.A) || s.B.Equal(o.B):
		return s.B, true
	default:
		return Point{}, false
	}
}

// Contains reports whether p lies on s. With inclusive set, the endpoints
// count; with inclusive cleared, only the open segment counts.
func (s Segment) Contains(p Point, inclusive bool) bool {
	if Orient(s.A, s.B, p) != Collinear {
		return false
	}
	if p.Equal(s.A) || p.Equal(s.B) {
		return inclusive
	}
	return s.Bound().Contains(p)
}

// Intersects reports whether s and t share at least one point. With
// inclusive cleared, two segments that merely touch at a shared endpoint
// (Connects) are not considered intersecting.
func (s Segment) Intersects(t Segment, inclusive bool) bool {
	if !s.Bound().Intersects(t.Bound()) {
		return false
	}

	if s.Connects(t) {
		if !inclusive {
			return false
		}
		// Endpoint touch always counts when inclusive, regardless of
		// whether the rest of the segments overlap or cross.
		return true
	}

	// sOfTA/sOfTB: orientation of s's line relative to t's endpoints.
	// tOfSA/tOfSB: orientation of t's line relative to s's endpoints.
	sOfTA := Orient(s.A, s.B, t.A)
	sOfTB := Orient(s.A, s.B, t.B)
	tOfSA := Orient(t.A, t.B, s.A)
	tOfSB := Orient(t.A, t.B, s.B)

	if sOfTA != sOfTB && tOfSA != tOfSB &&
		sOfTA != Collinear && sOfTB != Collinear && tOfSA != Collinear && tOfSB != Collinear {
		// Proper cross: each segment's endpoints lie on opposite sides of
		// the other.
		return true
	}

	// Collinear overlap: an endpoint of one segment lying within the span
	// of the other, in either direction.
	if sOfTA == Collinear && s.Bound().Contains(t.A) {
		return true
	}
	if sOfTB == Collinear && s.Bound().Contains(t.B) {
		return true
	}
	if tOfSA == Collinear && t.Bound().Contains(s.A) {
		return true
	}
	if tOfSB == Collinear && t.Bound().Contains(s.B) {
		return true
	}
	return false
}

// ProperlyCrosses reports whether s and t cross at a point interior to
// both segments — excluding any shared endpoint and any collinear overlap.
// This is the primitive the region's visibility and containment checks use
// to allow grazing along a shared boundary while rejecting a genuine
// transversal crossing.
func (s Segment) ProperlyCrosses(t Segment) bool {
	if !s.Bound().Intersects(t.Bound()) {
		return false
	}
	sOfTA := Orient(s.A, s.B, t.A)
	sOfTB := Orient(s.A, s.B, t.B)
	tOfSA := Orient(t.A, t.B, s.A)
	tOfSB := Orient(t.A, t.B, s.B)
	return sOfTA != sOfTB && tOfSA != tOfSB &&
		sOfTA != Collinear && sOfTB != Collinear && tOfSA != Collinear && tOfSB != Collinear
}

// Length2 returns the exact squared length of s, suitable for exact
// comparisons between segment lengths without ever taking a square root.
func (s Segment) Length2() rat.Scalar {
	d := s.B.Sub(s.A)
	return rat.Add(rat.Mul(d.X, d.X), rat.Mul(d.Y, d.Y))
}
