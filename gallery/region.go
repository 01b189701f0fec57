package gallery

import (
	"fmt"

	"github.com/artgallery-go/gallery/r2"
	"github.com/artgallery-go/gallery/rat"
)

// Region is the gallery: an outer polygon plus an ordered set of interior
// holes. A Region is constructed once and validated; its derived quantities
// (stitched polygon, triangulation, convex components, guards, visibility)
// are computed lazily on first access and memoized for the Region's
// lifetime. Inputs are never mutated.
type Region struct {
	outer Polygon
	holes []Polygon

	ids idGen

	stitched   *Ring
	ears       []Triangle
	components map[ComponentID]*ConvexComponent
	guards     map[GuardID]*Guard
	visibility map[GuardID][]r2.Point
	seesCache  map[segKey]bool
}

// NewRegion validates outerPts/holePts and constructs a Region. outerPts and
// each entry of holePts are plain point lists (any orientation — the
// stitcher normalizes). Validity invariants (spec §3):
//
//  1. Every hole vertex lies strictly inside the outer polygon.
//  2. No hole edge touches or crosses any outer edge.
//  3. No hole vertex lies on the outer boundary.
//  4. No two holes overlap or touch.
func NewRegion(outerPts []r2.Point, holePts [][]r2.Point) (*Region, error) {
	outer, err := PolygonFromPoints(outerPts)
	if err != nil {
		return nil, fmt.Errorf("region: outer polygon: %w", err)
	}
	outer = outer.CCW()

	holes := make([]Polygon, 0, len(holePts))
	for i, hp := range holePts {
		h, err := PolygonFromPoints(hp)
		if err != nil {
			return nil, fmt.Errorf("region: hole %d: %w", i, err)
		}
		holes = append(holes, h)
	}

	if err := validateHoles(outer, holes); err != nil {
		return nil, err
	}

	return &Region{outer: outer, holes: holes}, nil
}

func validateHoles(outer Polygon, holes []Polygon) error {
	for i, h := range holes {
		for _, v := range h.Points() {
			onOuterBoundary := false
			for _, e := range outer.Edges() {
				if e.Contains(v, true) {
					onOuterBoundary = true
					break
				}
			}
			if onOuterBoundary {
				return wrap("region", ErrNotSimple, fmt.Sprintf("hole %d has a vertex on the outer boundary", i))
			}
			if !rayCast(outer.Ring(), v) {
				return wrap("region", ErrNotSimple, fmt.Sprintf("hole %d has a vertex outside the outer polygon", i))
			}
		}
		for _, he := range h.Edges() {
			for _, oe := range outer.Edges() {
				if he.Intersects(oe, true) {
					return wrap("region", ErrNotSimple, fmt.Sprintf("hole %d edge touches or crosses the outer boundary", i))
				}
			}
		}
		for j := i + 1; j < len(holes); j++ {
			if holesOverlap(h, holes[j]) {
				return wrap("region", ErrNotSimple, fmt.Sprintf("hole %d and hole %d overlap or touch", i, j))
			}
		}
	}
	return nil
}

func holesOverlap(a, b Polygon) bool {
	for _, ae := range a.Edges() {
		for _, be := range b.Edges() {
			if ae.Intersects(be, true) {
				return true
			}
		}
	}
	for _, v := range a.Points() {
		if rayCast(b.Ring(), v) {
			return true
		}
	}
	for _, v := range b.Points() {
		if rayCast(a.Ring(), v) {
			return true
		}
	}
	return false
}

// Outer returns the region's outer polygon.
func (r *Region) Outer() Polygon { return r.outer }

// Holes returns the region's hole polygons.
func (r *Region) Holes() []Polygon {
	out := make([]Polygon, len(r.holes))
	copy(out, r.holes)
	return out
}

// rayCast implements the crossing-number point-in-polygon test for a single
// ring: an edge contributes a crossing iff the query's y lies in the edge's
// half-open y-range and the edge's low-to-high endpoints turn CCW around
// the query point. Odd crossing count means inside.
func rayCast(ring Ring, p r2.Point) bool {
	crossings := 0
	for _, e := range ring.Edges() {
		lo, hi := e.A, e.B
		if rat.Less(hi.Y, lo.Y) {
			lo, hi = hi, lo
		}
		if rat.Equal(lo.Y, hi.Y) {
			continue // horizontal edge is parallel to the +x ray
		}
		if !rat.Less(p.Y, hi.Y) || rat.Less(p.Y, lo.Y) {
			continue // p.Y not in [lo.Y, hi.Y)
		}
		if r2.Orient(lo, hi, p) == r2.CCW {
			crossings++
		}
	}
	return crossings%2 == 1
}

// ContainsPoint reports whether p lies in the region: on-boundary points
// resolve to the inclusive flag directly; otherwise p must be inside the
// outer polygon and strictly outside every hole.
func (r *Region) ContainsPoint(p r2.Point, inclusive bool) bool {
	for _, e := range r.outer.Edges() {
		if e.Contains(p, true) {
			return inclusive
		}
	}
	for _, h := range r.holes {
		for _, e := range h.Edges() {
			if e.Contains(p, true) {
				return inclusive
			}
		}
	}
	if !rayCast(r.outer.Ring(), p) {
		return false
	}
	for _, h := range r.holes {
		if rayCast(h.Ring(), p) {
			return false
		}
	}
	return true
}

func midpoint(a, b r2.Point) r2.Point {
	two := rat.FromInt64(2)
	return r2.New(rat.Quo(rat.Add(a.X, b.X), two), rat.Quo(rat.Add(a.Y, b.Y), two))
}

// ContainsSegment reports whether s lies within the region: both endpoints
// and the midpoint must be in the region, and no hole edge may properly
// cross it (collinear grazing along a hole boundary is permitted).
func (r *Region) ContainsSegment(s r2.Segment, inclusive bool) bool {
	if !r.ContainsPoint(s.A, inclusive) || !r.ContainsPoint(s.B, inclusive) {
		return false
	}
	if !r.ContainsPoint(midpoint(s.A, s.B), inclusive) {
		return false
	}
	for _, h := range r.holes {
		for _, he := range h.Edges() {
			if s.ProperlyCrosses(he) {
				return false
			}
		}
	}
	return true
}

// ContainsPolygon reports whether every vertex and edge of poly lies within
// the region.
func (r *Region) ContainsPolygon(poly Polygon, inclusive bool) bool {
	for _, v := range poly.Points() {
		if !r.ContainsPoint(v, inclusive) {
			return false
		}
	}
	for _, e := range poly.Edges() {
		if !r.ContainsSegment(e, inclusive) {
			return false
		}
	}
	return true
}

// Shape is any of the three containable geometric kinds accepted by
// Region.Contains.
type Shape interface {
	isShape()
}

type pointShape r2.Point

func (pointShape) isShape() {}

type segmentShape r2.Segment

func (segmentShape) isShape() {}

type polygonShape Polygon

func (polygonShape) isShape() {}

// AsShape wraps a Point as a Shape for Region.Contains.
func AsShape(p r2.Point) Shape { return pointShape(p) }

// SegmentAsShape wraps a Segment as a Shape for Region.Contains.
func SegmentAsShape(s r2.Segment) Shape { return segmentShape(s) }

// PolygonAsShape wraps a Polygon as a Shape for Region.Contains.
func PolygonAsShape(p Polygon) Shape { return polygonShape(p) }

// Contains dispatches to ContainsPoint, ContainsSegment or ContainsPolygon
// according to the dynamic type of x.
func (r *Region) Contains(x Shape, inclusive bool) bool {
	switch v := x.(type) {
	case pointShape:
		return r.ContainsPoint(r2.Point(v), inclusive)
	case segmentShape:
		return r.ContainsSegment(r2.Segment(v), inclusive)
	case polygonShape:
		return r.ContainsPolygon(Polygon(v), inclusive)
	default:
		panic(fmt.Sprintf("region: unsupported Shape %T", x))
	}
}
