package gallery

import "github.com/artgallery-go/gallery/r2"

// Triangle is an ordered triple (Left, Center, Right) oriented CCW; an ear
// of a polygon is exactly such a triple whose diagonal Right→Left lies
// inside the polygon and whose interior and diagonal contain no other
// polygon vertex.
type Triangle struct {
	Left, Center, Right r2.Point
}

// Diagonal returns the chord that closes the ear: the segment from Right
// back to Left.
func (t Triangle) Diagonal() r2.Segment {
	return r2.NewSegment(t.Right, t.Left)
}

// Polygon returns the triangle as a (necessarily CCW) Polygon.
func (t Triangle) Polygon() Polygon {
	ring := mustNewRing([]r2.Point{t.Left, t.Center, t.Right})
	poly, err := NewPolygon(ring)
	if err != nil {
		panic(err) // a non-collinear CCW triple is never degenerate
	}
	return poly
}

// Ears triangulates the stitched CCW polygon p by repeated ear clipping.
// At each step it scans vertices in index order, tests the triple
// (prev, cur, next) for the ear conditions, emits and removes the first
// ear found, then restarts the scan — exactly as spec §4.C2 requires for
// determinism, rather than the incremental doubly-linked-list scan an
// ear-clipping library normally uses for speed (this module trades speed
// for a fully deterministic, auditable scan order; inputs are small).
func Ears(p Ring) ([]Triangle, error) {
	cur, err := NewRing(p.Points())
	if err != nil {
		return nil, err
	}

	var out []Triangle
	for cur.Len() > 3 {
		idx, ok := findEar(cur)
		if !ok {
			return nil, wrap("earclip", ErrEarClippingFailure, "")
		}
		prev := cur.At(idx - 1)
		center := cur.At(idx)
		next := cur.At(idx + 1)
		out = append(out, Triangle{Left: prev, Center: center, Right: next})
		cur = removeAt(cur, idx)
	}

	// The final three points form the last triangle, unless they are
	// collinear (degenerate), in which case there is nothing left to emit.
	last := cur.Points()
	if r2.Orient(last[0], last[1], last[2]) != r2.Collinear {
		tri := Triangle{Left: last[0], Center: last[1], Right: last[2]}
		if !tri.isCCW() {
			tri = Triangle{Left: last[2], Center: last[1], Right: last[0]}
		}
		out = append(out, tri)
	}
	return out, nil
}

func (t Triangle) isCCW() bool {
	return r2.Orient(t.Left, t.Center, t.Right) == r2.CCW
}

// findEar scans cur's vertices in index order and returns the index of the
// first ear found.
func findEar(cur Ring) (int, bool) {
	n := cur.Len()
	for j := 0; j < n; j++ {
		prev := cur.At(j - 1)
		center := cur.At(j)
		next := cur.At(j + 1)

		tri := Triangle{Left: prev, Center: center, Right: next}
		if !tri.isCCW() {
			continue
		}
		if !segmentWithin(cur, tri.Diagonal()) {
			continue
		}
		if anyOtherVertexInside(cur, j, tri) {
			continue
		}
		return j, true
	}
	return 0, false
}

// segmentWithin reports whether seg is contained in ring's closed region,
// using only the ring's own boundary (the ear test needs no hole
// awareness — it operates purely on the stitched simple polygon).
func segmentWithin(ring Ring, seg r2.Segment) bool {
	mid := midpoint(seg.A, seg.B)
	if !rayCast(ring, mid) {
		// The midpoint might sit exactly on the boundary (diagonal grazing
		// an edge); accept that case too.
		onBoundary := false
		for _, e := range ring.Edges() {
			if e.Contains(mid, true) {
				onBoundary = true
				break
			}
		}
		if !onBoundary {
			return false
		}
	}
	for _, e := range ring.Edges() {
		if e.Connects(seg) {
			continue
		}
		if seg.ProperlyCrosses(e) {
			return false
		}
	}
	return true
}

func anyOtherVertexInside(cur Ring, skip int, tri Triangle) bool {
	n := cur.Len()
	for k := 0; k < n; k++ {
		realIdx := ((k % n) + n) % n
		if realIdx == ((skip-1)%n+n)%n || realIdx == skip || realIdx == ((skip+1)%n+n)%n {
			continue
		}
		v := cur.At(k)
		// A vertex lying on the open diagonal also blocks the ear: clipping
		// it would leave that vertex on a triangle edge, not at a corner.
		if pointStrictlyInTriangle(v, tri) || tri.Diagonal().Contains(v, false) {
			return true
		}
	}
	return false
}

func pointStrictlyInTriangle(p r2.Point, t Triangle) bool {
	d1 := r2.Orient(t.Left, t.Center, p)
	d2 := r2.Orient(t.Center, t.Right, p)
	d3 := r2.Orient(t.Right, t.Left, p)
	if d1 == r2.Collinear || d2 == r2.Collinear || d3 == r2.Collinear {
		return false
	}
	return d1 == d2 && d2 == d3
}

// removeAt returns a new ring with the vertex at index idx removed.
func removeAt(r Ring, idx int) Ring {
	n := r.Len()
	out := make([]r2.Point, 0, n-1)
	for k := 0; k < n; k++ {
		if k == idx {
			continue
		}
		out = append(out, r.At(k))
	}
	return mustNewRing(out)
}
