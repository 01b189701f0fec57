package gallery

import (
	"github.com/artgallery-go/gallery/r2"
	"github.com/artgallery-go/gallery/rat"
)

// Ring is a cyclic ordered list of points: index n is the same vertex as
// index 0. It centralizes the modulo arithmetic that cyclic rings need so
// client code never has to juggle raw slices and %len itself (spec §9).
type Ring struct {
	pts []r2.Point
}

// NewRing builds a Ring from pts, dropping consecutive duplicates
// (including the wraparound pair between the last and first point).
// Returns ErrTooFewPoints if fewer than 3 distinct points remain.
func NewRing(pts []r2.Point) (Ring, error) {
	if len(pts) == 0 {
		return Ring{}, wrap("ring", ErrTooFewPoints, "no points given")
	}
	deduped := make([]r2.Point, 0, len(pts))
	for _, p := range pts {
		if len(deduped) > 0 && deduped[len(deduped)-1].Equal(p) {
			continue
		}
		deduped = append(deduped, p)
	}
	for len(deduped) > 1 && deduped[0].Equal(deduped[len(deduped)-1]) {
		deduped = deduped[:len(deduped)-1]
	}
	if len(deduped) < 3 {
		return Ring{}, wrap("ring", ErrTooFewPoints, "fewer than 3 distinct points")
	}
	return Ring{pts: deduped}, nil
}

// mustNewRing is used internally where the caller has already guaranteed
// validity (e.g. after a rotation or reversal of an existing Ring).
func mustNewRing(pts []r2.Point) Ring {
	r, err := NewRing(pts)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of distinct vertices.
func (r Ring) Len() int { return len(r.pts) }

// At returns the vertex at cyclic index i; any integer, including negative
// ones, is valid.
func (r Ring) At(i int) r2.Point {
	n := len(r.pts)
	m := i % n
	if m < 0 {
		m += n
	}
	return r.pts[m]
}

// Points returns a defensive copy of the ring's vertices in order,
// starting at index 0.
func (r Ring) Points() []r2.Point {
	out := make([]r2.Point, len(r.pts))
	copy(out, r.pts)
	return out
}

// IndexOf returns the index of p in the ring, if present.
func (r Ring) IndexOf(p r2.Point) (int, bool) {
	for i, q := range r.pts {
		if q.Equal(p) {
			return i, true
		}
	}
	return 0, false
}

// SignedArea returns the exact signed area (½·Σ cross products of
// consecutive vertices). Positive means CCW, negative CW.
func (r Ring) SignedArea() rat.Scalar {
	sum := rat.Zero
	n := len(r.pts)
	for i := 0; i < n; i++ {
		sum = rat.Add(sum, r.pts[i].Cross(r.At(i+1)))
	}
	return rat.Quo(sum, rat.FromInt64(2))
}

// IsCCW reports whether the ring's signed area is positive.
func (r Ring) IsCCW() bool {
	return rat.Sign(r.SignedArea()) > 0
}

// IsConvex reports whether every non-collinear orientation along the ring
// agrees; collinear triples are ignored.
func (r Ring) IsConvex() bool {
	n := len(r.pts)
	var want r2.Direction
	haveWant := false
	for i := 0; i < n; i++ {
		d := r2.Orient(r.At(i-1), r.At(i), r.At(i+1))
		if d == r2.Collinear {
			continue
		}
		if !haveWant {
			want = d
			haveWant = true
			continue
		}
		if d != want {
			return false
		}
	}
	return true
}

// Reverse returns the ring traversed in the opposite direction, starting
// at what was the last vertex.
func (r Ring) Reverse() Ring {
	n := len(r.pts)
	out := make([]r2.Point, n)
	for i, p := range r.pts {
		out[n-1-i] = p
	}
	return mustNewRing(out)
}

// Edges returns the ring's n undirected edges in order: (p0,p1), (p1,p2),
// ..., (p(n-1),p0).
func (r Ring) Edges() []r2.Segment {
	n := len(r.pts)
	out := make([]r2.Segment, n)
	for i := 0; i < n; i++ {
		out[i] = r2.NewSegment(r.At(i), r.At(i+1))
	}
	return out
}

// RotateToFront returns a ring cyclically equivalent to r, rotated so that
// p is at index 0 (R << p). Returns false if p is not a ring vertex.
func (r Ring) RotateToFront(p r2.Point) (Ring, bool) {
	i, ok := r.IndexOf(p)
	if !ok {
		return Ring{}, false
	}
	n := len(r.pts)
	out := make([]r2.Point, n)
	for k := 0; k < n; k++ {
		out[k] = r.At(i + k)
	}
	return mustNewRing(out), true
}

// RotateToBack returns a ring cyclically equivalent to r, rotated so that
// p is the last vertex (R >> p). Returns false if p is not a ring vertex.
func (r Ring) RotateToBack(p r2.Point) (Ring, bool) {
	i, ok := r.IndexOf(p)
	if !ok {
		return Ring{}, false
	}
	n := len(r.pts)
	out := make([]r2.Point, n)
	for k := 0; k < n; k++ {
		// last index (n-1) must land on p, i.e. out[n-1] = r.At(i).
		out[k] = r.At(i + 1 + k)
	}
	return mustNewRing(out), true
}

// Slice returns the cyclic run of vertices from index i through index j
// inclusive, wrapping around if j < i (mod n).
func (r Ring) Slice(i, j int) []r2.Point {
	n := len(r.pts)
	i = ((i % n) + n) % n
	j = ((j % n) + n) % n
	count := j - i
	if count < 0 {
		count += n
	}
	count++
	out := make([]r2.Point, count)
	for k := 0; k < count; k++ {
		out[k] = r.At(i + k)
	}
	return out
}

// Equal reports whether r and o are cyclic rotations of one another in the
// same direction; reversal is not equality.
func (r Ring) Equal(o Ring) bool {
	n := len(r.pts)
	if n != len(o.pts) {
		return false
	}
	start, ok := o.IndexOf(r.pts[0])
	if !ok {
		return false
	}
	for k := 0; k < n; k++ {
		if !r.pts[k].Equal(o.At(start + k)) {
			return false
		}
	}
	return true
}

// SharedEdge returns the single undirected edge shared by r and o's edge
// sets, if exactly one exists. Per the spec's resolved open question, more
// than one shared edge is treated as "no shared edge" rather than picking
// one arbitrarily.
func (r Ring) SharedEdge(o Ring) (r2.Segment, bool) {
	re := r.Edges()
	oe := o.Edges()
	var found r2.Segment
	count := 0
	for _, a := range re {
		for _, b := range oe {
			if a.Equal(b) {
				found = a
				count++
				break
			}
		}
	}
	if count != 1 {
		return r2.Segment{}, false
	}
	return found, true
}
