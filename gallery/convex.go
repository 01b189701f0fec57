package gallery

import (
	"sort"

	"github.com/artgallery-go/gallery/r2"
	"github.com/artgallery-go/gallery/rat"
)

// ConvexComponent is a convex polygon arising from merging adjacent
// triangles. It carries an opaque id so the merger can remove it from a
// live collection by identity.
type ConvexComponent struct {
	ID   ComponentID
	ring Ring
}

// Ring returns the component's ring.
func (c *ConvexComponent) Ring() Ring { return c.ring }

// Polygon returns the component as a Polygon.
func (c *ConvexComponent) Polygon() Polygon {
	p, err := NewPolygon(c.ring)
	if err != nil {
		panic(err) // a convex component always has nonzero area
	}
	return p
}

// BuildConvexComponents merges ear triangles into maximal convex
// components (spec §4.C3). It repeatedly finds, among all legal adjacent
// merges, the one with maximum resulting area, applies it, and repeats
// until no legal merge remains. Termination is guaranteed because every
// step strictly decreases the component count.
func BuildConvexComponents(ears []Triangle, gen *idGen) map[ComponentID]*ConvexComponent {
	comps := make(map[ComponentID]*ConvexComponent, len(ears))
	for _, tri := range ears {
		id := ComponentID(gen.take())
		comps[id] = &ConvexComponent{ID: id, ring: tri.Polygon().Ring()}
	}

	for {
		a, b, merged, ok := bestMerge(comps)
		if !ok {
			return comps
		}
		delete(comps, a)
		delete(comps, b)
		newID := ComponentID(gen.take())
		comps[newID] = &ConvexComponent{ID: newID, ring: merged}
	}
}

type mergeCandidate struct {
	a, b   ComponentID
	merged Ring
	area   rat.Scalar
}

// bestMerge scans every adjacent pair sharing an edge and returns the one
// whose merge yields the largest area; ties go to the pair encountered
// first while scanning components in id order (spec §5's deterministic
// tie-break).
func bestMerge(comps map[ComponentID]*ConvexComponent) (ComponentID, ComponentID, Ring, bool) {
	ids := sortedIDs(comps)

	edgeIndex := make(map[string][]ComponentID)
	for _, id := range ids {
		for _, e := range comps[id].ring.Edges() {
			k := edgeKey(e)
			edgeIndex[k] = append(edgeIndex[k], id)
		}
	}

	var best *mergeCandidate
	seen := make(map[[2]ComponentID]bool)

	for _, cid := range ids {
		for _, e := range comps[cid].ring.Edges() {
			for _, did := range edgeIndex[edgeKey(e)] {
				if did == cid {
					continue
				}
				pair := orderedPair(cid, did)
				if seen[pair] {
					continue
				}
				seen[pair] = true

				merged, err := tryMerge(comps[cid].ring, comps[did].ring)
				if err != nil {
					continue // candidate invalid; skip it, per spec §7
				}
				area := merged.SignedArea()
				if rat.Sign(area) < 0 {
					area = rat.Neg(area)
				}
				if best == nil || rat.Less(best.area, area) {
					best = &mergeCandidate{a: cid, b: did, merged: merged, area: area}
				}
			}
		}
	}
	if best == nil {
		return 0, 0, Ring{}, false
	}
	return best.a, best.b, best.merged, true
}

func sortedIDs(comps map[ComponentID]*ConvexComponent) []ComponentID {
	ids := make([]ComponentID, 0, len(comps))
	for id := range comps {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func orderedPair(a, b ComponentID) [2]ComponentID {
	if a < b {
		return [2]ComponentID{a, b}
	}
	return [2]ComponentID{b, a}
}

// tryMerge attempts to merge left and right along their single shared
// edge, producing a simple convex ring with len(left)+len(right)-2
// vertices.
func tryMerge(left, right Ring) (Ring, error) {
	shared, ok := left.SharedEdge(right)
	if !ok {
		return Ring{}, wrap("convex", ErrNoSharedEdge, "")
	}

	la, lb, ok := consecutivePair(left, shared)
	if !ok {
		return Ring{}, wrap("convex", ErrMerge, "shared edge not found in left ring order")
	}
	ra, rb, ok := consecutivePair(right, shared)
	if !ok {
		return Ring{}, wrap("convex", ErrMerge, "shared edge not found in right ring order")
	}
	if la.Equal(ra) && lb.Equal(rb) {
		right = right.Reverse()
		if _, _, ok = consecutivePair(right, shared); !ok {
			return Ring{}, wrap("convex", ErrMerge, "shared edge lost after reversal")
		}
	}
	s0, s1 := la, lb

	left2, ok := left.RotateToBack(s1)
	if !ok {
		return Ring{}, wrap("convex", ErrMerge, "s1 missing from left ring")
	}
	right2, ok := right.RotateToFront(s0)
	if !ok {
		return Ring{}, wrap("convex", ErrMerge, "s0 missing from right ring")
	}

	leftPts := left2.Points()
	rightPts := right2.Points()
	mergedPts := make([]r2.Point, 0, len(leftPts)+len(rightPts))
	mergedPts = append(mergedPts, leftPts[:len(leftPts)-1]...)
	mergedPts = append(mergedPts, s0)
	mergedPts = append(mergedPts, rightPts[1:]...)
	mergedPts = append(mergedPts, s1)

	merged, err := NewRing(mergedPts)
	if err != nil {
		return Ring{}, wrap("convex", ErrMerge, err.Error())
	}
	if merged.Len() != left.Len()+right.Len()-2 {
		return Ring{}, wrap("convex", ErrMergeTooManyPoints, "")
	}
	if !merged.IsConvex() {
		return Ring{}, wrap("convex", ErrNotConvex, "")
	}
	edges := merged.Edges()
	for i := range edges {
		for j := i + 2; j < len(edges); j++ {
			if i == 0 && j == len(edges)-1 {
				continue // adjacent through the wraparound
			}
			if edges[i].Intersects(edges[j], true) {
				return Ring{}, wrap("convex", ErrMerge, "merged ring self-intersects")
			}
		}
	}
	return merged, nil
}

// consecutivePair returns the ring's own directional order (a, b) for the
// consecutive pair that equals seg as an undirected edge.
func consecutivePair(ring Ring, seg r2.Segment) (r2.Point, r2.Point, bool) {
	n := ring.Len()
	for i := 0; i < n; i++ {
		a, b := ring.At(i), ring.At(i+1)
		if r2.NewSegment(a, b).Equal(seg) {
			return a, b, true
		}
	}
	return r2.Point{}, r2.Point{}, false
}
