package gallery

import (
	"fmt"
	"sort"

	"github.com/artgallery-go/gallery/r2"
	"github.com/artgallery-go/gallery/rat"
)

// Stitch reduces a region with zero or more holes to a single simple CCW
// polygon by bridging each hole to the outer boundary with a non-crossing
// edge (spec §4.C1). Holes are processed in rightmost-then-topmost anchor
// order, descending, so that an accepted bridge never needs to cross one
// already stitched.
func Stitch(region *Region) (Ring, error) {
	outer := region.Outer()
	working := outer.Ring()
	outerVerts := outer.Points()

	holes := make([]Polygon, len(region.holes))
	copy(holes, region.holes)
	for i := range holes {
		holes[i] = holes[i].CW()
	}

	order := anchorOrder(holes)

	for rank, idx := range order {
		hole := holes[idx]
		anchor := holeAnchor(hole)

		others := make([]Polygon, 0, len(holes)-1)
		for j, h := range holes {
			if j == idx {
				continue
			}
			others = append(others, h)
		}

		v, found := chooseBridge(outer, outerVerts, working, anchor, others)
		if !found {
			return Ring{}, wrap("stitcher", ErrBridgeFailure, fmt.Sprintf("hole rank %d (index %d)", rank, idx))
		}

		bridge := r2.NewSegment(v, anchor)
		if onRing(working, bridge) || onRing(hole.Ring(), bridge) {
			return Ring{}, wrap("stitcher", ErrStitchWinnerSubsequence, "")
		}

		spliced, err := splice(working, hole.Ring(), v, anchor)
		if err != nil {
			return Ring{}, err
		}
		working = spliced
	}

	if !working.IsCCW() {
		working = working.Reverse()
	}
	return working, nil
}

// anchorOrder returns hole indices sorted by rightmost-then-topmost anchor,
// descending.
func anchorOrder(holes []Polygon) []int {
	idx := make([]int, len(holes))
	anchors := make([]r2.Point, len(holes))
	for i, h := range holes {
		idx[i] = i
		anchors[i] = holeAnchor(h)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		pa, pb := anchors[idx[a]], anchors[idx[b]]
		if !rat.Equal(pa.X, pb.X) {
			return rat.Less(pb.X, pa.X)
		}
		return rat.Less(pb.Y, pa.Y)
	})
	return idx
}

// holeAnchor returns the hole's rightmost vertex, breaking ties by
// topmost.
func holeAnchor(h Polygon) r2.Point {
	pts := h.Points()
	best := pts[0]
	for _, p := range pts[1:] {
		if rat.Less(best.X, p.X) || (rat.Equal(best.X, p.X) && rat.Less(best.Y, p.Y)) {
			best = p
		}
	}
	return best
}

// chooseBridge finds the admissible candidate outer-ring vertex v for a
// bridge v→anchor, breaking ties by minimum length then outer-ring order.
func chooseBridge(outer Polygon, outerVerts []r2.Point, working Ring, anchor r2.Point, otherHoles []Polygon) (r2.Point, bool) {
	var best r2.Point
	var bestLen2 rat.Scalar
	found := false

	for _, v := range outerVerts {
		if rat.Less(v.X, anchor.X) || rat.Less(v.Y, anchor.Y) {
			continue
		}
		bridge := r2.NewSegment(v, anchor)

		if !segmentWithin(outer.Ring(), bridge) {
			continue
		}
		if collinearWithOuterEdge(outer, bridge, v) {
			continue
		}
		if crossesOtherHole(bridge, otherHoles) {
			continue
		}
		if crossesCurrentBoundary(bridge, working) {
			continue
		}

		len2 := bridge.Length2()
		if !found || rat.Less(len2, bestLen2) {
			best, bestLen2, found = v, len2, true
		}
	}
	return best, found
}

// collinearWithOuterEdge rejects a bridge whose supporting line coincides
// with a non-incident outer edge's supporting line (spec §9 open question).
func collinearWithOuterEdge(outer Polygon, bridge r2.Segment, v r2.Point) bool {
	for _, e := range outer.Edges() {
		if e.A.Equal(v) || e.B.Equal(v) {
			continue
		}
		if r2.Orient(e.A, e.B, bridge.A) == r2.Collinear && r2.Orient(e.A, e.B, bridge.B) == r2.Collinear {
			return true
		}
	}
	return false
}

func crossesOtherHole(bridge r2.Segment, others []Polygon) bool {
	for _, h := range others {
		for _, e := range h.Edges() {
			if bridge.ProperlyCrosses(e) {
				return true
			}
		}
		if rayCast(h.Ring(), midpoint(bridge.A, bridge.B)) {
			return true
		}
	}
	return false
}

func crossesCurrentBoundary(bridge r2.Segment, working Ring) bool {
	for _, e := range working.Edges() {
		if bridge.ProperlyCrosses(e) {
			return true
		}
	}
	return false
}

// onRing reports whether seg already appears as one of ring's edges.
func onRing(ring Ring, seg r2.Segment) bool {
	for _, e := range ring.Edges() {
		if e.Equal(seg) {
			return true
		}
	}
	return false
}

// splice inserts hole into working via the bridge v→anchor, crossed twice
// to keep the result a single simple polygon:
//
//	outer_up_to_and_including_v ++ [anchor] ++ hole_starting_after_anchor ++ [anchor, v]
//
// The bridge endpoints each appear twice (v...v, anchor...anchor), which is
// why the resulting ring has outer.Len()+hole.Len()+2 vertices rather than
// outer.Len()+hole.Len()-2 as in the convex merger's single-shared-edge
// splice: here the bridge is a zero-width slit walked in both directions,
// not an edge collapsed away.
func splice(working, hole Ring, v, anchor r2.Point) (Ring, error) {
	left, ok := working.RotateToBack(v)
	if !ok {
		return Ring{}, wrap("stitcher", ErrBridgeFailure, "bridge vertex missing from working boundary")
	}
	holeFront, ok := hole.RotateToFront(anchor)
	if !ok {
		return Ring{}, wrap("stitcher", ErrBridgeFailure, "anchor missing from hole boundary")
	}
	if !left.IsCCW() {
		return Ring{}, wrap("stitcher", ErrStitchWinnerSubsequence, "outer portion is not CCW before splice")
	}
	if hole.IsCCW() {
		return Ring{}, wrap("stitcher", ErrStitchWinnerSubsequence, "hole portion is not CW before splice")
	}

	pts := make([]r2.Point, 0, left.Len()+hole.Len()+2)
	pts = append(pts, left.Points()...)
	pts = append(pts, anchor)
	pts = append(pts, holeFront.Points()[1:]...)
	pts = append(pts, anchor, v)

	merged, err := NewRing(pts)
	if err != nil {
		return Ring{}, err
	}
	if merged.Len() != working.Len()+hole.Len()+2 {
		return Ring{}, wrap("stitcher", ErrStitchWinnerSubsequence, "splice did not yield the expected vertex count")
	}
	return merged, nil
}
