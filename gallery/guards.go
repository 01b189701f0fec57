package gallery

import (
	"sort"

	"github.com/artgallery-go/gallery/r2"
)

// Guard is a vertex position chosen to see one or more convex components.
// Its position always equals some vertex of the stitched polygon.
type Guard struct {
	ID       GuardID
	Position r2.Point
}

// Sees reports whether a sees b within the region: trivially true when
// a == b; otherwise the segment a→b must lie in the region (inclusive) and
// no outer or hole edge may properly cross it (grazing along a boundary is
// permitted). Results are memoized per unordered segment for the Region's
// lifetime (spec §4.C4, §9).
func (r *Region) Sees(a, b r2.Point) bool {
	if a.Equal(b) {
		return true
	}
	if r.seesCache == nil {
		r.seesCache = make(map[segKey]bool)
	}
	key := keyForPair(a, b)
	if v, ok := r.seesCache[key]; ok {
		return v
	}
	res := r.computeSees(a, b)
	r.seesCache[key] = res
	return res
}

func (r *Region) computeSees(a, b r2.Point) bool {
	seg := r2.NewSegment(a, b)
	if !r.ContainsSegment(seg, true) {
		return false
	}
	for _, e := range r.allBoundaryEdges() {
		if e.Connects(seg) {
			continue
		}
		if seg.ProperlyCrosses(e) {
			return false
		}
	}
	return true
}

func (r *Region) allBoundaryEdges() []r2.Segment {
	edges := append([]r2.Segment{}, r.outer.Edges()...)
	for _, h := range r.holes {
		edges = append(edges, h.Edges()...)
	}
	return edges
}

// candidateVertices returns every distinct vertex appearing in any
// component, in a deterministic (lexicographic) order.
func candidateVertices(comps map[ComponentID]*ConvexComponent) []r2.Point {
	seen := make(map[string]r2.Point)
	for _, c := range comps {
		for _, p := range c.ring.Points() {
			seen[pointKey(p)] = p
		}
	}
	out := make([]r2.Point, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// BuildGuards runs the greedy set-cover guard selection (phase A) followed
// by dominated-guard pruning (phase B), per spec §4.C4.
func BuildGuards(region *Region, stitched Ring, comps map[ComponentID]*ConvexComponent, gen *idGen) (map[GuardID]*Guard, map[GuardID][]r2.Point, error) {
	candidates := candidateVertices(comps)

	// Candidate ids are assigned up front, in the same deterministic order
	// as the candidate list, so "largest guard id" is a well-defined,
	// reproducible tie-break before any guard is actually selected.
	candidateID := make(map[string]GuardID, len(candidates))
	idPosition := make(map[GuardID]r2.Point, len(candidates))
	for _, p := range candidates {
		id := GuardID(gen.take())
		candidateID[pointKey(p)] = id
		idPosition[id] = p
	}

	active := make(map[GuardID]bool, len(candidates))
	for _, p := range candidates {
		active[candidateID[pointKey(p)]] = true
	}

	uncovered := make(map[ComponentID]bool, len(comps))
	for id := range comps {
		uncovered[id] = true
	}

	winners := make(map[GuardID]r2.Point)

	for len(uncovered) > 0 {
		bestID := GuardID(0)
		bestCovered := ([]ComponentID)(nil)
		bestCount := -1

		activeIDs := make([]GuardID, 0, len(active))
		for id := range active {
			activeIDs = append(activeIDs, id)
		}
		sort.Slice(activeIDs, func(i, j int) bool { return activeIDs[i] < activeIDs[j] })

		for _, gid := range activeIDs {
			pos := idPosition[gid]
			var covers []ComponentID
			for cid := range uncovered {
				if componentSeenBy(region, pos, comps[cid]) {
					covers = append(covers, cid)
				}
			}
			if len(covers) > bestCount || (len(covers) == bestCount && gid > bestID) {
				bestCount = len(covers)
				bestID = gid
				bestCovered = covers
			}
		}

		if bestCount <= 0 {
			return nil, nil, wrap("guards", ErrGuardCoverage, "no candidate covers any remaining component")
		}

		winners[bestID] = idPosition[bestID]
		delete(active, bestID)
		for _, cid := range bestCovered {
			delete(uncovered, cid)
		}
	}

	guardSet := make(map[GuardID]*Guard, len(winners))
	for id, pos := range winners {
		guardSet[id] = &Guard{ID: id, Position: pos}
	}

	visibility, err := pruneDominated(region, stitched, guardSet)
	if err != nil {
		return nil, nil, err
	}
	return guardSet, visibility, nil
}

func componentSeenBy(region *Region, guard r2.Point, comp *ConvexComponent) bool {
	for _, v := range comp.ring.Points() {
		if !region.Sees(guard, v) {
			return false
		}
	}
	return true
}

// pruneDominated removes any guard whose seen set of stitched vertices is
// a subset of the union of the other guards' seen sets (spec §4.C4 phase
// B). Full coverage is verified once pruning stops; a guard is only removed
// when the others already see everything it sees, so no removal can reduce
// coverage.
func pruneDominated(region *Region, stitched Ring, guards map[GuardID]*Guard) (map[GuardID][]r2.Point, error) {
	stitchedVerts := stitched.Points()

	seen := make(map[GuardID]map[string]r2.Point, len(guards))
	for id, g := range guards {
		set := make(map[string]r2.Point)
		for _, v := range stitchedVerts {
			if region.Sees(g.Position, v) {
				set[pointKey(v)] = v
			}
		}
		seen[id] = set
	}

	for {
		ids := make([]GuardID, 0, len(guards))
		for id := range guards {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		removedAny := false
		for _, gid := range ids {
			union := make(map[string]bool)
			for oid, set := range seen {
				if oid == gid {
					continue
				}
				for k := range set {
					union[k] = true
				}
			}
			if isSubsetOf(seen[gid], union) {
				delete(guards, gid)
				delete(seen, gid)
				removedAny = true
				break
			}
		}
		if !removedAny {
			break
		}
	}

	covered := make(map[string]bool)
	for _, set := range seen {
		for k := range set {
			covered[k] = true
		}
	}
	for _, v := range stitchedVerts {
		if !covered[pointKey(v)] {
			return nil, wrap("guards", ErrGuardCoverage, "pruning left a stitched vertex unseen")
		}
	}

	visibility := make(map[GuardID][]r2.Point, len(seen))
	for id, set := range seen {
		pts := make([]r2.Point, 0, len(set))
		for _, p := range set {
			pts = append(pts, p)
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
		visibility[id] = pts
	}
	return visibility, nil
}

func isSubsetOf(set map[string]r2.Point, of map[string]bool) bool {
	for k := range set {
		if !of[k] {
			return false
		}
	}
	return true
}
