package gallery

import "fmt"

// GuardID and ComponentID are opaque identifiers. Equality on guards and
// components is by id, never by structural content, because the merger
// must remove entities by identity from a live collection while two
// structurally identical polygons can legitimately coexist during
// exploration.
//
// Both kinds of id are drawn from a single counter owned by the Region that
// produced them, which never escapes its lifetime, matching the memoization
// rules in spec §5/§9.
type GuardID uint64

// ComponentID identifies a convex component.
type ComponentID uint64

func (g GuardID) String() string     { return fmt.Sprintf("g%d", uint64(g)) }
func (c ComponentID) String() string { return fmt.Sprintf("c%d", uint64(c)) }

// idGen is a region-local monotonic counter, adapted from the collision-
// free "e1", "e2", ... edge-id counter pattern: here it is a plain field
// rather than an atomic, since the core is explicitly single-threaded
// (spec §5: "no suspension points... no locks required").
type idGen struct {
	next uint64
}

func (g *idGen) take() uint64 {
	g.next++
	return g.next
}
