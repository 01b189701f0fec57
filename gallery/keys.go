package gallery

import "github.com/artgallery-go/gallery/r2"

// Exact rational scalars are backed by big.Int internally and are not
// comparable, so Point/Segment values cannot be Go map keys directly.
// These helpers build canonical string keys instead, wherever the spec
// calls for an edge index or a memoization table keyed by point/segment
// identity.

func pointKey(p r2.Point) string {
	return p.X.String() + "," + p.Y.String()
}

// edgeKey is a canonical (direction-independent) key for a segment,
// matching Segment.Equal's "equality ignores direction" rule.
func edgeKey(s r2.Segment) string {
	a, b := pointKey(s.A), pointKey(s.B)
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// segKey is the memoization key for Region.sees: visibility is symmetric,
// so it is keyed by the unordered pair of endpoints (spec §4.C4: "keyed by
// the unordered segment").
type segKey string

func keyForPair(a, b r2.Point) segKey {
	ak, bk := pointKey(a), pointKey(b)
	if ak > bk {
		ak, bk = bk, ak
	}
	return segKey(ak + "|" + bk)
}
