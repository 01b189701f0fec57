package gallery

import (
	"errors"
	"fmt"
)

// Sentinel errors form a flat taxonomy; callers should branch with
// errors.Is rather than matching message strings, since every sentinel is
// wrapped with operation-specific context before it reaches the caller.
var (
	// ErrTooFewPoints is raised by ring construction when fewer than 3
	// distinct points remain after deduplication.
	ErrTooFewPoints = errors.New("gallery: ring needs at least 3 distinct points")

	// ErrDegenerate is raised by polygon construction when the ring's
	// signed area is zero.
	ErrDegenerate = errors.New("gallery: polygon has zero signed area")

	// ErrNotSimple is raised by region validation: a hole outside, on, or
	// crossing the outer boundary, or two holes overlapping.
	ErrNotSimple = errors.New("gallery: region boundary is not simple")

	// ErrBridgeFailure is raised by the stitcher when no admissible bridge
	// candidate exists for a hole.
	ErrBridgeFailure = errors.New("gallery: no admissible bridge for hole")

	// ErrStitchWinnerSubsequence is raised by the stitcher when the chosen
	// bridge edge already lies on an existing ring.
	ErrStitchWinnerSubsequence = errors.New("gallery: bridge coincides with an existing ring edge")

	// ErrEarClippingFailure is raised by the triangulator when a full scan
	// finds no ear; this means the stitched polygon is not simple.
	ErrEarClippingFailure = errors.New("gallery: ear clipping scan found no ear")

	// ErrNoSharedEdge is raised when a candidate merge's two rings do not
	// share exactly one undirected edge.
	ErrNoSharedEdge = errors.New("gallery: components share no edge")

	// ErrNotConvex is raised when a candidate merge's result is not convex.
	ErrNotConvex = errors.New("gallery: merged ring is not convex")

	// ErrMergeTooManyPoints is raised when a candidate merge's result does
	// not have exactly len(left)+len(right)-2 vertices.
	ErrMergeTooManyPoints = errors.New("gallery: merged ring has an unexpected vertex count")

	// ErrMerge is a catch-all for a candidate merge rejected for a reason
	// other than the three above (e.g. the merged ring self-intersects, or
	// the shared edge cannot be located in a ring's vertex order).
	ErrMerge = errors.New("gallery: candidate merge is invalid")

	// ErrGuardCoverage is raised by the guard selector when some component
	// cannot be covered by any single candidate guard, or when dominated-
	// guard pruning would leave a stitched vertex unseen.
	ErrGuardCoverage = errors.New("gallery: no guard set covers the gallery")
)

func wrap(op string, sentinel error, detail string) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", op, sentinel)
	}
	return fmt.Errorf("%s: %w: %s", op, sentinel, detail)
}
