package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestS6UncoverableComponentFailsWithGuardCoverageFailure constructs a
// contrived component lying entirely outside a valid region, so that no
// candidate vertex can see any other vertex of it (each sightline leaves
// the region). Per S6, guard selection must fail with ErrGuardCoverage and
// return no partial guard set.
func TestS6UncoverableComponentFailsWithGuardCoverageFailure(t *testing.T) {
	region, err := NewRegion(pts(t, [][2]int64{{0, 0}, {4, 0}, {4, 4}, {0, 4}}), nil)
	require.NoError(t, err)

	stitched, err := region.Points()
	require.NoError(t, err)

	outside, err := NewRing(pts(t, [][2]int64{{100, 100}, {200, 100}, {150, 200}}))
	require.NoError(t, err)

	var gen idGen
	comps := map[ComponentID]*ConvexComponent{
		1: {ID: 1, ring: outside},
	}

	guards, visibility, err := BuildGuards(region, stitched, comps, &gen)
	require.ErrorIs(t, err, ErrGuardCoverage)
	require.Nil(t, guards)
	require.Nil(t, visibility)
}

// TestFullPipelineIsIdempotent rebuilds the same region twice and checks
// that every derived stage (stitched ring, ear count, guard count) agrees,
// matching the determinism invariant spec §9 requires of the whole
// pipeline.
func TestFullPipelineIsIdempotent(t *testing.T) {
	build := func() (int, int, int, error) {
		outer := pts(t, [][2]int64{{0, 0}, {20, 0}, {20, 20}, {0, 20}})
		region, err := NewRegion(outer, nil)
		if err != nil {
			return 0, 0, 0, err
		}
		stitched, err := region.Points()
		if err != nil {
			return 0, 0, 0, err
		}
		ears, err := region.Ears()
		if err != nil {
			return 0, 0, 0, err
		}
		guards, err := region.Guards()
		if err != nil {
			return 0, 0, 0, err
		}
		return stitched.Len(), len(ears), len(guards), nil
	}

	l1, e1, g1, err := build()
	require.NoError(t, err)
	l2, e2, g2, err := build()
	require.NoError(t, err)

	require.Equal(t, l1, l2)
	require.Equal(t, e1, e2)
	require.Equal(t, g1, g2)
}
