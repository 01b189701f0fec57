// Package length provides the one place floating point is allowed to appear
// in this module: reporting the physical length of a segment. It never
// feeds back into a predicate — every containment, orientation and
// intersection test lives in exact rational arithmetic in package r2.
package length

import (
	"fmt"
	"math"

	"github.com/artgallery-go/gallery/rat"
)

// Length is a reporting-only Euclidean distance.
type Length float64

// FromSquared returns the Length corresponding to an exact squared
// distance (as produced by r2.Segment.Length2), taking the one square root
// this module permits.
func FromSquared(sq rat.Scalar) Length {
	return Length(math.Sqrt(sq.Float64()))
}

func (l Length) String() string {
	return fmt.Sprintf("%.6g", float64(l))
}
