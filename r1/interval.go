// Package r1 implements a one-dimensional closed interval over exact
// rational scalars, adapted from the float64 interval of the same name in
// the teacher's own r1 package.
package r1

import (
	"fmt"

	"github.com/artgallery-go/gallery/rat"
)

// Interval is a closed interval [Lo, Hi] of exact scalars. If Lo > Hi the
// interval is empty.
type Interval struct {
	Lo, Hi rat.Scalar
}

// Empty returns an empty interval.
func Empty() Interval {
	return Interval{Lo: rat.FromInt64(1), Hi: rat.Zero}
}

// FromPoint returns the degenerate interval containing only p.
func FromPoint(p rat.Scalar) Interval {
	return Interval{Lo: p, Hi: p}
}

// FromPoints returns the smallest interval containing both a and b.
func FromPoints(a, b rat.Scalar) Interval {
	return Interval{Lo: rat.Min(a, b), Hi: rat.Max(a, b)}
}

// IsEmpty reports whether the interval contains no points.
func (i Interval) IsEmpty() bool {
	return rat.Less(i.Hi, i.Lo)
}

// Contains reports whether the interval contains p, endpoints included.
func (i Interval) Contains(p rat.Scalar) bool {
	return !rat.Less(p, i.Lo) && !rat.Less(i.Hi, p)
}

// InteriorContains reports whether the interval strictly contains p.
func (i Interval) InteriorContains(p rat.Scalar) bool {
	return rat.Less(i.Lo, p) && rat.Less(p, i.Hi)
}

// ContainsInterval reports whether i contains every point of o.
func (i Interval) ContainsInterval(o Interval) bool {
	if o.IsEmpty() {
		return true
	}
	return !rat.Less(o.Lo, i.Lo) && !rat.Less(i.Hi, o.Hi)
}

// Intersects reports whether i and o share at least one point.
func (i Interval) Intersects(o Interval) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return false
	}
	return !rat.Less(i.Hi, o.Lo) && !rat.Less(o.Hi, i.Lo)
}

// Union returns the smallest interval containing both i and o.
func (i Interval) Union(o Interval) Interval {
	if i.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return i
	}
	return Interval{Lo: rat.Min(i.Lo, o.Lo), Hi: rat.Max(i.Hi, o.Hi)}
}

// Equal reports whether i and o contain exactly the same points.
func (i Interval) Equal(o Interval) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return i.IsEmpty() && o.IsEmpty()
	}
	return rat.Equal(i.Lo, o.Lo) && rat.Equal(i.Hi, o.Hi)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s]", i.Lo, i.Hi)
}
