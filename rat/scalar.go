// Package rat implements an exact rational scalar type used throughout the
// gallery packages. Every geometric predicate in this module (orientation,
// containment, intersection) is decided with this type; none of them ever
// compares magnitudes through floating point.
package rat

import (
	"fmt"
	"math/big"
)

// Scalar is an exact rational number. The zero Scalar represents 0.
// Scalars are value types and safe to copy.
type Scalar struct {
	r big.Rat
}

// Zero is the additive identity.
var Zero = Scalar{}

// FromInt64 returns the exact scalar equal to n.
func FromInt64(n int64) Scalar {
	var s Scalar
	s.r.SetInt64(n)
	return s
}

// FromFrac returns the exact scalar num/den.
func FromFrac(num, den int64) Scalar {
	var s Scalar
	s.r.SetFrac64(num, den)
	return s
}

// Parse converts a decimal or fractional string ("3", "3.14", "-7/2") into
// an exact Scalar, preserving every digit of the written precision. It never
// routes through float64.
func Parse(s string) (Scalar, error) {
	var v Scalar
	if _, ok := v.r.SetString(s); !ok {
		return Scalar{}, fmt.Errorf("rat: cannot parse %q as an exact scalar", s)
	}
	return v, nil
}

// MustParse is Parse but panics on a malformed literal; useful for
// constructing fixed test fixtures and constants.
func MustParse(s string) Scalar {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Add returns a+b.
func Add(a, b Scalar) Scalar {
	var out Scalar
	out.r.Add(&a.r, &b.r)
	return out
}

// Sub returns a-b.
func Sub(a, b Scalar) Scalar {
	var out Scalar
	out.r.Sub(&a.r, &b.r)
	return out
}

// Mul returns a*b.
func Mul(a, b Scalar) Scalar {
	var out Scalar
	out.r.Mul(&a.r, &b.r)
	return out
}

// Quo returns a/b. Panics if b is zero, matching big.Rat's own behavior.
func Quo(a, b Scalar) Scalar {
	var out Scalar
	out.r.Quo(&a.r, &b.r)
	return out
}

// Neg returns -a.
func Neg(a Scalar) Scalar {
	var out Scalar
	out.r.Neg(&a.r)
	return out
}

// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
func Cmp(a, b Scalar) int {
	return a.r.Cmp(&b.r)
}

// Sign returns -1, 0 or +1 according to the sign of a.
func Sign(a Scalar) int {
	return a.r.Sign()
}

// Equal reports whether a and b are the same exact value.
func Equal(a, b Scalar) bool {
	return a.r.Cmp(&b.r) == 0
}

// Less reports whether a < b.
func Less(a, b Scalar) bool {
	return a.r.Cmp(&b.r) < 0
}

// IsZero reports whether a is exactly zero.
func IsZero(a Scalar) bool {
	return a.r.Sign() == 0
}

// Min returns the lesser of a and b.
func Min(a, b Scalar) Scalar {
	if Less(b, a) {
		return b
	}
	return a
}

// Max returns the greater of a and b.
func Max(a, b Scalar) Scalar {
	if Less(a, b) {
		return b
	}
	return a
}

// Float64 returns the nearest float64 to a. This is a reporting-only
// conversion: it must never feed back into a predicate.
func (a Scalar) Float64() float64 {
	f, _ := a.r.Float64()
	return f
}

// String renders a in the shortest form that round-trips, e.g. "7/2".
func (a Scalar) String() string {
	return a.r.RatString()
}
