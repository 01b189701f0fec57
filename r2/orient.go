package r2

import "github.com/artgallery-go/gallery/rat"

// Direction is the sign of the orientation of an ordered point triple.
type Direction int

const (
	// CW means p, q, r turn clockwise (twice the signed area of pqr is
	// negative).
	CW Direction = -1
	// Collinear means p, q, r lie on a single line.
	Collinear Direction = 0
	// CCW means p, q, r turn counter-clockwise (twice the signed area of
	// pqr is positive).
	CCW Direction = 1
)

func (d Direction) String() string {
	switch d {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	default:
		return "Collinear"
	}
}

// Orient returns the sign of twice the signed area of triangle (p, q, r):
//
//	sign((qx-px)(ry-py) - (qy-py)(rx-px))
//
// This is the single orientation predicate every downstream convexity,
// containment and intersection test in this module is built from. It is
// computed with exact rational arithmetic, so it never needs an error bound.
func Orient(p, q, r Point) Direction {
	qp := q.Sub(p)
	rp := r.Sub(p)
	s := rat.Sub(rat.Mul(qp.X, rp.Y), rat.Mul(qp.Y, rp.X))
	switch rat.Sign(s) {
	case -1:
		return CW
	case 1:
		return CCW
	default:
		return Collinear
	}
}
