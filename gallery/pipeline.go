package gallery

import "github.com/artgallery-go/gallery/r2"

// Points returns the stitched simple polygon (spec §4.C1), computing and
// caching it on first call.
func (r *Region) Points() (Ring, error) {
	if r.stitched != nil {
		return *r.stitched, nil
	}
	ring, err := Stitch(r)
	if err != nil {
		return Ring{}, err
	}
	r.stitched = &ring
	return ring, nil
}

// Ears returns the stitched polygon's ear-clip triangulation (spec §4.C2),
// computing and caching it on first call.
func (r *Region) Ears() ([]Triangle, error) {
	if r.ears != nil {
		return r.ears, nil
	}
	stitched, err := r.Points()
	if err != nil {
		return nil, err
	}
	tris, err := Ears(stitched)
	if err != nil {
		return nil, err
	}
	r.ears = tris
	return tris, nil
}

// ConvexComponents returns the maximal convex partition built by merging
// adjacent ear triangles (spec §4.C3), computing and caching it on first
// call.
func (r *Region) ConvexComponents() (map[ComponentID]*ConvexComponent, error) {
	if r.components != nil {
		return r.components, nil
	}
	tris, err := r.Ears()
	if err != nil {
		return nil, err
	}
	r.components = BuildConvexComponents(tris, &r.ids)
	return r.components, nil
}

// Guards returns the selected guard set (spec §4.C4, phases A and B),
// computing and caching it, along with their visibility sets, on first
// call.
func (r *Region) Guards() (map[GuardID]*Guard, error) {
	if r.guards != nil {
		return r.guards, nil
	}
	if _, err := r.Visibility(); err != nil {
		return nil, err
	}
	return r.guards, nil
}

// Visibility returns each selected guard's set of visible stitched-polygon
// vertices, computing and caching both the guard set and the visibility
// map on first call.
func (r *Region) Visibility() (map[GuardID][]r2.Point, error) {
	if r.visibility != nil {
		return r.visibility, nil
	}
	stitched, err := r.Points()
	if err != nil {
		return nil, err
	}
	comps, err := r.ConvexComponents()
	if err != nil {
		return nil, err
	}
	guards, visibility, err := BuildGuards(r, stitched, comps, &r.ids)
	if err != nil {
		return nil, err
	}
	r.guards = guards
	r.visibility = visibility
	return visibility, nil
}

// SeesTarget is either an r2.Point or a *ConvexComponent, accepted by
// Region.SeesFrom.
type SeesTarget interface {
	isSeesTarget()
}

type pointTarget r2.Point

func (pointTarget) isSeesTarget() {}

type componentTarget struct{ c *ConvexComponent }

func (componentTarget) isSeesTarget() {}

// PointTarget wraps a point as a SeesTarget.
func PointTarget(p r2.Point) SeesTarget { return pointTarget(p) }

// ComponentTarget wraps a convex component as a SeesTarget: a component is
// seen iff every one of its vertices is seen.
func ComponentTarget(c *ConvexComponent) SeesTarget { return componentTarget{c} }

// SeesFrom reports whether src sees dst, where dst is either a single point
// or an entire convex component (spec §6).
func (r *Region) SeesFrom(src r2.Point, dst SeesTarget) bool {
	switch v := dst.(type) {
	case pointTarget:
		return r.Sees(src, r2.Point(v))
	case componentTarget:
		return componentSeenBy(r, src, v.c)
	default:
		panic("region: unsupported SeesTarget")
	}
}
