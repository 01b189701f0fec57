// Package gallery solves the art gallery problem for a polygonal floor plan
// with holes: stitch the holes into the outer boundary, triangulate the
// result, merge triangles into maximal convex components, and select a
// small set of vertex guards covering the whole interior.
package gallery
