package geometry

import "github.com/prism-render/prism/pkg/core"

// Shape interface for objects that can be intersected by rays
type Shape interface {
	// Hit tests if a ray intersects the shape within the parametric
	// interval [tMin, tMax]. Degenerate geometry never hits.
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
}
