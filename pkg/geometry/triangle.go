package geometry

import (
	"github.com/prism-render/prism/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Material   core.Material // Material of the triangle

	normal        core.Vec3   // Cached geometric normal
	vertexNormals []core.Vec3 // Optional per-vertex normals for smooth shading
	degenerate    bool        // True for zero-area triangles, which never hit
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
	}
	t.computeNormal()
	return t
}

// NewTriangleWithNormals creates a triangle with per-vertex normals.
// Hits interpolate the vertex normals with the barycentric weights.
func NewTriangleWithNormals(v0, v1, v2 core.Vec3, n0, n1, n2 core.Vec3, material core.Material) *Triangle {
	t := NewTriangle(v0, v1, v2, material)
	t.vertexNormals = []core.Vec3{n0.Normalize(), n1.Normalize(), n2.Normalize()}
	return t
}

// computeNormal calculates and caches the triangle's geometric normal
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	cross := edge1.Cross(edge2)
	if cross.LengthSquared() == 0 {
		// Zero-area triangle: mark degenerate instead of producing a NaN normal
		t.degenerate = true
		return
	}
	t.normal = cross.Normalize()
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	const epsilon = 1e-9

	if t.degenerate {
		return nil, false
	}

	// Calculate two edge vectors
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	// Calculate determinant
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)

	// Check if intersection is outside triangle
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)

	// Check if intersection is outside triangle
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	// Calculate t parameter
	tParam := f * edge2.Dot(q)

	// Check if intersection is within valid range
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.shadingNormal(u, v))

	return hitRecord, true
}

// shadingNormal returns the interpolated vertex normal when available,
// or the geometric normal otherwise
func (t *Triangle) shadingNormal(u, v float64) core.Vec3 {
	if t.vertexNormals == nil {
		return t.normal
	}
	w := 1.0 - u - v
	return t.vertexNormals[0].Multiply(w).
		Add(t.vertexNormals[1].Multiply(u)).
		Add(t.vertexNormals[2].Multiply(v)).
		Normalize()
}

// Normal returns the triangle's geometric normal vector
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
