package geometry

import "github.com/prism-render/prism/pkg/core"

// Mesh is an indexed triangle mesh. Vertices are shared between faces;
// each face references three vertex indices in counter-clockwise winding.
type Mesh struct {
	Triangles []*Triangle
}

// NewMesh creates a mesh from a vertex list and face index list.
// Faces referencing out-of-range vertices are skipped; degenerate faces are
// kept as triangles that can never be hit.
func NewMesh(vertices []core.Vec3, faces [][3]int, material core.Material) *Mesh {
	m := &Mesh{Triangles: make([]*Triangle, 0, len(faces))}
	for _, face := range faces {
		if !validIndex(face, len(vertices)) {
			continue
		}
		m.Triangles = append(m.Triangles, NewTriangle(
			vertices[face[0]], vertices[face[1]], vertices[face[2]], material))
	}
	return m
}

func validIndex(face [3]int, vertexCount int) bool {
	for _, idx := range face {
		if idx < 0 || idx >= vertexCount {
			return false
		}
	}
	return true
}

// Hit tests the ray against every triangle in the mesh and returns the
// nearest hit within [tMin, tMax]
func (m *Mesh) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, tri := range m.Triangles {
		if hit, ok := tri.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// NewBoxMesh creates the 12 triangles of an axis-aligned box spanning
// [min, max], with faces wound so normals point outward
func NewBoxMesh(minCorner, maxCorner core.Vec3, material core.Material) *Mesh {
	vertices := []core.Vec3{
		core.NewVec3(minCorner.X, minCorner.Y, minCorner.Z), // 0
		core.NewVec3(maxCorner.X, minCorner.Y, minCorner.Z), // 1
		core.NewVec3(minCorner.X, maxCorner.Y, minCorner.Z), // 2
		core.NewVec3(maxCorner.X, maxCorner.Y, minCorner.Z), // 3
		core.NewVec3(minCorner.X, minCorner.Y, maxCorner.Z), // 4
		core.NewVec3(maxCorner.X, minCorner.Y, maxCorner.Z), // 5
		core.NewVec3(minCorner.X, maxCorner.Y, maxCorner.Z), // 6
		core.NewVec3(maxCorner.X, maxCorner.Y, maxCorner.Z), // 7
	}
	faces := [][3]int{
		{0, 2, 3}, {0, 3, 1}, // back   (-z)
		{4, 5, 7}, {4, 7, 6}, // front  (+z)
		{0, 4, 6}, {0, 6, 2}, // left   (-x)
		{1, 3, 7}, {1, 7, 5}, // right  (+x)
		{2, 6, 7}, {2, 7, 3}, // top    (+y)
		{0, 1, 5}, {0, 5, 4}, // bottom (-y)
	}
	return NewMesh(vertices, faces, material)
}

// NewRoomMesh creates a box with inward-facing normals, usable as walls
// enclosing a scene
func NewRoomMesh(minCorner, maxCorner core.Vec3, material core.Material) *Mesh {
	box := NewBoxMesh(minCorner, maxCorner, material)
	room := &Mesh{Triangles: make([]*Triangle, 0, len(box.Triangles))}
	for _, tri := range box.Triangles {
		// Reverse winding to flip the normal inward
		room.Triangles = append(room.Triangles, NewTriangle(tri.V0, tri.V2, tri.V1, material))
	}
	return room
}
