package scene

import (
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/lights"
)

// ShadowEpsilon offsets ray interval endpoints to avoid re-hitting the
// originating surface due to floating-point error. Chosen empirically for
// scenes with unit-scale geometry.
const ShadowEpsilon = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        16,
	}
}

// Scene holds the shapes, lights and camera of a renderable world.
// A scene must not be mutated once rendering starts: all workers read it
// concurrently without locking.
type Scene struct {
	Shapes       []geometry.Shape
	Lights       []lights.Light
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Sampling     SamplingConfig

	// Background colors for rays that miss all geometry. A vertical
	// gradient from bottom to top; equal colors give a constant background.
	BackgroundTop    core.Vec3
	BackgroundBottom core.Vec3
}

// NewScene creates an empty scene with the given camera configuration
func NewScene(cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Shapes:       make([]geometry.Shape, 0),
		Lights:       make([]lights.Light, 0),
		Camera:       geometry.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Sampling:     DefaultSamplingConfig(),
	}
}

// AddShape adds a shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddMesh adds every triangle of a mesh to the scene
func (s *Scene) AddMesh(mesh *geometry.Mesh) {
	for _, tri := range mesh.Triangles {
		s.Shapes = append(s.Shapes, tri)
	}
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position, intensity core.Vec3) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, intensity))
}

// AddSphereLight adds a spherical area light. The light is registered both
// as a sampled light source and as emissive geometry visible to camera rays.
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) {
	light := lights.NewSphereLight(center, radius, emission)
	s.Lights = append(s.Lights, light)
	s.Shapes = append(s.Shapes, light.Sphere)
}

// SetBackground sets a vertical gradient background
func (s *Scene) SetBackground(top, bottom core.Vec3) {
	s.BackgroundTop = top
	s.BackgroundBottom = bottom
}

// HitWorld returns the nearest intersection of the ray with any shape in
// the scene within [tMin, tMax]
func (s *Scene) HitWorld(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// IsOccluded reports whether any shape blocks the ray before maxDist.
// Unlike HitWorld it short-circuits on the first hit, since shadow rays
// only need a yes/no answer.
func (s *Scene) IsOccluded(ray core.Ray, maxDist float64) bool {
	for _, shape := range s.Shapes {
		if _, ok := shape.Hit(ray, ShadowEpsilon, maxDist-ShadowEpsilon); ok {
			return true
		}
	}
	return false
}

// Background returns the background color for a ray that missed all geometry
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	// Map direction y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	// Lerp written so equal endpoints reproduce the color bit-exactly
	return s.BackgroundBottom.Add(
		s.BackgroundTop.Subtract(s.BackgroundBottom).Multiply(t))
}

// GetLights returns the scene's light sources
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}
