package lights

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/material"
)

// SphereLight represents a spherical area light. It embeds a sphere with an
// emissive material so it is also visible to camera rays as scene geometry.
type SphereLight struct {
	*geometry.Sphere
	emission core.Vec3
}

// NewSphereLight creates a new spherical light
func NewSphereLight(center core.Vec3, radius float64, emission core.Vec3) *SphereLight {
	return &SphereLight{
		Sphere:   geometry.NewSphere(center, radius, material.NewEmissive(emission)),
		emission: emission,
	}
}

// Sample implements the Light interface by sampling the cone of directions
// subtended by the sphere as seen from the shading point
func (sl *SphereLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	toCenter := sl.Center.Subtract(point)
	distanceToCenter := toCenter.Length()

	// Shading point inside the sphere: sample the surface uniformly
	if distanceToCenter <= sl.Radius {
		return sl.sampleUniform(point, sample)
	}

	w := toCenter.Normalize()

	// Half-angle of the cone subtended by the sphere
	sinThetaMax := sl.Radius / distanceToCenter
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))

	direction := core.SampleCone(w, cosThetaMax, sample)

	// Find the actual surface point along the sampled direction
	ray := core.NewRay(point, direction)
	hit, ok := sl.Sphere.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		// Grazing cone directions can numerically miss; fall back to uniform
		return sl.sampleUniform(point, sample)
	}

	// PDF for uniform cone sampling: 1 / (2π * (1 - cos(θ_max)))
	pdf := 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))

	return LightSample{
		Point:     hit.Point,
		Direction: direction,
		Distance:  hit.T,
		Emission:  sl.emission,
		PDF:       pdf,
	}
}

// sampleUniform samples uniformly on the sphere surface and converts the
// area density to a solid-angle density
func (sl *SphereLight) sampleUniform(point core.Vec3, sample core.Vec2) LightSample {
	localDir := core.SampleOnUnitSphere(sample)
	samplePoint := sl.Center.Add(localDir.Multiply(sl.Radius))

	toSample := samplePoint.Subtract(point)
	distance := toSample.Length()
	if distance == 0 {
		return LightSample{PDF: 0}
	}
	direction := toSample.Multiply(1.0 / distance)

	// Area PDF over the full sphere
	areaPDF := 1.0 / (4.0 * math.Pi * sl.Radius * sl.Radius)

	// Convert to solid angle: pdf_ω = pdf_A * d² / |cos(θ_light)|
	cosAtLight := math.Abs(localDir.Dot(direction.Negate()))
	if cosAtLight == 0 {
		return LightSample{PDF: 0}
	}
	pdf := areaPDF * distance * distance / cosAtLight

	return LightSample{
		Point:     samplePoint,
		Direction: direction,
		Distance:  distance,
		Emission:  sl.emission,
		PDF:       pdf,
	}
}
