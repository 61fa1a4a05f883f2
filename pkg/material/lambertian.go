package material

import (
	"github.com/prism-render/prism/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance in [0,1] per channel
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// Directions are cosine-weighted, which exactly matches the Lambertian
// BRDF's cos(θ)/π density, so the Monte Carlo weight reduces to the albedo.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	scatterDirection := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	scattered := core.NewRay(hit.Point, scatterDirection)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo,
	}, true
}
