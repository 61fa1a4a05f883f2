package integrator

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/scene"
)

// PathTracer implements recursive light transport with next-event
// estimation: direct lighting via shadow rays at every diffuse bounce,
// indirect lighting via cosine-weighted hemisphere sampling.
type PathTracer struct {
	maxDepth int
}

// NewPathTracer creates a path tracer with the given maximum bounce count.
// A maxDepth of 0 still shades the first hit (emission plus direct
// lighting) but casts no indirect bounce rays.
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{maxDepth: maxDepth}
}

// Li computes the radiance arriving along a primary ray
func (pt *PathTracer) Li(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, s, sampler, pt.maxDepth, true)
}

// rayColor recursively traces a ray through the scene.
//
// countEmitted is true only for camera rays: bounce rays already gather
// light-source radiance through shadow rays, so counting the emission of
// light geometry they happen to hit would double the contribution.
func (pt *PathTracer) rayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, depth int, countEmitted bool) core.Vec3 {
	// Recursion bound, a defined termination rather than an error
	if depth < 0 {
		return core.Vec3{}
	}

	hit, ok := s.HitWorld(ray, scene.ShadowEpsilon, math.Inf(1))
	if !ok {
		return s.Background(ray)
	}

	var emitted core.Vec3
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive && countEmitted {
		emitted = emitter.Emit(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return emitted
	}

	direct := pt.directLighting(s, hit, scatter.Attenuation, sampler)

	var indirect core.Vec3
	if depth > 0 {
		// Cosine-weighted sampling matches the Lambertian BRDF's density,
		// so the estimator weight collapses to the plain albedo
		indirect = scatter.Attenuation.MultiplyVec(
			pt.rayColor(scatter.Scattered, s, sampler, depth-1, false))
	}

	return emitted.Add(direct).Add(indirect)
}

// directLighting accumulates the contribution of every light source
// visible from the hit point
func (pt *PathTracer) directLighting(s *scene.Scene, hit *core.HitRecord, albedo core.Vec3, sampler core.Sampler) core.Vec3 {
	var sum core.Vec3

	for _, light := range s.GetLights() {
		ls := light.Sample(hit.Point, sampler.Get2D())
		if ls.PDF <= 0 || ls.Distance <= 0 {
			continue
		}

		// Lambertian cosine term; lights behind the surface contribute nothing
		cosine := ls.Direction.Dot(hit.Normal)
		if cosine <= 0 {
			continue
		}

		shadowRay := core.NewRay(hit.Point, ls.Direction)
		if s.IsOccluded(shadowRay, ls.Distance) {
			continue
		}

		sum = sum.Add(albedo.MultiplyVec(ls.Emission).Multiply(cosine / ls.PDF))
	}

	return sum
}
