package lights

import "github.com/prism-render/prism/pkg/core"

// Light interface for sources that can be sampled for direct lighting
type Light interface {
	// Sample samples the light toward a shading point.
	// The returned direction points FROM the shading point TO the light.
	Sample(point core.Vec3, sample core.Vec2) LightSample
}

// LightSample contains information about a sampled point on a light
type LightSample struct {
	Point     core.Vec3 // Point on the light source
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance from shading point to the sample
	Emission  core.Vec3 // Emitted radiance toward the shading point
	PDF       float64   // Solid-angle density of this sample (1 for delta lights)
}
