package lights

import "github.com/prism-render/prism/pkg/core"

// PointLight represents an infinitesimal light source with inverse-square
// distance falloff
type PointLight struct {
	position  core.Vec3
	intensity core.Vec3
}

// NewPointLight creates a new point light at the given position.
// Intensity is the radiant intensity per color channel; received radiance
// falls off with the square of the distance.
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{position: position, intensity: intensity}
}

// Sample implements the Light interface. Point lights are delta lights:
// the sample is always the light position and the PDF is 1.
func (pl *PointLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	toLight := pl.position.Subtract(point)
	distance := toLight.Length()

	if distance == 0 {
		// Shading point exactly at the light position
		return LightSample{
			Point:     pl.position,
			Direction: core.NewVec3(0, 1, 0),
			Distance:  0,
			Emission:  core.NewVec3(0, 0, 0),
			PDF:       1.0,
		}
	}

	return LightSample{
		Point:     pl.position,
		Direction: toLight.Multiply(1.0 / distance),
		Distance:  distance,
		Emission:  pl.intensity.Multiply(1.0 / (distance * distance)),
		PDF:       1.0,
	}
}
