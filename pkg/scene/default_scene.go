package scene

import (
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/material"
)

// NewDefaultScene creates the default scene: a small diffuse cube and two
// spheres inside a large white room, lit by a single point light
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(-7, 10, -10),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       1280,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig)
	s.SetBackground(core.NewVec3(0.0, 0.75, 1.0), core.NewVec3(0.0, 0.75, 1.0))
	s.Sampling = SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        16,
	}

	brownDiffuse := material.NewLambertian(core.NewVec3(0.6, 0.4, 0.3))
	whiteDiffuse := material.NewLambertian(core.NewVec3(1.0, 1.0, 1.0))
	blueDiffuse := material.NewLambertian(core.NewVec3(0.1, 0.1, 1.0))
	greenDiffuse := material.NewLambertian(core.NewVec3(0.1, 1.0, 0.1))

	// Unit cube at the origin
	s.AddMesh(geometry.NewBoxMesh(
		core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), brownDiffuse))

	// Enclosing white room with inward-facing walls
	s.AddMesh(geometry.NewRoomMesh(
		core.NewVec3(-20, -20, -20), core.NewVec3(20, 20, 20), whiteDiffuse))

	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -0.8), 1.2, blueDiffuse))
	s.AddShape(geometry.NewSphere(core.NewVec3(-0.8, 1.2, 0), 0.3, greenDiffuse))

	s.AddPointLight(core.NewVec3(-5, 8, 10), core.NewVec3(100, 100, 100))

	return s
}

// MergeCameraConfig overlays non-zero fields of override onto base
func MergeCameraConfig(base, override geometry.CameraConfig) geometry.CameraConfig {
	merged := base
	zero := core.Vec3{}
	if override.Center != zero {
		merged.Center = override.Center
	}
	if override.LookAt != zero {
		merged.LookAt = override.LookAt
	}
	if override.Up != zero {
		merged.Up = override.Up
	}
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	return merged
}
