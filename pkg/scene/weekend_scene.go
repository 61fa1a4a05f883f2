package scene

import (
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/material"
)

// NewWeekendScene creates the classic two-sphere scene: a gray ball resting
// on a much larger ground sphere under a sky gradient, lit by an emissive
// sphere standing in for the sun
func NewWeekendScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       800,
		AspectRatio: 16.0 / 9.0,
		VFov:        63.4,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig)
	s.SetBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
	s.Sampling = SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        16,
	}

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray))

	s.AddSphereLight(core.NewVec3(20, 25, 10), 8, core.NewVec3(6, 5.8, 5.4))

	return s
}
