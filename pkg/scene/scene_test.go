package scene

import (
	"math"
	"testing"

	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/material"
)

func testScene() *Scene {
	return NewScene(geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       100,
		AspectRatio: 1.0,
		VFov:        45.0,
	})
}

func TestScene_HitWorld_NearestHit(t *testing.T) {
	s := testScene()
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	// Two spheres along the same ray; the closer one wins regardless of
	// insertion order
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -10), 1, mat))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, mat))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.HitWorld(ray, ShadowEpsilon, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected nearest hit at t=4, got t=%f", hit.T)
	}
}

func TestScene_HitWorld_EmptyScene(t *testing.T) {
	s := testScene()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, ok := s.HitWorld(ray, ShadowEpsilon, math.Inf(1)); ok {
		t.Error("Expected every ray to miss in an empty scene")
	}
}

func TestScene_IsOccluded(t *testing.T) {
	s := testScene()
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	// Blocker halfway between the origin and a light 10 units away
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 5, 0), 1, mat))

	shadowRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if !s.IsOccluded(shadowRay, 10.0) {
		t.Error("Expected blocker between surface and light to occlude")
	}

	// A ray pointing away from the blocker is unoccluded
	clearRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	if s.IsOccluded(clearRay, 10.0) {
		t.Error("Expected no occlusion away from the blocker")
	}
}

func TestScene_IsOccluded_BeyondLight(t *testing.T) {
	s := testScene()
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	// Shape behind the light must not shadow it
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 20, 0), 1, mat))

	shadowRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if s.IsOccluded(shadowRay, 10.0) {
		t.Error("Expected geometry beyond the light distance to be ignored")
	}
}

func TestScene_Background_Gradient(t *testing.T) {
	s := testScene()
	s.SetBackground(core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1))

	up := s.Background(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)))
	down := s.Background(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)))

	if up != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected top color straight up, got %v", up)
	}
	if down != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected bottom color straight down, got %v", down)
	}
}

func TestScene_Background_Constant(t *testing.T) {
	s := testScene()
	bg := core.NewVec3(0.2, 0.4, 0.6)
	s.SetBackground(bg, bg)

	// Equal endpoints must reproduce the color bit-exactly for every
	// direction, including oblique ones with irrational blend factors
	for _, dir := range []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 1, 1).Normalize(),
		core.NewVec3(-0.3, 0.7, 0.2).Normalize(),
	} {
		got := s.Background(core.NewRay(core.Vec3{}, dir))
		if got != bg {
			t.Errorf("Expected exact background %v for %v, got %v", bg, dir, got)
		}
	}
}

func TestScene_AddSphereLight_RegistersGeometry(t *testing.T) {
	s := testScene()
	s.AddSphereLight(core.NewVec3(0, 0, -5), 1, core.NewVec3(4, 4, 4))

	if len(s.Lights) != 1 {
		t.Fatalf("Expected 1 light, got %d", len(s.Lights))
	}
	if len(s.Shapes) != 1 {
		t.Fatalf("Expected light geometry in shapes, got %d shapes", len(s.Shapes))
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, ok := s.HitWorld(ray, ShadowEpsilon, math.Inf(1)); !ok {
		t.Error("Expected camera ray to hit the sphere light geometry")
	}
}

func TestRegistry(t *testing.T) {
	if _, err := Get("default"); err != nil {
		t.Errorf("Expected default scene to be registered: %v", err)
	}
	if _, err := Get("missing"); err == nil {
		t.Error("Expected error for unknown scene name")
	}

	list := List()
	if len(list) < 2 {
		t.Fatalf("Expected at least 2 registered scenes, got %d", len(list))
	}
	for _, info := range list {
		sc := info.Build()
		if sc.Camera == nil {
			t.Errorf("Scene %q built without camera", info.Name)
		}
		if sc.Sampling.SamplesPerPixel <= 0 {
			t.Errorf("Scene %q has invalid sampling config", info.Name)
		}
	}
}
