package material

import (
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func testHit(point, normal core.Vec3) core.HitRecord {
	return core.HitRecord{Point: point, Normal: normal, T: 1, FrontFace: true}
}

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.5, 0.3)
	mat := NewLambertian(albedo)
	hit := testHit(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))
	sampler := core.NewPixelSampler(42, 0, 0)

	rayIn := core.NewRay(core.NewVec3(0, 3, -2), core.NewVec3(0, -1, 1).Normalize())

	for i := 0; i < 100; i++ {
		result, ok := mat.Scatter(rayIn, hit, sampler)
		if !ok {
			t.Fatal("Lambertian should always scatter")
		}
		if result.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, result.Attenuation)
		}
		if result.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", result.Scattered.Origin)
		}
		if result.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered direction %v points below the surface", result.Scattered.Direction)
		}
	}
}

func TestEmissive_DoesNotScatter(t *testing.T) {
	mat := NewEmissive(core.NewVec3(5, 4, 3))
	hit := testHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	sampler := core.NewPixelSampler(1, 0, 0)

	rayIn := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	if _, ok := mat.Scatter(rayIn, hit, sampler); ok {
		t.Error("Emissive material should absorb, not scatter")
	}
}

func TestEmissive_Emit(t *testing.T) {
	emission := core.NewVec3(5, 4, 3)
	mat := NewEmissive(emission)

	rayIn := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	if got := mat.Emit(rayIn); got != emission {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}
}
