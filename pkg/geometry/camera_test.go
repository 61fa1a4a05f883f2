package geometry

import (
	"math"
	"testing"

	"github.com/prism-render/prism/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 2.0,
		VFov:        90.0,
	}
}

func TestCamera_Dimensions(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	if camera.Width() != 400 {
		t.Errorf("Expected width 400, got %d", camera.Width())
	}
	if camera.Height() != 200 {
		t.Errorf("Expected height 200, got %d", camera.Height())
	}
}

func TestCamera_CenterRay(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	// The ray through the image center points at the look-at target.
	// With even dimensions the center lies on the corner shared by the four
	// middle pixels, reached from pixel (w/2, h/2) at jitter (0,0).
	ray := camera.GetRay(camera.Width()/2, camera.Height()/2, core.NewVec2(0, 0))

	expected := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray direction %v, got %v", expected, ray.Direction)
	}
	if ray.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected ray origin at camera center, got %v", ray.Origin)
	}
}

func TestCamera_RayDirectionsNormalized(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	for _, px := range [][2]int{{0, 0}, {399, 0}, {0, 199}, {399, 199}, {200, 100}} {
		ray := camera.GetRay(px[0], px[1], core.NewVec2(0.5, 0.5))
		if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
			t.Errorf("Ray through (%d,%d) not normalized: length %f",
				px[0], px[1], ray.Direction.Length())
		}
	}
}

func TestCamera_ImageOrientation(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	top := camera.GetRay(200, 0, core.NewVec2(0.5, 0.5))
	bottom := camera.GetRay(200, 199, core.NewVec2(0.5, 0.5))
	left := camera.GetRay(0, 100, core.NewVec2(0.5, 0.5))
	right := camera.GetRay(399, 100, core.NewVec2(0.5, 0.5))

	// Pixel (0,0) is top-left: y decreases with increasing row index
	if top.Direction.Y <= bottom.Direction.Y {
		t.Error("Expected top rows to point higher than bottom rows")
	}
	if left.Direction.X >= right.Direction.X {
		t.Error("Expected left columns to point further left than right columns")
	}
}

func TestCamera_JitterStaysInsidePixel(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	center := camera.GetRay(100, 100, core.NewVec2(0.5, 0.5))
	corner := camera.GetRay(100, 100, core.NewVec2(0.0, 0.0))
	neighbor := camera.GetRay(101, 100, core.NewVec2(0.5, 0.5))

	jitterDelta := corner.Direction.Subtract(center.Direction).Length()
	pixelDelta := neighbor.Direction.Subtract(center.Direction).Length()

	if jitterDelta >= pixelDelta {
		t.Errorf("Jitter offset (%g) should stay within one pixel spacing (%g)",
			jitterDelta, pixelDelta)
	}
}
