package renderer

import (
	"math"
	"testing"

	"github.com/prism-render/prism/log"
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/material"
	"github.com/prism-render/prism/pkg/scene"
)

func testLogger() log.Logger {
	return log.New("renderer-test")
}

// newApexScene is a closed-form scenario: a white unit sphere at the origin,
// a point light 5 units above with intensity 10, and a camera looking
// straight down the light axis. The sphere apex is 4 units from the light
// with cosine 1, so its radiance is exactly 10/16 = 0.625.
func newApexScene(width int) *scene.Scene {
	s := scene.NewScene(geometry.CameraConfig{
		Center:      core.NewVec3(0, 3, 0),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 0, -1),
		Width:       width,
		AspectRatio: 1.0,
		VFov:        5.0,
	})
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, 0), 1,
		material.NewLambertian(core.NewVec3(1, 1, 1))))
	s.AddPointLight(core.NewVec3(0, 5, 0), core.NewVec3(10, 10, 10))
	s.Sampling = scene.SamplingConfig{SamplesPerPixel: 1, MaxDepth: 0}
	return s
}

func TestRenderer_ApexRadiance(t *testing.T) {
	s := newApexScene(9)

	fb, stats, err := NewRenderer(s, DefaultConfig(), testLogger()).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Narrow field of view keeps the center pixel's ray close to the axis
	got := fb.At(4, 4)
	if math.Abs(got.X-0.625) > 0.01 {
		t.Errorf("Expected apex radiance near 0.625, got %f", got.X)
	}
	if got.X != got.Y || got.Y != got.Z {
		t.Errorf("Expected achromatic shading, got %v", got)
	}

	if stats.TotalPixels != 81 {
		t.Errorf("Expected 81 pixels in stats, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 81 {
		t.Errorf("Expected 81 samples in stats, got %d", stats.TotalSamples)
	}

	// Stats luminance is the mean over the framebuffer
	var sum float64
	for _, p := range fb.Pixels() {
		sum += p.Luminance()
	}
	want := sum / float64(len(fb.Pixels()))
	if want <= 0 {
		t.Fatal("Expected a lit frame with positive mean luminance")
	}
	if math.Abs(stats.AvgLuminance-want) > 1e-12 {
		t.Errorf("Expected average luminance %f in stats, got %f", want, stats.AvgLuminance)
	}
}

func TestRenderer_MissedPixelsMatchBackground(t *testing.T) {
	s := newApexScene(9)
	s.SetBackground(core.NewVec3(0.2, 0.3, 0.4), core.NewVec3(0.2, 0.3, 0.4))

	// Widen the view so the corner rays clear the sphere
	s.CameraConfig.VFov = 60.0
	s.Camera = geometry.NewCamera(s.CameraConfig)

	fb, _, err := NewRenderer(s, DefaultConfig(), testLogger()).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// The sphere fills the image center; corners miss and must carry the
	// background color exactly, no averaging artifacts at 1 spp
	for _, p := range [][2]int{{0, 0}, {8, 0}, {0, 8}, {8, 8}} {
		if got := fb.At(p[0], p[1]); got != core.NewVec3(0.2, 0.3, 0.4) {
			t.Errorf("Expected exact background at (%d,%d), got %v", p[0], p[1], got)
		}
	}
}

func TestRenderer_DeterministicAcrossWorkerCounts(t *testing.T) {
	build := func() *scene.Scene {
		s := scene.NewDefaultScene()
		s.CameraConfig.Width = 24
		s.Camera = geometry.NewCamera(s.CameraConfig)
		s.Sampling = scene.SamplingConfig{SamplesPerPixel: 4, MaxDepth: 3}
		return s
	}

	render := func(workers int) *Framebuffer {
		cfg := Config{TileSize: 8, NumWorkers: workers, Seed: 42}
		fb, _, err := NewRenderer(build(), cfg, testLogger()).Render()
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		return fb
	}

	serial := render(1)
	parallel := render(4)

	for i, want := range serial.Pixels() {
		if got := parallel.Pixels()[i]; got != want {
			t.Fatalf("Pixel %d differs between worker counts: %v vs %v", i, want, got)
		}
	}
}

func TestRenderer_SeedChangesOutput(t *testing.T) {
	render := func(seed int64) *Framebuffer {
		s := newApexScene(9)
		s.Sampling = scene.SamplingConfig{SamplesPerPixel: 2, MaxDepth: 2}
		cfg := DefaultConfig()
		cfg.Seed = seed
		fb, _, err := NewRenderer(s, cfg, testLogger()).Render()
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		return fb
	}

	a := render(1)
	b := render(2)

	same := true
	for i, p := range a.Pixels() {
		if b.Pixels()[i] != p {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected different seeds to produce different sample jitter")
	}
}

func TestRenderer_Validation(t *testing.T) {
	t.Run("Nil scene", func(t *testing.T) {
		_, _, err := NewRenderer(nil, DefaultConfig(), testLogger()).Render()
		if err == nil {
			t.Error("Expected error for nil scene")
		}
	})

	t.Run("Zero samples per pixel", func(t *testing.T) {
		s := newApexScene(9)
		s.Sampling.SamplesPerPixel = 0
		_, _, err := NewRenderer(s, DefaultConfig(), testLogger()).Render()
		if err == nil {
			t.Error("Expected error for zero samples per pixel")
		}
	})

	t.Run("Negative max depth", func(t *testing.T) {
		s := newApexScene(9)
		s.Sampling.MaxDepth = -1
		_, _, err := NewRenderer(s, DefaultConfig(), testLogger()).Render()
		if err == nil {
			t.Error("Expected error for negative max depth")
		}
	})
}

func TestRenderer_WorkerCountDefaults(t *testing.T) {
	s := newApexScene(9)
	r := NewRenderer(s, Config{TileSize: 8, NumWorkers: 0, Seed: 1}, testLogger())
	if r.config.NumWorkers <= 0 {
		t.Errorf("Expected worker count to default to CPU count, got %d", r.config.NumWorkers)
	}
	if r.config.TileSize != 8 {
		t.Errorf("Expected tile size 8 to be kept, got %d", r.config.TileSize)
	}
}
