package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/prism-render/prism/log"
	"github.com/prism-render/prism/pkg/core"
	"github.com/prism-render/prism/pkg/integrator"
	"github.com/prism-render/prism/pkg/scene"
)

// Config contains scheduler configuration
type Config struct {
	TileSize   int   // Edge length of square work tiles
	NumWorkers int   // Number of parallel workers (0 = CPU count)
	Seed       int64 // Base seed for per-pixel sample streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0,
		Seed:       42,
	}
}

// Renderer schedules a full render of a scene across a worker pool and
// assembles the result into a framebuffer
type Renderer struct {
	scene  *scene.Scene
	config Config
	logger log.Logger
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(s *scene.Scene, config Config, logger log.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	return &Renderer{scene: s, config: config, logger: logger}
}

// Render traces the full image and blocks until every tile has completed.
// The scene must not be mutated while Render is running.
func (r *Renderer) Render() (*Framebuffer, RenderStats, error) {
	if err := r.validate(); err != nil {
		return nil, RenderStats{}, err
	}

	width := r.scene.Camera.Width()
	height := r.scene.Camera.Height()
	spp := r.scene.Sampling.SamplesPerPixel

	fb, err := NewFramebuffer(width, height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	tiles := NewTileGrid(width, height, r.config.TileSize)
	pool := NewWorkerPool(r.config.NumWorkers, len(tiles))
	pt := integrator.NewPathTracer(r.scene.Sampling.MaxDepth)

	r.logger.Infof("rendering %dx%d, %d spp, %d tiles on %d workers",
		width, height, spp, len(tiles), pool.NumWorkers())

	start := time.Now()
	pool.Start(func(task TileTask) TileResult {
		return r.renderTile(task, fb, pt)
	})

	for id, tile := range tiles {
		pool.Submit(TileTask{Tile: tile, TaskID: id})
	}

	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: spp,
		Tiles:           len(tiles),
		Workers:         pool.NumWorkers(),
	}

	for i := 0; i < len(tiles); i++ {
		result := pool.Result()
		if result.Err != nil {
			pool.Stop()
			return nil, RenderStats{}, result.Err
		}
		stats.TotalSamples += result.Samples

		if done := i + 1; done%16 == 0 || done == len(tiles) {
			r.logger.Infof("progress: %d/%d tiles (%.1f%%)",
				done, len(tiles), 100*float64(done)/float64(len(tiles)))
		}
	}
	pool.Stop()

	stats.AvgLuminance = averageLuminance(fb)
	stats.RenderTime = time.Since(start)
	return fb, stats, nil
}

// averageLuminance is the mean perceptual luminance of the linear
// framebuffer, a cheap sanity signal for exposure and light setup
func averageLuminance(fb *Framebuffer) float64 {
	pixels := fb.Pixels()
	var sum float64
	for _, p := range pixels {
		sum += p.Luminance()
	}
	return sum / float64(len(pixels))
}

// renderTile renders every pixel inside the task's bounds. Pixel sample
// streams are seeded from the pixel coordinate, so the result is identical
// regardless of which worker renders the tile.
func (r *Renderer) renderTile(task TileTask, fb *Framebuffer, pt *integrator.PathTracer) TileResult {
	bounds := task.Tile.Bounds
	spp := r.scene.Sampling.SamplesPerPixel
	invSpp := 1.0 / float64(spp)
	samples := 0

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			sampler := core.NewPixelSampler(r.config.Seed, i, j)

			var accum core.Vec3
			for s := 0; s < spp; s++ {
				ray := r.scene.Camera.GetRay(i, j, sampler.Get2D())
				accum = accum.Add(pt.Li(ray, r.scene, sampler))
			}
			samples += spp

			// Arithmetic mean over the pixel's samples
			fb.Set(i, j, accum.Multiply(invSpp))
		}
	}

	return TileResult{TaskID: task.TaskID, Samples: samples}
}

// validate fails fast on configurations that would produce a degenerate
// or empty output
func (r *Renderer) validate() error {
	if r.scene == nil || r.scene.Camera == nil {
		return fmt.Errorf("renderer: scene with camera required")
	}
	if r.scene.Camera.Width() <= 0 || r.scene.Camera.Height() <= 0 {
		return fmt.Errorf("renderer: invalid resolution %dx%d",
			r.scene.Camera.Width(), r.scene.Camera.Height())
	}
	if r.scene.Sampling.SamplesPerPixel <= 0 {
		return fmt.Errorf("renderer: samples per pixel must be positive, got %d",
			r.scene.Sampling.SamplesPerPixel)
	}
	if r.scene.Sampling.MaxDepth < 0 {
		return fmt.Errorf("renderer: max depth must be non-negative, got %d",
			r.scene.Sampling.MaxDepth)
	}
	return nil
}
