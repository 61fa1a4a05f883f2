// Package server exposes the renderer over HTTP for interactive preview:
// scene discovery, render-to-PNG, and host runtime information.
package server

import (
	"bytes"
	"net/http"
	"runtime"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/prism-render/prism/log"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/imageio"
	"github.com/prism-render/prism/pkg/renderer"
	"github.com/prism-render/prism/pkg/scene"
)

// Preview renders are clamped to keep request latency reasonable.
const (
	maxPreviewWidth   = 1920
	maxPreviewSamples = 256
	previewGamma      = 2.0
)

// Server wraps an echo instance with the preview routes registered
type Server struct {
	echo   *echo.Echo
	logger log.Logger
}

// SceneInfo is the JSON shape of a scene listing entry
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RuntimeInfo is the JSON shape of the runtime endpoint
type RuntimeInfo struct {
	GoVersion      string  `json:"goVersion"`
	LogicalCores   int     `json:"logicalCores"`
	Goroutines     int     `json:"goroutines"`
	MemUsedPercent float64 `json:"memUsedPercent"`
}

// New creates a preview server
func New(logger log.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, logger: logger}

	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/render", s.handleRender)
	e.GET("/api/runtime", s.handleRuntime)

	return s
}

// Start blocks serving HTTP on the given address
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) handleScenes(c echo.Context) error {
	infos := scene.List()
	out := make([]SceneInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, SceneInfo{Name: info.Name, Description: info.Description})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleRender(c echo.Context) error {
	name := c.QueryParam("scene")
	if name == "" {
		name = "default"
	}
	info, err := scene.Get(name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	overrides := geometry.CameraConfig{}
	if width := queryInt(c, "width", 0); width > 0 {
		overrides.Width = min(width, maxPreviewWidth)
	}
	sc := info.Build(overrides)

	// Preview defaults favor latency over quality
	sc.Sampling.SamplesPerPixel = min(queryInt(c, "spp", 16), maxPreviewSamples)
	sc.Sampling.MaxDepth = queryInt(c, "maxDepth", 8)

	r := renderer.NewRenderer(sc, renderer.Config{
		NumWorkers: queryInt(c, "workers", 0),
		TileSize:   64,
		Seed:       42,
	}, s.logger)

	s.logger.Infof("preview render: scene=%s %dx%d spp=%d",
		name, sc.Camera.Width(), sc.Camera.Height(), sc.Sampling.SamplesPerPixel)

	fb, stats, err := r.Render()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.logger.Infof("preview render finished in %s", stats.RenderTime)

	var buf bytes.Buffer
	if err := (imageio.PNGWriter{}).Encode(&buf, fb.ToRGBA(previewGamma)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) handleRuntime(c echo.Context) error {
	info := RuntimeInfo{
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
	}
	if cores, err := cpu.Counts(true); err == nil {
		info.LogicalCores = cores
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.MemUsedPercent = vm.UsedPercent
	}
	return c.JSON(http.StatusOK, info)
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
