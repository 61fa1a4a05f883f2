package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/urfave/cli"

	"github.com/prism-render/prism/log"
	"github.com/prism-render/prism/pkg/geometry"
	"github.com/prism-render/prism/pkg/imageio"
	"github.com/prism-render/prism/pkg/renderer"
	"github.com/prism-render/prism/pkg/scene"
)

// Gamma applied when quantizing the linear framebuffer for file output.
const outputGamma = 2.0

// RenderScene renders a built-in scene to an image file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	info, err := scene.Get(ctx.String("scene"))
	if err != nil {
		return err
	}

	overrides := geometry.CameraConfig{Width: ctx.Int("width")}
	if height := ctx.Int("height"); height > 0 && overrides.Width > 0 {
		overrides.AspectRatio = float64(overrides.Width) / float64(height)
	}
	sc := info.Build(overrides)

	if spp := ctx.Int("spp"); spp != 0 {
		sc.Sampling.SamplesPerPixel = spp
	}
	if depth := ctx.Int("max-depth"); ctx.IsSet("max-depth") {
		sc.Sampling.MaxDepth = depth
	}

	r := renderer.NewRenderer(sc, renderer.Config{
		TileSize:   ctx.Int("tile-size"),
		NumWorkers: ctx.Int("workers"),
		Seed:       ctx.Int64("seed"),
	}, log.New("renderer"))

	fb, stats, err := r.Render()
	if err != nil {
		return err
	}

	out := ctx.String("out")
	writer, err := imageio.ForPath(out)
	if err != nil {
		return err
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := writer.Encode(file, fb.ToRGBA(outputGamma)); err != nil {
		return fmt.Errorf("encode %s: %w", writer.Extension(), err)
	}

	displayRenderStats(stats)
	logHostInfo()
	logger.Noticef("frame saved to %s", out)

	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Samples/pixel", "Total samples", "Tiles", "Workers", "Avg luminance", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.4f", stats.AvgLuminance),
		stats.RenderTime.String(),
	})
	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}

// logHostInfo reports the hardware the render ran on at Info level.
func logHostInfo() {
	cores, err := cpu.Counts(true)
	if err != nil {
		logger.Debugf("cpu info unavailable: %v", err)
		return
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		logger.Debugf("memory info unavailable: %v", err)
		return
	}
	logger.Infof("host: %d logical cores, %.1f%% of %d MiB memory in use",
		cores, vm.UsedPercent, vm.Total/(1024*1024))
}
