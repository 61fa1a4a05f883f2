package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels     int           // Number of pixels rendered
	TotalSamples    int           // Total primary rays traced
	SamplesPerPixel int           // Configured samples per pixel
	Tiles           int           // Number of work units dispatched
	Workers         int           // Number of parallel workers used
	AvgLuminance    float64       // Mean linear-light luminance of the frame
	RenderTime      time.Duration // Wall-clock render duration
}
