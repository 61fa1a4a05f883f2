package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/prism-render/prism/pkg/core"
)

// Framebuffer is the output pixel grid of a render. Pixels hold
// linear-light RGB values and are stored row-major, top-to-bottom:
// index 0 is the top-left pixel.
//
// During a render each pixel is written by exactly one worker (the one
// that owns its tile), so no locking is needed.
type Framebuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer of the given dimensions
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid framebuffer dimensions %dx%d", width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}, nil
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Set writes the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[y*fb.width+x] = c
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// Pixels returns the raw pixel slice, row-major, top-to-bottom
func (fb *Framebuffer) Pixels() []core.Vec3 {
	return fb.pixels
}

// ToRGBA converts the framebuffer to an 8-bit RGBA image, applying gamma
// correction and clamping to the displayable range
func (fb *Framebuffer) ToRGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.At(x, y).GammaCorrect(gamma).Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.X * 255.999),
				G: uint8(c.Y * 255.999),
				B: uint8(c.Z * 255.999),
				A: 255,
			})
		}
	}
	return img
}
