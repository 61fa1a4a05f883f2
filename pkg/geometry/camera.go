package geometry

import (
	"math"

	"github.com/prism-render/prism/pkg/core"
)

// CameraConfig contains camera setup parameters
type CameraConfig struct {
	Center      core.Vec3 // Camera position in world space
	LookAt      core.Vec3 // Point the camera is aimed at
	Up          core.Vec3 // World up direction
	Width       int       // Image width in pixels
	AspectRatio float64   // Width / height
	VFov        float64   // Vertical field of view in degrees
}

// Camera generates primary rays through pixel sample positions.
// Pixel (0,0) is the top-left corner of the image.
type Camera struct {
	config      CameraConfig
	origin      core.Vec3
	pixel00     core.Vec3 // Center of the top-left pixel
	pixelDeltaU core.Vec3 // Offset to the next pixel to the right
	pixelDeltaV core.Vec3 // Offset to the next pixel down
	imageWidth  int
	imageHeight int
}

// NewCamera creates a pinhole camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	imageHeight := int(float64(config.Width) / config.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	// Viewport dimensions from the vertical field of view
	focalLength := config.LookAt.Subtract(config.Center).Length()
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focalLength
	viewportWidth := viewportHeight * float64(config.Width) / float64(imageHeight)

	// Orthonormal camera basis
	w := config.Center.Subtract(config.LookAt).Normalize() // Points away from the scene
	u := config.Up.Cross(w).Normalize()                    // Points right
	v := w.Cross(u)                                        // Points up

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight) // Top-to-bottom

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(focalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:      config,
		origin:      config.Center,
		pixel00:     pixel00,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		imageWidth:  config.Width,
		imageHeight: imageHeight,
	}
}

// GetRay generates a primary ray through pixel (i, j) jittered by an offset
// in [0,1)². An offset of (0.5, 0.5) passes through the pixel center.
func (c *Camera) GetRay(i, j int, jitter core.Vec2) core.Ray {
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + jitter.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + jitter.Y - 0.5))

	direction := pixelSample.Subtract(c.origin).Normalize()
	return core.NewRay(c.origin, direction)
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.imageWidth
}

// Height returns the image height in pixels, derived from the aspect ratio
func (c *Camera) Height() int {
	return c.imageHeight
}
