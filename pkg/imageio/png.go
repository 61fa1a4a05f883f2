package imageio

import (
	"image"
	"image/png"
	"io"
)

// PNGWriter encodes images with the standard library PNG encoder
type PNGWriter struct{}

func (PNGWriter) Encode(w io.Writer, img *image.RGBA) error {
	return png.Encode(w, img)
}

func (PNGWriter) Extension() string { return "png" }
