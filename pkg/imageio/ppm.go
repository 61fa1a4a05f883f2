package imageio

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// PPMWriter encodes images as plain-text PPM (P3), one row per line
type PPMWriter struct{}

func (PPMWriter) Encode(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d ", c.R, c.G, c.B); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (PPMWriter) Extension() string { return "ppm" }
