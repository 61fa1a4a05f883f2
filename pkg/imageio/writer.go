// Package imageio encodes rendered framebuffers to image files.
// Supported formats: PNG (stdlib), PPM and QOI.
package imageio

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
)

// Writer encodes an 8-bit image to a specific file format
type Writer interface {
	Encode(w io.Writer, img *image.RGBA) error
	Extension() string
}

// ForPath selects a writer based on the output file extension. Paths
// without an extension default to PNG; unknown extensions are rejected.
func ForPath(path string) (Writer, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", "":
		return PNGWriter{}, nil
	case ".ppm":
		return PPMWriter{}, nil
	case ".qoi":
		return QOIWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported image format %q", ext)
	}
}
