package renderer

import "image"

// Tile represents a rectangular region of the image rendered as one unit
// of work. Tiles never overlap, which gives each worker exclusive write
// ownership of its framebuffer region.
type Tile struct {
	Bounds image.Rectangle
}

// NewTileGrid partitions a width x height image into tiles of at most
// tileSize x tileSize pixels. Edge tiles may be smaller.
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, &Tile{
				Bounds: image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)),
			})
		}
	}
	return tiles
}
