package imageio

import (
	"bufio"
	"encoding/binary"
	"image"
	"io"
)

// QOI chunk tags
const (
	qoiOpIndex = 0x00 // 0b00xxxxxx
	qoiOpDiff  = 0x40 // 0b01xxxxxx
	qoiOpLuma  = 0x80 // 0b10xxxxxx
	qoiOpRun   = 0xc0 // 0b11xxxxxx
	qoiOpRGB   = 0xfe
)

type qoiColor struct {
	r, g, b uint8
}

// hash is the QOI index position of a color; alpha is fixed at 255
func (c qoiColor) hash() uint8 {
	return uint8((int(c.r)*3 + int(c.g)*5 + int(c.b)*7 + 255*11) % 64)
}

// QOIWriter encodes images in the Quite OK Image format with three
// channels and the sRGB colorspace flag
type QOIWriter struct{}

func (QOIWriter) Encode(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	// Header: magic, width, height, channels, colorspace
	if _, err := bw.WriteString("qoif"); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.BigEndian, uint32(bounds.Dx())); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.BigEndian, uint32(bounds.Dy())); err != nil {
		return err
	}
	if _, err := bw.Write([]byte{3, 0}); err != nil {
		return err
	}

	var index [64]qoiColor
	var prev qoiColor
	run := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.RGBAAt(x, y)
			c := qoiColor{px.R, px.G, px.B}

			if c == prev {
				run++
				if run == 62 {
					if err := bw.WriteByte(qoiOpRun | byte(run-1)); err != nil {
						return err
					}
					run = 0
				}
				continue
			}
			if run > 0 {
				if err := bw.WriteByte(qoiOpRun | byte(run-1)); err != nil {
					return err
				}
				run = 0
			}

			if index[c.hash()] == c {
				if err := bw.WriteByte(qoiOpIndex | c.hash()); err != nil {
					return err
				}
				prev = c
				continue
			}
			index[c.hash()] = c

			if err := writeQOIDiff(bw, prev, c); err != nil {
				return err
			}
			prev = c
		}
	}
	if run > 0 {
		if err := bw.WriteByte(qoiOpRun | byte(run-1)); err != nil {
			return err
		}
	}

	// End marker: seven zero bytes followed by 0x01
	if _, err := bw.Write([]byte{0, 0, 0, 0, 0, 0, 0, 1}); err != nil {
		return err
	}
	return bw.Flush()
}

// writeQOIDiff emits the smallest chunk that encodes the transition from
// prev to c: a one-byte DIFF, a two-byte LUMA, or a full RGB chunk
func writeQOIDiff(bw *bufio.Writer, prev, c qoiColor) error {
	dr := int(c.r) - int(prev.r)
	dg := int(c.g) - int(prev.g)
	db := int(c.b) - int(prev.b)

	if dr >= -2 && dr <= 1 && dg >= -2 && dg <= 1 && db >= -2 && db <= 1 {
		return bw.WriteByte(qoiOpDiff |
			byte(dr+2)<<4 | byte(dg+2)<<2 | byte(db+2))
	}

	drdg := dr - dg
	dbdg := db - dg
	if dg >= -32 && dg <= 31 && drdg >= -8 && drdg <= 7 && dbdg >= -8 && dbdg <= 7 {
		if err := bw.WriteByte(qoiOpLuma | byte(dg+32)); err != nil {
			return err
		}
		return bw.WriteByte(byte(drdg+8)<<4 | byte(dbdg+8))
	}

	if err := bw.WriteByte(qoiOpRGB); err != nil {
		return err
	}
	_, err := bw.Write([]byte{c.r, c.g, c.b})
	return err
}

func (QOIWriter) Extension() string { return "qoi" }
