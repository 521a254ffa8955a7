// Package raster turns simulated grids into PNG images, one pixel per cell.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"sundryautomata/internal/core"
	"sundryautomata/internal/palette"
)

// ErrEncoding marks failures while producing image bytes. Encoding a pure
// in-memory buffer is deterministic, so these are never retried.
var ErrEncoding = errors.New("image encoding failed")

// Render converts a grid into an RGBA pixel buffer. Pixel (x, y) takes the
// palette color of cell (x, y); there is no scaling or supersampling.
func Render(g *core.Grid, p palette.Palette) (*image.RGBA, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrEncoding)
	}
	if g.W <= 0 || g.H <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d", ErrEncoding, g.W, g.H)
	}
	cells := g.Cells()
	if len(cells) != g.W*g.H {
		return nil, fmt.Errorf("%w: buffer holds %d cells for a %dx%d grid", ErrEncoding, len(cells), g.W, g.H)
	}

	living := p.Living.RGBA()
	dead := p.Dead.RGBA()

	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	for i, c := range cells {
		base := i * 4
		col := dead
		if c != 0 {
			col = living
		}
		img.Pix[base+0] = col.R
		img.Pix[base+1] = col.G
		img.Pix[base+2] = col.B
		img.Pix[base+3] = col.A
	}
	return img, nil
}

// Encode produces PNG bytes with fixed encoder settings, so identical pixel
// buffers encode to byte-identical output.
func Encode(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return buf.Bytes(), nil
}

// Rasterize renders and encodes a grid in one step.
func Rasterize(g *core.Grid, p palette.Palette) ([]byte, error) {
	img, err := Render(g, p)
	if err != nil {
		return nil, err
	}
	return Encode(img)
}
