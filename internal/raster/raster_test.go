package raster

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"sundryautomata/internal/core"
	"sundryautomata/internal/lattice"
	"sundryautomata/internal/palette"
	"sundryautomata/internal/rule"
)

var testPalette = palette.Palette{
	Living: palette.Color{R: 255},
	Dead:   palette.Color{B: 255},
}

func TestRenderMapsCellsToPaletteColors(t *testing.T) {
	g := core.NewGrid(4, 2)
	copy(g.Row(0), []uint8{1, 0, 0, 1})
	copy(g.Row(1), []uint8{0, 1, 1, 0})

	img, err := Render(g, testPalette)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("image is %dx%d, expected 4x2", b.Dx(), b.Dy())
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := testPalette.ColorOf(g.Alive(x, y)).RGBA()
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestEncodedBytesRoundTrip(t *testing.T) {
	g, err := lattice.Simulate(rule.Rule(30), 42, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	data, err := Rasterize(g, testPalette)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("decoded image is %dx%d, expected 16x16", b.Dx(), b.Dy())
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := testPalette.ColorOf(g.Alive(x, y)).RGBA()
			r, gr, b, _ := decoded.At(x, y).RGBA()
			if uint8(r>>8) != want.R || uint8(gr>>8) != want.G || uint8(b>>8) != want.B {
				t.Fatalf("decoded pixel (%d,%d) does not match the palette", x, y)
			}
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	g, err := lattice.Simulate(rule.Rule(110), 7, 24, 24)
	if err != nil {
		t.Fatal(err)
	}
	a, err := Rasterize(g, testPalette)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Rasterize(g, testPalette)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("identical pixel buffers must encode to identical bytes")
	}
}

func TestRenderRejectsBadGrids(t *testing.T) {
	if _, err := Render(nil, testPalette); !errors.Is(err, ErrEncoding) {
		t.Fatalf("nil grid must fail with ErrEncoding, got %v", err)
	}
	if _, err := Render(&core.Grid{W: 3, H: 3}, testPalette); !errors.Is(err, ErrEncoding) {
		t.Fatalf("mismatched buffer must fail with ErrEncoding, got %v", err)
	}
}
