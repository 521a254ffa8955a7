package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"sundryautomata/internal/core"
)

// minDistance is the floor for the perceptual score between the living and
// dead color; shifted candidates below it are rerolled.
const minDistance = 0.2

// Random derives a palette from the provided generator: a uniformly random
// living color and a dead color obtained by shifting the living color around
// HSL space until the pair is sufficiently distinct.
func Random(rng *core.RNG) Palette {
	living := Color{R: rng.Uint8(), G: rng.Uint8(), B: rng.Uint8()}
	dead := living
	for Distance(dead, living) < minDistance {
		dead = shifted(living, rng)
	}
	return Palette{Living: living, Dead: dead}
}

// shifted produces a dead-color candidate by nudging saturation, hue and
// lightness. Dark and bright living colors push the candidate towards middle
// lightness, which keeps the pair distinguishable at the extremes.
func shifted(living Color, rng *core.RNG) Color {
	h, s, l := toColorful(living).Hsl()

	s += rng.Float64() - 0.5
	s = clamp01(s)

	// rarely shift hue a lot, mostly a little
	if rng.Float64() > 0.9 {
		h += float64(rng.IntN(361))
	} else {
		h += float64(rng.IntN(41) - 20)
	}
	h = math.Mod(h+360, 360)

	_, _, livingL := toColorful(living).Hsl()
	switch {
	case livingL < 0.1:
		l += 0.2 + rng.Float64()/2
	case livingL > 0.9:
		l -= 0.2 + rng.Float64()/2
	default:
		l += rng.Float64() - 0.5
	}
	l = clamp01(l)

	return fromColorful(colorful.Hsl(h, s, l))
}

// Distance is an ad-hoc perceptual score between two colors in [0,1], biased
// towards lightness and saturation differences.
func Distance(a, b Color) float64 {
	ah, as, al := toColorful(a).Hsl()
	bh, bs, bl := toColorful(b).Hsl()

	score := 0.15 * math.Abs(ah-bh) / 360
	score += 0.25 * math.Abs(as-bs)
	score += 0.45 * math.Abs(al-bl)
	score += 0.05 * math.Abs(float64(a.R)-float64(b.R)) / 255
	score += 0.05 * math.Abs(float64(a.G)-float64(b.G)) / 255
	score += 0.05 * math.Abs(float64(a.B)-float64(b.B)) / 255
	return score
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
