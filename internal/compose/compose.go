// Package compose orchestrates simulation and rasterization into a single
// image generation call.
package compose

import (
	"os"
	"strconv"
	"strings"
	"time"

	"sundryautomata/internal/lattice"
	"sundryautomata/internal/palette"
	"sundryautomata/internal/raster"
	"sundryautomata/internal/rule"
)

// timestampLayout keeps resolved paths filesystem-safe: dots instead of the
// colons ISO 8601 would use.
const timestampLayout = "2006-01-02T15.04.05"

// Params are the inputs for one image generation.
type Params struct {
	Rule   int
	Seed   int64
	Width  int
	Height int

	Palette palette.Palette

	// PathTemplate may contain {datetime}, {rule}, {seed}, {living_color}
	// and {dead_color} placeholders. Unrecognized placeholders stay verbatim
	// so typos remain visible in the output path.
	PathTemplate string

	// Now supplies the {datetime} timestamp; nil means time.Now.
	Now func() time.Time
}

// Metadata records everything a caller needs to post or log an image without
// re-deriving it.
type Metadata struct {
	Rule    rule.Rule
	Seed    int64
	Palette palette.Palette
	Path    string
}

// Result is a finished image: encoded PNG bytes plus its metadata.
type Result struct {
	Bytes []byte
	Meta  Metadata
}

// Compose validates the parameters, simulates the automaton, renders it and
// resolves the output path. It either returns a complete result or an error;
// no partial state is observable and nothing is written to disk.
func Compose(p Params) (*Result, error) {
	r, err := rule.Parse(p.Rule)
	if err != nil {
		return nil, err
	}

	grid, err := lattice.Simulate(r, p.Seed, p.Width, p.Height)
	if err != nil {
		return nil, err
	}

	data, err := raster.Rasterize(grid, p.Palette)
	if err != nil {
		return nil, err
	}

	now := p.Now
	if now == nil {
		now = time.Now
	}

	return &Result{
		Bytes: data,
		Meta: Metadata{
			Rule:    r,
			Seed:    p.Seed,
			Palette: p.Palette,
			Path:    ResolvePath(p.PathTemplate, r, p.Seed, p.Palette, now()),
		},
	}, nil
}

// ResolvePath expands the recognized placeholders into the path template.
func ResolvePath(template string, r rule.Rule, seed int64, p palette.Palette, now time.Time) string {
	return strings.NewReplacer(
		"{datetime}", now.Format(timestampLayout),
		"{rule}", strconv.Itoa(int(r)),
		"{seed}", strconv.FormatInt(seed, 10),
		"{living_color}", p.Living.String(),
		"{dead_color}", p.Dead.String(),
	).Replace(template)
}

// WriteFile writes the encoded image to its resolved path. Filesystem errors
// propagate unmodified; retry policy belongs to the caller.
func (r *Result) WriteFile() error {
	return os.WriteFile(r.Meta.Path, r.Bytes, 0o644)
}
