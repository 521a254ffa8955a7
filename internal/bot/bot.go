// Package bot runs one full generation cycle: pick parameters, compose the
// image, write it to disk and hand it to the posting collaborator.
package bot

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"sundryautomata/internal/compose"
	"sundryautomata/internal/config"
	"sundryautomata/internal/core"
	"sundryautomata/internal/lattice"
	"sundryautomata/internal/palette"
	"sundryautomata/internal/post"
	"sundryautomata/internal/rule"
)

// maxAttempts bounds the rerolls for randomly picked rules whose output
// settles into a stable or drifting pattern.
const maxAttempts = 3

// Bot generates and publishes one automaton image per Run call.
type Bot struct {
	cfg    config.Config
	log    *zap.Logger
	poster post.Poster

	now     func() time.Time
	newSeed func() int64
}

// New builds a bot from validated configuration.
func New(cfg config.Config, log *zap.Logger, poster post.Poster) *Bot {
	return &Bot{
		cfg:     cfg,
		log:     log,
		poster:  poster,
		now:     time.Now,
		newSeed: func() int64 { return time.Now().UnixNano() },
	}
}

// Run executes one cycle and returns the metadata of the generated image.
func (b *Bot) Run(ctx context.Context) (*compose.Metadata, error) {
	seed := b.newSeed()
	if b.cfg.Automaton.Seed != nil {
		seed = *b.cfg.Automaton.Seed
	}

	// Parameter randomization draws from its own generator seeded with the
	// recorded seed, so a whole run is reproducible from the seed alone.
	picks := core.NewRNG(seed)

	pal, err := b.pickPalette(picks)
	if err != nil {
		return nil, err
	}

	ruleNum, err := b.pickRule(picks, seed)
	if err != nil {
		return nil, err
	}

	b.log.Info("composing image",
		zap.Int("rule", ruleNum),
		zap.Int64("seed", seed),
		zap.Int("width", b.cfg.General.ImageWidth),
		zap.Int("height", b.cfg.General.ImageHeight))

	res, err := compose.Compose(compose.Params{
		Rule:         ruleNum,
		Seed:         seed,
		Width:        b.cfg.General.ImageWidth,
		Height:       b.cfg.General.ImageHeight,
		Palette:      pal,
		PathTemplate: b.cfg.General.ImagePathTemplate,
		Now:          b.now,
	})
	if err != nil {
		return nil, err
	}

	if err := res.WriteFile(); err != nil {
		return nil, err
	}
	b.log.Debug("image written", zap.String("path", res.Meta.Path))

	caption := Caption(b.cfg.Post.Caption, res.Meta.Rule, seed)
	id, err := b.poster.Post(ctx, res.Bytes, caption)
	if err != nil {
		return nil, err
	}
	b.log.Info("cycle complete",
		zap.String("path", res.Meta.Path),
		zap.String("post_id", string(id)))

	return &res.Meta, nil
}

// pickRule resolves the configured rule, rerolling random picks whose grids
// turn out dull. The simulation here is cheap and deterministic; the compose
// call replays it for the accepted rule.
func (b *Bot) pickRule(picks *core.RNG, seed int64) (int, error) {
	if b.cfg.Automaton.Rule != config.RandomRule {
		return strconv.Atoi(b.cfg.Automaton.Rule)
	}

	n := picks.IntN(256)
	for attempt := 1; attempt < maxAttempts; attempt++ {
		r, err := rule.Parse(n)
		if err != nil {
			return 0, err
		}
		grid, err := lattice.Simulate(r, seed, b.cfg.General.ImageWidth, b.cfg.General.ImageHeight)
		if err != nil {
			return 0, err
		}
		if !lattice.Dull(grid) {
			break
		}
		b.log.Info("rule was boring, retrying", zap.Int("rule", n))
		n = picks.IntN(256)
	}
	return n, nil
}

func (b *Bot) pickPalette(picks *core.RNG) (palette.Palette, error) {
	switch b.cfg.Palette.Mode {
	case config.PaletteExplicit:
		living, err := palette.ParseHex(b.cfg.Palette.LivingColor)
		if err != nil {
			return palette.Palette{}, err
		}
		dead, err := palette.ParseHex(b.cfg.Palette.DeadColor)
		if err != nil {
			return palette.Palette{}, err
		}
		return palette.Palette{Living: living, Dead: dead}, nil
	case config.PaletteScheme:
		if b.cfg.Palette.Scheme == -1 {
			return palette.RandomScheme(picks), nil
		}
		return palette.Scheme(b.cfg.Palette.Scheme)
	default:
		return palette.Random(picks), nil
	}
}

// Caption expands the {rule} and {seed} placeholders of a caption template.
func Caption(template string, r rule.Rule, seed int64) string {
	return strings.NewReplacer(
		"{rule}", strconv.Itoa(int(r)),
		"{seed}", strconv.FormatInt(seed, 10),
	).Replace(template)
}
