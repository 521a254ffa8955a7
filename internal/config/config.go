// Package config loads and validates the bot configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"sundryautomata/internal/core"
	"sundryautomata/internal/palette"
)

// RandomRule is the automaton rule value that asks the bot to pick a rule
// uniformly from [0,255].
const RandomRule = "random"

// Palette selection modes.
const (
	PaletteRandom   = "random"
	PaletteScheme   = "scheme"
	PaletteExplicit = "explicit"
)

// Poster kinds.
const (
	PosterNoop     = "noop"
	PosterMastodon = "mastodon"
)

// Config holds all sundryautomata configuration.
type Config struct {
	General   GeneralConfig   `yaml:"general"`
	Automaton AutomatonConfig `yaml:"automaton"`
	Palette   PaletteConfig   `yaml:"palette"`
	Post      PostConfig      `yaml:"post"`
}

// GeneralConfig covers logging and output settings.
type GeneralConfig struct {
	Verbosity string `yaml:"verbosity"` // quiet, normal, verbose, deafening
	Logfile   string `yaml:"logfile"`

	ImagePathTemplate string `yaml:"image_path_template"`
	ImageWidth        int    `yaml:"image_width"`
	ImageHeight       int    `yaml:"image_height"`
}

// AutomatonConfig selects the rule and seed.
type AutomatonConfig struct {
	// Rule is either "random" or an integer in [0,255].
	Rule string `yaml:"rule"`

	// Seed is optional; when absent a fresh seed is drawn per run.
	Seed *int64 `yaml:"seed"`
}

// PaletteConfig selects how the two cell colors are chosen.
type PaletteConfig struct {
	Mode string `yaml:"mode"`

	// Scheme indexes the curated scheme list; -1 picks one at random.
	Scheme int `yaml:"scheme"`

	// Explicit colors as "#rrggbb", used when Mode is "explicit".
	LivingColor string `yaml:"living_color"`
	DeadColor   string `yaml:"dead_color"`
}

// PostConfig configures the posting collaborator.
type PostConfig struct {
	Poster string `yaml:"poster"`

	// Caption may contain {rule} and {seed} placeholders.
	Caption string `yaml:"caption"`

	Mastodon MastodonConfig `yaml:"mastodon"`
}

// MastodonConfig holds the credentials for the Mastodon poster.
type MastodonConfig struct {
	Server      string `yaml:"server"`
	AccessToken string `yaml:"access_token"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		General: GeneralConfig{
			Verbosity:         "normal",
			ImagePathTemplate: "{datetime}-rule{rule}-seed{seed}.png",
			ImageWidth:        900,
			ImageHeight:       900,
		},
		Automaton: AutomatonConfig{Rule: RandomRule},
		Palette:   PaletteConfig{Mode: PaletteRandom, Scheme: -1},
		Post: PostConfig{
			Poster:  PosterNoop,
			Caption: "Rule {rule}",
		},
	}
}

// Load reads a YAML config file on top of the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting the generation pipeline depends on, so bad
// configuration is rejected before any simulation work begins.
func (c Config) Validate() error {
	switch c.General.Verbosity {
	case "quiet", "normal", "verbose", "deafening":
	default:
		return fmt.Errorf("%w: unknown verbosity %q", core.ErrConfig, c.General.Verbosity)
	}

	if c.General.ImageWidth <= 0 {
		return fmt.Errorf("%w: image_width %d must be positive", core.ErrConfig, c.General.ImageWidth)
	}
	if c.General.ImageHeight <= 0 {
		return fmt.Errorf("%w: image_height %d must be positive", core.ErrConfig, c.General.ImageHeight)
	}
	if c.General.ImagePathTemplate == "" {
		return fmt.Errorf("%w: image_path_template must not be empty", core.ErrConfig)
	}

	if c.Automaton.Rule != RandomRule {
		n, err := strconv.Atoi(c.Automaton.Rule)
		if err != nil {
			return fmt.Errorf("%w: rule %q is neither %q nor an integer", core.ErrConfig, c.Automaton.Rule, RandomRule)
		}
		if n < 0 || n > 255 {
			return fmt.Errorf("%w: rule %d outside [0,255]", core.ErrConfig, n)
		}
	}

	switch c.Palette.Mode {
	case PaletteRandom:
	case PaletteScheme:
		if c.Palette.Scheme != -1 && (c.Palette.Scheme < 0 || c.Palette.Scheme >= palette.SchemeCount()) {
			return fmt.Errorf("%w: scheme index %d outside [0,%d]", core.ErrConfig, c.Palette.Scheme, palette.SchemeCount()-1)
		}
	case PaletteExplicit:
		if _, err := palette.ParseHex(c.Palette.LivingColor); err != nil {
			return err
		}
		if _, err := palette.ParseHex(c.Palette.DeadColor); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown palette mode %q", core.ErrConfig, c.Palette.Mode)
	}

	switch c.Post.Poster {
	case PosterNoop:
	case PosterMastodon:
		if c.Post.Mastodon.Server == "" || c.Post.Mastodon.AccessToken == "" {
			return fmt.Errorf("%w: mastodon poster needs server and access_token", core.ErrConfig)
		}
	default:
		return fmt.Errorf("%w: unknown poster %q", core.ErrConfig, c.Post.Poster)
	}

	return nil
}
