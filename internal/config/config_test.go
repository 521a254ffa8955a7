package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sundryautomata/internal/core"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
general:
  verbosity: verbose
  image_path_template: "art/{datetime}-{rule}.png"
  image_width: 300
  image_height: 200
automaton:
  rule: "110"
  seed: 42
palette:
  mode: scheme
  scheme: 3
post:
  poster: mastodon
  caption: "Rule {rule}, seed {seed}"
  mastodon:
    server: https://example.social
    access_token: secret
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "verbose", cfg.General.Verbosity)
	assert.Equal(t, 300, cfg.General.ImageWidth)
	assert.Equal(t, 200, cfg.General.ImageHeight)
	assert.Equal(t, "110", cfg.Automaton.Rule)
	require.NotNil(t, cfg.Automaton.Seed)
	assert.Equal(t, int64(42), *cfg.Automaton.Seed)
	assert.Equal(t, PaletteScheme, cfg.Palette.Mode)
	assert.Equal(t, 3, cfg.Palette.Scheme)
	assert.Equal(t, PosterMastodon, cfg.Post.Poster)
	assert.Equal(t, "https://example.social", cfg.Post.Mastodon.Server)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"verbosity", func(c *Config) { c.General.Verbosity = "shouting" }},
		{"width", func(c *Config) { c.General.ImageWidth = 0 }},
		{"height", func(c *Config) { c.General.ImageHeight = -1 }},
		{"template", func(c *Config) { c.General.ImagePathTemplate = "" }},
		{"rule text", func(c *Config) { c.Automaton.Rule = "ninety" }},
		{"rule range", func(c *Config) { c.Automaton.Rule = "256" }},
		{"palette mode", func(c *Config) { c.Palette.Mode = "plaid" }},
		{"scheme index", func(c *Config) { c.Palette.Mode = PaletteScheme; c.Palette.Scheme = 99 }},
		{"explicit color", func(c *Config) { c.Palette.Mode = PaletteExplicit; c.Palette.LivingColor = "red" }},
		{"poster", func(c *Config) { c.Post.Poster = "carrier-pigeon" }},
		{"mastodon creds", func(c *Config) { c.Post.Poster = PosterMastodon }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), core.ErrConfig)
		})
	}
}

func TestValidateExplicitPalette(t *testing.T) {
	cfg := Default()
	cfg.Palette.Mode = PaletteExplicit
	cfg.Palette.LivingColor = "#ffe183"
	cfg.Palette.DeadColor = "#ffa24b"
	assert.NoError(t, cfg.Validate())
}
