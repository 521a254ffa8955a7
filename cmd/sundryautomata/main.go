package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sundryautomata/internal/bot"
	"sundryautomata/internal/config"
	"sundryautomata/internal/logging"
	"sundryautomata/internal/post"
)

var (
	cfgPath  string
	ruleFlag string
	seedFlag int64
	outFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "sundryautomata",
	Short: "Generates elementary cellular automaton art and hands it to a poster",
	Long: `sundryautomata simulates a randomly or explicitly chosen elementary
cellular automaton, renders it as a PNG and optionally publishes it.

Run it without flags to generate one image using config.yaml defaults;
a cron job invoking it once a day makes a serviceable art bot.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml", "path to the configuration file")
	rootCmd.Flags().StringVar(&ruleFlag, "rule", "", `rule number in [0,255] or "random"`)
	rootCmd.Flags().Int64Var(&seedFlag, "seed", 0, "seed for the initial generation")
	rootCmd.Flags().StringVar(&outFlag, "out", "", "output path template override")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if ruleFlag != "" {
		cfg.Automaton.Rule = ruleFlag
	}
	if cmd.Flags().Changed("seed") {
		cfg.Automaton.Seed = &seedFlag
	}
	if outFlag != "" {
		cfg.General.ImagePathTemplate = outFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.General.Verbosity, cfg.General.Logfile)
	if err != nil {
		return err
	}
	defer log.Sync()

	meta, err := bot.New(cfg, log, buildPoster(cfg, log)).Run(cmd.Context())
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), meta.Path)
	return nil
}

// loadConfig reads the configured file; a missing file is only an error when
// the user pointed at it explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err == nil {
		return cfg, nil
	}
	if os.IsNotExist(err) && !cmd.Flags().Changed("config") {
		return config.Default(), nil
	}
	return config.Config{}, err
}

func buildPoster(cfg config.Config, log *zap.Logger) post.Poster {
	if cfg.Post.Poster == config.PosterMastodon {
		return &post.MastodonPoster{
			Server:      cfg.Post.Mastodon.Server,
			AccessToken: cfg.Post.Mastodon.AccessToken,
		}
	}
	return post.NoopPoster{Log: log}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
