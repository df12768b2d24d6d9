// Command voxfolio opens the voxel portfolio in a window.
//
//	voxfolio --config voxfolio.toml --content sections.yaml --watch
//
// Flags override the config file. --list-sections prints every section as
// plain text and exits without opening a window. --script runs a JSON test
// script and exits when it finishes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/phanxgames/voxfolio"
	"github.com/phanxgames/voxfolio/app"
	"github.com/phanxgames/voxfolio/config"
	"github.com/phanxgames/voxfolio/content"
	"github.com/spf13/pflag"
)

type options struct {
	configPath   string
	writeConfig  string
	listSections bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("voxfolio failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.writeConfig != "" {
		return config.Save(opts.writeConfig, cfg)
	}

	store := content.Default()
	if cfg.Content.Path != "" {
		if store, err = content.LoadFile(cfg.Content.Path); err != nil {
			return err
		}
	}
	if opts.listSections {
		for _, sec := range store.Sections() {
			fmt.Printf("== %s ==\n%s\n\n", sec.Title, store.PlainText(sec.ID))
		}
		return nil
	}

	a, err := app.New(cfg, store)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Content.Watch {
		if err := a.Watch(ctx, cfg.Content.Path); err != nil {
			return err
		}
	}
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := voxfolio.LoadTestScript(data)
		if err != nil {
			return err
		}
		a.AttachScript(runner)
	}

	err = a.Run()
	t := a.Tally()
	slog.Info("session", "clicks", t.Clicks, "drags", t.Drags, "sections", t.Sections, "resets", t.Resets)
	return err
}

// parseFlags loads the config file, if any, and applies flag overrides on
// top of it.
func parseFlags(args []string) (config.Config, options, error) {
	var opts options
	fs := pflag.NewFlagSet("voxfolio", pflag.ContinueOnError)
	fs.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	fs.StringVar(&opts.writeConfig, "write-config", "", "write the effective config to this path and exit")
	fs.BoolVar(&opts.listSections, "list-sections", false, "print the portfolio as plain text and exit")
	seed := fs.Uint64("seed", 0, "world seed")
	fish := fs.Int("fish", 0, "number of fish in the river")
	apple := fs.Bool("apple-tree", false, "grow an apple tree instead of the cherry tree")
	debug := fs.BoolP("debug", "d", false, "show the FPS overlay and log at debug level")
	level := fs.String("log-level", "", "debug, info, warn or error")
	contentPath := fs.String("content", "", "YAML sections file")
	watch := fs.BoolP("watch", "w", false, "reload the sections file when it changes")
	script := fs.String("script", "", "JSON test script to run")
	shots := fs.String("screenshots", "", "directory for script screenshots")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, opts, err
	}

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, opts, err
		}
	}

	if fs.Changed("seed") {
		cfg.World.Seed = *seed
	}
	if fs.Changed("fish") {
		cfg.World.Fish = *fish
	}
	if fs.Changed("apple-tree") {
		cfg.World.AppleTree = *apple
	}
	if fs.Changed("debug") {
		cfg.Debug = *debug
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *level
	}
	if fs.Changed("content") {
		cfg.Content.Path = *contentPath
	}
	if fs.Changed("watch") {
		cfg.Content.Watch = *watch
	}
	if fs.Changed("script") {
		cfg.Script = *script
	}
	if fs.Changed("screenshots") {
		cfg.ScreenshotDir = *shots
	}
	return cfg, opts, nil
}
