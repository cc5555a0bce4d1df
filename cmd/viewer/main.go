package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"scene-viewer/internal/assets"
	"scene-viewer/internal/config"
	"scene-viewer/internal/download"
	"scene-viewer/internal/env"
	"scene-viewer/internal/logger"
	"scene-viewer/internal/viewer"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "viewer config file")
	control := flag.String("control", "", "camera control: manual or orbit (overrides config)")
	flag.Parse()

	if err := run(*configPath, *control); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, control string) error {
	log := logger.New()
	if err := env.Load(".env"); err != nil {
		log.Errorf(".env: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Errorf("%v (using defaults)", err)
	}
	overrides := config.OverridesFromEnv(env.WithPrefix(config.EnvPrefix))
	if control != "" {
		overrides.Control = control
	}
	if err := cfg.Apply(overrides); err != nil {
		return err
	}

	manifest, err := assets.LoadManifest(cfg.Manifest)
	if err != nil {
		log.Errorf("%v (using built-in scene)", err)
	}

	var fetcher assets.Fetcher = assets.LocalFetcher{Root: cfg.ModelsDir}
	if cfg.ModelsURL != "" {
		fetcher = assets.RemoteFetcher{BaseURL: cfg.ModelsURL, CacheDir: cfg.CacheDir, Client: &download.Client{}}
		log.Logf("models from %s (cache %s)", cfg.ModelsURL, cfg.CacheDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return viewer.New(cfg, log, manifest, fetcher).Run(ctx)
}
