package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/OCharnyshevich/worldgen/internal/config"
	"github.com/OCharnyshevich/worldgen/internal/worldgen"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "YAML config file")
	presetURL := flag.String("preset-url", "", "fetch a config preset (path, http(s), git::, s3::...) instead of -config")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.SeedPhrase, "seed-phrase", cfg.SeedPhrase, "text seed, hashed into the world seed")
	flag.StringVar(&cfg.Noise.Kind, "noise", cfg.Noise.Kind, "base noise: simplex, opensimplex or perlin")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "pre-generation radius in chunks")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "generation goroutines")
	flag.StringVar(&cfg.Preview.Path, "preview", cfg.Preview.Path, "write a zstd heightmap preview to this path")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := *configPath
	if *presetURL != "" {
		dir, err := os.MkdirTemp("", "worldgen-preset-")
		if err != nil {
			log.Error("create preset directory", "error", err)
			os.Exit(1)
		}
		defer os.RemoveAll(dir)

		path, err = config.Fetch(ctx, *presetURL, filepath.Join(dir, "preset"))
		if err != nil {
			log.Error("fetch preset", "source", *presetURL, "error", err)
			os.Exit(1)
		}
		log.Info("preset fetched", "source", *presetURL)
	}
	if path != "" {
		fromFile, err := config.Load(path)
		if err != nil {
			log.Error("load config", "path", path, "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}

	lvl, err := cfg.SlogLevel()
	if err != nil {
		log.Error("parse log level", "error", err)
		os.Exit(1)
	}
	log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	s, err := worldgen.New(cfg, log)
	if err != nil {
		log.Error("build session", "error", err)
		os.Exit(1)
	}
	if err := s.Run(ctx); err != nil {
		log.Error("generation error", "error", err)
		os.Exit(1)
	}
}
