package main

import (
	"flag"
	"fmt"
	"os"

	"terrain-walk/internal/config"
	"terrain-walk/internal/env"
	"terrain-walk/internal/graphics"
	"terrain-walk/internal/logger"
)

func main() {
	envKeys, envErr := env.Load(".env")

	defaultPath := config.DefaultPath
	if p := os.Getenv(config.EnvConfig); p != "" {
		defaultPath = p
	}
	configPath := flag.String("config", defaultPath, "path to the YAML config file")
	seed := flag.Int64("seed", 0, "terrain and obstacle seed; 0 keeps the configured seed")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	if envErr != nil {
		fmt.Fprintln(os.Stderr, envErr)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err == nil {
		err = cfg.ApplyEnv(os.Getenv)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Terrain.Seed = *seed
		cfg.Obstacles.Seed = *seed
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("wrote", *configPath)
		return
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync(log)
	if len(envKeys) > 0 {
		log.Infow("loaded .env", "keys", envKeys)
	}

	a, err := newApp(cfg, log)
	if err != nil {
		log.Errorw("startup failed", "err", err)
		logger.Sync(log)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	graphics.Run(cfg.Window, a)
	a.logStats()
}
