package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"minigolf/internal/config"
	"minigolf/internal/game"
	"minigolf/internal/golf"
	"minigolf/internal/level"
)

func main() {
	configPath := flag.String("config", "", "TOML tuning file (defaults when empty)")
	levelsPath := flag.String("levels", "assets/levels.json", "level file")
	flag.Parse()

	// Paths given on the command line are relative to where the user ran us.
	flag.Visit(func(f *flag.Flag) {
		if (f.Name != "config" && f.Name != "levels") || f.Value.String() == "" {
			return
		}
		if abs, err := filepath.Abs(f.Value.String()); err == nil {
			f.Value.Set(abs)
		}
	})

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Minigolf: %v", err)
		}
	}

	levels, err := level.Load(*levelsPath)
	if err != nil {
		log.Fatalf("Minigolf: %v", err)
	}

	sim, err := golf.New(levels, cfg)
	if err != nil {
		log.Fatalf("Minigolf: %v", err)
	}

	if err := game.New(sim).Run(); err != nil {
		log.Fatalf("Minigolf: %v", err)
	}
}
