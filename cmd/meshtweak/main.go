package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"meshtweak/internal/config"
	"meshtweak/internal/game"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the JSON config file")
	writeDefaults := flag.Bool("write-config", false, "write the default config to -config and exit")
	flag.Parse()

	// A path given on the command line is relative to where we were started.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			if abs, err := filepath.Abs(*configPath); err == nil {
				*configPath = abs
			}
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

	if *writeDefaults {
		if err := config.Save(*configPath, config.Default()); err != nil {
			log.Fatalf("write config: %v", err)
		}
		log.Printf("wrote %s", *configPath)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	if err := g.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
