package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"interact3d/internal/game"
)

func main() {
	scenePath := flag.String("scene", "assets/scenes/demo.yaml", "scene file to load")
	logPath := flag.String("log", "", "write logs to this file instead of stderr")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := game.New(*scenePath).Run(); err != nil {
		log.Fatal(err)
	}
}
