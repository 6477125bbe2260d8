package main

import (
	"os"
	"path/filepath"
	"strings"

	"inspect3d/internal/game"
	_ "inspect3d/internal/scripts"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	game.New().Run()
}
