package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/tripwise/trip-estimator/internal/config"
)

// loadEnvFiles loads .env from the working directory, then from the user
// config directory. Variables already set in the environment win.
func loadEnvFiles() {
	candidates := []string{".env"}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		candidates = append(candidates, filepath.Join(homeDir, ".config", config.AppDirName, ".env"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}
