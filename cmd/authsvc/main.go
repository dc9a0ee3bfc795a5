package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Bavikaran/Authentication-System-Backend/internal/app"
	"github.com/Bavikaran/Authentication-System-Backend/internal/config"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	if err := app.Run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("app")
	}
}
