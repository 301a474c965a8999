package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	cfg := app.LoadConfig()

	if cfg.Env == "prod" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	srv, cleanup, err := app.NewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init failed")
	}
	defer cleanup()

	log.Info().Str("port", cfg.Port).Str("db", cfg.DBDriver).Msg("listening")
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
