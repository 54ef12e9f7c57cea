package main // Entry point package

import (
	"os"

	"github.com/joho/godotenv"    // loads .env files in local development
	"github.com/labstack/echo/v4" // Echo web framework
	"github.com/rs/zerolog"       // structured logging

	"github.com/spjimr/classroom-companion/internal/config"
	"github.com/spjimr/classroom-companion/internal/database"
	"github.com/spjimr/classroom-companion/internal/handler"
	"github.com/spjimr/classroom-companion/internal/identity"
	"github.com/spjimr/classroom-companion/internal/middleware"
	"github.com/spjimr/classroom-companion/internal/repository"
	"github.com/spjimr/classroom-companion/internal/router"
	"github.com/spjimr/classroom-companion/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db, cfg.MigrationsDir, log); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, cache and rate limiting disabled")
	}

	resolver := service.NewProfileResolver(repository.NewProfileRepo(db), log)
	authorizer := service.NewTileAuthorizer(repository.NewTileRepo(db))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAPI(e,
		handler.NewProfileHandler(resolver, log),
		handler.NewTileHandler(authorizer, log),
		identity.NewJWTVerifier(cfg.JWTSecret),
	)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
