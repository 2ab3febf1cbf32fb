package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/EmpoweredVote/APOD-Backend/internal/apod"
	"github.com/EmpoweredVote/APOD-Backend/internal/auth"
	"github.com/EmpoweredVote/APOD-Backend/internal/config"
	"github.com/EmpoweredVote/APOD-Backend/internal/db"
	"github.com/EmpoweredVote/APOD-Backend/internal/favorites"
	"github.com/EmpoweredVote/APOD-Backend/internal/gallery"
	"github.com/EmpoweredVote/APOD-Backend/internal/logger"
	"github.com/EmpoweredVote/APOD-Backend/internal/views"
	"github.com/EmpoweredVote/APOD-Backend/routes"
)

func main() {
	_ = godotenv.Load(".env.local")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.New(logger.Options{})
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	conn, err := db.Connect(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer func() {
		if err := db.Close(conn); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	if err := auth.Init(conn); err != nil {
		log.Fatal().Err(err).Msg("init auth")
	}
	if err := favorites.Init(conn); err != nil {
		log.Fatal().Err(err).Msg("init favorites")
	}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           newRouter(cfg, conn, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}

func newRouter(cfg *config.Config, conn *gorm.DB, log zerolog.Logger) http.Handler {
	renderer, err := views.New(log)
	if err != nil {
		log.Fatal().Err(err).Msg("parse templates")
	}

	users := auth.NewStore(conn)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	favStore := favorites.NewStore(conn)
	client := apod.NewClient(cfg.APOD, log)

	return routes.NewRouter(routes.Deps{
		Sessions:  auth.SessionInfo{Tokens: tokens, Users: users},
		Auth:      auth.NewHandler(users, tokens, renderer, !cfg.IsDevelopment(), log),
		Gallery:   gallery.NewHandler(client, favStore, renderer, log),
		Favorites: favorites.NewHandler(favStore, client, renderer, log),
		Ready: func(ctx context.Context) error {
			return db.Ping(ctx, conn)
		},
		Log: log,
	})
}
