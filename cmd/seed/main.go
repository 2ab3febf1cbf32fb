package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/EmpoweredVote/APOD-Backend/internal/auth"
	"github.com/EmpoweredVote/APOD-Backend/internal/config"
	"github.com/EmpoweredVote/APOD-Backend/internal/db"
	"github.com/EmpoweredVote/APOD-Backend/internal/favorites"
	"github.com/EmpoweredVote/APOD-Backend/internal/logger"
	"github.com/EmpoweredVote/APOD-Backend/internal/seeds"
)

func main() {
	godotenv.Load(".env.local")

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true})

	conn, err := db.Connect(cfg.Database, lg)
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	defer db.Close(conn)

	if err := auth.Init(conn); err != nil {
		log.Fatalf("init auth: %v", err)
	}
	if err := favorites.Init(conn); err != nil {
		log.Fatalf("init favorites: %v", err)
	}

	err = seeds.SeedDemo(ctx, auth.NewStore(conn), favorites.NewStore(conn), seeds.DefaultDemo, lg)
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
	lg.Info().Str("username", seeds.DefaultDemo.Username).Msg("✓ demo data ready")
}
