package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/EmpoweredVote/APOD-Backend/internal/auth"
	"github.com/EmpoweredVote/APOD-Backend/internal/config"
	"github.com/EmpoweredVote/APOD-Backend/internal/db"
	"github.com/EmpoweredVote/APOD-Backend/internal/favorites"
)

// Prints the stored favorites of one user, oldest first.
func main() {
	godotenv.Load(".env.local")

	if len(os.Args) != 2 {
		log.Fatal("usage: check_favorites <username>")
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	conn, err := db.Connect(cfg.Database, zerolog.Nop())
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	defer db.Close(conn)

	ctx := context.Background()
	username, err := auth.NormalizeUsername(os.Args[1])
	if err != nil {
		log.Fatalf("username: %v", err)
	}
	user, err := auth.NewStore(conn).FindUserByUsername(ctx, username)
	if err != nil {
		log.Fatalf("Lookup error: %v", err)
	}

	favs, err := favorites.NewStore(conn).List(ctx, user.ID)
	if err != nil {
		log.Fatalf("Query error: %v", err)
	}

	fmt.Printf("Favorites for %s (%s): %d\n\n", user.Username, user.ID, len(favs))
	for _, f := range favs {
		fmt.Printf("  - %s  (added %s)\n", f.APODDate.Format(time.DateOnly), f.CreatedAt.Format(time.RFC3339))
	}
}
