// Package seeds loads a demo account for local development.
package seeds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/EmpoweredVote/APOD-Backend/internal/apod"
	"github.com/EmpoweredVote/APOD-Backend/internal/auth"
	"github.com/EmpoweredVote/APOD-Backend/internal/favorites"
)

type FavoriteSeeder interface {
	IsFavorite(ctx context.Context, ownerID uuid.UUID, date time.Time) (bool, error)
	Toggle(ctx context.Context, ownerID uuid.UUID, date time.Time) (favorites.Action, error)
}

// Demo describes the seeded account.
type Demo struct {
	Username  string
	Password  string
	Favorites []string // YYYY-MM-DD
}

var DefaultDemo = Demo{
	Username:  "demo",
	Password:  "demo-password",
	Favorites: []string{"2025-07-01", "2025-07-04", "2025-07-06"},
}

// SeedDemo creates the demo user if missing and makes sure every listed
// date is favorited. Running it twice changes nothing.
func SeedDemo(ctx context.Context, users auth.UserStore, favs FavoriteSeeder, demo Demo, log zerolog.Logger) error {
	username, err := auth.NormalizeUsername(demo.Username)
	if err != nil {
		return fmt.Errorf("demo username: %w", err)
	}

	user, err := users.FindUserByUsername(ctx, username)
	if errors.Is(err, auth.ErrUserNotFound) {
		hash, herr := auth.HashPassword(demo.Password)
		if herr != nil {
			return herr
		}
		user, err = users.CreateUser(ctx, username, hash)
		if err == nil {
			log.Info().Str("username", username).Msg("created demo user")
		}
	}
	if err != nil {
		return fmt.Errorf("demo user: %w", err)
	}

	for _, raw := range demo.Favorites {
		date, err := apod.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("demo favorite %q: %w", raw, err)
		}
		ok, err := favs.IsFavorite(ctx, user.ID, date)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if _, err := favs.Toggle(ctx, user.ID, date); err != nil {
			return fmt.Errorf("seed favorite %s: %w", raw, err)
		}
		log.Info().Str("date", raw).Msg("seeded favorite")
	}
	return nil
}
