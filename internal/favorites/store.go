package favorites

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/EmpoweredVote/APOD-Backend/internal/apod"
	"github.com/EmpoweredVote/APOD-Backend/internal/auth"
)

type Store struct {
	db *gorm.DB
}

func NewStore(d *gorm.DB) *Store {
	return &Store{db: d}
}

// Toggle adds the favorite if it is missing and removes it otherwise.
// The owner's user row is locked for the duration of the transaction, so
// concurrent toggles by the same user run one after the other.
func (s *Store) Toggle(ctx context.Context, ownerID uuid.UUID, date time.Time) (Action, error) {
	day := apod.Day(date)
	var action Action

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner auth.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Take(&owner, "id = ?", ownerID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auth.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("lock owner: %w", err)
		}

		var fav Favorite
		err = tx.Where("owner_id = ? AND apod_date = ?", ownerID, day).Take(&fav).Error
		switch {
		case err == nil:
			if err := tx.Delete(&fav).Error; err != nil {
				return fmt.Errorf("delete favorite: %w", err)
			}
			action = Removed
		case errors.Is(err, gorm.ErrRecordNotFound):
			fav = Favorite{ID: uuid.New(), OwnerID: ownerID, APODDate: day}
			if err := tx.Omit("Owner").Create(&fav).Error; err != nil {
				return fmt.Errorf("create favorite: %w", err)
			}
			action = Added
		default:
			return fmt.Errorf("find favorite: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return action, nil
}

// List returns the owner's favorites in the order they were added.
func (s *Store) List(ctx context.Context, ownerID uuid.UUID) ([]Favorite, error) {
	var favs []Favorite
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at, id").
		Find(&favs).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}

func (s *Store) IsFavorite(ctx context.Context, ownerID uuid.UUID, date time.Time) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&Favorite{}).
		Where("owner_id = ? AND apod_date = ?", ownerID, apod.Day(date)).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return n > 0, nil
}
