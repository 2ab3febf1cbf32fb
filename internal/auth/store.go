package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EmpoweredVote/APOD-Backend/internal/db"
)

// UserStore is the credential store used by the handlers and the session
// lookup.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	FindUserByUsername(ctx context.Context, username string) (*User, error)
}

// Store persists users with gorm.
type Store struct {
	db *gorm.DB
}

func NewStore(d *gorm.DB) *Store {
	return &Store{db: d}
}

// CreateUser inserts a new account. The username is checked right before
// the insert; a race past that check is caught by the unique index and
// reported the same way.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (*User, error) {
	var existing User
	err := s.db.WithContext(ctx).First(&existing, "username = ?", username).Error
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	user := &User{
		ID:             uuid.New(),
		Username:       username,
		HashedPassword: passwordHash,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
