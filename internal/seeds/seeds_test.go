package seeds

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmpoweredVote/APOD-Backend/internal/apod"
	"github.com/EmpoweredVote/APOD-Backend/internal/auth"
	"github.com/EmpoweredVote/APOD-Backend/internal/favorites"
)

type memUsers map[string]*auth.User

func (m memUsers) CreateUser(_ context.Context, username, hash string) (*auth.User, error) {
	if _, ok := m[username]; ok {
		return nil, auth.ErrDuplicateUsername
	}
	m[username] = &auth.User{ID: uuid.New(), Username: username, HashedPassword: hash}
	return m[username], nil
}

func (m memUsers) FindUserByUsername(_ context.Context, username string) (*auth.User, error) {
	u, ok := m[username]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return u, nil
}

type memFavs struct {
	set     map[string]bool
	toggles int
}

func (m *memFavs) key(owner uuid.UUID, d time.Time) string {
	return owner.String() + "/" + apod.FormatDate(d)
}

func (m *memFavs) IsFavorite(_ context.Context, owner uuid.UUID, d time.Time) (bool, error) {
	return m.set[m.key(owner, d)], nil
}

func (m *memFavs) Toggle(_ context.Context, owner uuid.UUID, d time.Time) (favorites.Action, error) {
	m.toggles++
	k := m.key(owner, d)
	if m.set[k] {
		delete(m.set, k)
		return favorites.Removed, nil
	}
	m.set[k] = true
	return favorites.Added, nil
}

func TestSeedDemo_Idempotent(t *testing.T) {
	users := memUsers{}
	favs := &memFavs{set: map[string]bool{}}

	require.NoError(t, SeedDemo(context.Background(), users, favs, DefaultDemo, zerolog.Nop()))
	require.NoError(t, SeedDemo(context.Background(), users, favs, DefaultDemo, zerolog.Nop()))

	require.Len(t, users, 1)
	demo := users["demo"]
	assert.True(t, auth.CheckPassword(demo.HashedPassword, DefaultDemo.Password))
	assert.Len(t, favs.set, len(DefaultDemo.Favorites))
	assert.Equal(t, len(DefaultDemo.Favorites), favs.toggles)
}

func TestSeedDemo_BadDate(t *testing.T) {
	demo := Demo{Username: "demo", Password: "pw", Favorites: []string{"07/01/2025"}}
	err := SeedDemo(context.Background(), memUsers{}, &memFavs{set: map[string]bool{}}, demo, zerolog.Nop())
	assert.ErrorIs(t, err, apod.ErrInvalidDate)
}
