package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUsers is an in-memory UserStore.
type memUsers struct {
	byName map[string]*User
}

func newMemUsers() *memUsers {
	return &memUsers{byName: map[string]*User{}}
}

func (m *memUsers) CreateUser(_ context.Context, username, hash string) (*User, error) {
	if _, ok := m.byName[username]; ok {
		return nil, ErrDuplicateUsername
	}
	u := &User{ID: uuid.New(), Username: username, HashedPassword: hash}
	m.byName[username] = u
	clone := *u
	return &clone, nil
}

func (m *memUsers) FindUserByUsername(_ context.Context, username string) (*User, error) {
	u, ok := m.byName[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func TestSessionInfo_FindSession(t *testing.T) {
	users := newMemUsers()
	user, err := users.CreateUser(context.Background(), "alice", "hash")
	require.NoError(t, err)

	tokens := NewTokenService("secret")
	token, err := tokens.Issue("alice")
	require.NoError(t, err)

	si := SessionInfo{Tokens: tokens, Users: users}

	session, err := si.FindSession(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, "alice", session.Username)

	// scheme is case-insensitive
	_, err = si.FindSession(context.Background(), "bearer "+token)
	assert.NoError(t, err)
}

func TestSessionInfo_RejectsBadShapes(t *testing.T) {
	tokens := NewTokenService("secret")
	token, err := tokens.Issue("alice")
	require.NoError(t, err)

	si := SessionInfo{Tokens: tokens, Users: newMemUsers()}

	for _, raw := range []string{"", token, "Bearer", "Bearer ", "Basic " + token, "Token " + token} {
		_, err := si.FindSession(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "raw %q", raw)
	}
}

func TestSessionInfo_UnknownUser(t *testing.T) {
	tokens := NewTokenService("secret")
	token, err := tokens.Issue("ghost")
	require.NoError(t, err)

	si := SessionInfo{Tokens: tokens, Users: newMemUsers()}

	_, err = si.FindSession(context.Background(), "Bearer "+token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
