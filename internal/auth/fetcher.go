package auth

import (
	"context"
	"strings"

	"github.com/EmpoweredVote/APOD-Backend/internal/utils"
)

const (
	CookieName   = utils.SessionCookie
	bearerScheme = "Bearer"
)

// SessionInfo turns a raw access_token cookie value into the session of a
// stored user.
type SessionInfo struct {
	Tokens *TokenService
	Users  UserStore
}

func (si SessionInfo) FindSession(ctx context.Context, raw string) (utils.SessionData, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(raw), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) || strings.TrimSpace(token) == "" {
		return utils.SessionData{}, ErrInvalidToken
	}

	username, err := si.Tokens.Verify(strings.TrimSpace(token))
	if err != nil {
		return utils.SessionData{}, err
	}

	user, err := si.Users.FindUserByUsername(ctx, username)
	if err != nil {
		return utils.SessionData{}, err
	}

	return utils.SessionData{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

func bearerValue(token string) string {
	return bearerScheme + " " + token
}
