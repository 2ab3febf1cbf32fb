package auth

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/EmpoweredVote/APOD-Backend/internal/metrics"
	"github.com/EmpoweredVote/APOD-Backend/internal/utils"
	"github.com/EmpoweredVote/APOD-Backend/internal/views"
)

const (
	msgDuplicateUsername  = "Username already taken"
	msgInvalidCredentials = "Invalid username or password"
	msgServerError        = "Something went wrong, please try again."
)

// Renderer draws a named page.
type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any)
}

// Handler serves signup, login and logout.
type Handler struct {
	users         UserStore
	tokens        *TokenService
	views         Renderer
	secureCookies bool
	log           zerolog.Logger
}

func NewHandler(users UserStore, tokens *TokenService, v Renderer, secureCookies bool, log zerolog.Logger) *Handler {
	return &Handler{
		users:         users,
		tokens:        tokens,
		views:         v,
		secureCookies: secureCookies,
		log:           log.With().Str("module", "auth").Logger(),
	}
}

func (h *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, views.PageSignup, views.FormView{Base: base(r)})
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	form := readCredentials(r)
	fail := func(status int, msg, result string) {
		metrics.SignupsTotal.WithLabelValues(result).Inc()
		h.views.Render(w, status, views.PageSignup, views.FormView{
			Base:     base(r),
			Error:    msg,
			Username: form.Username,
		})
	}

	if msg := form.validationMessage(); msg != "" {
		fail(http.StatusOK, msg, "invalid")
		return
	}

	username, err := NormalizeUsername(form.Username)
	if err != nil {
		fail(http.StatusOK, err.Error(), "invalid")
		return
	}

	hashed, err := HashPassword(form.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("hash password")
		fail(http.StatusInternalServerError, msgServerError, "error")
		return
	}

	user, err := h.users.CreateUser(r.Context(), username, hashed)
	if errors.Is(err, ErrDuplicateUsername) {
		fail(http.StatusOK, msgDuplicateUsername, "duplicate")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("create user")
		fail(http.StatusInternalServerError, msgServerError, "error")
		return
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	h.log.Info().Str("user_id", user.ID.String()).Msg("user signed up")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, views.PageLogin, views.FormView{Base: base(r)})
}

// Login never tells the visitor which of username or password was wrong.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	form := readCredentials(r)

	user, err := h.authenticate(r, form)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		status, msg := http.StatusOK, msgInvalidCredentials
		if !errors.Is(err, ErrInvalidCredentials) {
			h.log.Error().Err(err).Msg("login")
			status, msg = http.StatusInternalServerError, msgServerError
		}
		h.views.Render(w, status, views.PageLogin, views.FormView{
			Base:     base(r),
			Error:    msg,
			Username: form.Username,
		})
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		h.log.Error().Err(err).Msg("issue token")
		h.views.Render(w, http.StatusInternalServerError, views.PageLogin, views.FormView{
			Base:  base(r),
			Error: msgServerError,
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    bearerValue(token),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	})

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) authenticate(r *http.Request, form credentials) (*User, error) {
	if form.validationMessage() != "" {
		return nil, ErrInvalidCredentials
	}
	username, err := NormalizeUsername(form.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := h.users.FindUserByUsername(r.Context(), username)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !CheckPassword(user.HashedPassword, form.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Logout clears the cookie whether or not a session existed.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func base(r *http.Request) views.Base {
	s, _ := utils.GetSessionFromContext(r.Context())
	return views.Base{User: s.Username}
}
