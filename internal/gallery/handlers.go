package gallery

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/EmpoweredVote/APOD-Backend/internal/apod"
	"github.com/EmpoweredVote/APOD-Backend/internal/utils"
	"github.com/EmpoweredVote/APOD-Backend/internal/views"
)

const MsgUnavailable = "Error: Failed to fetch data from NASA API. Please try again later."

// FavoriteChecker tells whether a user already favorited a date.
type FavoriteChecker interface {
	IsFavorite(ctx context.Context, ownerID uuid.UUID, date time.Time) (bool, error)
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any)
}

type Handler struct {
	fetcher   apod.Fetcher
	favorites FavoriteChecker
	views     Renderer
	now       func() time.Time
	log       zerolog.Logger
}

func NewHandler(fetcher apod.Fetcher, favorites FavoriteChecker, v Renderer, log zerolog.Logger) *Handler {
	return &Handler{
		fetcher:   fetcher,
		favorites: favorites,
		views:     v,
		now:       time.Now,
		log:       log.With().Str("module", "gallery").Logger(),
	}
}

// Home shows the picture for ?date=YYYY-MM-DD, or for today (UTC) when the
// parameter is absent. Every outcome renders the index page with 200.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	session, loggedIn := utils.GetSessionFromContext(r.Context())
	page := views.HomeView{Base: views.Base{User: session.Username}}

	date := apod.Day(h.now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := apod.ParseDate(raw)
		if err != nil {
			page.Error = views.MsgInvalidDate
			h.views.Render(w, http.StatusOK, views.PageIndex, page)
			return
		}
		date = d
	}

	prev, next := apod.Neighbors(date)
	page.Date = apod.FormatDate(date)
	page.PrevDate = apod.FormatDate(prev)
	page.NextDate = apod.FormatDate(next)

	pic, err := h.fetcher.Fetch(r.Context(), date)
	switch apod.OutcomeOf(err) {
	case apod.OutcomeOK:
		page.Picture = pic
	case apod.OutcomeNotFound:
		page.Error = fmt.Sprintf("No picture found for %s.", page.Date)
	default:
		page.Error = MsgUnavailable
	}

	if loggedIn && page.Picture != nil {
		fav, err := h.favorites.IsFavorite(r.Context(), session.UserID, date)
		if err != nil {
			h.log.Warn().Err(err).Str("user_id", session.UserID.String()).Msg("favorite lookup failed")
		}
		page.IsFavorite = fav
	}

	h.views.Render(w, http.StatusOK, views.PageIndex, page)
}
