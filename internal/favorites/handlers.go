package favorites

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/EmpoweredVote/APOD-Backend/internal/apod"
	"github.com/EmpoweredVote/APOD-Backend/internal/metrics"
	"github.com/EmpoweredVote/APOD-Backend/internal/utils"
	"github.com/EmpoweredVote/APOD-Backend/internal/views"
)

const (
	msgNotFound    = "No picture found for this date."
	msgUnavailable = "Picture currently unavailable."
	msgServerError = "Something went wrong, please try again."
)

type FavoriteStore interface {
	Toggle(ctx context.Context, ownerID uuid.UUID, date time.Time) (Action, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]Favorite, error)
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, page string, data any)
}

type Handler struct {
	store   FavoriteStore
	fetcher apod.Fetcher
	views   Renderer
	log     zerolog.Logger
}

func NewHandler(store FavoriteStore, fetcher apod.Fetcher, v Renderer, log zerolog.Logger) *Handler {
	return &Handler{
		store:   store,
		fetcher: fetcher,
		views:   v,
		log:     log.With().Str("module", "favorites").Logger(),
	}
}

// Toggle flips the favorite for the posted apod_date and sends the user
// back to that date.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	date, err := apod.ParseDate(r.PostFormValue("apod_date"))
	if err != nil {
		h.views.Render(w, http.StatusBadRequest, views.PageIndex, views.HomeView{
			Base:  views.Base{User: session.Username},
			Error: views.MsgInvalidDate,
		})
		return
	}

	action, err := h.store.Toggle(r.Context(), session.UserID, date)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", session.UserID.String()).Msg("toggle favorite")
		h.views.Render(w, http.StatusInternalServerError, views.PageIndex, views.HomeView{
			Base:  views.Base{User: session.Username},
			Error: msgServerError,
		})
		return
	}

	metrics.FavoriteTogglesTotal.WithLabelValues(string(action)).Inc()
	http.Redirect(w, r, "/?date="+apod.FormatDate(date), http.StatusSeeOther)
}

// List renders every favorite with its picture. Dates whose fetch fails
// are still listed, with a short notice instead of the picture.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	page := views.FavoritesView{Base: views.Base{User: session.Username}}

	favs, err := h.store.List(r.Context(), session.UserID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", session.UserID.String()).Msg("list favorites")
		h.views.Render(w, http.StatusInternalServerError, views.PageIndex, views.HomeView{
			Base:  page.Base,
			Error: msgServerError,
		})
		return
	}

	dates := make([]time.Time, len(favs))
	for i, f := range favs {
		dates[i] = f.APODDate
	}

	for _, res := range apod.FetchAll(r.Context(), h.fetcher, dates) {
		item := views.FavoriteItem{Date: apod.FormatDate(res.Date), Picture: res.Picture}
		switch res.Outcome() {
		case apod.OutcomeNotFound:
			item.Error = msgNotFound
		case apod.OutcomeUnavailable:
			item.Error = msgUnavailable
		}
		page.Items = append(page.Items, item)
	}

	h.views.Render(w, http.StatusOK, views.PageFavorites, page)
}
