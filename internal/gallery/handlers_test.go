package gallery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmpoweredVote/APOD-Backend/internal/apod"
	"github.com/EmpoweredVote/APOD-Backend/internal/utils"
	"github.com/EmpoweredVote/APOD-Backend/internal/views"
)

type stubFetcher struct {
	requested []time.Time
	err       error
}

func (s *stubFetcher) Fetch(_ context.Context, d time.Time) (*apod.Picture, error) {
	s.requested = append(s.requested, d)
	if s.err != nil {
		return nil, s.err
	}
	return &apod.Picture{
		Date:      apod.FormatDate(d),
		Title:     "The Milky Way over Hawaii",
		MediaType: apod.MediaImage,
		URL:       "https://apod.nasa.gov/apod/image/milky.jpg",
	}, nil
}

type stubChecker struct {
	favorite bool
	err      error
	calls    int
}

func (s *stubChecker) IsFavorite(context.Context, uuid.UUID, time.Time) (bool, error) {
	s.calls++
	return s.favorite, s.err
}

type captureRenderer struct {
	status int
	page   string
	view   views.HomeView
}

func (c *captureRenderer) Render(w http.ResponseWriter, status int, page string, data any) {
	c.status, c.page = status, page
	c.view = data.(views.HomeView)
	w.WriteHeader(status)
}

func newTestHandler(f apod.Fetcher, fc FavoriteChecker) (*Handler, *captureRenderer) {
	cr := &captureRenderer{}
	h := NewHandler(f, fc, cr, zerolog.Nop())
	h.now = func() time.Time { return time.Date(2025, 7, 10, 23, 30, 0, 0, time.UTC) }
	return h, cr
}

func get(h *Handler, target string, session *utils.SessionData) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if session != nil {
		req = req.WithContext(utils.WithSession(req.Context(), *session))
	}
	rec := httptest.NewRecorder()
	h.Home(rec, req)
	return rec
}

func TestHome_RequestedDate(t *testing.T) {
	f := &stubFetcher{}
	h, cr := newTestHandler(f, &stubChecker{})

	rec := get(h, "/?date=2025-07-01", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, views.PageIndex, cr.page)
	require.Len(t, f.requested, 1)
	assert.Equal(t, "2025-07-01", apod.FormatDate(f.requested[0]))
	assert.Equal(t, "The Milky Way over Hawaii", cr.view.Picture.Title)
	assert.Equal(t, "2025-07-01", cr.view.Date)
	assert.Equal(t, "2025-06-30", cr.view.PrevDate)
	assert.Equal(t, "2025-07-02", cr.view.NextDate)
	assert.Empty(t, cr.view.Error)
}

func TestHome_DefaultsToTodayUTC(t *testing.T) {
	f := &stubFetcher{}
	h, cr := newTestHandler(f, &stubChecker{})

	get(h, "/", nil)

	require.Len(t, f.requested, 1)
	assert.Equal(t, "2025-07-10", apod.FormatDate(f.requested[0]))
	assert.Equal(t, "2025-07-09", cr.view.PrevDate)
	assert.Equal(t, "2025-07-11", cr.view.NextDate)
}

func TestHome_NeighborsCrossMonthAndYear(t *testing.T) {
	h, cr := newTestHandler(&stubFetcher{}, &stubChecker{})

	get(h, "/?date=2025-01-01", nil)
	assert.Equal(t, "2024-12-31", cr.view.PrevDate)

	get(h, "/?date=2024-02-28", nil)
	assert.Equal(t, "2024-02-29", cr.view.NextDate)
}

func TestHome_InvalidDateSkipsUpstream(t *testing.T) {
	for _, bad := range []string{"2025-13-45", "yesterday", "07/01/2025"} {
		f := &stubFetcher{}
		h, cr := newTestHandler(f, &stubChecker{})

		rec := get(h, "/?date="+bad, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, views.MsgInvalidDate, cr.view.Error, "date %q", bad)
		assert.Nil(t, cr.view.Picture)
		assert.Empty(t, f.requested, "upstream must not be called for %q", bad)
	}
}

func TestHome_NotFound(t *testing.T) {
	d := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	h, cr := newTestHandler(&stubFetcher{err: &apod.NotFoundError{Date: d}}, &stubChecker{})

	rec := get(h, "/?date=1990-01-01", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No picture found for 1990-01-01.", cr.view.Error)
	assert.Nil(t, cr.view.Picture)
}

func TestHome_Unavailable(t *testing.T) {
	h, cr := newTestHandler(&stubFetcher{err: &apod.UnavailableError{Err: errors.New("connection refused")}}, &stubChecker{})

	rec := get(h, "/?date=2025-07-01", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MsgUnavailable, cr.view.Error)
	// navigation still works
	assert.Equal(t, "2025-06-30", cr.view.PrevDate)
}

func TestHome_FavoriteState(t *testing.T) {
	session := &utils.SessionData{UserID: uuid.New(), Username: "testuser"}

	checker := &stubChecker{favorite: true}
	h, cr := newTestHandler(&stubFetcher{}, checker)
	get(h, "/?date=2025-07-01", session)
	assert.True(t, cr.view.IsFavorite)
	assert.Equal(t, "testuser", cr.view.User)
	assert.Equal(t, 1, checker.calls)

	checker = &stubChecker{}
	h, cr = newTestHandler(&stubFetcher{}, checker)
	get(h, "/?date=2025-07-01", session)
	assert.False(t, cr.view.IsFavorite)
}

func TestHome_AnonymousSkipsFavoriteLookup(t *testing.T) {
	checker := &stubChecker{favorite: true}
	h, cr := newTestHandler(&stubFetcher{}, checker)

	get(h, "/?date=2025-07-01", nil)

	assert.Zero(t, checker.calls)
	assert.False(t, cr.view.IsFavorite)
	assert.Empty(t, cr.view.User)
}

func TestHome_FavoriteLookupFailureStillRenders(t *testing.T) {
	session := &utils.SessionData{UserID: uuid.New(), Username: "testuser"}
	h, cr := newTestHandler(&stubFetcher{}, &stubChecker{err: errors.New("db down")})

	rec := get(h, "/?date=2025-07-01", session)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, cr.view.Picture)
	assert.False(t, cr.view.IsFavorite)
}
