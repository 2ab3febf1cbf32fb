package apod

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/EmpoweredVote/APOD-Backend/internal/config"
	"github.com/EmpoweredVote/APOD-Backend/internal/metrics"
)

const (
	// DefaultBaseURL is the NASA API host.
	DefaultBaseURL = "https://api.nasa.gov"

	apodPath = "/planetary/apod"

	// maxErrorBody caps how much of a failed response is read for logging.
	maxErrorBody = 4 << 10
)

// Fetcher retrieves a single day's picture. A zero date means today.
type Fetcher interface {
	Fetch(ctx context.Context, date time.Time) (*Picture, error)
}

// Client is an HTTP client for the APOD endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// NewClient creates a new APOD API client.
func NewClient(cfg config.APODConfig, log zerolog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		log:     log.With().Str("provider", "apod").Logger(),
	}
}

// Fetch calls upstream for the given date. The returned error is a
// *NotFoundError when upstream has no picture for that date and an
// *UnavailableError for every other failure.
func (c *Client) Fetch(ctx context.Context, date time.Time) (*Picture, error) {
	start := time.Now()
	pic, err := c.fetch(ctx, date)

	outcome := OutcomeOf(err)
	elapsed := time.Since(start)
	metrics.UpstreamRequestsTotal.WithLabelValues(outcome.String()).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(outcome.String()).Observe(elapsed.Seconds())

	ev := c.log.Debug()
	if outcome == OutcomeUnavailable {
		ev = c.log.Warn().Err(err)
	}
	ev.Str("date", FormatDate(date)).
		Str("outcome", outcome.String()).
		Dur("duration", elapsed).
		Msg("apod fetch")

	return pic, err
}

func (c *Client) fetch(ctx context.Context, date time.Time) (*Picture, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	if !date.IsZero() {
		params.Set("date", Day(date).Format(DateLayout))
	}
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, apodPath, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("apod request: %w", redactKey(err, c.apiKey))}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Date: Day(date)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UnavailableError{StatusCode: resp.StatusCode, Err: statusError(resp)}
	}

	var pic Picture
	if err := json.NewDecoder(resp.Body).Decode(&pic); err != nil {
		return nil, &UnavailableError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode apod: %w", err)}
	}
	return &pic, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.message() != "" {
		return errors.New(apiErr.message())
	}
	return errors.New(http.StatusText(resp.StatusCode))
}

// redactKey strips the API key from transport errors, which embed the URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}
