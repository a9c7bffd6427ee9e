// Package amadeus is a typed client for the Amadeus Self-Service flight
// APIs: OAuth2 client-credentials authentication, the flight-offers
// search, and the cheapest-dates calendar search.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
	"github.com/ray66rus/amadeus-searcher/internal/infrastructure/ratelimit"
	"github.com/ray66rus/amadeus-searcher/internal/infrastructure/retry"
)

// DefaultBaseURL is the Amadeus test environment.
const DefaultBaseURL = "https://test.api.amadeus.com"

// API endpoint paths.
const (
	tokenPath  = "/v1/security/oauth2/token"
	offersPath = "/v2/shopping/flight-offers"
	datesPath  = "/v1/shopping/flight-dates"
)

// Config holds everything needed to construct a Client.
type Config struct {
	ClientID     string
	ClientSecret string

	// BaseURL defaults to the test environment when empty.
	BaseURL string

	// Timeout bounds each HTTP request, token exchange included.
	Timeout time.Duration

	// MaxRetries is the attempt cap for retryable failures; 0 keeps the
	// package default.
	MaxRetries int

	// RequestsPerSecond and Burst feed the client-side rate limiter.
	RequestsPerSecond float64
	Burst             int

	// Logger defaults to the global logger when zero.
	Logger *zerolog.Logger
}

// Client talks to the Amadeus API. The zero value is not usable; create
// one with NewClient.
type Client struct {
	baseURL  string
	hc       *http.Client
	limiter  *ratelimit.EndpointLimiter
	retryCfg retry.Config
	log      zerolog.Logger
}

// NewClient builds a Client. The bearer token is fetched lazily on the
// first request and reused for the process lifetime; credentials are
// exchanged form-encoded against the token endpoint, matching the
// vendor's client-credentials grant.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     base + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	hc := cc.Client(context.Background())
	if cfg.Timeout > 0 {
		hc.Timeout = cfg.Timeout
	}

	retryCfg := retry.APIConfig.WithRetryIf(domain.IsRetryable)
	if cfg.MaxRetries > 0 {
		retryCfg = retryCfg.WithMaxAttempts(cfg.MaxRetries)
	}

	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Client{
		baseURL: base,
		hc:      hc,
		limiter: ratelimit.New(ratelimit.Config{
			RequestsPerSecond: cfg.RequestsPerSecond,
			Burst:             cfg.Burst,
		}),
		retryCfg: retryCfg,
		log:      logger.With().Str("component", "amadeus").Logger(),
	}
}

// get issues one rate-limited, retried GET against an API path and
// decodes the 2xx body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx, path); err != nil {
		return err
	}

	start := time.Now()
	err := retry.Do(ctx, func() error {
		return c.getOnce(ctx, path, query, out)
	}, c.retryCfg)

	c.log.Debug().
		Str("path", path).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("API request")
	return err
}

func (c *Client) getOnce(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return retry.NewPermanent(err)
	}
	req.URL.RawQuery = query.Encode()

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response from %s: %w", path, err)
	}

	if res.StatusCode >= http.StatusBadRequest {
		return apiError(res.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return retry.NewPermanent(fmt.Errorf("decode response from %s: %w", path, err))
	}
	return nil
}

// apiError maps a non-2xx body to a domain.APIError, falling back to the
// bare status when the error envelope does not parse.
func apiError(status int, body []byte) error {
	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		e := envelope.Errors[0]
		return domain.NewAPIError(status, e.Code, e.Title, e.Detail)
	}
	return domain.NewAPIError(status, 0, http.StatusText(status), "")
}
