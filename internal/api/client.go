package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Query limits sent with every /data/latest request, mirroring the API
// defaults.
const (
	LimitActive    = 500
	LimitBlown     = 200
	LimitPurchases = 200
	LimitPlan50K   = 100
)

// leveledZerolog adapts zerolog to retryablehttp's LeveledLogger.
// Client ERROR is re-written to WARN (retries handle it) and DEBUG to
// INFO (that is where retries are logged).
type leveledZerolog struct {
	log zerolog.Logger
}

func (l leveledZerolog) Error(msg string, keysAndValues ...interface{}) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}

func (l leveledZerolog) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn().Fields(keysAndValues).Msg(msg)
}

func (l leveledZerolog) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info().Fields(keysAndValues).Msg(msg)
}

func (l leveledZerolog) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Info().Fields(keysAndValues).Msg(msg)
}

// newHTTPClient returns a stdlib-interface client that retries on
// connection errors, 5xx, and 429 (respecting Retry-After) internally.
func newHTTPClient(logger zerolog.Logger) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = retryablehttp.LeveledLogger(leveledZerolog{logger})
	client := retryClient.StandardClient()
	client.Timeout = 20 * time.Second
	return client
}

// Client reads the competition data API. The zero value is not usable;
// construct with NewClient.
type Client struct {
	base    string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewClient returns a client for the API at baseURL (no trailing slash).
// token may be empty when the deployment runs without auth.
func NewClient(baseURL, token string, logger zerolog.Logger) *Client {
	return &Client{
		base:    baseURL,
		token:   token,
		http:    newHTTPClient(logger),
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
		log:     logger,
	}
}

// Latest fetches /data/latest. Requests pass through a 1-per-2s limiter
// so manual refreshes cannot stampede the upstream.
func (c *Client) Latest(ctx context.Context) (*Snapshot, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/data/latest?limit_active=%d&limit_blown=%d&limit_purchases=%d&limit_plan50k=%d",
		c.base, LimitActive, LimitBlown, LimitPurchases, LimitPlan50K)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build latest request: %w", err)
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest: unexpected status %s", resp.Status)
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode latest: %w", err)
	}

	c.log.Debug().
		Str("ts", snap.TS).
		Int("active", len(snap.Active)).
		Int("blown", len(snap.Blown)).
		Msg("snapshot fetched")
	return &snap, nil
}

// Health checks GET /health.
func (c *Client) Health(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: unexpected status %s", resp.Status)
	}

	var body struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode health response: %w", err)
	}
	if !body.OK {
		return fmt.Errorf("health check: API reported not ok")
	}
	return nil
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
