// Package chrono is the HTTP client for the time-range resolution service.
// rangelens never does range math of its own; every range expression and
// shift list is handed to chrono and the returned display string is used
// verbatim.
package chrono

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rangelens/internal/platform/config"
	perr "rangelens/internal/platform/errors"
	"rangelens/internal/platform/logger"
)

// Resolved is the service's answer for one range expression
type Resolved struct {
	Value string `json:"value"`
}

// Config tunes the client
type Config struct {
	BaseURL    *url.URL
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

// FromConfig reads client settings from a CHRONO_-scoped Conf
func FromConfig(cfg config.Conf) Config {
	cc := cfg.Prefix("CHRONO_")
	return Config{
		BaseURL:    cc.MustURL("URL"),
		Timeout:    cc.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries: cc.MayInt("RETRIES", 2),
		Backoff:    cc.MayDuration("BACKOFF", 250*time.Millisecond),
	}
}

// Client talks to chrono over HTTP
type Client struct {
	base    *url.URL
	hc      *http.Client
	retries int
	backoff time.Duration
	log     *logger.Logger
}

// New builds a Client; cfg.BaseURL is required
func New(cfg Config) *Client {
	if cfg.BaseURL == nil {
		panic("chrono: BaseURL is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = 250 * time.Millisecond
	}
	return &Client{
		base:    cfg.BaseURL,
		hc:      &http.Client{Timeout: timeout},
		retries: cfg.MaxRetries,
		backoff: backoff,
		log:     logger.Named("chrono"),
	}
}

// fetchRequest is the wire form of a resolution call
type fetchRequest struct {
	TimeRange string   `json:"time_range"`
	Subject   string   `json:"subject"`
	Shifts    []string `json:"shifts,omitempty"`
}

// FetchTimeRange resolves rangeExpr for subject, optionally adjusted by
// shifts, into a display string. Transport errors and 5xx answers are
// retried with linear backoff; 4xx answers are not.
func (c *Client) FetchTimeRange(ctx context.Context, rangeExpr, subject string, shifts ...string) (Resolved, error) {
	body, err := json.Marshal(fetchRequest{TimeRange: rangeExpr, Subject: subject, Shifts: shifts})
	if err != nil {
		return Resolved{}, perr.Wrap(err, perr.ErrorCodeJSON, "encode fetch request")
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Resolved{}, perr.Wrap(ctx.Err(), perr.ErrorCodeTimeout, "fetch time range")
			case <-time.After(time.Duration(attempt) * c.backoff):
			}
		}

		out, err := c.fetchOnce(ctx, body)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !perr.Retryable(err) {
			return Resolved{}, err
		}
		c.log.Warn().Err(err).Int("attempt", attempt+1).Msg("fetch retry")
	}
	return Resolved{}, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, body []byte) (Resolved, error) {
	u := c.base.JoinPath("api", "v1", "time-range")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return Resolved{}, perr.Wrap(err, perr.ErrorCodeUnknown, "build fetch request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Resolved{}, perr.Wrap(ctx.Err(), perr.ErrorCodeTimeout, "fetch time range")
		}
		return Resolved{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "chrono unreachable")
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return Resolved{}, perr.Wrap(err, perr.ErrorCodeUpstream, "read chrono response")
	}

	switch {
	case res.StatusCode >= 500:
		return Resolved{}, perr.Upstreamf("chrono returned %d", res.StatusCode)
	case res.StatusCode >= 400:
		return Resolved{}, perr.InvalidArgf("chrono rejected request: %s", snippet(raw))
	}

	var out Resolved
	if err := json.Unmarshal(raw, &out); err != nil {
		return Resolved{}, perr.Wrap(err, perr.ErrorCodeUpstream, "decode chrono response")
	}
	return out, nil
}

// Ping checks chrono liveness for readiness probes
func (c *Client) Ping(ctx context.Context) error {
	u := c.base.JoinPath("health")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "build ping request")
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "chrono unreachable")
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode != http.StatusOK {
		return perr.Upstreamf("chrono health returned %d", res.StatusCode)
	}
	return nil
}

func snippet(raw []byte) string {
	const max = 200
	if len(raw) > max {
		return fmt.Sprintf("%s…", raw[:max])
	}
	return string(raw)
}
