// Package upstream is the typed client for the remote reservation API. The
// Client owns transport concerns (base URL, bearer injection, timeouts, error
// classification); the per-resource services in this package enumerate the
// endpoints and payload shapes and contain no further logic.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/seatflow/seatgate/internal/metrics"
)

// TimeoutMessage is the fixed message carried by timeout errors.
const TimeoutMessage = "request timed out"

const defaultTimeout = 10 * time.Second

// APIError is a failure reported by the reservation API, or a timeout.
// Transport-level failures are never wrapped in an APIError.
type APIError struct {
	// Status is the upstream HTTP status, or 408 when the call timed out
	// before a response arrived.
	Status int
	// Message is the upstream body's "message" field when present, otherwise
	// a generic fallback.
	Message string
	// Body is the parsed error body; empty when the body was not JSON.
	Body map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: %s (status %d)", e.Message, e.Status)
}

// IsTimeout reports whether e marks a timed-out call.
func (e *APIError) IsTimeout() bool {
	return e.Status == http.StatusRequestTimeout && e.Message == TimeoutMessage
}

type contextKey int

const tokenKey contextKey = iota

// WithToken returns a context carrying the bearer token to attach to upstream
// calls made with it.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey, token)
}

func tokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey).(string)
	return tok
}

// Config carries the settings for building a Client.
type Config struct {
	// BaseURL is the absolute root of the reservation API, e.g.
	// http://localhost:3001/api. Endpoints are joined onto it.
	BaseURL string
	// Timeout bounds every call unless overridden per call. Defaults to 10s.
	Timeout time.Duration
}

// Client wraps every network call to the reservation API.
type Client struct {
	rest    *resty.Client
	timeout time.Duration
	log     zerolog.Logger
}

// New validates the base URL and builds a Client. No automatic retries are
// configured anywhere: retry is a caller decision.
func New(cfg Config, log zerolog.Logger) (*Client, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("upstream: invalid base URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("upstream: base URL must be absolute, got: %s", cfg.BaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("upstream: base URL scheme must be http or https, got: %s", parsed.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rest := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")

	return &Client{rest: rest, timeout: timeout, log: log}, nil
}

// Option tunes a single call.
type Option func(*callOptions)

type callOptions struct {
	timeout time.Duration
	headers map[string]string
}

// WithTimeout overrides the client-wide timeout for one call.
func WithTimeout(d time.Duration) Option {
	return func(o *callOptions) { o.timeout = d }
}

// WithHeader adds a header to one call. The Authorization header is still set
// unconditionally whenever a token is on the context.
func WithHeader(key, value string) Option {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// Get issues a GET and decodes the JSON response into out (out may be nil).
func (c *Client) Get(ctx context.Context, endpoint string, out any, opts ...Option) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out, opts...)
}

// Post issues a POST with a JSON-encoded body. []byte and io.Reader bodies
// pass through unmodified.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any, opts ...Option) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, endpoint string, body, out any, opts ...Option) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out, opts...)
}

func (c *Client) Patch(ctx context.Context, endpoint string, body, out any, opts ...Option) error {
	return c.do(ctx, http.MethodPatch, endpoint, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, endpoint string, out any, opts ...Option) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, out, opts...)
}

// Ping probes upstream reachability for the readiness endpoint. Any HTTP
// response counts as reachable; only transport failures and timeouts do not.
func (c *Client) Ping(ctx context.Context) error {
	err := c.Get(ctx, "/", nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && !apiErr.IsTimeout() {
		return nil
	}
	return err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any, opts ...Option) error {
	options := callOptions{timeout: c.timeout}
	for _, opt := range opts {
		opt(&options)
	}

	ctx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	req := c.rest.R().SetContext(ctx)
	for k, v := range options.headers {
		req.SetHeader(k, v)
	}
	if tok := tokenFrom(ctx); tok != "" {
		req.SetHeader("Authorization", "Bearer "+tok)
	}
	if body != nil {
		switch b := body.(type) {
		case []byte:
			req.SetBody(b)
		case io.Reader:
			req.SetBody(b)
		default:
			encoded, err := json.Marshal(body)
			if err != nil {
				return fmt.Errorf("upstream: encode request body: %w", err)
			}
			req.SetHeader("Content-Type", "application/json").SetBody(encoded)
		}
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	start := time.Now()
	resp, err := req.Execute(method, endpoint)
	metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			metrics.UpstreamRequestsTotal.WithLabelValues(method, "timeout").Inc()
			c.log.Warn().Str("method", method).Str("endpoint", endpoint).Msg("upstream request timed out")
			return &APIError{Status: http.StatusRequestTimeout, Message: TimeoutMessage}
		}
		// Transport failure: propagated unchanged.
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "error").Inc()
		return err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode())).Inc()

	raw := resp.Body()
	if resp.IsError() {
		// An unparsable error body reads as an empty object.
		parsed := map[string]any{}
		_ = json.Unmarshal(raw, &parsed)
		msg, _ := parsed["message"].(string)
		if msg == "" {
			msg = fmt.Sprintf("request failed: %d", resp.StatusCode())
		}
		return &APIError{Status: resp.StatusCode(), Message: msg, Body: parsed}
	}

	if out != nil && len(raw) > 0 {
		// A successful status with a non-JSON body is treated as empty, never
		// surfaced as a parse error.
		if err := json.Unmarshal(raw, out); err != nil {
			c.log.Debug().Str("endpoint", endpoint).Msg("ignoring unparsable success body")
		}
	}
	return nil
}
