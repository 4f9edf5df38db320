package loyalty

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rewardplus/loyalty-console/pkg/config"
	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
	"github.com/rewardplus/loyalty-console/pkg/logger"
	"github.com/rewardplus/loyalty-console/pkg/metrics"
)

const (
	defaultBaseURL           = "/api"
	errorBodyReadLimit int64 = 1024
	contentTypeJSON          = "application/json"
)

var errLoggerRequired = errors.New("loyalty client logger is required")

// Client wraps the remote loyalty program REST API. It carries no retry
// or timeout policy of its own: failures propagate to the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logger.Logger
	metrics    *metrics.APICallMetrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithMetrics wires outbound call metrics onto the client.
func WithMetrics(m *metrics.APICallMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds the loyalty API client. The base URL is fixed for
// the life of the process.
func NewClient(cfg config.APIConfig, logg *logger.Logger, opts ...Option) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := &Client{
		httpClient: http.DefaultClient,
		baseURL:    baseURL,
		logger:     logg,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = http.DefaultClient
	}

	logg.Info(context.Background(), "loyalty api client initialized")
	return client, nil
}

// BaseURL reports the configured API root.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

func (c *Client) get(ctx context.Context, resource, op, path string, query url.Values) (*envelope, error) {
	return c.do(ctx, http.MethodGet, resource, op, path, query, nil)
}

func (c *Client) post(ctx context.Context, resource, op, path string, query url.Values, body any) (*envelope, error) {
	return c.do(ctx, http.MethodPost, resource, op, path, query, body)
}

func (c *Client) do(ctx context.Context, method, resource, op, path string, query url.Values, body any) (*envelope, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "loyalty client not configured")
	}

	endpoint := c.buildURL(path)
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("marshal %s %s request", resource, op))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("build %s %s request", resource, op))
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)

	c.log(ctx, "request", resource, op, map[string]any{"method": method, "path": path})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveDuration(resource, op, time.Since(start))
	if err != nil {
		c.metrics.IncFailure(resource, op)
		c.log(ctx, "error", resource, op, map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("%s %s failed", resource, op))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.IncFailure(resource, op)
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		remote := &pkgerrors.RemoteError{
			StatusCode: resp.StatusCode,
			Endpoint:   path,
			Body:       strings.TrimSpace(string(msg)),
		}
		c.log(ctx, "error", resource, op, map[string]any{"status": resp.StatusCode})
		return nil, pkgerrors.Wrap(codeForStatus(resp.StatusCode), remote, fmt.Sprintf("%s %s failed", resource, op))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.metrics.IncFailure(resource, op)
		c.log(ctx, "error", resource, op, map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeShape, err, fmt.Sprintf("decode %s %s response", resource, op))
	}

	if env.Error != nil {
		c.metrics.IncFailure(resource, op)
		c.log(ctx, "error", resource, op, map[string]any{"api_code": env.Error.Code})
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("%s %s rejected: %s", resource, op, env.Error.Message)).
			WithDetails(map[string]any{"code": env.Error.Code, "details": env.Error.Details})
	}

	c.metrics.IncSuccess(resource, op)
	c.log(ctx, "response", resource, op, map[string]any{"status": resp.StatusCode})
	return &env, nil
}

func (c *Client) buildURL(path string) string {
	trimmed := strings.TrimRight(c.baseURL, "/")
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("%s/%s", trimmed, path)
}

func (c *Client) log(ctx context.Context, phase, resource, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"resource":  resource,
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = v
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		var cause error
		if v, ok := fields["error"]; ok {
			cause = errors.New(fmt.Sprint(v))
		}
		c.logger.Error(ctx, fmt.Sprintf("loyalty %s.%s", resource, op), cause)
	default:
		c.logger.Info(ctx, fmt.Sprintf("loyalty %s", phase))
	}
}

func codeForStatus(status int) pkgerrors.Code {
	switch status {
	case http.StatusUnauthorized:
		return pkgerrors.CodeUnauthorized
	case http.StatusForbidden:
		return pkgerrors.CodeForbidden
	case http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case http.StatusConflict:
		return pkgerrors.CodeConflict
	case http.StatusTooManyRequests:
		return pkgerrors.CodeRateLimit
	case http.StatusBadRequest:
		return pkgerrors.CodeValidation
	default:
		if status >= 400 && status < 500 {
			return pkgerrors.CodeValidation
		}
		return pkgerrors.CodeDependency
	}
}
