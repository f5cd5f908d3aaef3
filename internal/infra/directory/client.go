// Package directory is the HTTP client for the remote directory service,
// which owns every community, agent, driver and facility record.
//
// Every call succeeds only on HTTP 200. Any other status becomes a
// *repository.RemoteError carrying the response body verbatim.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ummana/config"
	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/domain/constants"
	"ummana/internal/domain/repository"
	"ummana/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Client implements the four directory repositories over one HTTP client.
type Client struct {
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

var (
	_ repository.CommunityRepository = (*Client)(nil)
	_ repository.AgentRepository     = (*Client)(nil)
	_ repository.DriverRepository    = (*Client)(nil)
	_ repository.FacilityRepository  = (*Client)(nil)
)

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewClient builds the client from directory.* configuration.
func NewClient(params ClientParams) (*Client, error) {
	cfg := params.Config.Directory

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Errorf("invalid directory.baseUrl: %q", cfg.BaseURL)
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    params.Metrics,
		logger:     params.Logger,
	}, nil
}

// do sends one request and decodes a 200 response into out when out is non-nil.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	u := *c.baseURL
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + path
	unescaped, err := url.PathUnescape(u.RawPath)
	if err != nil {
		return errors.Wrapf(err, "%s: invalid path", operation)
	}
	u.Path = unescaped

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "%s: marshal request", operation)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.Wrapf(err, "%s: build request", operation)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if requestID := deliverycontext.RequestID(ctx); requestID != "" {
		req.Header.Set(constants.HeaderRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveDirectoryCall(operation, 0, time.Since(start))

		return errors.Wrapf(err, "%s: %s %s", operation, method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	c.metrics.ObserveDirectoryCall(operation, resp.StatusCode, time.Since(start))
	if err != nil {
		return errors.Wrapf(err, "%s: read response", operation)
	}

	logger := deliverycontext.LoggerOr(ctx, c.logger)
	logger.Debug("Directory call",
		slog.String("operation", operation),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return &repository.RemoteError{
			StatusCode: resp.StatusCode,
			Payload:    errorPayload(respBody),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrapf(err, "%s: decode response", operation)
	}

	return nil
}

// errorPayload returns the body as the user should see it. A JSON string
// body is unquoted, an object with a message field yields that message,
// anything else is returned trimmed.
func errorPayload(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	case '{':
		var obj struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			if obj.Message != "" {
				return obj.Message
			}
			if obj.Error != "" {
				return obj.Error
			}
		}
	}

	return string(trimmed)
}

// resource joins an escaped record ID onto a collection path.
func resource(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}
