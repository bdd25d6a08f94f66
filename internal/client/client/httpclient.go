package client

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

	"github.com/dmitrijs2005/handylink/internal/common"
	"github.com/dmitrijs2005/handylink/internal/logging"
	"github.com/google/uuid"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 4 << 20

// HTTPClient implements Client and Marketplace over the HandyLink JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. "http://localhost:8000/api"). A zero timeout means no timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url %q: scheme must be http or https", baseURL)
	}
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}, nil
}

// do sends in (if non-nil) as JSON and decodes a 2xx body into out (if
// non-nil). Every error it returns is a *Failure.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return OtherFailure(fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return OtherFailure(fmt.Errorf("build request: %w", err))
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := AccessTokenFromContext(ctx); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerToken(token))
	}

	logCtx := logging.WithFields(ctx, "request_id", requestID)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(logCtx, "request failed", "method", method, "path", path, "error", err)
		if errors.Is(err, context.Canceled) {
			return OtherFailure(err)
		}
		return NetworkFailure(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return NetworkFailure(fmt.Errorf("read response: %w", err))
	}

	c.log.Debug(logCtx, "request done",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ServerFailure(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return OtherFailure(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
