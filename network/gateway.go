package network

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// maxResponseSize bounds successful bodies; raw transactions stay well below it.
	maxResponseSize = 16 << 20

	// maxPayloadSize bounds error bodies kept on a RemoteServiceError.
	maxPayloadSize = 64 << 10

	defaultTimeout = 30 * time.Second
)

// Gateway performs the HTTP requests of an explorer client.
// Every failure is returned as a *RemoteServiceError.
type Gateway interface {
	// Get fetches url and returns the response body.
	Get(ctx context.Context, url string) ([]byte, error)

	// Post sends body to url with the given content type and returns the response body.
	Post(ctx context.Context, url, contentType string, body []byte) ([]byte, error)
}

// GatewayConfig holds the tunables of an HTTPGateway.
type GatewayConfig struct {
	// Timeout bounds a whole request including reading the body. Zero means 30s.
	Timeout time.Duration

	// UserAgent is sent on every request when non-empty.
	UserAgent string

	// Logger receives per-request debug lines. Nil disables logging.
	Logger log.FieldLogger
}

// HTTPGateway is a Gateway backed by its own http.Client. It holds no global
// state, so several gateways with different settings can coexist.
type HTTPGateway struct {
	client    *http.Client
	userAgent string
	logger    log.FieldLogger
}

// Compile-time interface check.
var _ Gateway = (*HTTPGateway)(nil)

// NewHTTPGateway creates a gateway with a pooled transport.
func NewHTTPGateway(cfg GatewayConfig) *HTTPGateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = DiscardLogger()
	}
	return &HTTPGateway{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Get implements Gateway.
func (g *HTTPGateway) Get(ctx context.Context, url string) ([]byte, error) {
	return g.do(ctx, http.MethodGet, url, "", nil)
}

// Post implements Gateway.
func (g *HTTPGateway) Post(ctx context.Context, url, contentType string, body []byte) ([]byte, error) {
	return g.do(ctx, http.MethodPost, url, contentType, body)
}

func (g *HTTPGateway) do(ctx context.Context, method, url, contentType string, body []byte) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, &RemoteServiceError{
			Method: method,
			URL:    url,
			Err:    fmt.Errorf("%w: create request: %w", ErrConnectionFailed, err),
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.WithFields(log.Fields{"method": method, "url": url}).Debugf("request failed: %s", err)
		return nil, &RemoteServiceError{
			Method: method,
			URL:    url,
			Err:    fmt.Errorf("%w: %w", ErrConnectionFailed, err),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	g.logger.WithFields(log.Fields{
		"method":   method,
		"url":      url,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("explorer request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
		return nil, &RemoteServiceError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Payload:    payload,
			Err:        ErrRequestFailed,
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, &RemoteServiceError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: read body: %w", ErrConnectionFailed, err),
		}
	}
	if len(data) > maxResponseSize {
		return nil, InvalidResponse(method, url, fmt.Sprintf("body exceeds %d bytes", maxResponseSize), nil)
	}
	return data, nil
}
