package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/travelplanner/internal/client/query"
	"github.com/dmitrijs2005/travelplanner/internal/logging"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

type APIClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
	maxBody    int64
}

func NewAPIClient(baseURL string, timeout time.Duration, log logging.Logger) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		maxBody:    maxResponseBytes,
	}
}

// Accounts is the /users resource.
func (c *APIClient) Accounts() *Resource {
	return &Resource{c: c, path: "/users"}
}

// TravelPlans is the /travel-plans resource.
func (c *APIClient) TravelPlans() *Resource {
	return &Resource{c: c, path: "/travel-plans"}
}

func (c *APIClient) do(ctx context.Context, method, path string, q query.Query, payload any) ([]byte, error) {
	target := c.baseURL + path
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransportUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: reading body: %v", ErrTransportUnavailable, method, path, err)
	}
	if int64(len(respBody)) > c.maxBody {
		c.log.Warn(ctx, "api response too large", "method", method, "path", path, "request_id", requestID, "limit", c.maxBody)
		return nil, fmt.Errorf("%w: %s %s: response exceeds %d bytes", ErrRequestFailed, method, path, c.maxBody)
	}

	c.log.Debug(ctx, "api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}
	return respBody, nil
}

// Resource issues requests against one resource kind.
type Resource struct {
	c    *APIClient
	path string
}

func (r *Resource) item(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

// List fetches the collection matching q.
func (r *Resource) List(ctx context.Context, q query.Query) ([]byte, error) {
	return r.c.do(ctx, http.MethodGet, r.path, q, nil)
}

// Get fetches one record by id.
func (r *Resource) Get(ctx context.Context, id string) ([]byte, error) {
	return r.c.do(ctx, http.MethodGet, r.item(id), nil, nil)
}

// Create posts payload and returns the created record as echoed by the server.
func (r *Resource) Create(ctx context.Context, payload any) ([]byte, error) {
	return r.c.do(ctx, http.MethodPost, r.path, nil, payload)
}

// Update replaces the record with payload and returns the server's echo.
func (r *Resource) Update(ctx context.Context, id string, payload any) ([]byte, error) {
	return r.c.do(ctx, http.MethodPut, r.item(id), nil, payload)
}

// Delete removes the record. Any response body is ignored.
func (r *Resource) Delete(ctx context.Context, id string) error {
	_, err := r.c.do(ctx, http.MethodDelete, r.item(id), nil, nil)
	return err
}
