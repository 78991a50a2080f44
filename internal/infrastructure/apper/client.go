package apper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"resty.dev/v3"

	"github.com/glowmarket/backend/internal/domain"
)

const maxAttempts = 3

// Client talks to the record store over HTTP. It implements
// domain.RecordStore: transport, auth headers, rate limiting and
// retries live here; response envelopes are returned as-is.
type Client struct {
	httpClient  *resty.Client
	projectID   string
	publicKey   string
	rateLimiter *rate.Limiter
}

// NewClient creates a record-store client.
func NewClient(projectID, publicKey, baseURL string) *Client {
	// The store quota is 600 requests per minute per project.
	limiter := rate.NewLimiter(rate.Limit(10), 20)

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("User-Agent", "GlowMarket/1.0").
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Apper-Project-Id", projectID).
		SetHeader("X-Apper-Public-Key", publicKey)

	return &Client{
		httpClient:  httpClient,
		projectID:   projectID,
		publicKey:   publicKey,
		rateLimiter: limiter,
	}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// FetchRecords runs a declarative list query against one record kind.
func (c *Client) FetchRecords(ctx context.Context, kind string, query domain.QueryDescriptor) (*domain.QueryResponse, error) {
	var out domain.QueryResponse
	path := fmt.Sprintf("/fetchRecords/%s", kind)
	if err := c.post(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecordByID fetches a single record. A missing record surfaces as
// domain.ErrNotFound, not as a store failure.
func (c *Client) GetRecordByID(ctx context.Context, kind string, id int, query domain.QueryDescriptor) (*domain.SingleResponse, error) {
	var out domain.SingleResponse
	path := fmt.Sprintf("/getRecordById/%s/%d", kind, id)
	if err := c.post(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRecord inserts the payload records.
func (c *Client) CreateRecord(ctx context.Context, kind string, payload domain.RecordPayload) (*domain.WriteResponse, error) {
	var out domain.WriteResponse
	path := fmt.Sprintf("/createRecord/%s", kind)
	if err := c.post(ctx, path, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRecord applies partial updates to the payload records.
func (c *Client) UpdateRecord(ctx context.Context, kind string, payload domain.RecordPayload) (*domain.WriteResponse, error) {
	var out domain.WriteResponse
	path := fmt.Sprintf("/updateRecord/%s", kind)
	if err := c.post(ctx, path, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRecord deletes records by id.
func (c *Client) DeleteRecord(ctx context.Context, kind string, payload domain.DeletePayload) (*domain.WriteResponse, error) {
	var out domain.WriteResponse
	path := fmt.Sprintf("/deleteRecord/%s", kind)
	if err := c.post(ctx, path, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post executes one store call with rate limiting and bounded retries.
// Transport errors and 5xx responses are retried with backoff; 404
// maps to ErrNotFound and other 4xx fail immediately.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		resp, err := c.httpClient.R().
			SetContext(ctx).
			SetBody(body).
			SetResult(out).
			Post(path)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("request cancelled: %w", ctx.Err())
			}
			log.WithFields(log.Fields{"path": path, "attempt": attempt}).
				Warnf("store request error: %v", err)
			lastErr = fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
			sleepBackoff(ctx, attempt)
			continue
		}

		switch {
		case resp.StatusCode() == http.StatusNotFound:
			return domain.ErrNotFound
		case resp.StatusCode() >= http.StatusInternalServerError:
			log.WithFields(log.Fields{"path": path, "attempt": attempt, "status": resp.StatusCode()}).
				Warn("store server error")
			lastErr = fmt.Errorf("%w: status %d", domain.ErrStoreFailure, resp.StatusCode())
			sleepBackoff(ctx, attempt)
			continue
		case resp.IsError():
			return fmt.Errorf("%w: status %d: %s", domain.ErrStoreFailure, resp.StatusCode(), resp.String())
		}

		return nil
	}

	log.WithField("path", path).Errorf("store request failed after %d attempts", maxAttempts)
	return lastErr
}

func sleepBackoff(ctx context.Context, attempt int) {
	select {
	case <-time.After(exponentialBackoff(attempt)):
	case <-ctx.Done():
	}
}

// exponentialBackoff returns 500ms, 1s, 2s, ... for attempts 1, 2, 3, ...
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}
