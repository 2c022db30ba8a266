package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/iho/quickledger/internal/adapter/http/dto"
)

// apiClient talks to a QuickLedger server, retrying transient failures
// with exponential backoff.
type apiClient struct {
	baseURL         string
	http            *http.Client
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL:         strings.TrimRight(baseURL, "/"),
		http:            &http.Client{Timeout: timeout},
		maxRetries:      3,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     2 * time.Second,
	}
}

// statusError is a non-200 answer from the server.
type statusError struct {
	status int
	body   []byte
}

func (e *statusError) Error() string {
	var apiErr dto.ErrorResponse
	if json.Unmarshal(e.body, &apiErr) == nil && apiErr.Error != "" {
		return fmt.Sprintf("%s (status %d): %s", apiErr.Error, e.status, apiErr.Message)
	}
	return fmt.Sprintf("request failed (status %d): %s", e.status, strings.TrimSpace(string(e.body)))
}

func (e *statusError) retryable() bool {
	switch e.status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// post sends body as JSON to path and decodes a 200 response into out.
func (c *apiClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.MaxInterval = c.maxInterval

	var data []byte
	err = backoff.Retry(func() error {
		data, err = c.do(ctx, path, payload)
		if err == nil {
			return nil
		}

		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			return backoff.Permanent(err)
		}

		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxRetries)), ctx))
	if err != nil {
		return err
	}

	return json.Unmarshal(data, out)
}

func (c *apiClient) do(ctx context.Context, path string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{status: resp.StatusCode, body: data}
	}

	return data, nil
}
