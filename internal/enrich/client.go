// SPDX-License-Identifier: AGPL-3.0-only
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the detection service that enriches a freshly uploaded
// image into post metadata. The service is opaque: its JSON response is
// passed through untouched.
type Client struct {
	httpClient http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// CreateDetails asks the detection service to process bucket/key.
// The response body and status are returned verbatim for proxying;
// a transport-level failure returns an error instead.
func (c *Client) CreateDetails(ctx context.Context, bucket, key string) ([]byte, int, error) {
	payload, err := json.Marshal(map[string]string{
		"bucket": bucket,
		"key":    key,
	})
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("detection service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read detection service response: %w", err)
	}

	return body, resp.StatusCode, nil
}
