// Package fossoapi provides HTTP clients for the platform services checkout
// collaborates with: the cart service, the product catalog, and the customer
// profile service. Each client wraps a JSON REST API with a shared base URL,
// timeout, and error mapping.
package fossoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

const requestTimeout = 10 * time.Second

// baseClient carries the pieces shared by all platform service clients.
type baseClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

func newBaseClient(baseURL string, logger *slog.Logger) (baseClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return baseClient{}, fmt.Errorf("parse service url: %w", err)
	}
	if !parsed.IsAbs() {
		return baseClient{}, fmt.Errorf("service url must be absolute")
	}
	return baseClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// do issues a JSON request against the service and returns the response.
// The caller owns the response body.
func (c *baseClient) do(ctx context.Context, method string, elems []string, payload any) (*http.Response, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(append([]string{endpoint.Path}, elems...)...)

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

// unexpectedStatus logs the failed request and wraps the status into an error.
func (c *baseClient) unexpectedStatus(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	c.logger.Error("request failed",
		slog.String("operation", operation),
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)))
	return fmt.Errorf("%s: %s", operation, resp.Status)
}

func decodeJSON(resp *http.Response, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
