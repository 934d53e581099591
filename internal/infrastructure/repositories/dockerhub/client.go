package dockerhub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

const userAgent = "curl/8.0"

// Client is a minimal Docker Hub API client covering login, repository
// description and logo upload. Every method takes the base URL to call, so
// one client serves production and staging alike.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Docker Hub client with the fixed 30 second timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: entities.DefaultTimeout,
		},
	}
}

// response is a fully read HTTP response.
type response struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (c *Client) doJSON(
	ctx context.Context,
	method, url string,
	headers http.Header,
	body interface{},
) (*response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	if headers == nil {
		headers = http.Header{}
	}
	headers.Set("Content-Type", "application/json")

	return c.do(ctx, method, url, headers, bytes.NewReader(jsonBody))
}

func (c *Client) do(
	ctx context.Context,
	method, url string,
	headers http.Header,
	body io.Reader,
) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err //nolint:wrapcheck // *url.Error already names the method and URL
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       respBody,
	}, nil
}

func endpoint(baseURL, format string, args ...interface{}) string {
	return strings.TrimSuffix(baseURL, "/") + fmt.Sprintf(format, args...)
}

func bearer(token string) http.Header {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	return headers
}
