package dockerhub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// Login performs one POST {baseURL}/v2/users/login/ and returns the token.
func (c *Client) Login(ctx context.Context, baseURL string, cred entities.Credential) (string, error) {
	url := endpoint(baseURL, "/v2/users/login/")

	headers := http.Header{}
	headers.Set("User-Agent", userAgent)

	resp, err := c.doJSON(ctx, http.MethodPost, url, headers, entities.NewLoginRequest(cred))
	if err != nil {
		return "", &entities.AuthError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &entities.AuthError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(resp),
		}
	}

	var payload map[string]interface{}
	if unmarshalErr := json.Unmarshal(resp.Body, &payload); unmarshalErr != nil {
		return "", fmt.Errorf("%w: failed to parse login response: %v",
			entities.ErrMalformedResponse, unmarshalErr)
	}

	token, _ := payload["token"].(string)
	if token == "" {
		return "", fmt.Errorf("%w: no token found in login response. Response keys: %v",
			entities.ErrMalformedResponse, sortedKeys(payload))
	}

	return token, nil
}

// extractErrorMessage prefers the JSON "detail" field, then "message", then
// the raw body, then the status text.
func extractErrorMessage(resp *response) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(resp.Body, &payload); err == nil {
		for _, field := range []string{"detail", "message"} {
			if msg, ok := payload[field].(string); ok && msg != "" {
				return msg
			}
		}
	}

	if text := strings.TrimSpace(string(resp.Body)); text != "" {
		return text
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}

func sortedKeys(payload map[string]interface{}) []string {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
