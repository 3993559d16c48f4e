// Package clerk is a minimal client for the Clerk backend API. The hospital
// frontend authenticates users against Clerk, so patient/doctor/staff rows are
// keyed by Clerk user IDs and name changes must be pushed back to Clerk.
package clerk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the Clerk backend API using a secret key.
type Client struct {
	baseURL   string
	secretKey string
	httpc     *http.Client
}

// NewClient creates a Clerk client. baseURL is typically https://api.clerk.com.
func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpc:     &http.Client{Timeout: 10 * time.Second},
	}
}

type updateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type apiError struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// UpdateUser updates the first/last name of the Clerk user with the given ID.
func (c *Client) UpdateUser(ctx context.Context, userID, firstName, lastName string) error {
	body, err := json.Marshal(updateUserRequest{FirstName: firstName, LastName: lastName})
	if err != nil {
		return fmt.Errorf("clerk: marshal update user request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/users/%s", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("clerk: build update user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("clerk: update user %s: %w", userID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Clerk error bodies carry a list of messages; fall back to the raw body.
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var apiErr apiError
	if json.Unmarshal(raw, &apiErr) == nil && len(apiErr.Errors) > 0 {
		return fmt.Errorf("clerk: update user %s: status %d: %s", userID, resp.StatusCode, apiErr.Errors[0].Message)
	}
	return fmt.Errorf("clerk: update user %s: status %d: %s", userID, resp.StatusCode, string(raw))
}
