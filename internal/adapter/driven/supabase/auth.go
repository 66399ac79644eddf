package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.AuthClient = (*Client)(nil)

// signInResponse is the subset of the GoTrue token response we consume.
type signInResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		CreatedAt    string `json:"created_at"`
		LastSignInAt string `json:"last_sign_in_at"`
		UserMetadata struct {
			Name string `json:"name"`
		} `json:"user_metadata"`
	} `json:"user"`
}

// SignIn exchanges an email/password pair for the user record via the GoTrue
// password grant. A 400 from the backend maps to ErrInvalidCredentials.
func (c *Client) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal sign-in request: %w", err)
	}

	endpoint := c.baseURL + "/auth/v1/token?grant_type=password"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build sign-in request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read sign-in response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, driven.ErrInvalidCredentials
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("sign in: status %d: %s", resp.StatusCode, truncate(body))
	}

	var decoded signInResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode sign-in response: %w", err)
	}
	if decoded.User.ID == "" {
		return nil, fmt.Errorf("sign in: response missing user id")
	}

	return &model.User{
		ID:        decoded.User.ID,
		Email:     decoded.User.Email,
		Name:      decoded.User.UserMetadata.Name,
		IsGuest:   false,
		CreatedAt: parseTimestamp(decoded.User.CreatedAt),
		LastLogin: parseTimestamp(decoded.User.LastSignInAt),
	}, nil
}

// parseTimestamp parses a GoTrue RFC 3339 timestamp, returning the zero time
// on malformed or absent input.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
