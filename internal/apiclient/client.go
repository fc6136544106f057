// Package apiclient is a typed HTTP client for a future VolunteerHub backend.
// It mirrors the operations the local repositories expose so a server can be
// swapped in behind the same contract. No current flow calls it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"volunteerhub/pkg/types"
)

// Client talks JSON to the remote API. The zero base URL is not usable; use
// New.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Credentials is the auth request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the auth response payload.
type Session struct {
	Token string     `json:"token"`
	User  types.User `json:"user"`
}

func (c *Client) Opportunities(ctx context.Context) ([]types.Opportunity, error) {
	var out []types.Opportunity
	return out, c.do(ctx, http.MethodGet, "/api/opportunities", nil, &out)
}

func (c *Client) Opportunity(ctx context.Context, id string) (*types.Opportunity, error) {
	var out types.Opportunity
	if err := c.do(ctx, http.MethodGet, "/api/opportunities/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOpportunity(ctx context.Context, opp types.Opportunity) (*types.Opportunity, error) {
	var out types.Opportunity
	if err := c.do(ctx, http.MethodPost, "/api/opportunities", opp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOpportunity(ctx context.Context, id string, opp types.Opportunity) (*types.Opportunity, error) {
	var out types.Opportunity
	if err := c.do(ctx, http.MethodPut, "/api/opportunities/"+id, opp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOpportunity(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/opportunities/"+id, nil, nil)
}

func (c *Client) Users(ctx context.Context) ([]types.User, error) {
	var out []types.User
	return out, c.do(ctx, http.MethodGet, "/api/users", nil, &out)
}

func (c *Client) User(ctx context.Context, id string) (*types.User, error) {
	var out types.User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, user types.User) (*types.User, error) {
	var out types.User
	if err := c.do(ctx, http.MethodPost, "/api/users", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, user types.User) (*types.User, error) {
	var out types.User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+id, user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Submissions(ctx context.Context) ([]types.VolunteerSubmission, error) {
	var out []types.VolunteerSubmission
	return out, c.do(ctx, http.MethodGet, "/api/submissions", nil, &out)
}

func (c *Client) CreateSubmission(ctx context.Context, sub types.VolunteerSubmission) (*types.VolunteerSubmission, error) {
	var out types.VolunteerSubmission
	if err := c.do(ctx, http.MethodPost, "/api/submissions", sub, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSubmission(ctx context.Context, id string, sub types.VolunteerSubmission) (*types.VolunteerSubmission, error) {
	var out types.VolunteerSubmission
	if err := c.do(ctx, http.MethodPut, "/api/submissions/"+id, sub, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Notifications(ctx context.Context) ([]types.Notification, error) {
	var out []types.Notification
	return out, c.do(ctx, http.MethodGet, "/api/notifications", nil, &out)
}

func (c *Client) CreateNotification(ctx context.Context, n types.Notification) (*types.Notification, error) {
	var out types.Notification
	if err := c.do(ctx, http.MethodPost, "/api/notifications", n, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/notifications/"+id+"/read", nil, nil)
}

func (c *Client) Preferences(ctx context.Context) (*types.VolunteerPreferences, error) {
	var out types.VolunteerPreferences
	if err := c.do(ctx, http.MethodGet, "/api/preferences", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePreferences(ctx context.Context, prefs types.VolunteerPreferences) error {
	return c.do(ctx, http.MethodPut, "/api/preferences", prefs, nil)
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
	var out Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, user types.User) (*Session, error) {
	var out Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return types.ErrOpportunityNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api call failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
