// Package client is a Go client for the scrapwale REST API. Reads are cached
// by endpoint path; mutations invalidate the dependent cached reads so the
// next call refetches. There are no optimistic updates: a mutation returns
// the server's confirmed record.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/scrapwale/scrapwale-be/internal/models"
)

// APIError carries the server's message for a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// UserSummary is the identity returned by the session check.
type UserSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// PickupRequest is the submission form for a new pickup.
type PickupRequest struct {
	Name      string
	Phone     string
	Address   string
	Materials []string
	Date      string
	Notes     string
	ImagePath string // Optional local file to upload
}

// Client talks to the scrapwale API, holding the session cookie between calls.
type Client struct {
	baseURL string
	http    *http.Client

	mu            sync.Mutex
	cache         map[string][]byte
	authenticated bool
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
		cache:   make(map[string][]byte),
	}, nil
}

// Authenticated reports whether the last login/session check succeeded.
func (c *Client) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated
}

// Login authenticates and stores the session cookie.
func (c *Client) Login(username, password string) error {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	if err := c.do(http.MethodPost, "/api/v1/auth/login", "application/json", bytes.NewReader(body), nil); err != nil {
		c.setAuthenticated(false)
		return err
	}
	c.setAuthenticated(true)
	c.invalidate("/api/v1/auth/check")
	c.invalidate("/api/v1/events")
	return nil
}

// Logout destroys the session.
func (c *Client) Logout() error {
	err := c.do(http.MethodPost, "/api/v1/auth/logout", "", nil, nil)
	c.setAuthenticated(false)
	c.invalidate("/api/v1/auth/check")
	return err
}

// Check returns the current session identity (cached).
func (c *Client) Check() (UserSummary, error) {
	var user UserSummary
	err := c.getCached("/api/v1/auth/check", &user)
	c.setAuthenticated(err == nil)
	return user, err
}

// Rates returns the full rate list (cached).
func (c *Client) Rates() ([]models.ScrapRate, error) {
	var rates []models.ScrapRate
	err := c.getCached("/api/v1/rates", &rates)
	return rates, err
}

// Pickups returns the full pickup list (cached, requires a session).
func (c *Client) Pickups() ([]models.Pickup, error) {
	var pickups []models.Pickup
	err := c.getCached("/api/v1/pickups", &pickups)
	return pickups, err
}

// Events returns recent activity (cached, requires a session).
func (c *Client) Events(limit int) ([]models.Event, error) {
	var events []models.Event
	err := c.getCached(fmt.Sprintf("/api/v1/events?limit=%d", limit), &events)
	return events, err
}

// UpdateRate sets a material's rate and trend, then invalidates the rate list.
func (c *Client) UpdateRate(id, rate int, trend string) (models.ScrapRate, error) {
	body, _ := json.Marshal(map[string]interface{}{"rate": rate, "trend": trend})
	var updated models.ScrapRate
	err := c.do(http.MethodPut, fmt.Sprintf("/api/v1/rates/%d", id), "application/json", bytes.NewReader(body), &updated)
	if err != nil {
		return models.ScrapRate{}, err
	}
	c.invalidate("/api/v1/rates")
	c.invalidate("/api/v1/events")
	return updated, nil
}

// UpdatePickupStatus moves a pickup through its lifecycle, then invalidates
// the pickup list.
func (c *Client) UpdatePickupStatus(id int, status string) (models.Pickup, error) {
	body, _ := json.Marshal(map[string]string{"status": status})
	var updated models.Pickup
	err := c.do(http.MethodPut, fmt.Sprintf("/api/v1/pickups/%d/status", id), "application/json", bytes.NewReader(body), &updated)
	if err != nil {
		return models.Pickup{}, err
	}
	c.invalidate("/api/v1/pickups")
	c.invalidate("/api/v1/events")
	return updated, nil
}

// CreatePickup submits a new pickup request as a multipart form, optionally
// attaching an image file, then invalidates the pickup list.
func (c *Client) CreatePickup(req PickupRequest) (models.Pickup, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	materials, _ := json.Marshal(req.Materials)
	form.WriteField("name", req.Name)
	form.WriteField("phone", req.Phone)
	form.WriteField("address", req.Address)
	form.WriteField("materials", string(materials))
	form.WriteField("date", req.Date)
	if req.Notes != "" {
		form.WriteField("notes", req.Notes)
	}

	if req.ImagePath != "" {
		file, err := os.Open(req.ImagePath)
		if err != nil {
			return models.Pickup{}, err
		}
		defer file.Close()

		part, err := form.CreateFormFile("image", filepath.Base(req.ImagePath))
		if err != nil {
			return models.Pickup{}, err
		}
		if _, err := io.Copy(part, file); err != nil {
			return models.Pickup{}, err
		}
	}
	form.Close()

	var created models.Pickup
	err := c.do(http.MethodPost, "/api/v1/pickups", form.FormDataContentType(), &buf, &created)
	if err != nil {
		return models.Pickup{}, err
	}
	c.invalidate("/api/v1/pickups")
	c.invalidate("/api/v1/events")
	return created, nil
}

// getCached serves a read from the cache, fetching and filling it on a miss.
func (c *Client) getCached(path string, out interface{}) error {
	c.mu.Lock()
	raw, ok := c.cache[path]
	c.mu.Unlock()

	if !ok {
		resp, err := c.http.Get(c.baseURL + path)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			return apiError(resp.StatusCode, raw)
		}

		c.mu.Lock()
		c.cache[path] = raw
		c.mu.Unlock()
	}

	return json.Unmarshal(raw, out)
}

// do issues a mutation and decodes the confirmed result into out when given.
func (c *Client) do(method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp.StatusCode, raw)
	}
	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// invalidate drops every cached read under the given path prefix.
func (c *Client) invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.cache {
		if strings.HasPrefix(key, prefix) {
			delete(c.cache, key)
		}
	}
}

func (c *Client) setAuthenticated(v bool) {
	c.mu.Lock()
	c.authenticated = v
	c.mu.Unlock()
}

func apiError(status int, raw []byte) error {
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	message := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &payload); err == nil && len(payload.Message) > 0 {
		message = strings.Trim(string(payload.Message), `"`)
	}
	return &APIError{StatusCode: status, Message: message}
}
