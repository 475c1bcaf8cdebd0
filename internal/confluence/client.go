// Package confluence is a minimal content REST client used to upload the
// emitted storage dialect to a Confluence site.
package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for client operations.
var (
	ErrMissingBaseURL = errors.New("confluence: base URL is required")
	ErrMissingAuth    = errors.New("confluence: email and API token are required")
	ErrNotFound       = errors.New("confluence: content not found")
	ErrUnauthorized   = errors.New("confluence: authentication rejected")
	ErrStatus         = errors.New("confluence: unexpected response status")
)

const defaultTimeout = 30 * time.Second

// Page is the subset of a content entity the converter cares about.
type Page struct {
	ID       string
	Title    string
	SpaceKey string
	Version  int
	Storage  string
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient substitutes the underlying HTTP client (e.g. in tests).
func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *Client) { c.httpc = httpc }
}

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpc.Timeout = d }
}

// Client talks to the Confluence content REST API using basic auth with an
// API token.
type Client struct {
	baseURL string
	email   string
	token   string
	httpc   *http.Client
	log     *zap.Logger
}

// NewClient validates credentials and returns a ready client.
func NewClient(baseURL, email, token string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if email == "" || token == "" {
		return nil, ErrMissingAuth
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		token:   token,
		httpc:   &http.Client{Timeout: defaultTimeout},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Wire representations of the content API.
type contentBody struct {
	Storage struct {
		Value          string `json:"value"`
		Representation string `json:"representation"`
	} `json:"storage"`
}

type contentVersion struct {
	Number int `json:"number"`
}

type contentPayload struct {
	ID        string          `json:"id,omitempty"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Space     *contentSpace   `json:"space,omitempty"`
	Ancestors []contentParent `json:"ancestors,omitempty"`
	Version   *contentVersion `json:"version,omitempty"`
	Body      contentBody     `json:"body"`
}

type contentSpace struct {
	Key string `json:"key"`
}

type contentParent struct {
	ID string `json:"id"`
}

type contentResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Space struct {
		Key string `json:"key"`
	} `json:"space"`
	Version contentVersion `json:"version"`
	Body    struct {
		Storage struct {
			Value string `json:"value"`
		} `json:"storage"`
	} `json:"body"`
}

func (r contentResponse) page() *Page {
	return &Page{
		ID:       r.ID,
		Title:    r.Title,
		SpaceKey: r.Space.Key,
		Version:  r.Version.Number,
		Storage:  r.Body.Storage.Value,
	}
}

// GetPage fetches a page with its storage body and version.
func (c *Client) GetPage(ctx context.Context, id string) (*Page, error) {
	endpoint := c.baseURL + "/rest/api/content/" + url.PathEscape(id) +
		"?expand=" + url.QueryEscape("body.storage,version,space")
	var resp contentResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("getting page %s: %w", id, err)
	}
	return resp.page(), nil
}

// CreatePage creates a page in a space, optionally under a parent page.
func (c *Client) CreatePage(ctx context.Context, spaceKey, title, storage, parentID string) (*Page, error) {
	payload := contentPayload{
		Type:  "page",
		Title: title,
		Space: &contentSpace{Key: spaceKey},
	}
	if parentID != "" {
		payload.Ancestors = []contentParent{{ID: parentID}}
	}
	payload.Body.Storage.Value = storage
	payload.Body.Storage.Representation = "storage"

	var resp contentResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/rest/api/content", payload, &resp); err != nil {
		return nil, fmt.Errorf("creating page %q: %w", title, err)
	}
	c.log.Info("page created", zap.String("id", resp.ID), zap.String("title", resp.Title))
	return resp.page(), nil
}

// UpdatePage replaces a page's storage body, bumping its version.
func (c *Client) UpdatePage(ctx context.Context, page *Page, storage string) (*Page, error) {
	payload := contentPayload{
		ID:      page.ID,
		Type:    "page",
		Title:   page.Title,
		Version: &contentVersion{Number: page.Version + 1},
	}
	payload.Body.Storage.Value = storage
	payload.Body.Storage.Representation = "storage"

	endpoint := c.baseURL + "/rest/api/content/" + url.PathEscape(page.ID)
	var resp contentResponse
	if err := c.do(ctx, http.MethodPut, endpoint, payload, &resp); err != nil {
		return nil, fmt.Errorf("updating page %s: %w", page.ID, err)
	}
	c.log.Info("page updated",
		zap.String("id", resp.ID),
		zap.Int("version", resp.Version.Number))
	return resp.page(), nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.email, c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("request", zap.String("method", method), zap.String("url", endpoint))
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: %s", ErrStatus, resp.Status, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
