package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"etude/internal/api"
	"etude/internal/services"
)

const defaultHTTPTimeout = 10 * time.Second

// Client talks to a running etude daemon over its HTTP API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// New constructs a client for the daemon at baseURL (scheme and host, e.g.
// "http://127.0.0.1:7433").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Status fetches daemon runtime information.
func (c *Client) Status(ctx context.Context) (api.DaemonStatus, error) {
	var out api.DaemonStatus
	err := c.do(ctx, http.MethodGet, "/api/status", nil, &out)
	return out, err
}

// ListSongs fetches the song library.
func (c *Client) ListSongs(ctx context.Context) ([]api.Song, error) {
	var out api.SongListResponse
	if err := c.do(ctx, http.MethodGet, "/api/songs", nil, &out); err != nil {
		return nil, err
	}
	return out.Songs, nil
}

// CreateSong registers a song.
func (c *Client) CreateSong(ctx context.Context, req api.CreateSongRequest) (api.Song, error) {
	var out api.SongResponse
	if err := c.do(ctx, http.MethodPost, "/api/songs", req, &out); err != nil {
		return api.Song{}, err
	}
	return out.Song, nil
}

// ListGroups fetches a song's measure groups.
func (c *Client) ListGroups(ctx context.Context, songID int64) ([]api.MeasureGroup, error) {
	var out api.GroupListResponse
	if err := c.do(ctx, http.MethodGet, "/api/measure-groups"+songQuery(songID), nil, &out); err != nil {
		return nil, err
	}
	return out.Groups, nil
}

// CreateGroup registers a measure span.
func (c *Client) CreateGroup(ctx context.Context, req api.CreateGroupRequest) (api.MeasureGroup, error) {
	var out api.GroupResponse
	if err := c.do(ctx, http.MethodPost, "/api/measure-groups", req, &out); err != nil {
		return api.MeasureGroup{}, err
	}
	return out.Group, nil
}

// LogPractice records a practice session.
func (c *Client) LogPractice(ctx context.Context, req api.PracticeRequest) (api.Session, error) {
	var out api.SessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/practice", req, &out); err != nil {
		return api.Session{}, err
	}
	return out.Session, nil
}

// Next fetches the scheduling recommendation for a song.
func (c *Client) Next(ctx context.Context, songID int64) (api.Next, error) {
	var out api.NextResponse
	if err := c.do(ctx, http.MethodGet, "/api/next"+songQuery(songID), nil, &out); err != nil {
		return api.Next{}, err
	}
	return out.Next, nil
}

func songQuery(songID int64) string {
	return "?" + url.Values{"song_id": {strconv.FormatInt(songID, 10)}}.Encode()
}

func (c *Client) do(ctx context.Context, method, path string, payload, dest any) error {
	if c.baseURL == "" {
		return services.Wrap(services.ErrConfiguration, "client", "request", "daemon address not configured", nil)
	}
	endpoint := c.baseURL + path

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return services.Wrap(services.ErrTransient, "client", "request", "daemon unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		message = payload.Error
	}

	marker := services.ErrTransient
	switch {
	case resp.StatusCode == http.StatusNotFound:
		marker = services.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		marker = services.ErrValidation
	case resp.StatusCode == http.StatusUnauthorized:
		marker = services.ErrConfiguration
	}
	return services.Wrap(marker, "client", "request", message, nil)
}
