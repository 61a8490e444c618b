package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"movie-locations/internal/models"
)

const defaultTimeout = 15 * time.Second

// Client talks to the movie search API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the API served at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("apiclient: invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("apiclient: invalid base url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SearchURL returns the search endpoint for query. The query is escaped so
// the server decodes exactly the original text.
func (c *Client) SearchURL(query string) string {
	return c.baseURL + "/api/search/movies?query=" + url.QueryEscape(query)
}

// MovieURL returns the detail endpoint of the movie id.
func (c *Client) MovieURL(id int64) string {
	return c.baseURL + "/api/movies/" + strconv.FormatInt(id, 10)
}

// Search returns the movies whose title matches query.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResultItem, error) {
	body, err := c.get(ctx, c.SearchURL(query))
	if err != nil {
		return nil, err
	}
	return decodeSearch(body)
}

// Movie returns the detail of the movie id.
func (c *Client) Movie(ctx context.Context, id int64) (*models.MovieDetail, error) {
	body, err := c.get(ctx, c.MovieURL(id))
	if err != nil {
		return nil, err
	}
	return decodeMovie(body)
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}
	return bytes.TrimSpace(body), nil
}
