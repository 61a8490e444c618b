package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"movie-locations/internal/models"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultAttempts = 5
	defaultInterval = time.Second
	defaultTimeout  = 10 * time.Second
)

// ErrNoCoordinates is returned when the geocoder never answered with a usable position.
var ErrNoCoordinates = errors.New("geocode: no coordinates found")

// Client resolves street addresses to coordinates with the Google Geocoding API.
// Every address is looked up inside a city, e.g. "san francisco <address>".
type Client struct {
	endpoint string
	apiKey   string
	city     string
	http     *http.Client
	attempts uint64
	interval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRetry sets how many attempts are made per address and how long to wait between them.
func WithRetry(attempts uint64, interval time.Duration) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
		c.interval = interval
	}
}

// New creates a geocoding client.
func New(endpoint, apiKey, city string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		city:     strings.TrimSpace(city),
		http:     &http.Client{Timeout: defaultTimeout},
		attempts: defaultAttempts,
		interval: defaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type response struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Locate returns the coordinates of address. Requests are retried until the
// API answers 200 with status "OK"; after the last attempt the error wraps
// ErrNoCoordinates.
func (c *Client) Locate(ctx context.Context, address string) (*models.Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("%w: empty address", ErrNoCoordinates)
	}

	target, err := c.url(address)
	if err != nil {
		return nil, err
	}

	var loc *models.Location
	op := func() error {
		res, err := c.fetch(ctx, target)
		if err != nil {
			return err
		}
		if len(res.Results) == 0 {
			return backoff.Permanent(errors.New("status OK without results"))
		}
		p := res.Results[0].Geometry.Location
		loc = &models.Location{Address: address, Lat: p.Lat, Lng: p.Lng}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.interval), c.attempts-1),
		ctx,
	)
	if err := backoff.Retry(op, policy); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w for %q: %v", ErrNoCoordinates, address, err)
	}

	return loc, nil
}

func (c *Client) url(address string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("geocode: invalid endpoint: %w", err)
	}

	q := u.Query()
	if c.city != "" {
		address = c.city + " " + address
	}
	q.Set("address", address)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (c *Client) fetch(ctx context.Context, target string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	var res response
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if res.Status != "OK" {
		return nil, fmt.Errorf("status %s", res.Status)
	}

	return &res, nil
}
