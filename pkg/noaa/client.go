package noaa

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/spencer-p/beachride/pkg/cache"
)

const (
	API_URL  = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"
	PAGE_URL = "https://tidesandcurrents.noaa.gov/noaatidepredictions.html"
	TIME_FMT = "20060102"

	DefaultTimeout   = 20 * time.Second
	DefaultUserAgent = "Custom user agent"
)

// Client fetches from NOAA. The zero value is not usable; see NewClient.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	APIURL    string
	PageURL   string

	// Cache holds response bodies by URL. Optional.
	Cache *cache.Timed
}

// NewClient returns a Client talking to the public NOAA endpoints. Requests
// that take longer than timeout fail.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: DefaultUserAgent,
		APIURL:    API_URL,
		PageURL:   PAGE_URL,
	}
}

// get fetches addr, serving from the cache when possible.
func (c *Client) get(ctx context.Context, addr string) ([]byte, error) {
	if c.Cache != nil {
		if body, ok := c.Cache.Get(addr); ok {
			log.Printf("Serving %s from cache", addr)
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from %s: %d %s", addr, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", addr, err)
	}

	if c.Cache != nil {
		c.Cache.Set(addr, body)
	}
	return body, nil
}
