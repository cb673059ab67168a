// filepath: internal/wallpaper/wallpaper.go
// Package wallpaper fetches the rotating homepage background from the
// daily-image feed. Everything here is best-effort: a failure means the
// homepage keeps its configured wallpaper.
package wallpaper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"navhub/internal/logging"

	"github.com/patrickmn/go-cache"
)

const (
	// feedSize is how many images one feed request asks for.
	feedSize = 7

	feedHost = "https://www.bing.com"
	feedPath = "/HPImageArchive.aspx"

	cacheTTL = time.Hour
)

// Source yields the current image feed for a market/country code.
type Source interface {
	Images(ctx context.Context, country string) ([]string, error)
}

// Client fetches and caches the image feed.
type Client struct {
	http    *http.Client
	cache   *cache.Cache
	baseURL string
}

var _ Source = (*Client)(nil)

// NewClient creates a feed client. The fetch timeout keeps a slow feed from
// stalling homepage renders.
func NewClient() *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   cache.New(cacheTTL, 10*time.Minute),
		baseURL: feedHost,
	}
}

// NewClientWithBase creates a client against a different feed host. Used by
// tests.
func NewClientWithBase(base string) *Client {
	c := NewClient()
	c.baseURL = base
	return c
}

type feedResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
}

// Images returns the current feed for the given country code (empty means
// the feed's default market). Results are cached per country so bursts of
// homepage hits share one fetch.
func (c *Client) Images(ctx context.Context, country string) ([]string, error) {
	cacheKey := "feed:" + country
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]string), nil
	}

	endpoint := fmt.Sprintf("%s%s?format=js&idx=0&n=%d", c.baseURL, feedPath, feedSize)
	if country != "" {
		endpoint += "&mkt=" + url.QueryEscape(country)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wallpaper feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wallpaper feed returned status %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode wallpaper feed: %w", err)
	}

	images := make([]string, 0, len(feed.Images))
	for _, img := range feed.Images {
		u := img.URL
		if u == "" {
			continue
		}
		// The feed returns host-relative image paths.
		if strings.HasPrefix(u, "/") {
			u = c.baseURL + u
		}
		images = append(images, u)
	}

	logging.Log.Debugf("wallpaper feed loaded: %d images (country %q)", len(images), country)
	c.cache.Set(cacheKey, images, cache.DefaultExpiration)
	return images, nil
}

// Advance moves the round-robin cookie index one step through a feed of n
// images. An absent or unparseable cookie arrives as -1 and lands on the
// first image.
func Advance(index, n int) int {
	if n <= 0 {
		return -1
	}
	if index < -1 {
		index = -1
	}
	return (index + 1) % n
}
