// Package geo validates space addresses against the Google geocoding API.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"spacerental/session"
)

const geocodeBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

var ErrAddressNotFound = errors.New("geo: address not found")

// Result is the projection stored with a space.
type Result struct {
	FormattedAddress string `json:"formatted_address"`
	PlaceID          string `json:"place_id"`
}

type Client struct {
	httpClient *http.Client
	apiKey     string
	cache      *session.Cache
}

// NewClient returns nil when no API key is configured; callers treat a
// nil client as validation disabled.
func NewClient(httpClient *http.Client, apiKey string, cache *session.Cache) *Client {
	if apiKey == "" {
		return nil
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{httpClient: httpClient, apiKey: apiKey, cache: cache}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		PlaceID          string `json:"place_id"`
	} `json:"results"`
}

// ValidateAddress resolves a free-form address into its canonical form.
// Results are cached: the same address string geocodes identically for
// as long as the cache TTL.
func (c *Client) ValidateAddress(ctx context.Context, address string) (*Result, error) {
	if address == "" {
		return nil, ErrAddressNotFound
	}

	cacheName := "geocode:" + address
	if c.cache != nil {
		var cached Result
		if ok, _ := c.cache.Get(ctx, cacheName, &cached); ok {
			return &cached, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 7*time.Second)
	defer cancel()

	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, geocodeBaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geo: geocode status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "OK" || len(body.Results) == 0 {
		return nil, ErrAddressNotFound
	}

	res := &Result{
		FormattedAddress: body.Results[0].FormattedAddress,
		PlaceID:          body.Results[0].PlaceID,
	}
	if c.cache != nil {
		_ = c.cache.Set(ctx, cacheName, res)
	}
	return res, nil
}
