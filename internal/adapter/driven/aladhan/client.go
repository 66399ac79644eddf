// Package aladhan implements the PrayerTimesClient port against the Aladhan
// timings-by-city API.
package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gregjones/httpcache"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.PrayerTimesClient = (*Client)(nil)

// calculationMethod 7 is the Institute of Geophysics, University of Tehran.
const calculationMethod = 7

// Client fetches prayer timetables. The transport stack mounts an in-memory
// httpcache layer so repeated lookups honor the API's cache headers; the
// application keeps its own 24-hour date cache on top.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a Client for the given timings endpoint.
func NewClient(apiURL string) *Client {
	transport := httpcache.NewMemoryCacheTransport()
	return &Client{
		apiURL: apiURL,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   15 * time.Second,
		},
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// Intended for testing against an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, apiURL string) *Client {
	return &Client{apiURL: apiURL, httpClient: httpClient}
}

// timingsResponse is the subset of the Aladhan response we consume.
type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings struct {
			Fajr     string `json:"Fajr"`
			Sunrise  string `json:"Sunrise"`
			Dhuhr    string `json:"Dhuhr"`
			Asr      string `json:"Asr"`
			Maghrib  string `json:"Maghrib"`
			Isha     string `json:"Isha"`
			Midnight string `json:"Midnight"`
		} `json:"timings"`
	} `json:"data"`
}

// FetchTimes returns the timetable for the given date and location. One
// network call, no retries; every failure is a wrapped error for the caller
// to degrade on.
func (c *Client) FetchTimes(ctx context.Context, loc model.Location, date string) (*model.PrayerTimes, error) {
	q := url.Values{}
	q.Set("city", loc.City)
	q.Set("country", loc.Country)
	q.Set("method", fmt.Sprintf("%d", calculationMethod))
	q.Set("date", date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build prayer times request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch prayer times: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read prayer times response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch prayer times: status %d", resp.StatusCode)
	}

	var decoded timingsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode prayer times response: %w", err)
	}
	if decoded.Code != http.StatusOK {
		return nil, fmt.Errorf("fetch prayer times: api code %d", decoded.Code)
	}

	t := decoded.Data.Timings
	return &model.PrayerTimes{
		Date:     date,
		Fajr:     t.Fajr,
		Sunrise:  t.Sunrise,
		Dhuhr:    t.Dhuhr,
		Asr:      t.Asr,
		Maghrib:  t.Maghrib,
		Isha:     t.Isha,
		Midnight: t.Midnight,
	}, nil
}
