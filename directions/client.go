// Package directions fetches driving routes (rider → restaurant →
// customer) from a Directions-style API and decodes them into points
// the map layer can draw. Failures leave the map route-less; there is
// no retry, but requests do time out instead of hanging forever.
package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p LatLng) String() string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}

type Route struct {
	Points   []LatLng
	Distance string
	Duration string
}

type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

func NewClient(baseURL, key string) *Client {
	return &Client{
		baseURL: baseURL,
		key:     key,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// WithHTTPClient swaps the transport; tests point this at httptest.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// apiResponse mirrors the subset of the Directions payload we read.
type apiResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route requests a driving route through the given waypoints, first to
// last. At least origin and destination are required.
func (c *Client) Route(ctx context.Context, waypoints ...LatLng) (*Route, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("need at least origin and destination, got %d points", len(waypoints))
	}

	q := url.Values{}
	q.Set("origin", waypoints[0].String())
	q.Set("destination", waypoints[len(waypoints)-1].String())
	if mids := waypoints[1 : len(waypoints)-1]; len(mids) > 0 {
		parts := make([]string, len(mids))
		for i, p := range mids {
			parts[i] = p.String()
		}
		q.Set("waypoints", strings.Join(parts, "|"))
	}
	q.Set("mode", "driving")
	if c.key != "" {
		q.Set("key", c.key)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var payload apiResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Status != "OK" || len(payload.Routes) == 0 {
		return nil, fmt.Errorf("directions status %q", payload.Status)
	}

	points, err := DecodePolyline(payload.Routes[0].OverviewPolyline.Points)
	if err != nil {
		return nil, err
	}
	out := &Route{Points: points}
	if legs := payload.Routes[0].Legs; len(legs) > 0 {
		out.Distance = legs[0].Distance.Text
		out.Duration = legs[0].Duration.Text
	}
	return out, nil
}
