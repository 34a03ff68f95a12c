package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/safestride/service-navigation/internal/application"
	"github.com/safestride/service-navigation/internal/domain/geo"
)

// DefaultBaseURL is the public Nominatim endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// viewboxBiasDegrees spans roughly 50 km around the origin to prioritize
// local matches.
const viewboxBiasDegrees = 0.5

const userAgent = "safestride-navigation/1.0"

// Client is a Nominatim-backed implementation of application.Geocoder.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoding client. An empty baseURL uses the public
// Nominatim endpoint.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search resolves a free-text query to candidate places, biased toward a
// viewbox around near. Results that fail coordinate parsing are skipped.
func (c *Client) Search(ctx context.Context, query string, near geo.Coordinate) ([]application.Place, error) {
	viewbox := fmt.Sprintf("%g,%g,%g,%g",
		near.Lng-viewboxBiasDegrees,
		near.Lat+viewboxBiasDegrees,
		near.Lng+viewboxBiasDegrees,
		near.Lat-viewboxBiasDegrees,
	)

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "5")
	params.Set("viewbox", viewbox)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, 2<<20)).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocode decode: %w", err)
	}

	places := make([]application.Place, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lng, lngErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		places = append(places, application.Place{
			DisplayName: r.DisplayName,
			Location:    geo.Coordinate{Lat: lat, Lng: lng},
		})
	}
	return places, nil
}
