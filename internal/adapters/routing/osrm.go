package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/safestride/service-navigation/internal/domain/geo"
	"github.com/safestride/service-navigation/internal/domain/route"
)

// DefaultBaseURL is the public OSRM demo endpoint.
const DefaultBaseURL = "https://router.project-osrm.org"

// Client is an OSRM-backed implementation of application.RouteProvider using
// the foot (pedestrian) profile.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a routing client. An empty baseURL uses the public OSRM
// endpoint.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lng, lat] pairs
		} `json:"geometry"`
	} `json:"routes"`
}

// WalkingRoutes fetches pedestrian route alternatives between two points.
// A successful response with zero routes yields an empty slice; the caller
// decides whether that is an error.
func (c *Client) WalkingRoutes(ctx context.Context, origin, destination geo.Coordinate) ([]route.Candidate, error) {
	u := fmt.Sprintf("%s/route/v1/foot/%g,%g;%g,%g?overview=full&geometries=geojson&alternatives=true",
		c.baseURL,
		origin.Lng, origin.Lat,
		destination.Lng, destination.Lat,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing: status %d", resp.StatusCode)
	}

	var out osrmResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(&out); err != nil {
		return nil, fmt.Errorf("routing decode: %w", err)
	}
	if out.Code != "Ok" {
		return nil, fmt.Errorf("routing: code %s", out.Code)
	}

	candidates := make([]route.Candidate, 0, len(out.Routes))
	for _, r := range out.Routes {
		waypoints := make([]geo.Coordinate, 0, len(r.Geometry.Coordinates))
		for _, c := range r.Geometry.Coordinates {
			if len(c) < 2 {
				continue
			}
			waypoints = append(waypoints, geo.Coordinate{Lat: c[1], Lng: c[0]})
		}
		candidates = append(candidates, route.Candidate{
			Waypoints:       waypoints,
			DistanceMeters:  r.Distance,
			DurationSeconds: r.Duration,
		})
	}
	return candidates, nil
}
