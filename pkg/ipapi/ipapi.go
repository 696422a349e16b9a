// Package ipapi resolves the caller's geographic location from its public
// IP address using ip-api.com (free tier, no API key required).
package ipapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/MiguelElGallo/snapshottest/pkg/apierr"
	"github.com/MiguelElGallo/snapshottest/pkg/models"
)

// DefaultEndpoint is the free ip-api.com JSON endpoint, limited to 45
// requests per minute.
const DefaultEndpoint = "http://ip-api.com/json/"

const serviceName = "ip-api"

// requestedFields trims the payload to the fields the mapping needs,
// in the order the service documents them.
const requestedFields = "status,message,city,country,continent,lat,lon"

// Client calls the ip-api.com geolocation endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a geolocation client. An empty endpoint selects
// DefaultEndpoint; timeout bounds each call.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// response mirrors the ip-api.com payload. Required fields decode into
// pointers so a missing key is distinguishable from a zero value.
type response struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	City      *string  `json:"city"`
	Country   *string  `json:"country"`
	Continent string   `json:"continent"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
}

// GetLocation returns the current location based on public IP geolocation.
func (c *Client) GetLocation(ctx context.Context) (models.Location, error) {
	query := url.Values{"fields": {requestedFields}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return models.Location{}, &apierr.TransportError{Service: serviceName, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.Location{}, &apierr.TransportError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, &apierr.TransportError{Service: serviceName, StatusCode: resp.StatusCode}
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.Location{}, &apierr.MalformedResponseError{Service: serviceName, Err: err}
	}

	if payload.Status != "success" {
		message := payload.Message
		if message == "" {
			message = "unknown error"
		}
		return models.Location{}, &apierr.GeolocationError{Message: message}
	}

	// The success payload must carry every required field; continent is
	// optional and only present in the extended variant.
	if payload.Lat == nil {
		return models.Location{}, &apierr.MalformedResponseError{Service: serviceName, Field: "lat"}
	}
	if payload.Lon == nil {
		return models.Location{}, &apierr.MalformedResponseError{Service: serviceName, Field: "lon"}
	}
	if payload.City == nil {
		return models.Location{}, &apierr.MalformedResponseError{Service: serviceName, Field: "city"}
	}
	if payload.Country == nil {
		return models.Location{}, &apierr.MalformedResponseError{Service: serviceName, Field: "country"}
	}

	return models.Location{
		Latitude:  *payload.Lat,
		Longitude: *payload.Lon,
		City:      *payload.City,
		Country:   *payload.Country,
		Continent: payload.Continent,
	}, nil
}
