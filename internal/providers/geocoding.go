package providers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"
)

const geocodingLanguage = "en"

type GeocodingAPI interface {
	Search(ctx context.Context, name string) (*GeocodingResult, error)
}

type GeocodingResult struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Name        string  `json:"name"`
	CountryCode string  `json:"country_code"`
}

type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

type geocodingAPI struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewGeocodingAPI(baseURL string, client *http.Client) GeocodingAPI {
	return &geocodingAPI{
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("geocoding"),
	}
}

// Search asks for a single candidate and returns it, or ErrNoResults.
func (g *geocodingAPI) Search(ctx context.Context, name string) (*GeocodingResult, error) {
	values := url.Values{}
	values.Set("name", name)
	values.Set("count", "1")
	values.Set("language", geocodingLanguage)
	values.Set("format", "json")

	var apiResp GeocodingResponse
	if err := getJSON(ctx, "geocoding API", g.client, g.circuit, g.baseURL+"?"+values.Encode(), &apiResp); err != nil {
		return nil, err
	}

	if len(apiResp.Results) == 0 {
		return nil, ErrNoResults
	}

	result := apiResp.Results[0]
	return &result, nil
}
