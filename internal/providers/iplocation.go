package providers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"
)

type IPLocationAPI interface {
	Lookup(ctx context.Context) (IPLocation, error)
}

// IPLocation is the caller's approximate position. LatLng is only meaningful when OK.
type IPLocation struct {
	OK     bool
	LatLng [2]float64
}

// IPInfoResponse mirrors the fields we read from ipinfo.io.
type IPInfoResponse struct {
	IP      string `json:"ip"`
	City    string `json:"city"`
	Country string `json:"country"`
	Loc     string `json:"loc"`
	Bogon   bool   `json:"bogon"`
}

type ipLocationAPI struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewIPLocationAPI(baseURL string, client *http.Client) IPLocationAPI {
	return &ipLocationAPI{
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("iplocation"),
	}
}

func (p *ipLocationAPI) Lookup(ctx context.Context) (IPLocation, error) {
	var apiResp IPInfoResponse
	if err := getJSON(ctx, "IP location API", p.client, p.circuit, p.baseURL, &apiResp); err != nil {
		return IPLocation{}, err
	}

	lat, lon, ok := parseLoc(apiResp.Loc)
	if !ok {
		return IPLocation{}, nil
	}

	return IPLocation{OK: true, LatLng: [2]float64{lat, lon}}, nil
}

func parseLoc(loc string) (float64, float64, bool) {
	latStr, lonStr, found := strings.Cut(loc, ",")
	if !found {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, false
	}

	return lat, lon, true
}
