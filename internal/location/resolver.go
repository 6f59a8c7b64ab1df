package location

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"ulascansenturk/weather-report/internal/providers"
)

var (
	ErrInvalidInput         = errors.New("query cannot be empty")
	ErrNotFound             = errors.New("location not found")
	ErrLocationLookupFailed = errors.New("could not detect caller location")
)

// ResolvedLocation is a point the forecast can be fetched for.
// Coordinates typed in as "lat,lon" are not range checked.
type ResolvedLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label"`
}

type Resolver interface {
	Resolve(ctx context.Context, query string) (ResolvedLocation, error)
	ResolveFromCaller(ctx context.Context) (ResolvedLocation, error)
}

type resolver struct {
	geocoding  providers.GeocodingAPI
	ipLocation providers.IPLocationAPI
}

func NewResolver(geocoding providers.GeocodingAPI, ipLocation providers.IPLocationAPI) Resolver {
	return &resolver{
		geocoding:  geocoding,
		ipLocation: ipLocation,
	}
}

func (r *resolver) Resolve(ctx context.Context, query string) (ResolvedLocation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return ResolvedLocation{}, ErrInvalidInput
	}

	if lat, lon, ok := ParseCoordinates(query); ok {
		return ResolvedLocation{Latitude: lat, Longitude: lon, Label: query}, nil
	}

	result, err := r.geocoding.Search(ctx, query)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("query", query).Msg("geocoding failed")
		return ResolvedLocation{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return ResolvedLocation{
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
		Label:     fmt.Sprintf("%s, %s", result.Name, result.CountryCode),
	}, nil
}

func (r *resolver) ResolveFromCaller(ctx context.Context) (ResolvedLocation, error) {
	loc, err := r.ipLocation.Lookup(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("ip location lookup failed")
		return ResolvedLocation{}, fmt.Errorf("%w: %w", ErrLocationLookupFailed, err)
	}
	if !loc.OK {
		return ResolvedLocation{}, ErrLocationLookupFailed
	}

	lat, lon := loc.LatLng[0], loc.LatLng[1]
	return ResolvedLocation{
		Latitude:  lat,
		Longitude: lon,
		Label:     fmt.Sprintf("My Location (%s, %s)", FormatRounded(lat), FormatRounded(lon)),
	}, nil
}

// ParseCoordinates splits on the first comma and reports whether both halves are floats.
func ParseCoordinates(query string) (float64, float64, bool) {
	latStr, lonStr, found := strings.Cut(query, ",")
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

// FormatRounded rounds to two decimals (ties to even on the exact binary value)
// and drops trailing zeros while keeping one fractional digit, so 52 renders as "52.0".
func FormatRounded(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if !strings.Contains(s, ".") {
		return s
	}

	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
