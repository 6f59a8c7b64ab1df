package service

import (
	"errors"

	"ulascansenturk/weather-report/internal/location"
	"ulascansenturk/weather-report/internal/report"
)

// UserMessage is the short text shown to the user for a failed lookup.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, location.ErrInvalidInput):
		return "Please enter a location"
	case errors.Is(err, location.ErrNotFound):
		return "Location not found"
	case errors.Is(err, location.ErrLocationLookupFailed):
		return "Could not detect your location"
	case errors.Is(err, report.ErrDataUnavailable):
		return "Weather data not available"
	default:
		return "Something went wrong"
	}
}
