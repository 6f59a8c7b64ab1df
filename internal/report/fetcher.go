package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"ulascansenturk/weather-report/internal/location"
	"ulascansenturk/weather-report/internal/providers"
)

var ErrDataUnavailable = errors.New("weather data not available")

type Fetcher interface {
	FetchAndFormat(ctx context.Context, loc location.ResolvedLocation) (WeatherReport, error)
}

type fetcher struct {
	forecast providers.ForecastAPI
}

func NewFetcher(forecast providers.ForecastAPI) Fetcher {
	return &fetcher{forecast: forecast}
}

func (f *fetcher) FetchAndFormat(ctx context.Context, loc location.ResolvedLocation) (WeatherReport, error) {
	resp, err := f.forecast.GetForecast(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Float64("latitude", loc.Latitude).
			Float64("longitude", loc.Longitude).
			Msg("forecast request failed")
		return WeatherReport{}, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	return Build(loc, resp)
}

// Build turns a forecast response into a report. It never pads or truncates:
// a missing current section, a missing current field, or fewer than
// ForecastDays daily values all yield ErrDataUnavailable.
func Build(loc location.ResolvedLocation, resp *providers.ForecastResponse) (WeatherReport, error) {
	if resp == nil || resp.Current == nil {
		return WeatherReport{}, fmt.Errorf("%w: response has no current conditions", ErrDataUnavailable)
	}

	current, err := buildCurrent(resp.Current)
	if err != nil {
		return WeatherReport{}, err
	}

	forecast, err := buildForecast(resp.Daily)
	if err != nil {
		return WeatherReport{}, err
	}

	return WeatherReport{
		Location:  loc.Label,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Current:   current,
		Forecast:  forecast,
	}, nil
}

func buildCurrent(c *providers.CurrentWeather) (CurrentConditions, error) {
	required := []struct {
		name  string
		value string
	}{
		{"temperature_2m", c.Temperature2m.String()},
		{"apparent_temperature", c.ApparentTemperature.String()},
		{"relative_humidity_2m", c.RelativeHumidity2m.String()},
		{"precipitation", c.Precipitation.String()},
		{"wind_speed_10m", c.WindSpeed10m.String()},
		{"wind_direction_10m", c.WindDirection10m.String()},
	}
	for _, field := range required {
		if field.value == "" {
			return CurrentConditions{}, fmt.Errorf("%w: current.%s is missing", ErrDataUnavailable, field.name)
		}
	}

	return CurrentConditions{
		Temperature:         c.Temperature2m,
		ApparentTemperature: c.ApparentTemperature,
		RelativeHumidity:    c.RelativeHumidity2m,
		Precipitation:       c.Precipitation,
		WindSpeed:           c.WindSpeed10m,
		WindDirection:       c.WindDirection10m,
		Condition:           conditionFromCode(c.WeatherCode),
	}, nil
}

func buildForecast(d *providers.DailyWeather) ([]DailyForecastEntry, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: response has no daily forecast", ErrDataUnavailable)
	}

	series := []struct {
		name string
		len  int
	}{
		{"time", len(d.Time)},
		{"temperature_2m_max", len(d.Temperature2mMax)},
		{"temperature_2m_min", len(d.Temperature2mMin)},
		{"precipitation_sum", len(d.PrecipitationSum)},
	}
	for _, s := range series {
		if s.len < ForecastDays {
			return nil, fmt.Errorf("%w: daily.%s has %d entries, need %d", ErrDataUnavailable, s.name, s.len, ForecastDays)
		}
	}

	entries := make([]DailyForecastEntry, 0, ForecastDays)
	for i := 0; i < ForecastDays; i++ {
		entry := DailyForecastEntry{
			Date:             d.Time[i],
			TempMin:          d.Temperature2mMin[i],
			TempMax:          d.Temperature2mMax[i],
			PrecipitationSum: d.PrecipitationSum[i],
			Condition:        ConditionUnknown,
		}
		if entry.Date == "" || entry.TempMin == "" || entry.TempMax == "" || entry.PrecipitationSum == "" {
			return nil, fmt.Errorf("%w: daily entry %d has null values", ErrDataUnavailable, i)
		}
		if i < len(d.WeatherCode) {
			entry.Condition = conditionFromCode(d.WeatherCode[i])
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
