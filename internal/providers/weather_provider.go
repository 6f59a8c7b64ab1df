package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"
)

var (
	CurrentFields = []string{
		"temperature_2m",
		"apparent_temperature",
		"relative_humidity_2m",
		"precipitation",
		"weather_code",
		"wind_speed_10m",
		"wind_direction_10m",
	}
	DailyFields = []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"weather_code",
	}
)

type ForecastAPI interface {
	GetForecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error)
}

// ForecastResponse keeps numbers as json.Number so values reach the report
// exactly as the API wrote them. Sections are pointers so absence is visible.
type ForecastResponse struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timezone  string          `json:"timezone"`
	Current   *CurrentWeather `json:"current"`
	Daily     *DailyWeather   `json:"daily"`
}

type CurrentWeather struct {
	Time                string      `json:"time"`
	Temperature2m       json.Number `json:"temperature_2m"`
	ApparentTemperature json.Number `json:"apparent_temperature"`
	RelativeHumidity2m  json.Number `json:"relative_humidity_2m"`
	Precipitation       json.Number `json:"precipitation"`
	WeatherCode         json.Number `json:"weather_code"`
	WindSpeed10m        json.Number `json:"wind_speed_10m"`
	WindDirection10m    json.Number `json:"wind_direction_10m"`
}

type DailyWeather struct {
	Time             []string      `json:"time"`
	Temperature2mMax []json.Number `json:"temperature_2m_max"`
	Temperature2mMin []json.Number `json:"temperature_2m_min"`
	PrecipitationSum []json.Number `json:"precipitation_sum"`
	WeatherCode      []json.Number `json:"weather_code"`
}

type forecastAPI struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewForecastAPI(baseURL string, client *http.Client) ForecastAPI {
	return &forecastAPI{
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("forecast"),
	}
}

func (f *forecastAPI) GetForecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("current", strings.Join(CurrentFields, ","))
	values.Set("daily", strings.Join(DailyFields, ","))
	values.Set("timezone", "auto")

	var apiResp ForecastResponse
	if err := getJSON(ctx, "forecast API", f.client, f.circuit, f.baseURL+"?"+values.Encode(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
