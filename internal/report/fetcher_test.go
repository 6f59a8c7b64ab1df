package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"ulascansenturk/weather-report/internal/location"
	"ulascansenturk/weather-report/internal/mocks"
	"ulascansenturk/weather-report/internal/providers"
	"ulascansenturk/weather-report/internal/report"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const sampleForecast = `{
	"latitude": 48.86,
	"longitude": 2.3399997,
	"timezone": "Europe/Paris",
	"current": {
		"time": "2024-05-01T12:00",
		"interval": 900,
		"temperature_2m": 20.5,
		"apparent_temperature": 19.0,
		"relative_humidity_2m": 55,
		"precipitation": 0.0,
		"weather_code": 2,
		"wind_speed_10m": 10.2,
		"wind_direction_10m": 180
	},
	"daily": {
		"time": ["2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04", "2024-05-05", "2024-05-06", "2024-05-07"],
		"temperature_2m_max": [21.3, 22.0, 18.4, 17.9, 19.6, 20.1, 23.0],
		"temperature_2m_min": [11.2, 12.5, 10.0, 9.8, 10.7, 11.1, 13.4],
		"precipitation_sum": [0.0, 1.4, 6.2, 0.3, 0.0, 0.0, 2.2],
		"weather_code": [2, 61, 95, 3, 0, 1, 80]
	}
}`

var forecastLine = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}: -?[\d.]+°C - -?[\d.]+°C, Precip [\d.]+ mm$`)

func decodeForecast(t *testing.T, body string) *providers.ForecastResponse {
	t.Helper()
	var resp providers.ForecastResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return &resp
}

type FetcherTestSuite struct {
	suite.Suite
	mockForecast *mocks.MockForecastAPI
	fetcher      report.Fetcher
	paris        location.ResolvedLocation
	ctx          context.Context
}

func (s *FetcherTestSuite) SetupTest() {
	s.mockForecast = mocks.NewMockForecastAPI(s.T())
	s.fetcher = report.NewFetcher(s.mockForecast)
	s.paris = location.ResolvedLocation{Latitude: 48.85, Longitude: 2.35, Label: "Paris, FR"}
	s.ctx = context.Background()
}

func (s *FetcherTestSuite) TestFetchAndFormatSuccess() {
	s.mockForecast.On("GetForecast", mock.Anything, 48.85, 2.35).Return(decodeForecast(s.T(), sampleForecast), nil)

	weatherReport, err := s.fetcher.FetchAndFormat(s.ctx, s.paris)
	s.Require().NoError(err)

	s.Equal("Paris, FR", weatherReport.Location)
	s.Equal(json.Number("20.5"), weatherReport.Current.Temperature)
	s.Equal(json.Number("19.0"), weatherReport.Current.ApparentTemperature)
	s.Equal(json.Number("55"), weatherReport.Current.RelativeHumidity)
	s.Equal(report.ConditionCloudy, weatherReport.Current.Condition)
	s.Len(weatherReport.Forecast, report.ForecastDays)

	s.Equal("2024-05-01", weatherReport.Forecast[0].Date)
	s.Equal("2024-05-05", weatherReport.Forecast[4].Date)
	s.Equal(report.ConditionRain, weatherReport.Forecast[1].Condition)
	s.Equal(report.ConditionStorm, weatherReport.Forecast[2].Condition)
	s.Equal(report.ConditionClear, weatherReport.Forecast[4].Condition)
}

func (s *FetcherTestSuite) TestTextRendering() {
	s.mockForecast.On("GetForecast", mock.Anything, 48.85, 2.35).Return(decodeForecast(s.T(), sampleForecast), nil)

	weatherReport, err := s.fetcher.FetchAndFormat(s.ctx, s.paris)
	s.Require().NoError(err)

	expected := "Weather for Paris, FR\n" +
		"\n" +
		"Temperature is 20.5°C (Feels 19.0°C)\n" +
		"Humidity is 55%\n" +
		"Precipitation is 0.0 mm\n" +
		"Wind speed is 10.2 km/h (180°)\n" +
		"\n" +
		"5-Day Forecast:\n" +
		"2024-05-01: 11.2°C - 21.3°C, Precip 0.0 mm\n" +
		"2024-05-02: 12.5°C - 22.0°C, Precip 1.4 mm\n" +
		"2024-05-03: 10.0°C - 18.4°C, Precip 6.2 mm\n" +
		"2024-05-04: 9.8°C - 17.9°C, Precip 0.3 mm\n" +
		"2024-05-05: 10.7°C - 19.6°C, Precip 0.0 mm\n"

	s.Equal(expected, weatherReport.Text())
}

func (s *FetcherTestSuite) TestForecastSectionHasFiveLines() {
	s.mockForecast.On("GetForecast", mock.Anything, 48.85, 2.35).Return(decodeForecast(s.T(), sampleForecast), nil)

	weatherReport, err := s.fetcher.FetchAndFormat(s.ctx, s.paris)
	s.Require().NoError(err)

	text := weatherReport.Text()
	idx := strings.Index(text, "5-Day Forecast:\n")
	s.Require().NotEqual(-1, idx)

	lines := strings.Split(strings.TrimSuffix(text[idx+len("5-Day Forecast:\n"):], "\n"), "\n")
	s.Len(lines, 5)
	for _, line := range lines {
		s.Regexp(forecastLine, line)
	}
}

func (s *FetcherTestSuite) TestRenderingIsIdempotent() {
	s.mockForecast.On("GetForecast", mock.Anything, 48.85, 2.35).Return(decodeForecast(s.T(), sampleForecast), nil).Twice()

	first, err := s.fetcher.FetchAndFormat(s.ctx, s.paris)
	s.Require().NoError(err)
	second, err := s.fetcher.FetchAndFormat(s.ctx, s.paris)
	s.Require().NoError(err)

	s.Equal(first.Text(), second.Text())
}

func (s *FetcherTestSuite) TestMissingCurrentSection() {
	body := `{"latitude": 48.86, "longitude": 2.34, "daily": {"time": []}}`
	s.mockForecast.On("GetForecast", mock.Anything, 48.85, 2.35).Return(decodeForecast(s.T(), body), nil)

	weatherReport, err := s.fetcher.FetchAndFormat(s.ctx, s.paris)

	s.ErrorIs(err, report.ErrDataUnavailable)
	s.Equal(report.WeatherReport{}, weatherReport)
}

func (s *FetcherTestSuite) TestMissingCurrentField() {
	body := strings.Replace(sampleForecast, `"apparent_temperature": 19.0,`, "", 1)
	s.mockForecast.On("GetForecast", mock.Anything, 48.85, 2.35).Return(decodeForecast(s.T(), body), nil)

	_, err := s.fetcher.FetchAndFormat(s.ctx, s.paris)

	s.ErrorIs(err, report.ErrDataUnavailable)
	s.Contains(err.Error(), "apparent_temperature")
}

func (s *FetcherTestSuite) TestMissingWeatherCodeIsTolerated() {
	body := strings.Replace(sampleForecast, `"weather_code": 2,`, "", 1)
	s.mockForecast.On("GetForecast", mock.Anything, 48.85, 2.35).Return(decodeForecast(s.T(), body), nil)

	weatherReport, err := s.fetcher.FetchAndFormat(s.ctx, s.paris)

	s.NoError(err)
	s.Equal(report.ConditionUnknown, weatherReport.Current.Condition)
}

func (s *FetcherTestSuite) TestShortDailySeries() {
	body := `{
		"current": {
			"temperature_2m": 20.5, "apparent_temperature": 19.0, "relative_humidity_2m": 55,
			"precipitation": 0.0, "wind_speed_10m": 10.2, "wind_direction_10m": 180
		},
		"daily": {
			"time": ["2024-05-01", "2024-05-02", "2024-05-03"],
			"temperature_2m_max": [21.3, 22.0, 18.4],
			"temperature_2m_min": [11.2, 12.5, 10.0],
			"precipitation_sum": [0.0, 1.4, 6.2]
		}
	}`
	s.mockForecast.On("GetForecast", mock.Anything, 48.85, 2.35).Return(decodeForecast(s.T(), body), nil)

	weatherReport, err := s.fetcher.FetchAndFormat(s.ctx, s.paris)

	s.ErrorIs(err, report.ErrDataUnavailable)
	s.Contains(err.Error(), "need 5")
	s.Nil(weatherReport.Forecast)
}

func (s *FetcherTestSuite) TestNullDailyValue() {
	body := strings.Replace(sampleForecast, `"precipitation_sum": [0.0, 1.4,`, `"precipitation_sum": [0.0, null,`, 1)
	s.mockForecast.On("GetForecast", mock.Anything, 48.85, 2.35).Return(decodeForecast(s.T(), body), nil)

	_, err := s.fetcher.FetchAndFormat(s.ctx, s.paris)

	s.ErrorIs(err, report.ErrDataUnavailable)
}

func (s *FetcherTestSuite) TestMissingDailySection() {
	body := `{"current": {
		"temperature_2m": 20.5, "apparent_temperature": 19.0, "relative_humidity_2m": 55,
		"precipitation": 0.0, "wind_speed_10m": 10.2, "wind_direction_10m": 180
	}}`
	s.mockForecast.On("GetForecast", mock.Anything, 48.85, 2.35).Return(decodeForecast(s.T(), body), nil)

	_, err := s.fetcher.FetchAndFormat(s.ctx, s.paris)

	s.ErrorIs(err, report.ErrDataUnavailable)
}

func (s *FetcherTestSuite) TestForecastRequestFailure() {
	s.mockForecast.On("GetForecast", mock.Anything, 999.0, 999.0).
		Return(nil, errors.New("forecast API returned status code: 400 (Latitude must be in range of -90 to 90°. Given: 999.0.)"))

	_, err := s.fetcher.FetchAndFormat(s.ctx, location.ResolvedLocation{Latitude: 999, Longitude: 999, Label: "999,999"})

	s.ErrorIs(err, report.ErrDataUnavailable)
	s.Contains(err.Error(), "status code: 400")
}

func TestFetcherSuite(t *testing.T) {
	suite.Run(t, new(FetcherTestSuite))
}

func TestBuildWithNilResponse(t *testing.T) {
	_, err := report.Build(location.ResolvedLocation{}, nil)
	require.ErrorIs(t, err, report.ErrDataUnavailable)
}
