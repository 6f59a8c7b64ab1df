package report

import (
	"encoding/json"
)

// ForecastDays is how many daily entries a report carries.
const ForecastDays = 5

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionFog     Condition = "fog"
	ConditionDrizzle Condition = "drizzle"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionShowers Condition = "showers"
	ConditionStorm   Condition = "storm"
)

// CurrentConditions holds values exactly as the forecast API supplied them
// (°C, %, mm, km/h, degrees).
type CurrentConditions struct {
	Temperature         json.Number `json:"temperatureC"`
	ApparentTemperature json.Number `json:"apparentTemperatureC"`
	RelativeHumidity    json.Number `json:"relativeHumidityPct"`
	Precipitation       json.Number `json:"precipitationMm"`
	WindSpeed           json.Number `json:"windSpeedKmh"`
	WindDirection       json.Number `json:"windDirectionDeg"`
	Condition           Condition   `json:"condition"`
}

type DailyForecastEntry struct {
	Date             string      `json:"date"`
	TempMin          json.Number `json:"tempMinC"`
	TempMax          json.Number `json:"tempMaxC"`
	PrecipitationSum json.Number `json:"precipitationSumMm"`
	Condition        Condition   `json:"condition"`
}

// WeatherReport is rebuilt from scratch for every lookup.
type WeatherReport struct {
	Location  string               `json:"location"`
	Latitude  float64              `json:"latitude"`
	Longitude float64              `json:"longitude"`
	Current   CurrentConditions    `json:"current"`
	Forecast  []DailyForecastEntry `json:"forecast"`
}
