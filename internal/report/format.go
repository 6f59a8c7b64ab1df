package report

import (
	"fmt"
	"strings"
)

// Text renders the report the way it is shown to the user.
func (r WeatherReport) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Weather for %s\n\n", r.Location)
	fmt.Fprintf(&b, "Temperature is %s°C (Feels %s°C)\n", r.Current.Temperature, r.Current.ApparentTemperature)
	fmt.Fprintf(&b, "Humidity is %s%%\n", r.Current.RelativeHumidity)
	fmt.Fprintf(&b, "Precipitation is %s mm\n", r.Current.Precipitation)
	fmt.Fprintf(&b, "Wind speed is %s km/h (%s°)\n\n", r.Current.WindSpeed, r.Current.WindDirection)

	fmt.Fprintf(&b, "%d-Day Forecast:\n", ForecastDays)
	for _, day := range r.Forecast {
		fmt.Fprintf(&b, "%s: %s°C - %s°C, Precip %s mm\n", day.Date, day.TempMin, day.TempMax, day.PrecipitationSum)
	}

	return b.String()
}
