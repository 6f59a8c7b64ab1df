package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"ulascansenturk/weather-report/config"
	"ulascansenturk/weather-report/internal/location"
	"ulascansenturk/weather-report/internal/providers"
	"ulascansenturk/weather-report/internal/report"
	"ulascansenturk/weather-report/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var useCallerLocation, verbose bool
	flag.BoolVar(&useCallerLocation, "me", false, "use the location of this machine's public IP")
	flag.BoolVar(&verbose, "v", false, "log at LOG_LEVEL instead of errors only")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: weather [-me] [-v] <place | postal code | lat,lon>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(zerolog.ErrorLevel).
		With().
		Timestamp().
		Logger()
	log.Logger = logger

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if verbose {
		if logLevel, err := zerolog.ParseLevel(conf.LogLevel); err == nil {
			logger = logger.Level(logLevel)
			log.Logger = logger
		}
	}
	zerolog.DefaultContextLogger = &logger

	httpClient := &http.Client{Timeout: conf.HTTPTimeoutDuration()}

	resolver := location.NewResolver(
		providers.NewGeocodingAPI(conf.GeocodingAPIURL, httpClient),
		providers.NewIPLocationAPI(conf.IPLocationAPIURL, httpClient),
	)
	fetcher := report.NewFetcher(providers.NewForecastAPI(conf.ForecastAPIURL, httpClient))

	dispatcher := service.NewLookupDispatcher(service.NewPipeline(resolver, fetcher))
	weatherService := service.NewWeatherService(dispatcher)

	ctx, cancel := context.WithTimeout(context.Background(), 2*conf.HTTPTimeoutDuration())
	code := run(ctx, weatherService, useCallerLocation, flag.Args(), os.Stdout, os.Stderr)

	cancel()
	dispatcher.Shutdown()
	os.Exit(code)
}

// run performs one lookup and writes the report to stdout, or a one-line message to stderr.
func run(ctx context.Context, weatherService service.WeatherService, useCallerLocation bool, args []string, stdout, stderr io.Writer) int {
	var (
		weatherReport report.WeatherReport
		err           error
	)

	if useCallerLocation {
		weatherReport, err = weatherService.GetWeatherForCaller(ctx)
	} else {
		weatherReport, err = weatherService.GetWeather(ctx, strings.Join(args, " "))
	}

	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("lookup failed")
		fmt.Fprintln(stderr, service.UserMessage(err))
		return 1
	}

	fmt.Fprint(stdout, weatherReport.Text())
	return 0
}
