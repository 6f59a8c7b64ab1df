package main

import (
	"context"
	"errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/weather-report/config"
	"ulascansenturk/weather-report/internal/api/v1/handlers"
	"ulascansenturk/weather-report/internal/location"
	"ulascansenturk/weather-report/internal/providers"
	"ulascansenturk/weather-report/internal/report"
	"ulascansenturk/weather-report/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	httpClient := &http.Client{Timeout: conf.HTTPTimeoutDuration()}

	resolver := location.NewResolver(
		providers.NewGeocodingAPI(conf.GeocodingAPIURL, httpClient),
		providers.NewIPLocationAPI(conf.IPLocationAPIURL, httpClient),
	)
	fetcher := report.NewFetcher(providers.NewForecastAPI(conf.ForecastAPIURL, httpClient))

	dispatcher := service.NewLookupDispatcher(service.NewPipeline(resolver, fetcher))
	weatherService := service.NewWeatherService(dispatcher)

	handler := handlers.NewWeatherHandler(weatherService, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
		dispatcher.Shutdown()
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
	log.Info().Msg("server exited")
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
