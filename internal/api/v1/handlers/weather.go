package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"ulascansenturk/weather-report/internal/report"
	"ulascansenturk/weather-report/internal/service"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
	router         chi.Router
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	h := &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.Get("/weather", h.GetWeather)
	r.Get("/weather/me", h.GetWeatherForCaller)

	h.router = r
	return h
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// GetWeather serves GET /weather?q=<place, postal code or "lat,lon">.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	weatherReport, err := h.weatherService.GetWeather(ctx, query)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("query", query).Msg("failed to get weather data")
		respondWithError(w, statusForError(err), service.UserMessage(err))
		return
	}

	h.respondWithReport(w, r, weatherReport)
}

// GetWeatherForCaller serves GET /weather/me.
func (h *WeatherHandler) GetWeatherForCaller(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	weatherReport, err := h.weatherService.GetWeatherForCaller(ctx)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to get weather data for caller location")
		respondWithError(w, statusForError(err), service.UserMessage(err))
		return
	}

	h.respondWithReport(w, r, weatherReport)
}

func (h *WeatherHandler) respondWithReport(w http.ResponseWriter, r *http.Request, weatherReport report.WeatherReport) {
	if r.URL.Query().Get("format") == "json" {
		respondWithJSON(w, http.StatusOK, weatherReport)
		return
	}

	respondWithText(w, http.StatusOK, weatherReport.Text())
}
