package service

import (
	"context"
	"strings"

	"ulascansenturk/weather-report/internal/location"
	"ulascansenturk/weather-report/internal/report"
)

type WeatherService interface {
	GetWeather(ctx context.Context, query string) (report.WeatherReport, error)
	GetWeatherForCaller(ctx context.Context) (report.WeatherReport, error)
}

type weatherService struct {
	dispatcher LookupDispatcher
}

func NewWeatherService(dispatcher LookupDispatcher) WeatherService {
	return &weatherService{
		dispatcher: dispatcher,
	}
}

func (s *weatherService) GetWeather(ctx context.Context, query string) (report.WeatherReport, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return report.WeatherReport{}, location.ErrInvalidInput
	}

	return s.await(ctx, LookupRequest{Query: query})
}

func (s *weatherService) GetWeatherForCaller(ctx context.Context) (report.WeatherReport, error) {
	return s.await(ctx, LookupRequest{UseCallerLocation: true})
}

func (s *weatherService) await(ctx context.Context, req LookupRequest) (report.WeatherReport, error) {
	resultChan, err := s.dispatcher.AddRequest(ctx, req)
	if err != nil {
		return report.WeatherReport{}, err
	}

	select {
	case result, ok := <-resultChan:
		if !ok {
			return report.WeatherReport{}, ErrDispatcherClosed
		}
		if result.Err != nil {
			return report.WeatherReport{}, result.Err
		}
		return result.Report, nil
	case <-ctx.Done():
		return report.WeatherReport{}, ctx.Err()
	}
}
