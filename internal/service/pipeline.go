package service

import (
	"context"

	"ulascansenturk/weather-report/internal/location"
	"ulascansenturk/weather-report/internal/report"
)

// LookupRequest is one user action: a typed query or "use my location".
type LookupRequest struct {
	Query             string
	UseCallerLocation bool
}

type Pipeline interface {
	Run(ctx context.Context, req LookupRequest) (report.WeatherReport, error)
}

// PipelineFunc adapts a plain function to Pipeline.
type PipelineFunc func(ctx context.Context, req LookupRequest) (report.WeatherReport, error)

func (f PipelineFunc) Run(ctx context.Context, req LookupRequest) (report.WeatherReport, error) {
	return f(ctx, req)
}

type pipeline struct {
	resolver location.Resolver
	fetcher  report.Fetcher
}

func NewPipeline(resolver location.Resolver, fetcher report.Fetcher) Pipeline {
	return &pipeline{
		resolver: resolver,
		fetcher:  fetcher,
	}
}

func (p *pipeline) Run(ctx context.Context, req LookupRequest) (report.WeatherReport, error) {
	var (
		loc location.ResolvedLocation
		err error
	)
	if req.UseCallerLocation {
		loc, err = p.resolver.ResolveFromCaller(ctx)
	} else {
		loc, err = p.resolver.Resolve(ctx, req.Query)
	}
	if err != nil {
		return report.WeatherReport{}, err
	}

	return p.fetcher.FetchAndFormat(ctx, loc)
}
