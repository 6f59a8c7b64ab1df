package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"ulascansenturk/weather-report/internal/report"
)

var ErrDispatcherClosed = errors.New("lookup dispatcher is shut down")

type LookupResult struct {
	Report report.WeatherReport
	Err    error
}

// LookupDispatcher runs lookups off the caller's goroutine, one at a time.
type LookupDispatcher interface {
	AddRequest(ctx context.Context, req LookupRequest) (<-chan LookupResult, error)
	Shutdown()
}

type lookupDispatcher struct {
	pipeline Pipeline

	// slot holds a token while a lookup is running
	slot chan struct{}
	done chan struct{}

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

func NewLookupDispatcher(pipeline Pipeline) LookupDispatcher {
	return &lookupDispatcher{
		pipeline: pipeline,
		slot:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// AddRequest returns a channel that receives exactly one result and is then closed.
// A request waits for any earlier lookup to finish before it starts.
func (d *lookupDispatcher) AddRequest(ctx context.Context, req LookupRequest) (<-chan LookupResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrDispatcherClosed
	}

	// buffered so the worker never blocks on a caller that stopped listening
	resultChan := make(chan LookupResult, 1)

	d.inflight.Add(1)
	go d.process(ctx, req, resultChan)

	return resultChan, nil
}

func (d *lookupDispatcher) process(ctx context.Context, req LookupRequest, resultChan chan<- LookupResult) {
	defer d.inflight.Done()
	defer close(resultChan)

	select {
	case d.slot <- struct{}{}:
	case <-ctx.Done():
		resultChan <- LookupResult{Err: ctx.Err()}
		return
	case <-d.done:
		resultChan <- LookupResult{Err: ErrDispatcherClosed}
		return
	}
	defer func() { <-d.slot }()

	logger := zerolog.Ctx(ctx)
	start := time.Now()

	weatherReport, err := d.pipeline.Run(ctx, req)

	logger.Debug().
		Str("query", req.Query).
		Bool("caller_location", req.UseCallerLocation).
		Dur("took", time.Since(start)).
		AnErr("error", err).
		Msg("lookup finished")

	resultChan <- LookupResult{Report: weatherReport, Err: err}
}

// Shutdown rejects new requests, fails queued ones and waits for the running lookup.
func (d *lookupDispatcher) Shutdown() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.done)
	d.mu.Unlock()

	d.inflight.Wait()
}
