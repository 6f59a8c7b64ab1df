package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

var (
	ErrCircuitOpen = errors.New("circuit breaker open")
	ErrNoResults   = errors.New("no results")
)

// upstreamError is the error body Open-Meteo sends with 4xx responses.
type upstreamError struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

type statusError struct {
	api    string
	code   int
	reason string
}

func (e *statusError) Error() string {
	if e.reason != "" {
		return fmt.Sprintf("%s returned status code: %d (%s)", e.api, e.code, e.reason)
	}
	return fmt.Sprintf("%s returned status code: %d", e.api, e.code)
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:         name,
		MaxRequests:  1,
		Interval:     1 * time.Minute,
		Timeout:      30 * time.Second,
		IsSuccessful: countsAsSuccess,
	})
}

// countsAsSuccess keeps caller-caused 4xx responses out of the breaker's failure count.
// 429 still counts, since it means the upstream wants us to back off.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 400 && se.code < 500 && se.code != http.StatusTooManyRequests
	}
	return false
}

// getJSON issues a single GET through the breaker and decodes a 2xx body into out.
// Non-2xx responses count against the breaker; decoding errors do not.
func getJSON(ctx context.Context, api string, client *http.Client, cb *gobreaker.CircuitBreaker, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", api, err)
	}
	req.Header.Set("Accept", "application/json")

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, fmt.Errorf("%s request failed: %w", api, execErr)
		}
		defer resp.Body.Close()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("%s response read failed: %w", api, readErr)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			var upstream upstreamError
			_ = json.Unmarshal(body, &upstream)
			return nil, &statusError{api: api, code: resp.StatusCode, reason: upstream.Reason}
		}

		return body, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%s: %w: %v", api, ErrCircuitOpen, err)
		}
		return err
	}

	body, ok := result.([]byte)
	if !ok {
		return fmt.Errorf("%s: unexpected result type from circuit breaker", api)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s returned malformed JSON: %w", api, err)
	}

	return nil
}
