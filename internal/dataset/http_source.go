// Regiotrend - Regional Economic Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/regiotrend

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/regiotrend/internal/logging"
	"github.com/tomtom215/regiotrend/internal/metrics"
)

// HTTPSource fetches the dataset from a URL. Requests go through a circuit
// breaker so that an unreachable host fails fast instead of stalling every
// reload tick.
type HTTPSource struct {
	url    string
	client *http.Client
	cb     *gobreaker.CircuitBreaker[*http.Response]
	name   string
}

// HTTPSourceConfig tunes the HTTP client and circuit breaker.
type HTTPSourceConfig struct {
	Timeout        time.Duration
	FailureRatio   float64
	MinRequests    uint32
	OpenTimeout    time.Duration
	HalfOpenProbes uint32
}

// DefaultHTTPSourceConfig returns conservative defaults: open after 60%
// failures over at least 5 requests, retry after 1 minute.
func DefaultHTTPSourceConfig() HTTPSourceConfig {
	return HTTPSourceConfig{
		Timeout:        30 * time.Second,
		FailureRatio:   0.6,
		MinRequests:    5,
		OpenTimeout:    time.Minute,
		HalfOpenProbes: 1,
	}
}

// NewHTTPSource creates a Source backed by url.
func NewHTTPSource(url string, cfg HTTPSourceConfig) *HTTPSource {
	name := "dataset-http"

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.HalfOpenProbes,
		Interval:    time.Minute,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("Dataset source circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: cfg.Timeout},
		cb:     cb,
		name:   name,
	}
}

// Stat issues a HEAD request and identifies the content by ETag, falling back
// to Last-Modified. A server that sends neither yields a time-based version,
// which forces a reload on every check.
func (s *HTTPSource) Stat(ctx context.Context) (Identity, error) {
	resp, err := s.do(ctx, http.MethodHead)
	if err != nil {
		return Identity{}, err
	}
	_ = resp.Body.Close()
	return s.identity(resp), nil
}

// Open issues a GET request. The caller closes the returned body.
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, Identity, error) {
	resp, err := s.do(ctx, http.MethodGet)
	if err != nil {
		return nil, Identity{}, err
	}
	return resp.Body, s.identity(resp), nil
}

func (s *HTTPSource) String() string {
	return "http:" + s.url
}

func (s *HTTPSource) do(ctx context.Context, method string) (*http.Response, error) {
	resp, err := s.cb.Execute(func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, method, s.url, http.NoBody)
		if err != nil {
			return nil, err
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, s.url)
		}
		return resp, nil
	})

	if err != nil {
		result := "failure"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = "rejected"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, result).Inc()
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	return resp, nil
}

func (s *HTTPSource) identity(resp *http.Response) Identity {
	version := resp.Header.Get("ETag")
	if version == "" {
		version = resp.Header.Get("Last-Modified")
	}
	if version == "" {
		version = "fetched-" + time.Now().UTC().Format(time.RFC3339Nano)
	}
	return Identity{Location: s.url, Version: version}
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
