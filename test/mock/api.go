// Package mock provides test doubles for the flight searcher.
// These mocks are designed for handler and integration testing where we
// need configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
	"github.com/ray66rus/amadeus-searcher/internal/usecase"
)

// FlightAPI is a configurable mock implementation of usecase.FlightAPI.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and upstream failures.
type FlightAPI struct {
	offers    []domain.Offer
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewFlightAPI creates a new mock API client.
// The client is configured using the builder pattern methods.
func NewFlightAPI() *FlightAPI {
	return &FlightAPI{}
}

// WithOffers configures the client to return the given offers.
func (a *FlightAPI) WithOffers(offers []domain.Offer) *FlightAPI {
	a.offers = offers
	return a
}

// WithError configures the client to return the given error.
func (a *FlightAPI) WithError(err error) *FlightAPI {
	a.err = err
	return a
}

// WithDelay configures the client to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (a *FlightAPI) WithDelay(d time.Duration) *FlightAPI {
	a.delay = d
	return a
}

// SearchOffers implements usecase.FlightAPI.SearchOffers.
func (a *FlightAPI) SearchOffers(ctx context.Context, req *domain.SearchRequest) ([]domain.Offer, error) {
	return a.respond(ctx)
}

// SearchCheapestDates implements usecase.FlightAPI.SearchCheapestDates.
func (a *FlightAPI) SearchCheapestDates(ctx context.Context, req *domain.SearchRequest) ([]domain.Offer, error) {
	return a.respond(ctx)
}

func (a *FlightAPI) respond(ctx context.Context) ([]domain.Offer, error) {
	a.mu.Lock()
	a.callCount++
	a.mu.Unlock()

	if a.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(a.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if a.err != nil {
		return nil, a.err
	}

	return a.offers, nil
}

// CallCount returns the number of times either search method was called.
func (a *FlightAPI) CallCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.callCount
}

// Reset resets the call count to zero.
func (a *FlightAPI) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.callCount = 0
}

// Ensure FlightAPI implements usecase.FlightAPI at compile time.
var _ usecase.FlightAPI = (*FlightAPI)(nil)

// SampleOffers returns a slice of sample offers for testing.
// Prices ascend so price-ordering assertions stay simple.
func SampleOffers(count int) []domain.Offer {
	offers := make([]domain.Offer, count)

	baseTime := time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		departure := baseTime.Add(time.Duration(i*2) * time.Hour)
		arrival := departure.Add(3*time.Hour + 45*time.Minute)

		offers[i] = domain.Offer{
			Departures: []string{departure.Format(time.RFC3339)},
			Arrivals:   []string{arrival.Format(time.RFC3339)},
			Durations:  []string{"PT3H45M"},
			Price:      99.99 + float64(i)*50,
			Currency:   "EUR",
			Seats:      fmt.Sprintf("%d", 9-i),
		}
	}

	return offers
}
