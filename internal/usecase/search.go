// Package usecase orchestrates search runs: it drives the flight API for
// a batch of requests, prints summaries, and persists raw results.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
	"github.com/ray66rus/amadeus-searcher/internal/infrastructure/timeutil"
	"github.com/ray66rus/amadeus-searcher/internal/output"
)

// FlightAPI is the slice of the Amadeus client the driver needs.
//
//go:generate mockgen -source=search.go -destination=mock_api.go -package=usecase
type FlightAPI interface {
	// SearchOffers returns itemized flight offers for each date pair.
	SearchOffers(ctx context.Context, req *domain.SearchRequest) ([]domain.Offer, error)

	// SearchCheapestDates returns indicative lowest prices per departure
	// date, without itinerary detail.
	SearchCheapestDates(ctx context.Context, req *domain.SearchRequest) ([]domain.Offer, error)
}

// Mode selects which search endpoint a run uses.
type Mode string

const (
	// ModeOffers runs the itemized flight-offers search.
	ModeOffers Mode = "offers"

	// ModeCheapestDates runs the price-by-date calendar search.
	ModeCheapestDates Mode = "cheapest-dates"
)

// RunReport summarizes one completed run.
type RunReport struct {
	// RunID identifies the run in logs.
	RunID string

	// Requests is the number of search requests executed.
	Requests int

	// Offers is the total number of offers collected across requests.
	Offers int

	// Skipped lists routes that yielded zero results because of a logged
	// per-request condition (e.g. a mixed cheapest-dates batch).
	Skipped []string

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// SearchUseCase runs a batch of search requests end to end.
type SearchUseCase interface {
	// Run executes every request sequentially: search, print a console
	// summary, persist the raw entries. Per-request "zero result"
	// conditions are logged and skipped; transport and authentication
	// failures abort the run.
	Run(ctx context.Context, requests []*domain.SearchRequest, mode Mode) (*RunReport, error)
}

// Config contains optional construction knobs for the use case.
type Config struct {
	// Clock defaults to the system clock.
	Clock timeutil.Clock
}

type searchUseCase struct {
	api     FlightAPI
	printer *output.ConsolePrinter
	writer  *output.ResultsWriter
	clock   timeutil.Clock
}

// NewSearchUseCase creates a SearchUseCase. A nil config uses defaults.
func NewSearchUseCase(api FlightAPI, printer *output.ConsolePrinter, writer *output.ResultsWriter, config *Config) SearchUseCase {
	var clock timeutil.Clock = timeutil.NewRealClock()
	if config != nil && config.Clock != nil {
		clock = config.Clock
	}

	return &searchUseCase{
		api:     api,
		printer: printer,
		writer:  writer,
		clock:   clock,
	}
}

// Run implements SearchUseCase.Run.
func (uc *searchUseCase) Run(ctx context.Context, requests []*domain.SearchRequest, mode Mode) (*RunReport, error) {
	start := uc.clock.Now()
	report := &RunReport{RunID: uuid.NewString()}
	runLog := log.With().Str("run_id", report.RunID).Str("mode", string(mode)).Logger()

	for _, req := range requests {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}

	if err := uc.writer.Reset(); err != nil {
		return nil, err
	}

	runLog.Info().Int("requests", len(requests)).Msg("Starting search run")

	for _, req := range requests {
		offers, err := uc.search(ctx, req, mode)
		switch {
		case errors.Is(err, domain.ErrMixedTripTypes):
			runLog.Error().
				Str("route", req.Route()).
				Msg("Cannot search for both one-way and round-trip flights in one request")
			report.Skipped = append(report.Skipped, req.Route())
			offers = nil
		case err != nil:
			return nil, fmt.Errorf("search %s: %w", req.Route(), err)
		}

		uc.printer.PrintSummary(req, offers)
		if err := uc.writer.Write(req, offers); err != nil {
			return nil, err
		}

		report.Requests++
		report.Offers += len(offers)
	}

	report.Elapsed = uc.clock.Now().Sub(start)
	runLog.Info().
		Int("requests", report.Requests).
		Int("offers", report.Offers).
		Dur("elapsed", report.Elapsed).
		Msg("Search run finished")

	return report, nil
}

func (uc *searchUseCase) search(ctx context.Context, req *domain.SearchRequest, mode Mode) ([]domain.Offer, error) {
	switch mode {
	case ModeCheapestDates:
		return uc.api.SearchCheapestDates(ctx, req)
	default:
		return uc.api.SearchOffers(ctx, req)
	}
}

// Ensure searchUseCase implements SearchUseCase at compile time.
var _ SearchUseCase = (*searchUseCase)(nil)
