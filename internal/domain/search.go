// Package domain contains the core entities and rules for flight searches.
// These types are independent of the Amadeus wire format and of any
// particular output channel.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the calendar date format used throughout the searcher.
const DateLayout = "2006-01-02"

// Default request values applied by SetDefaults.
const (
	DefaultPassengers = 1
	DefaultMaxResults = 10
)

// DatePair is a departure date with an optional return date, both in
// YYYY-MM-DD format. An empty return date means a one-way trip.
type DatePair struct {
	Departure string
	Return    string
}

// OneWay reports whether the pair describes a one-way trip.
func (p DatePair) OneWay() bool {
	return p.Return == ""
}

// TripDuration returns the trip length in days for a departure/return date
// pair. It returns 0 (the invalid sentinel) when either date is malformed
// or the return date is not strictly after the departure date.
func TripDuration(departure, ret string) int {
	departureDt, err := time.Parse(DateLayout, departure)
	if err != nil {
		log.Error().Err(err).Str("departure", departure).Msg("Invalid departure date")
		return 0
	}
	returnDt, err := time.Parse(DateLayout, ret)
	if err != nil {
		log.Error().Err(err).Str("return", ret).Msg("Invalid return date")
		return 0
	}

	duration := int(returnDt.Sub(departureDt).Hours() / 24)
	if duration <= 0 {
		log.Error().
			Str("departure", departure).
			Str("return", ret).
			Msg("Return date must be after the departure date")
		return 0
	}
	return duration
}

// SearchRequest describes one origin/destination search over a batch of
// date pairs. Build it with NewSearchRequest so the derived fields are
// populated and invalid date pairs are dropped.
type SearchRequest struct {
	Origin      string
	Destination string

	// Dates holds the surviving date pairs after invalid pairs are dropped.
	Dates []DatePair

	Passengers int
	MaxResults int

	// MaxPrice caps the accepted offer price; 0 means no cap.
	MaxPrice float64

	// DateDurations pairs each departure date with the trip duration in
	// days as a decimal string ("" for one-way pairs). This is the shape
	// the cheapest-dates endpoint expects.
	DateDurations []DatePair

	// HasOneWay and HasRoundTrip report which trip kinds the batch
	// contains. A batch with both cannot be used for a cheapest-dates
	// search.
	HasOneWay    bool
	HasRoundTrip bool
}

// NewSearchRequest builds a SearchRequest and computes the derived fields.
// Date pairs with a malformed date or a return date on or before the
// departure date are logged and dropped; they never fail the request.
func NewSearchRequest(origin, destination string, dates []DatePair) *SearchRequest {
	r := &SearchRequest{
		Origin:      origin,
		Destination: destination,
		Passengers:  DefaultPassengers,
		MaxResults:  DefaultMaxResults,
	}

	for _, pair := range dates {
		if pair.OneWay() {
			r.HasOneWay = true
			r.Dates = append(r.Dates, pair)
			r.DateDurations = append(r.DateDurations, DatePair{Departure: pair.Departure})
			continue
		}

		duration := TripDuration(pair.Departure, pair.Return)
		if duration == 0 {
			log.Error().
				Str("origin", origin).
				Str("destination", destination).
				Str("departure", pair.Departure).
				Str("return", pair.Return).
				Msg("Dropping invalid date pair")
			continue
		}

		r.HasRoundTrip = true
		r.Dates = append(r.Dates, pair)
		r.DateDurations = append(r.DateDurations, DatePair{
			Departure: pair.Departure,
			Return:    strconv.Itoa(duration),
		})
	}

	return r
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks the request for consistency.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (r *SearchRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(r.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, r.Origin)
	}

	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(r.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, r.Destination)
	}

	if r.Origin == r.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if len(r.Dates) == 0 {
		return fmt.Errorf("%w: at least one valid date pair is required", ErrInvalidRequest)
	}
	for _, pair := range r.Dates {
		if !dateRegex.MatchString(pair.Departure) {
			return fmt.Errorf("%w: departure date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, pair.Departure)
		}
		if _, err := time.Parse(DateLayout, pair.Departure); err != nil {
			return fmt.Errorf("%w: departure date is not a valid date: %s", ErrInvalidRequest, pair.Departure)
		}
	}

	if r.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidRequest)
	}
	if r.Passengers > 9 {
		return fmt.Errorf("%w: passengers cannot exceed 9", ErrInvalidRequest)
	}

	if r.MaxResults < 1 {
		return fmt.Errorf("%w: max results must be at least 1", ErrInvalidRequest)
	}

	if r.MaxPrice < 0 {
		return fmt.Errorf("%w: max price cannot be negative", ErrInvalidRequest)
	}

	return nil
}

// SetDefaults applies default values to unset optional fields.
func (r *SearchRequest) SetDefaults() {
	if r.Passengers == 0 {
		r.Passengers = DefaultPassengers
	}
	if r.MaxResults == 0 {
		r.MaxResults = DefaultMaxResults
	}
}

// Route returns the "ORG-DST" key used for output files and log context.
func (r *SearchRequest) Route() string {
	return r.Origin + "-" + r.Destination
}

// DateRange generates count consecutive dates starting at start
// (YYYY-MM-DD). A malformed start date is logged and yields an empty
// slice.
func DateRange(start string, count int) []string {
	base, err := time.Parse(DateLayout, start)
	if err != nil {
		log.Error().Err(err).Str("start", start).Msg("Invalid range start date")
		return nil
	}

	dates := make([]string, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, base.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}
