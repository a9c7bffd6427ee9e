package domain

import "encoding/json"

// SeatsUnknown is the placeholder used when an endpoint does not report
// bookable seats (the cheapest-dates calendar never does).
const SeatsUnknown = "N/A"

// FieldUnknown is the placeholder for itinerary fields the calendar
// endpoint does not return (arrival times, durations).
const FieldUnknown = "N/A"

// Offer is one priced flight option returned by a search. For an offer
// search the slices hold one element per itinerary (outbound, and inbound
// for round trips); for a cheapest-dates search they hold a single
// departure date and placeholders.
type Offer struct {
	// Departures holds the first-segment departure timestamp of each
	// itinerary (or the bare departure date for calendar results).
	Departures []string `json:"departures"`

	// Arrivals holds the last-segment arrival timestamp of each itinerary.
	Arrivals []string `json:"arrivals"`

	// Durations holds the ISO 8601 duration of each itinerary.
	Durations []string `json:"durations"`

	// Price is the total price for all passengers.
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code of the price.
	Currency string `json:"currency"`

	// Seats is the bookable seat count, or SeatsUnknown when the endpoint
	// does not report it.
	Seats string `json:"seats"`

	// Raw is the unmodified API entry this offer was built from. It is
	// what gets persisted to the results directory.
	Raw json.RawMessage `json:"-"`
}
