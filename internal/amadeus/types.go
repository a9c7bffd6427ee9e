package amadeus

import "encoding/json"

// Wire types for the two shopping endpoints. Entries are decoded in two
// steps: the raw entry bytes are kept for persistence, and the typed view
// below extracts only the fields the searcher needs.

// offersResponse is the body of GET /v2/shopping/flight-offers.
type offersResponse struct {
	Data []json.RawMessage `json:"data"`
}

// offerEntry is the typed view of one flight-offer entry.
type offerEntry struct {
	NumberOfBookableSeats int         `json:"numberOfBookableSeats"`
	Itineraries           []itinerary `json:"itineraries"`
	Price                 price       `json:"price"`
}

type itinerary struct {
	Duration string    `json:"duration"`
	Segments []segment `json:"segments"`
}

type segment struct {
	Departure endpointTime `json:"departure"`
	Arrival   endpointTime `json:"arrival"`
}

type endpointTime struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// price totals arrive as decimal strings, e.g. "546.70".
type price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

// datesResponse is the body of GET /v1/shopping/flight-dates. The
// calendar endpoint reports the currency once, in meta.
type datesResponse struct {
	Data []json.RawMessage `json:"data"`
	Meta struct {
		Currency string `json:"currency"`
	} `json:"meta"`
}

// dateEntry is the typed view of one calendar entry.
type dateEntry struct {
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate"`
	Price         struct {
		Total string `json:"total"`
	} `json:"price"`
}

// errorResponse is the vendor's error envelope.
type errorResponse struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}
