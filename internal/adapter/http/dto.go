// Package http provides the HTTP handler layer for serve mode.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"github.com/ray66rus/amadeus-searcher/internal/domain"
)

// SearchRequestDTO is the request body shared by both search endpoints.
type SearchRequestDTO struct {
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Dates       []DatePairDTO `json:"dates"`
	Passengers  int           `json:"passengers,omitempty"`
	MaxResults  int           `json:"max_results,omitempty"`
	MaxPrice    float64       `json:"max_price,omitempty"`
}

// DatePairDTO is a departure date with an optional return date.
type DatePairDTO struct {
	Departure string `json:"departure"`
	Return    string `json:"return,omitempty"`
}

// SearchResponseDTO is the response body of both search endpoints.
type SearchResponseDTO struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Count       int        `json:"count"`
	Offers      []OfferDTO `json:"offers"`
}

// OfferDTO is one priced flight option in the response.
type OfferDTO struct {
	Departures []string `json:"departures"`
	Arrivals   []string `json:"arrivals"`
	Durations  []string `json:"durations"`
	Price      float64  `json:"price"`
	Currency   string   `json:"currency"`
	Seats      string   `json:"seats"`
}

// ToDomainRequest converts the DTO to a domain SearchRequest with
// defaults applied. Invalid date pairs are dropped by the constructor;
// the caller validates the result.
func ToDomainRequest(dto *SearchRequestDTO) *domain.SearchRequest {
	pairs := make([]domain.DatePair, 0, len(dto.Dates))
	for _, d := range dto.Dates {
		pairs = append(pairs, domain.DatePair{Departure: d.Departure, Return: d.Return})
	}

	req := domain.NewSearchRequest(dto.Origin, dto.Destination, pairs)
	if dto.Passengers > 0 {
		req.Passengers = dto.Passengers
	}
	if dto.MaxResults > 0 {
		req.MaxResults = dto.MaxResults
	}
	req.MaxPrice = dto.MaxPrice
	return req
}

// ToSearchResponseDTO converts search results to the response shape.
func ToSearchResponseDTO(req *domain.SearchRequest, offers []domain.Offer) *SearchResponseDTO {
	dto := &SearchResponseDTO{
		Origin:      req.Origin,
		Destination: req.Destination,
		Count:       len(offers),
		Offers:      make([]OfferDTO, len(offers)),
	}
	for i, offer := range offers {
		dto.Offers[i] = OfferDTO{
			Departures: offer.Departures,
			Arrivals:   offer.Arrivals,
			Durations:  offer.Durations,
			Price:      offer.Price,
			Currency:   offer.Currency,
			Seats:      offer.Seats,
		}
	}
	return dto
}
