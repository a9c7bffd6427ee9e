package amadeus

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
)

// SearchCheapestDates queries the flight-dates calendar endpoint with the
// whole date batch in a single request. The calendar cannot mix one-way
// and round-trip dates, so a mixed batch returns ErrMixedTripTypes.
// Calendar entries carry no itinerary detail; arrival, duration and seat
// fields come back as placeholders.
func (c *Client) SearchCheapestDates(ctx context.Context, req *domain.SearchRequest) ([]domain.Offer, error) {
	if req.HasOneWay && req.HasRoundTrip {
		return nil, domain.ErrMixedTripTypes
	}

	departures := make([]string, 0, len(req.DateDurations))
	durations := make([]string, 0, len(req.DateDurations))
	for _, pair := range req.DateDurations {
		departures = append(departures, pair.Departure)
		durations = append(durations, pair.Return)
	}

	query := url.Values{}
	query.Set("origin", req.Origin)
	query.Set("destination", req.Destination)
	query.Set("departureDate", strings.Join(departures, ","))
	if req.HasRoundTrip {
		query.Set("duration", strings.Join(durations, ","))
	} else {
		query.Set("oneWay", "true")
	}
	if req.MaxPrice > 0 {
		query.Set("maxPrice", strconv.FormatFloat(req.MaxPrice, 'f', -1, 64))
	}

	var resp datesResponse
	if err := c.get(ctx, datesPath, query, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		c.log.Debug().Str("route", req.Route()).Msg("No calendar entries")
		return nil, nil
	}

	offers := make([]domain.Offer, 0, len(resp.Data))
	for _, raw := range resp.Data {
		var entry dateEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			c.log.Error().Err(err).Msg("Skipping undecodable calendar entry")
			continue
		}

		total, err := strconv.ParseFloat(entry.Price.Total, 64)
		if err != nil {
			c.log.Error().
				Err(err).
				Str("total", entry.Price.Total).
				Msg("Skipping calendar entry with unparsable price")
			continue
		}

		offers = append(offers, domain.Offer{
			Departures: []string{entry.DepartureDate},
			Arrivals:   []string{domain.FieldUnknown},
			Durations:  []string{domain.FieldUnknown},
			Price:      total,
			Currency:   resp.Meta.Currency,
			Seats:      domain.SeatsUnknown,
			Raw:        raw,
		})
	}

	return offers, nil
}
