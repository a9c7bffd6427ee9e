package amadeus

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
)

// SearchOffers queries the flight-offers endpoint once per date pair and
// returns the accepted offers in API order. A response without a data
// field counts as zero results for that date, not as an error. Offers
// priced above the request's MaxPrice are excluded.
func (c *Client) SearchOffers(ctx context.Context, req *domain.SearchRequest) ([]domain.Offer, error) {
	var offers []domain.Offer

	for _, pair := range req.Dates {
		query := url.Values{}
		query.Set("originLocationCode", req.Origin)
		query.Set("destinationLocationCode", req.Destination)
		query.Set("departureDate", pair.Departure)
		query.Set("adults", strconv.Itoa(req.Passengers))
		query.Set("max", strconv.Itoa(req.MaxResults))
		if !pair.OneWay() {
			query.Set("returnDate", pair.Return)
		}

		var resp offersResponse
		if err := c.get(ctx, offersPath, query, &resp); err != nil {
			return nil, err
		}
		if len(resp.Data) == 0 {
			c.log.Debug().
				Str("route", req.Route()).
				Str("departure", pair.Departure).
				Msg("No offers for date")
			continue
		}

		for _, raw := range resp.Data {
			offer, ok := c.parseOffer(raw, req.MaxPrice)
			if !ok {
				continue
			}
			offers = append(offers, offer)
		}
	}

	return offers, nil
}

// parseOffer extracts a domain.Offer from one raw entry. Entries that do
// not decode or whose price does not parse are logged and skipped; the
// second return value reports whether the offer was accepted.
func (c *Client) parseOffer(raw json.RawMessage, maxPrice float64) (domain.Offer, bool) {
	var entry offerEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.log.Error().Err(err).Msg("Skipping undecodable offer entry")
		return domain.Offer{}, false
	}

	total, err := strconv.ParseFloat(entry.Price.GrandTotal, 64)
	if err != nil {
		c.log.Error().
			Err(err).
			Str("grandTotal", entry.Price.GrandTotal).
			Msg("Skipping offer with unparsable price")
		return domain.Offer{}, false
	}
	if maxPrice > 0 && total > maxPrice {
		return domain.Offer{}, false
	}

	offer := domain.Offer{
		Price:    total,
		Currency: entry.Price.Currency,
		Seats:    strconv.Itoa(entry.NumberOfBookableSeats),
		Raw:      raw,
	}
	for _, itin := range entry.Itineraries {
		if len(itin.Segments) == 0 {
			continue
		}
		offer.Departures = append(offer.Departures, itin.Segments[0].Departure.At)
		offer.Arrivals = append(offer.Arrivals, itin.Segments[len(itin.Segments)-1].Arrival.At)
		offer.Durations = append(offer.Durations, itin.Duration)
	}
	return offer, true
}
