package usecase

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
)

// OneWayRequests fans a start date and day count out into one request per
// destination, each covering the full consecutive date range one-way.
func OneWayRequests(origin string, destinations []string, startDate string, days int) []*domain.SearchRequest {
	dates := domain.DateRange(startDate, days)
	pairs := make([]domain.DatePair, 0, len(dates))
	for _, d := range dates {
		pairs = append(pairs, domain.DatePair{Departure: d})
	}

	requests := make([]*domain.SearchRequest, 0, len(destinations))
	for _, destination := range destinations {
		requests = append(requests, domain.NewSearchRequest(origin, destination, pairs))
	}
	return requests
}

// RoundTripRequests is like OneWayRequests but pairs every departure date
// with a return date returnAfter days later. With returnAfter <= 0 it
// degrades to one-way requests.
func RoundTripRequests(origin string, destinations []string, startDate string, days, returnAfter int) []*domain.SearchRequest {
	if returnAfter <= 0 {
		return OneWayRequests(origin, destinations, startDate, days)
	}

	dates := domain.DateRange(startDate, days)
	pairs := make([]domain.DatePair, 0, len(dates))
	for _, d := range dates {
		returns := domain.DateRange(d, returnAfter+1)
		pairs = append(pairs, domain.DatePair{Departure: d, Return: returns[len(returns)-1]})
	}

	requests := make([]*domain.SearchRequest, 0, len(destinations))
	for _, destination := range destinations {
		requests = append(requests, domain.NewSearchRequest(origin, destination, pairs))
	}
	return requests
}

// LoadRequestsFile reads one search request per CSV row. Rows have the
// form "origin,destination,departure[,return]"; the return column may be
// empty or absent for one-way trips. A malformed file is a hard error:
// the caller aborts instead of searching a partial batch.
func LoadRequestsFile(path string) ([]*domain.SearchRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open requests file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read requests file %s: %w", path, err)
	}

	requests := make([]*domain.SearchRequest, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: row %d of %s has %d columns, want at least 3",
				domain.ErrInvalidRequest, i+1, path, len(row))
		}

		pair := domain.DatePair{Departure: row[2]}
		if len(row) > 3 {
			pair.Return = row[3]
		}
		requests = append(requests, domain.NewSearchRequest(row[0], row[1], []domain.DatePair{pair}))
	}
	return requests, nil
}
