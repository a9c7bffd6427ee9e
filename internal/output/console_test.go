package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePrinter(&buf)

	offer := domain.Offer{
		Departures: []string{"2024-05-01T10:35:00", "2024-05-08T17:20:00"},
		Arrivals:   []string{"2024-05-01T16:50:00", "2024-05-08T23:55:00"},
		Durations:  []string{"PT7H15M", "PT7H35M"},
		Price:      546.7,
		Currency:   "EUR",
		Seats:      "4",
	}
	p.PrintSummary(testRequest("SVO", "LIS"), []domain.Offer{offer})

	out := buf.String()
	assert.Contains(t, out, "From: SVO, To: LIS\n")
	assert.Contains(t, out, "Departure: 2024-05-01T10:35:00, 2024-05-08T17:20:00")
	assert.Contains(t, out, "Durations: PT7H15M, PT7H35M")
	assert.Contains(t, out, "Price: 546.70 EUR")
	assert.Contains(t, out, "Seats left: 4")
	assert.Contains(t, out, separator)
}

func TestPrintSummaryNoOffers(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePrinter(&buf)

	p.PrintSummary(testRequest("SVO", "LIS"), nil)

	out := buf.String()
	assert.Contains(t, out, "From: SVO, To: LIS\n")
	assert.NotContains(t, out, "Departure:")
}
