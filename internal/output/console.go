package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ray66rus/amadeus-searcher/internal/domain"
)

const separator = "----------------------------------------------------------------------------------"

// ConsolePrinter writes human-readable search summaries.
type ConsolePrinter struct {
	out io.Writer
}

// NewConsolePrinter creates a printer writing to out (normally stdout).
func NewConsolePrinter(out io.Writer) *ConsolePrinter {
	return &ConsolePrinter{out: out}
}

// PrintSummary writes the route header, one line per offer, and a
// trailing separator. A request with no offers still gets its header so
// "no results" is visible per route.
func (p *ConsolePrinter) PrintSummary(req *domain.SearchRequest, offers []domain.Offer) {
	fmt.Fprintf(p.out, "From: %s, To: %s\n", req.Origin, req.Destination)
	for _, offer := range offers {
		fmt.Fprintf(p.out, "Departure: %s, Durations: %s, Price: %.2f %s, Seats left: %s\n",
			strings.Join(offer.Departures, ", "),
			strings.Join(offer.Durations, ", "),
			offer.Price,
			offer.Currency,
			offer.Seats,
		)
	}
	fmt.Fprintln(p.out, separator)
	fmt.Fprintln(p.out)
}
