package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ray66rus/amadeus-searcher/internal/amadeus"
	"github.com/ray66rus/amadeus-searcher/internal/config"
	"github.com/ray66rus/amadeus-searcher/internal/domain"
	"github.com/ray66rus/amadeus-searcher/internal/infrastructure/logger"
	"github.com/ray66rus/amadeus-searcher/internal/output"
	"github.com/ray66rus/amadeus-searcher/internal/usecase"
)

// timeRound trims sub-millisecond noise from reported run times.
const timeRound = time.Millisecond

// searchFlags are the knobs shared by the one-way, cheapest and batch
// commands.
type searchFlags struct {
	maxPrice   float64
	adults     int
	maxResults int
	outputDir  string
}

// addSearchFlags registers the shared flags on cmd.
func addSearchFlags(cmd *cobra.Command, f *searchFlags) {
	cmd.Flags().Float64Var(&f.maxPrice, "max-price", 0, "Skip offers above this price (0 disables the cap)")
	cmd.Flags().IntVar(&f.adults, "adults", domain.DefaultPassengers, "Number of adult passengers")
	cmd.Flags().IntVar(&f.maxResults, "max-results", domain.DefaultMaxResults, "Maximum offers per request")
	cmd.Flags().StringVar(&f.outputDir, "output-dir", "", "Directory for raw result files (defaults to SEARCHER_OUTPUT_DIR)")
}

// loadConfig loads configuration, applies flag overrides and sets up
// logging. Credentials must be present by the time this returns.
func loadConfig(outputDir string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if clientID != "" {
		cfg.Amadeus.ClientID = clientID
	}
	if clientSecret != "" {
		cfg.Amadeus.ClientSecret = clientSecret
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	if !cfg.HasCredentials() {
		return nil, fmt.Errorf("%w: set --client-id/--client-secret or the AMADEUS_SEARCHER_CLIENT_ID/AMADEUS_SEARCHER_CLIENT_SECRET environment variables", domain.ErrMissingCredentials)
	}

	return cfg, nil
}

// newUseCase wires the API client, console printer and results writer
// into a ready-to-run use case.
func newUseCase(cfg *config.Config) usecase.SearchUseCase {
	client := amadeus.NewClient(amadeus.Config{
		ClientID:          cfg.Amadeus.ClientID,
		ClientSecret:      cfg.Amadeus.ClientSecret,
		BaseURL:           cfg.Amadeus.BaseURL,
		Timeout:           cfg.Amadeus.HTTPTimeout,
		MaxRetries:        cfg.Amadeus.MaxRetries,
		RequestsPerSecond: cfg.Amadeus.RequestsPerSecond,
		Burst:             cfg.Amadeus.Burst,
	})

	printer := output.NewConsolePrinter(os.Stdout)
	writer := output.NewResultsWriter(cfg.Output.Dir)

	return usecase.NewSearchUseCase(client, printer, writer, nil)
}

// applyRequestFlags copies the shared search flags onto every request.
func applyRequestFlags(requests []*domain.SearchRequest, f searchFlags) {
	for _, req := range requests {
		if f.adults > 0 {
			req.Passengers = f.adults
		}
		if f.maxResults > 0 {
			req.MaxResults = f.maxResults
		}
		req.MaxPrice = f.maxPrice
	}
}
