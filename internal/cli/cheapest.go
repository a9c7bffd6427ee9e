package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ray66rus/amadeus-searcher/internal/usecase"
)

func newCheapestCmd() *cobra.Command {
	var (
		origin       string
		destinations []string
		date         string
		timeframe    int
		returnAfter  int
		flags        searchFlags
	)

	cmd := &cobra.Command{
		Use:   "cheapest",
		Short: "Search the cheapest-dates calendar for a range of departure dates",
		Long: `Query the cheapest travel dates calendar for one origin and one or
more destinations over consecutive departure dates. With --return-after
the calendar covers round trips of that duration; without it the
calendar covers one-way trips.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.outputDir)
			if err != nil {
				return err
			}

			requests := usecase.RoundTripRequests(origin, destinations, date, timeframe, returnAfter)
			applyRequestFlags(requests, flags)

			report, err := newUseCase(cfg).Run(cmd.Context(), requests, usecase.ModeCheapestDates)
			if err != nil {
				return err
			}

			fmt.Printf("Done: %d requests, %d offers, %s\n", report.Requests, report.Offers, report.Elapsed.Round(timeRound))
			return nil
		},
	}

	cmd.Flags().StringVarP(&origin, "origin", "o", "", "Origin airport IATA code")
	cmd.Flags().StringSliceVarP(&destinations, "destinations", "d", nil, "Destination airport IATA codes")
	cmd.Flags().StringVar(&date, "date", "", "First departure date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&timeframe, "timeframe", 1, "Number of consecutive departure dates to search")
	cmd.Flags().IntVar(&returnAfter, "return-after", 0, "Trip duration in days for round-trip calendars (0 means one-way)")
	addSearchFlags(cmd, &flags)

	_ = cmd.MarkFlagRequired("origin")
	_ = cmd.MarkFlagRequired("destinations")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
