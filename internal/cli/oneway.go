package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ray66rus/amadeus-searcher/internal/usecase"
)

func newOneWayCmd() *cobra.Command {
	var (
		origin       string
		destinations []string
		date         string
		timeframe    int
		flags        searchFlags
	)

	cmd := &cobra.Command{
		Use:   "one-way",
		Short: "Search one-way offers for a range of departure dates",
		Long: `Search one-way flight offers from one origin to one or more
destinations, fanning out over consecutive departure dates starting at
--date. Results are printed per route and the raw API entries are saved
under the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.outputDir)
			if err != nil {
				return err
			}

			requests := usecase.OneWayRequests(origin, destinations, date, timeframe)
			applyRequestFlags(requests, flags)

			report, err := newUseCase(cfg).Run(cmd.Context(), requests, usecase.ModeOffers)
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
	addSearchFlags(cmd, &flags)

	_ = cmd.MarkFlagRequired("origin")
	_ = cmd.MarkFlagRequired("destinations")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
