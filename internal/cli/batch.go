package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ray66rus/amadeus-searcher/internal/usecase"
)

func newBatchCmd() *cobra.Command {
	var (
		file  string
		flags searchFlags
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run offer searches from a CSV request file",
		Long: `Run one flight-offers search per CSV row. Each row is
origin,destination,departure[,return] with dates in YYYY-MM-DD format;
an empty or missing return column means a one-way trip.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.outputDir)
			if err != nil {
				return err
			}

			requests, err := usecase.LoadRequestsFile(file)
			if err != nil {
				return err
			}
			applyRequestFlags(requests, flags)

			report, err := newUseCase(cfg).Run(cmd.Context(), requests, usecase.ModeOffers)
			if err != nil {
				return err
			}

			fmt.Printf("Done: %d requests, %d offers, %s\n", report.Requests, report.Offers, report.Elapsed.Round(timeRound))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the CSV request file")
	_ = cmd.MarkFlagRequired("file")
	addSearchFlags(cmd, &flags)

	return cmd
}
