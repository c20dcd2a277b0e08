// Command lowtides lists every low tide at or below a level for the coming
// days, without the daily window the report applies.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/spencer-p/beachride/pkg/noaa"
	"github.com/spencer-p/beachride/pkg/ride"
	"github.com/spencer-p/beachride/pkg/timetricks"
)

func main() {
	var (
		days  int
		level float64
	)

	cmd := &cobra.Command{
		Use:          "lowtides",
		Short:        "List upcoming low tides from the NOAA API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := timetricks.TrimClock(time.Now())
			query := noaa.PredictionQuery{
				Start:   start,
				End:     start.AddDate(0, 0, days),
				Station: noaa.MontereyBay,
			}

			client := noaa.NewClient(noaa.DefaultTimeout)
			preds, err := client.GetPredictions(cmd.Context(), &query)
			if err != nil {
				return fmt.Errorf("failed to fetch from NOAA: %w", err)
			}

			for _, tide := range ride.LowTides(preds, noaa.Height(level)) {
				fmt.Fprintln(cmd.OutOrStdout(), tide)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", timetricks.RangeDays, "Number of days to list")
	cmd.Flags().Float64Var(&level, "level", 0, "Highest low tide to list, in feet")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
