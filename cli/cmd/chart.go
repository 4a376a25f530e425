package cmd

import (
	"github.com/spf13/cobra"

	"github.com/unotto/genchi"
	"github.com/unotto/genchi/services"
)

func chart(config *Config) *cobra.Command {
	var days int

	chartCmd := &cobra.Command{
		Use:   "chart PAIR",
		Short: "Show the rate trend for a pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair := genchi.ParsePair(args[0])
			if !pair.Selected() {
				return services.ErrNoPairSelected
			}

			lookup := pair.Lookup()
			series := config.Resolver.SeriesFor(config.Ctx, lookup.Base, lookup.Quote, genchi.RangeFromDays(days))

			symbol := genchi.SymbolOf(pair.Quote)
			for _, point := range series.Points {
				cmd.Printf("%s  %s %s\n", point.Date, services.FormatRate(point.Rate), symbol)
			}

			if series.Synthetic {
				cmd.Println("※API失敗のため仮データ")
			}

			return nil
		},
	}

	chartCmd.Flags().IntVar(&days, "days", 7, "Number of calendar days including today")

	return chartCmd
}
