package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/unotto/genchi"
	"github.com/unotto/genchi/services"
)

func rate(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rate PAIR [AMOUNT]",
		Short: "Convert an amount at the current spot rate",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount := "1"
			if len(args) == 2 {
				amount = args[1]
			}

			quote, err := services.Quoter{Resolver: config.Resolver}.Quote(config.Ctx, args[0], amount)
			if errors.Is(err, genchi.ErrRateUnavailable) {
				return errors.New("レートを取得できませんでした。時間を置いて再度お試しください")
			}
			if err != nil {
				return err
			}

			cmd.Println(services.PairLabel(args[0]))
			cmd.Println(quote.Line())
			cmd.Println(quote.UnitLine())

			return nil
		},
	}
}
