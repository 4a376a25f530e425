package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unotto/genchi"
	"github.com/unotto/genchi/services"
)

func historyCmd(config *Config) *cobra.Command {
	historyRoot := &cobra.Command{
		Use:   "history",
		Short: "Saved conversions",
	}

	historyRoot.AddCommand(
		historyList(config),
		historyAdd(config),
		historyDelete(config),
		historyClear(config),
	)

	return historyRoot
}

func historyList(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := config.History.Load(config.Ctx)
			if len(entries) == 0 {
				cmd.Println("履歴はありません")
				return nil
			}

			for i, entry := range entries {
				// Right holds the converted amount and the unit-rate
				// line separated by a newline; keep the list one row
				// per entry.
				right := strings.ReplaceAll(entry.Right, "\n", "  ")

				cmd.Printf("%d\t%s\t%s → %s", i, entry.Date, entry.Left, right)
				if entry.Memo != "" {
					cmd.Printf("\t%s", entry.Memo)
				}
				cmd.Println()
			}

			return nil
		},
	}
}

func historyAdd(config *Config) *cobra.Command {
	var memo string

	addCmd := &cobra.Command{
		Use:   "add PAIR AMOUNT",
		Short: "Convert and save to the history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			register := services.Register{Resolver: config.Resolver, History: config.History}

			entry, err := register.Register(config.Ctx, args[0], args[1], memo)
			if err != nil {
				return err
			}

			cmd.Println("ペア履歴に追加しました")
			if debug {
				cmd.Printf("id=%d %s %s\n", entry.ID, entry.Left, strings.ReplaceAll(entry.Right, "\n", "  "))
			}

			return nil
		},
	}

	addCmd.Flags().StringVar(&memo, "memo", "", "Free text attached to the entry")

	return addCmd
}

func historyDelete(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete the entry at a list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			remaining := config.History.DeleteAt(config.Ctx, index)
			cmd.Printf("残り %d 件\n", len(remaining))

			return nil
		},
	}
}

func historyClear(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved conversion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.History.Save(config.Ctx, genchi.HistoryList{})
			cmd.Println("履歴を削除しました")

			return nil
		},
	}
}
