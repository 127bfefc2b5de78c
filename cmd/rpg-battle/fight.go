package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/encounter"
)

func newFightCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fight <monster>",
		Short: "Fight a monster from the catalog",
		Long: `Fight a fresh monster from the catalog. Each round you type one of your
battle commands, or "pass". Your player is saved when the fight ends.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.svc.Fight(cmd.Context(), &encounter.FightInput{
				PlayerID:  a.opts.playerID,
				MonsterID: args[0],
			})
			if err != nil {
				return a.report(err)
			}

			p := out.Player
			fmt.Fprintf(a.out, "\nAfter %d round(s): HP %d/%d, %d gold.\n",
				out.Result.Rounds, p.Stats.HP, p.Stats.MaxHP, p.Gold)
			return nil
		},
	}
}
