package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/encounter"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your stats, equipment and inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.svc.Status(cmd.Context(), &encounter.StatusInput{PlayerID: a.opts.playerID})
			if err != nil {
				return a.report(err)
			}
			if out.New {
				fmt.Fprintf(a.out, "No save found for %q; starting a new adventure.\n\n", a.opts.playerID)
			}
			fmt.Fprintln(a.out, out.Text)
			return nil
		},
	}
}

func newMonstersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "monsters",
		Short: "List the monsters you can fight",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, id := range a.catalog.MonsterIDs() {
				m, err := a.catalog.Monster(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "* %s (%s)\n", id, m.Name)
			}
			return nil
		},
	}
}

func newPlayersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List saved players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.svc.ListPlayers(cmd.Context(), &encounter.ListPlayersInput{})
			if err != nil {
				return err
			}
			if len(out.PlayerIDs) == 0 {
				fmt.Fprintln(a.out, "No saved players.")
				return nil
			}
			for _, id := range out.PlayerIDs {
				fmt.Fprintf(a.out, "* %s\n", id)
			}
			return nil
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete your save and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.svc.Reset(cmd.Context(), &encounter.ResetInput{PlayerID: a.opts.playerID}); err != nil {
				return a.report(err)
			}
			fmt.Fprintf(a.out, "Save for %q deleted.\n", a.opts.playerID)
			return nil
		},
	}
}
