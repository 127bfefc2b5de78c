package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/encounter"
)

func newEquipCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "equip <item>",
		Short: "Equip an item from your inventory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.svc.Equip(cmd.Context(), &encounter.EquipInput{
				PlayerID: a.opts.playerID,
				ItemName: itemName(args),
			})
			return a.report(err)
		},
	}
}

func newUnequipCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unequip <item>",
		Short: "Take off an equipped item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.svc.Unequip(cmd.Context(), &encounter.UnequipInput{
				PlayerID: a.opts.playerID,
				ItemName: itemName(args),
			})
			return a.report(err)
		},
	}
}

func newUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <item>",
		Short: "Use an item on yourself",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.svc.UseItem(cmd.Context(), &encounter.UseItemInput{
				PlayerID: a.opts.playerID,
				ItemName: itemName(args),
			})
			return a.report(err)
		},
	}
}

func newDropCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "drop <item>",
		Short: "Throw away one of an item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.svc.DropItem(cmd.Context(), &encounter.DropItemInput{
				PlayerID: a.opts.playerID,
				ItemName: itemName(args),
			})
			return a.report(err)
		},
	}
}

// itemName lets multi-word names be typed without quotes.
func itemName(args []string) string {
	return strings.Join(args, " ")
}
