package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/config"
)

// options are the persistent flags shared by every command.
type options struct {
	catalogPath string
	redisAddr   string
	saveDir     string
	playerID    string
	seed        uint64
	wrapWidth   int
}

func newRootCmd(cfg *config.Config, in io.Reader, out io.Writer) *cobra.Command {
	return newAppCmd(&app{cfg: cfg, in: in, out: out})
}

func newAppCmd(a *app) *cobra.Command {
	cfg := a.cfg

	root := &cobra.Command{
		Use:   "rpg-battle",
		Short: "Turn-based battles against catalog monsters",
		Long: `rpg-battle loads your player, lets you fight monsters from the catalog,
and saves your progress to files or Redis after every command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.start(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.catalogPath, "catalog", cfg.CatalogPath, "catalog YAML file (default: the bundled catalog)")
	flags.StringVar(&a.opts.redisAddr, "redis", cfg.RedisAddr, "Redis address for saves (default: save files)")
	flags.StringVar(&a.opts.saveDir, "save-dir", cfg.SaveDir, "directory for save files")
	flags.StringVar(&a.opts.playerID, "player", "player", "ID of the player to play as")
	flags.Uint64Var(&a.opts.seed, "seed", 0, "random seed; the same seed replays the same fight")
	flags.IntVar(&a.opts.wrapWidth, "wrap", cfg.WrapWidth, "word-wrap narration at this many columns (0: no wrapping)")

	root.AddCommand(
		newFightCmd(a),
		newEquipCmd(a),
		newUnequipCmd(a),
		newUseCmd(a),
		newDropCmd(a),
		newStatusCmd(a),
		newMonstersCmd(a),
		newPlayersCmd(a),
		newResetCmd(a),
	)
	return root
}
