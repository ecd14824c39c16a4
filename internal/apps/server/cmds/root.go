// Package servercmds holds the cobra command tree of the game-server binary.
package servercmds

import (
	"github.com/MikailBag/simple-game/internal/logs"
	"github.com/MikailBag/simple-game/internal/runtime"
	"github.com/spf13/cobra"
)

var verbosity int

func Execute(rt *runtime.Runtime) error {
	rootCmd := &cobra.Command{
		Use:   "game-server [CONFIG]",
		Short: "Host a guessing-game match between bot programs",
		Long: `game-server plays the lowest-unique-number game between bot programs.

By default, 'game-server CONFIG' is equivalent to 'game-server play CONFIG'.`,
		Args: cobra.MaximumNArgs(1),
		// Default behavior is the same as 'play'
		RunE: playCmdRunE,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logs.SetDebugVerbosity(verbosity)
			return nil
		},
		// we will handle that
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity level")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd.ExecuteContext(rt.Ctx())
}
