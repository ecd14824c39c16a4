// Package runnercmds holds the cobra command tree of the game-runner binary.
package runnercmds

import (
	"fmt"

	"github.com/MikailBag/simple-game/internal/logs"
	"github.com/MikailBag/simple-game/internal/runner"
	"github.com/MikailBag/simple-game/internal/runtime"
	"github.com/MikailBag/simple-game/internal/version"
	"github.com/spf13/cobra"
)

var verbosity int

func Execute(rt *runtime.Runtime) error {
	rootCmd := &cobra.Command{
		Use:   "game-runner PATH",
		Short: "Execute a bot script with the interpreter matching its kind",
		Long: `game-runner detects the kind of the given script by extension and runs
it with the matching interpreter, passing stdio through.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return fmt.Errorf("path to file executed not given")
			}
			return runner.Exec(cmd.Context(), args[0])
		},

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logs.SetDebugVerbosity(verbosity)
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity level")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version of game-runner",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s\n", version.Get())
		},
	})

	return rootCmd.ExecuteContext(rt.Ctx())
}
