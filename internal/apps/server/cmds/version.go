package servercmds

import (
	"fmt"

	"github.com/MikailBag/simple-game/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of game-server",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s\n", version.Get())
		},
	}
}
