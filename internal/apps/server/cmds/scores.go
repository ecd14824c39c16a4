package servercmds

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/MikailBag/simple-game/internal/runtime"
	"github.com/MikailBag/simple-game/internal/state"
	"github.com/MikailBag/simple-game/internal/ui"
	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "scores",
		Aliases: []string{"leaderboard"},
		Short:   "Show the accumulated leaderboard",
		Long:    "List total points per bot across every recorded match.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := runtime.FromContextOrPanic(cmd.Context())

			path, err := state.DefaultPath()
			if err != nil {
				return err
			}
			db, err := state.Open(rt.Ctx(), state.Config{Path: path})
			if err != nil {
				return err
			}
			rt.OnShutdown(func(context.Context) { _ = db.Close() })
			store, err := state.NewScoreStore(rt.Ctx(), db)
			if err != nil {
				return err
			}

			totals, err := store.Totals(rt.Ctx())
			if err != nil {
				return err
			}
			if len(totals) == 0 {
				fmt.Println("No matches recorded yet")
				return nil
			}

			table := ui.NewTable(
				ui.Column{Header: "Bot"},
				ui.Column{Header: "Points", Align: ui.AlignRight},
				ui.Column{Header: "Matches", Align: ui.AlignRight},
			)
			for _, row := range totals {
				table.AddRow(row.Bot, strconv.Itoa(row.Points), strconv.Itoa(row.Matches))
			}

			fmt.Println("")
			table.Render(os.Stdout)
			fmt.Println("")

			return nil
		},
	}
}
