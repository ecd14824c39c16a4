package servercmds

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikailBag/simple-game/internal/bot"
	"github.com/MikailBag/simple-game/internal/config"
	"github.com/MikailBag/simple-game/internal/dockerclient"
	"github.com/MikailBag/simple-game/internal/game"
	"github.com/MikailBag/simple-game/internal/logs"
	"github.com/MikailBag/simple-game/internal/runtime"
	"github.com/MikailBag/simple-game/internal/state"
	"github.com/MikailBag/simple-game/internal/ui"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play CONFIG",
		Short: "Play a match described by a YAML config",
		Long: `Load the match config, spawn one client per bot program, play the
configured number of rounds, and report final scores.`,
		Args: cobra.ExactArgs(1),
		RunE: playCmdRunE,
	}
}

// playCmdRunE is a separate function so root can reuse it (default command)
func playCmdRunE(cmd *cobra.Command, args []string) error {
	rt := runtime.FromContextOrPanic(cmd.Context())

	if len(args) != 1 {
		return fmt.Errorf("usage: game-server <path/to/config.yaml>")
	}

	logs.Debugf("loading config %s", args[0])
	match, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	signalsCtx, stopSignalsCtx := signal.NotifyContext(rt.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stopSignalsCtx()

	var runner dockerclient.BotRunner
	if match.Image != "" {
		dc, err := dockerclient.New()
		if err != nil {
			return err
		}
		runner = dc
	}

	logs.Infof("spawning %d clients", len(match.Programs))
	var clients []*bot.Client
	defer func() {
		for _, c := range clients {
			_ = c.Close()
		}
	}()
	for _, program := range match.Programs {
		c, err := bot.Launch(signalsCtx, program, match.Image, runner)
		if err != nil {
			return fmt.Errorf("internal error when spawning bot: %w", err)
		}
		clients = append(clients, c)
	}

	players := make([]game.Player, len(clients))
	for i, c := range clients {
		players[i] = c
	}

	result := game.Play(signalsCtx, players, match.Rounds)

	printScoreboard(clients, result.Points)

	if err := recordResult(rt, match.Programs, result.Points); err != nil {
		// The match itself finished fine; losing the history row is not
		// worth a non-zero exit.
		logs.Warnf("failed to record match result: %v", err)
	}

	return nil
}

func printScoreboard(clients []*bot.Client, points []int) {
	logs.Banner("final scores")

	table := ui.NewTable(
		ui.Column{Header: "Bot"},
		ui.Column{Header: "Points", Align: ui.AlignRight},
		ui.Column{Header: "State"},
	)
	for i, c := range clients {
		botState := "ok"
		if c.Failed() {
			botState = "failed"
		}
		table.AddRow(c.Name(), fmt.Sprintf("%d", points[i]), botState)
	}

	fmt.Println("")
	table.Render(os.Stdout)
	fmt.Println("")
}

func recordResult(rt *runtime.Runtime, bots []string, points []int) error {
	path, err := state.DefaultPath()
	if err != nil {
		return err
	}
	db, err := state.Open(rt.Ctx(), state.Config{Path: path})
	if err != nil {
		return err
	}
	rt.OnShutdown(func(context.Context) {
		if err := db.Close(); err != nil {
			logs.Warnf("failed to close score db: %v", err)
		}
	})
	store, err := state.NewScoreStore(rt.Ctx(), db)
	if err != nil {
		return err
	}
	return store.RecordMatch(rt.Ctx(), bots, points)
}
