package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	servercmds "github.com/MikailBag/simple-game/internal/apps/server/cmds"
	"github.com/MikailBag/simple-game/internal/bot"
	"github.com/MikailBag/simple-game/internal/logs"
	"github.com/MikailBag/simple-game/internal/runner"
	"github.com/MikailBag/simple-game/internal/runtime"
)

func main() {
	// Host-mode bots are this same binary re-executed with the runner
	// marker; in that case stdout belongs to the game protocol.
	if os.Getenv(bot.RunnerModeEnv) != "" {
		runnerMain()
		return
	}

	logs.SetComponent(detectComponent("server"))

	var execErr error

	rt := runtime.New()
	defer rt.Finalize("game-server", "Type 'game-server help' to get help.", &execErr)

	execErr = servercmds.Execute(rt)
}

func runnerMain() {
	logs.UseStderr()
	logs.SetComponent("runner")

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "path to file executed not given")
		os.Exit(1)
	}
	if err := runner.Exec(context.Background(), os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func detectComponent(base string) string {
	if len(os.Args) > 1 && len(os.Args[1]) > 0 && os.Args[1][0] != '-' {
		return base + ":" + strings.Join(os.Args[1:], " ")
	}
	return base
}
