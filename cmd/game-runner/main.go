package main

import (
	"os"

	runnercmds "github.com/MikailBag/simple-game/internal/apps/runner/cmds"
	"github.com/MikailBag/simple-game/internal/logs"
	"github.com/MikailBag/simple-game/internal/runtime"
)

func main() {
	// stdout carries the game protocol between the bot and the server.
	logs.UseStderr()
	logs.SetComponent(detectComponent("runner"))

	var execErr error

	rt := runtime.New()
	defer rt.Finalize("game-runner", "Type 'game-runner help' to get help.", &execErr)

	execErr = runnercmds.Execute(rt)
}

func detectComponent(base string) string {
	if len(os.Args) > 1 && len(os.Args[1]) > 0 && os.Args[1][0] != '-' {
		return base + ":" + os.Args[1]
	}
	return base
}
