package main

import (
	"os"
	"strings"

	publishcmds "github.com/MikailBag/simple-game/internal/apps/publish/cmds"
	"github.com/MikailBag/simple-game/internal/logs"
	"github.com/MikailBag/simple-game/internal/runtime"
)

func main() {
	logs.SetComponent(detectComponent("publish"))

	var execErr error

	rt := runtime.New()
	defer rt.Finalize("game-publish", "Type 'game-publish help' to get help.", &execErr)

	execErr = publishcmds.Execute(rt)
}

func detectComponent(base string) string {
	if len(os.Args) > 1 && len(os.Args[1]) > 0 && os.Args[1][0] != '-' {
		return base + ":" + strings.Join(os.Args[1:], " ")
	}
	return base
}
