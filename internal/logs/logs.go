// Package logs is the process-wide logging facade. All binaries log through
// it so verbosity and styling are configured in exactly one place.
package logs

import (
	"os"
	"sync"

	"github.com/MikailBag/simple-game/internal/ui"
	"github.com/moby/term"
)

var (
	initOnce sync.Once
	logger   *ui.Logger
)

func Init() {
	initOnce.Do(func() {
		_, isTerm := term.GetFdInfo(os.Stdout)
		opts := ui.Options{
			Out:      os.Stdout,
			LogLevel: ui.LogLevelWarn,
			Plain:    !isTerm,
		}
		logger = ui.New(opts)
	})
}

func L() *ui.Logger {
	Init()
	return logger
}

func SetComponent(component string) {
	L().SetComponent(component)
}

func SetDebugVerbosity(cnt int) {
	switch {
	case cnt <= 0:
		L().SetLogLevel(ui.LogLevelWarn)
	default:
		L().SetLogLevel(ui.LogLevelDebug)
	}
}

// UseStderr routes all logs to stderr. Runner-mode processes own stdout for
// the game protocol, so anything else on it would corrupt the match.
func UseStderr() {
	L().SetOut(os.Stderr)
}

func Banner(title string) {
	L().Banner(title)
}

func Infof(format string, args ...any) {
	L().Info(format, args...)
}

func Debugf(format string, args ...any) {
	L().Debug(format, args...)
}

func Warnf(format string, args ...any) {
	L().Warn(format, args...)
}

func Errorf(format string, args ...any) {
	L().Error(format, args...)
}

func Confirm(question string, def bool) (bool, error) {
	return L().Confirm(question, def)
}
