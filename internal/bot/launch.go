package bot

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/MikailBag/simple-game/internal/dockerclient"
)

// RunnerModeEnv marks a process as a bot runner. The game-server binary
// checks it on startup and, when set, executes the embedded runner instead
// of hosting a match; the runner image sets it on its containers too.
const RunnerModeEnv = "GAME_RUNNER_MODE"

// Launch starts the bot program and wraps it in a protocol client. With an
// image the bot runs sandboxed in a container, otherwise directly on the
// host via re-exec of the current binary in runner mode.
func Launch(ctx context.Context, programPath, image string, runner dockerclient.BotRunner) (*Client, error) {
	if image != "" {
		return launchDocker(ctx, runner, image, programPath)
	}
	return launchHost(programPath)
}

type hostProcess struct {
	name   string
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser

	closeOnce sync.Once
	closeErr  error
}

func launchHost(programPath string) (*Client, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate own binary: %w", err)
	}

	cmd := exec.Command(exe, programPath)
	cmd.Env = append(os.Environ(), RunnerModeEnv+"=1")
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn bot %s: %w", programPath, err)
	}

	return New(&hostProcess{
		name:   programPath,
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
	}), nil
}

func (hp *hostProcess) Name() string {
	return hp.name
}

func (hp *hostProcess) Stdin() io.Writer {
	return hp.stdin
}

func (hp *hostProcess) Stdout() io.Reader {
	return hp.stdout
}

func (hp *hostProcess) Close() error {
	hp.closeOnce.Do(func() {
		hp.stdin.Close()
		if hp.cmd.Process != nil {
			_ = hp.cmd.Process.Kill()
		}
		hp.closeErr = hp.cmd.Wait()
	})
	return hp.closeErr
}

func launchDocker(ctx context.Context, runner dockerclient.BotRunner, image, programPath string) (*Client, error) {
	if runner == nil {
		return nil, fmt.Errorf("bot: container runner is required when an image is configured")
	}
	proc, err := runner.RunBot(ctx, image, programPath, []string{RunnerModeEnv + "=1"})
	if err != nil {
		return nil, fmt.Errorf("spawn bot %s in %s: %w", programPath, image, err)
	}
	return New(proc), nil
}
