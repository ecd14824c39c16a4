// Package bot drives one bot program over the line protocol: the bot says
// "ready", then for every round receives "game", answers with a number,
// receives everyone's numbers, and finally receives "end".
package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MikailBag/simple-game/internal/game"
	"github.com/MikailBag/simple-game/internal/logs"
)

type state int

const (
	stateInit state = iota
	stateError
	stateWait
	stateStep
	statePostStep
	stateEnd
)

const (
	initTimeout  = 10 * time.Second
	stepTimeout  = 1 * time.Second
	writeTimeout = 100 * time.Millisecond
)

// Process is a launched bot program. Stdout must stay readable until Close.
type Process interface {
	Name() string
	Stdin() io.Writer
	Stdout() io.Reader
	// Close tears the process down. Safe to call more than once.
	Close() error
}

type readResult struct {
	line string
	err  error
}

// Client wraps a Process with the protocol state machine. It is fail-soft:
// after any protocol violation or i/o failure the client parks in an error
// state, reports game.ErrPick, and ignores further sends.
type Client struct {
	proc  Process
	lines chan readResult

	state state
	pick  uint32
}

// New starts driving proc. A reader goroutine owns proc's stdout for the
// client's whole lifetime.
func New(proc Process) *Client {
	c := &Client{
		proc:  proc,
		lines: make(chan readResult),
		state: stateInit,
		pick:  game.ErrPick,
	}

	go func() {
		scanner := bufio.NewScanner(proc.Stdout())
		for scanner.Scan() {
			c.lines <- readResult{line: strings.TrimSpace(scanner.Text())}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		c.lines <- readResult{err: err}
		close(c.lines)
	}()

	return c
}

func (c *Client) Name() string {
	return c.proc.Name()
}

// Close kills the underlying process and drains the reader goroutine to
// completion, so a client that failed mid-match does not leak its reader.
// The match loop defers it per client.
func (c *Client) Close() error {
	err := c.proc.Close()
	for range c.lines {
	}
	return err
}

func (c *Client) Failed() bool {
	return c.state == stateError
}

func (c *Client) fail() {
	c.state = stateError
	c.pick = game.ErrPick
}

// Ready implements game.Player. It waits for the bot's "ready" line.
func (c *Client) Ready(ctx context.Context) {
	if c.state != stateInit {
		return
	}
	line, err := c.readLine(ctx, initTimeout)
	if err != nil {
		logs.Warnf("client %s: failed to read readiness line: %v", c.Name(), err)
		c.fail()
		return
	}
	if line != "ready" {
		logs.Warnf("client %s: unknown message when waiting for `ready`: %q", c.Name(), line)
		c.fail()
		return
	}
	c.state = stateWait
}

// Pick implements game.Player: sends "game" and reads this round's number.
func (c *Client) Pick(ctx context.Context) uint32 {
	if c.state != stateWait {
		return game.ErrPick
	}

	if err := c.writeLine(ctx, "game"); err != nil {
		logs.Warnf("client %s: failed to send game start: %v", c.Name(), err)
		c.fail()
		return game.ErrPick
	}
	c.state = stateStep

	line, err := c.readLine(ctx, stepTimeout)
	if err != nil {
		logs.Warnf("client %s: failed to read pick: %v", c.Name(), err)
		c.fail()
		return game.ErrPick
	}
	pick, err := strconv.ParseUint(line, 10, 32)
	if err != nil {
		logs.Warnf("client %s: got %q which is not a number: %v", c.Name(), line, err)
		c.fail()
		return game.ErrPick
	}

	c.pick = uint32(pick)
	c.state = statePostStep
	return c.pick
}

// Reveal implements game.Player: broadcasts all picks space-separated.
func (c *Client) Reveal(ctx context.Context, picks []uint32) {
	if c.state != statePostStep {
		return
	}

	parts := make([]string, len(picks))
	for i, p := range picks {
		parts[i] = strconv.FormatUint(uint64(p), 10)
	}
	if err := c.writeLine(ctx, strings.Join(parts, " ")); err != nil {
		logs.Warnf("client %s: failed to send round results: %v", c.Name(), err)
		c.fail()
		return
	}
	c.state = stateWait
}

// End implements game.Player.
func (c *Client) End(ctx context.Context) {
	if c.state == stateError || c.state == stateEnd {
		return
	}
	if err := c.writeLine(ctx, "end"); err != nil {
		logs.Warnf("client %s: failed to send end: %v", c.Name(), err)
		c.fail()
		return
	}
	c.state = stateEnd
}

func (c *Client) readLine(ctx context.Context, timeout time.Duration) (string, error) {
	select {
	case res, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", fmt.Errorf("read: %w", res.err)
		}
		return res.line, nil
	case <-time.After(timeout):
		return "", fmt.Errorf("deadline violated after %v", timeout)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// writeLine sends one protocol line. The write runs in its own goroutine so
// a wedged bot cannot stall the whole match; the deadline is short because a
// cooperating bot always keeps its stdin drained.
func (c *Client) writeLine(ctx context.Context, line string) error {
	done := make(chan error, 1)
	go func() {
		_, err := io.WriteString(c.proc.Stdin(), line+"\n")
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	case <-time.After(writeTimeout):
		return fmt.Errorf("write deadline violated after %v", writeTimeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}
