// Tests in this file drive the protocol state machine against an in-memory
// bot on the other end of two pipes.
package bot

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/MikailBag/simple-game/internal/game"
)

// pipeProcess is a fake Process backed by in-memory pipes. The test plays
// the bot side through botIn/botOut. Close tears both pipes down like a
// killed child process would.
type pipeProcess struct {
	stdin  *io.PipeWriter
	stdout *io.PipeReader
}

func (p *pipeProcess) Name() string      { return "fake-bot" }
func (p *pipeProcess) Stdin() io.Writer  { return p.stdin }
func (p *pipeProcess) Stdout() io.Reader { return p.stdout }

func (p *pipeProcess) Close() error {
	p.stdin.Close()
	return p.stdout.Close()
}

func newPipeProcess() (proc *pipeProcess, botIn *bufio.Reader, botOut io.WriteCloser) {
	serverToBot, serverIn := io.Pipe()
	botStdout, botStdin := io.Pipe()
	proc = &pipeProcess{stdin: serverIn, stdout: botStdout}
	return proc, bufio.NewReader(serverToBot), botStdin
}

func TestClientFullRound(t *testing.T) {
	t.Parallel()

	proc, botIn, botOut := newPipeProcess()
	c := New(proc)

	botErr := make(chan error, 1)
	go func() {
		botErr <- func() error {
			if _, err := io.WriteString(botOut, "ready\n"); err != nil {
				return err
			}
			if line, err := botIn.ReadString('\n'); err != nil || line != "game\n" {
				return io.ErrUnexpectedEOF
			}
			if _, err := io.WriteString(botOut, "7\n"); err != nil {
				return err
			}
			if line, err := botIn.ReadString('\n'); err != nil || line != "7 3\n" {
				return io.ErrUnexpectedEOF
			}
			if line, err := botIn.ReadString('\n'); err != nil || line != "end\n" {
				return io.ErrUnexpectedEOF
			}
			return nil
		}()
	}()

	ctx := context.Background()
	c.Ready(ctx)
	if c.Failed() {
		t.Fatal("client failed during readiness")
	}

	pick := c.Pick(ctx)
	if pick != 7 {
		t.Fatalf("Pick = %d, want 7", pick)
	}

	c.Reveal(ctx, []uint32{7, 3})
	c.End(ctx)
	if c.Failed() {
		t.Fatal("client failed during round")
	}

	if err := <-botErr; err != nil {
		t.Fatalf("bot side error: %v", err)
	}
}

func TestClientRejectsBadReadiness(t *testing.T) {
	t.Parallel()

	proc, _, botOut := newPipeProcess()
	c := New(proc)

	go io.WriteString(botOut, "hello\n")

	c.Ready(context.Background())
	if !c.Failed() {
		t.Fatal("client accepted a non-ready greeting")
	}
}

func TestClientRejectsNonNumericPick(t *testing.T) {
	t.Parallel()

	proc, botIn, botOut := newPipeProcess()
	c := New(proc)

	go func() {
		io.WriteString(botOut, "ready\n")
		botIn.ReadString('\n')
		io.WriteString(botOut, "banana\n")
	}()

	ctx := context.Background()
	c.Ready(ctx)
	if pick := c.Pick(ctx); pick != game.ErrPick {
		t.Fatalf("Pick = %d, want ErrPick", pick)
	}
	if !c.Failed() {
		t.Fatal("client still live after non-numeric pick")
	}
}

func TestClientStepDeadline(t *testing.T) {
	t.Parallel()

	proc, botIn, botOut := newPipeProcess()
	c := New(proc)

	go func() {
		io.WriteString(botOut, "ready\n")
		botIn.ReadString('\n')
		// never answer the pick
	}()

	ctx := context.Background()
	c.Ready(ctx)
	if pick := c.Pick(ctx); pick != game.ErrPick {
		t.Fatalf("Pick = %d, want ErrPick on deadline", pick)
	}
	if !c.Failed() {
		t.Fatal("client still live after deadline violation")
	}
}

func TestFailedClientReceivesNoFurtherSends(t *testing.T) {
	t.Parallel()

	proc, botIn, botOut := newPipeProcess()
	c := New(proc)

	go io.WriteString(botOut, "nope\n")

	ctx := context.Background()
	c.Ready(ctx)
	if !c.Failed() {
		t.Fatal("expected failed client")
	}

	// None of these may write anything to the bot.
	c.Pick(ctx)
	c.Reveal(ctx, []uint32{1})
	c.End(ctx)

	done := make(chan struct{})
	go func() {
		botIn.ReadString('\n')
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("failed client still wrote to the bot")
	default:
	}
}

func TestCloseReapsReaderAfterDeadline(t *testing.T) {
	t.Parallel()

	proc, botIn, botOut := newPipeProcess()
	c := New(proc)

	release := make(chan struct{})
	go func() {
		io.WriteString(botOut, "ready\n")
		botIn.ReadString('\n')
		// Miss the step deadline, then flood lines nobody will consume.
		<-release
		io.WriteString(botOut, "4\n5\n6\n")
	}()

	ctx := context.Background()
	c.Ready(ctx)
	if pick := c.Pick(ctx); pick != game.ErrPick {
		t.Fatalf("Pick = %d, want ErrPick on deadline", pick)
	}
	close(release)

	// Close must return even with the reader mid-send; a hang here fails
	// the test by timeout.
	if err := c.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if !c.Failed() {
		t.Fatal("client not marked failed after deadline violation")
	}
}

func TestClientEOFDuringReadiness(t *testing.T) {
	t.Parallel()

	proc, _, botOut := newPipeProcess()
	c := New(proc)

	botOut.Close()

	c.Ready(context.Background())
	if !c.Failed() {
		t.Fatal("client survived EOF before readiness")
	}
}
