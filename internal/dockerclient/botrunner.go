package dockerclient

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/pkg/stdcopy"
)

const (
	botMountDir = "/src"
	shortLen    = 6 // length of the hash-like container name suffix
)

// BotProcess is a bot running inside a container, attached over stdio.
type BotProcess interface {
	Name() string
	Stdin() io.Writer
	Stdout() io.Reader
	Close() error
}

type BotRunner interface {
	// RunBot starts a container from image, bind-mounts scriptPath read-only
	// under /src, and hands the script path to the image entrypoint. The
	// returned process is attached before start so no output is lost.
	RunBot(ctx context.Context, image, scriptPath string, env []string) (BotProcess, error)
}

type botContainer struct {
	dc   *dockerClient
	id   string
	name string

	conn   io.Writer
	stdout io.Reader

	closeConn func()
	closeOnce sync.Once
	closeErr  error
}

func (dc *dockerClient) RunBot(ctx context.Context, image, scriptPath string, env []string) (BotProcess, error) {
	abs, err := filepath.Abs(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("resolve full path: %w", err)
	}
	fileName := filepath.Base(abs)
	if fileName == "." || fileName == string(filepath.Separator) {
		return nil, fmt.Errorf("path %q does not contain a filename", scriptPath)
	}
	innerPath := botMountDir + "/" + fileName

	cfg := &container.Config{
		Image:        image,
		Cmd:          []string{innerPath},
		Env:          env,
		OpenStdin:    true,
		StdinOnce:    true,
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
	}
	hostCfg := &container.HostConfig{
		Mounts: []mount.Mount{{
			Type:     mount.TypeBind,
			Source:   abs,
			Target:   innerPath,
			ReadOnly: true,
		}},
	}

	created, err := dc.client.ContainerCreate(ctx, cfg, hostCfg, nil, nil, resolveContainerName(fileName))
	if err != nil {
		return nil, fmt.Errorf("container create: %w", err)
	}
	id := created.ID

	// Attach BEFORE start (like docker run) so the bot's first lines are
	// never dropped.
	attach, err := dc.client.ContainerAttach(ctx, id, container.AttachOptions{
		Stream: true,
		Stdin:  true,
		Stdout: true,
		Stderr: true,
	})
	if err != nil {
		dc.removeContainer(id)
		return nil, fmt.Errorf("container attach: %w", err)
	}

	if err := dc.client.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		attach.Close()
		dc.removeContainer(id)
		return nil, fmt.Errorf("container start: %w", err)
	}

	// No TTY: the attach stream is multiplexed. Demux container stdout into
	// a pipe and let the bot's stderr pass through to ours.
	pr, pw := io.Pipe()
	go func() {
		_, err := stdcopy.StdCopy(pw, os.Stderr, attach.Reader)
		pw.CloseWithError(err)
	}()

	return &botContainer{
		dc:        dc,
		id:        id,
		name:      scriptPath,
		conn:      attach.Conn,
		stdout:    pr,
		closeConn: attach.Close,
	}, nil
}

func (bc *botContainer) Name() string {
	return bc.name
}

func (bc *botContainer) Stdin() io.Writer {
	return bc.conn
}

func (bc *botContainer) Stdout() io.Reader {
	return bc.stdout
}

func (bc *botContainer) Close() error {
	bc.closeOnce.Do(func() {
		bc.closeConn()
		bc.closeErr = bc.dc.removeContainer(bc.id)
	})
	return bc.closeErr
}

func (dc *dockerClient) removeContainer(id string) error {
	return dc.client.ContainerRemove(context.Background(), id, container.RemoveOptions{
		Force: true,
	})
}

var nameSeq atomic.Uint64

// resolveContainerName builds "game-bot-<bot>-<short>" where the suffix
// keeps two bots with the same filename from colliding.
func resolveContainerName(botName string) string {
	seed := fmt.Sprintf("%s|%s|%s|%d",
		botName,
		time.Now().UTC().Format(time.RFC3339Nano),
		procTag(),
		nameSeq.Add(1),
	)
	return "game-bot-" + sanitizeNamePart(botName) + "-" + shortHash(seed, shortLen)
}

// sanitizeNamePart keeps only [A-Za-z0-9_.-], lowercased, trimming leading
// '.'/'-' so the result is a valid docker name fragment.
func sanitizeNamePart(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		}
	}
	out := strings.TrimLeft(b.String(), ".-")
	if out == "" {
		return "bot"
	}
	return out
}

func shortHash(s string, n int) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])[:n]
}

func procTag() string {
	pid := os.Getpid()
	return hex.EncodeToString([]byte{
		byte(pid >> 24), byte(pid >> 16), byte(pid >> 8), byte(pid),
	})
}
