// Package dockerclient wraps the docker go-sdk client with the operations
// the game needs: building and pushing the two images and running bots in
// sandbox containers.
package dockerclient

import (
	"context"
	"log/slog"
	"os"

	"github.com/docker/go-sdk/client"
)

type dockerClient struct {
	client client.SDKClient
}

type DockerClient interface {
	ImageBuilder
	ImagePusher
	BotRunner
	ImageExists(context.Context, string) bool
}

func New() (DockerClient, error) {
	c, err := client.New(
		context.Background(),
		client.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))),
	)
	if err != nil {
		return nil, err
	}

	return &dockerClient{
		client: c,
	}, nil
}

func (dc *dockerClient) ImageExists(ctx context.Context, imageRef string) bool {
	_, err := dc.client.ImageInspect(ctx, imageRef)

	return err == nil
}
