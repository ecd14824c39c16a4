package dockerclient

import (
	"context"
	"fmt"
	"os"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/moby/term"
)

// Registry credentials come from the environment; when unset the push goes
// out with an empty auth header and the daemon's ambient credentials apply.
const (
	envRegistryUser     = "GAME_REGISTRY_USER"
	envRegistryPassword = "GAME_REGISTRY_PASSWORD"
	envRegistryServer   = "GAME_REGISTRY_SERVER"
)

type ImagePusher interface {
	// PushImage uploads the tagged image to its registry, streaming progress
	// to stderr.
	PushImage(ctx context.Context, ref string) error
}

func (dc *dockerClient) PushImage(ctx context.Context, ref string) error {
	auth, err := registryAuthFromEnv()
	if err != nil {
		return err
	}

	rc, err := dc.client.ImagePush(ctx, ref, image.PushOptions{
		RegistryAuth: auth,
	})
	if err != nil {
		return fmt.Errorf("image push: %w", err)
	}
	defer rc.Close()

	fd, isTerm := term.GetFdInfo(os.Stderr)
	if err := jsonmessage.DisplayJSONMessagesStream(rc, os.Stderr, fd, isTerm, nil); err != nil {
		return fmt.Errorf("image push: %w", err)
	}
	return nil
}

func registryAuthFromEnv() (string, error) {
	user := os.Getenv(envRegistryUser)
	password := os.Getenv(envRegistryPassword)
	if user == "" && password == "" {
		return "", nil
	}

	auth, err := registry.EncodeAuthConfig(registry.AuthConfig{
		Username:      user,
		Password:      password,
		ServerAddress: os.Getenv(envRegistryServer),
	})
	if err != nil {
		return "", fmt.Errorf("encode registry auth: %w", err)
	}
	return auth, nil
}
