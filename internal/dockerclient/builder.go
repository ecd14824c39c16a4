package dockerclient

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docker/docker/api/types/build"
	sdkimage "github.com/docker/go-sdk/image"
)

type ImageBuilder interface {
	// BuildImage builds contextDir with the named dockerfile (relative to
	// contextDir) and tags the result. Returns the applied tag.
	BuildImage(ctx context.Context, contextDir, dockerfile, tag string) (string, error)
}

func (dc *dockerClient) BuildImage(ctx context.Context, contextDir, dockerfile, tag string) (string, error) {
	if dockerfile == "" {
		dockerfile = "Dockerfile"
	}
	if _, err := os.Stat(filepath.Join(contextDir, dockerfile)); err != nil {
		return "", fmt.Errorf("dockerfile %s: %w", dockerfile, err)
	}

	buildCtx, err := tarBuildContext(contextDir)
	if err != nil {
		return "", err
	}

	buildTag, err := sdkimage.Build(
		ctx,
		buildCtx,
		tag,
		sdkimage.WithBuildClient(dc.client),
		sdkimage.WithBuildOptions(build.ImageBuildOptions{
			Dockerfile: dockerfile,
			Remove:     true, // remove intermediate containers
		}),
	)
	if err != nil {
		return "", fmt.Errorf("image build: %w", err)
	}

	return buildTag, nil
}
