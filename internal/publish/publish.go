// Package publish builds and pushes the game's container images. Each unit
// is a strict two-step pipeline: build the tagged image, then push it.
// Push never runs when the build fails, and neither step is retried.
package publish

import (
	"context"

	"github.com/MikailBag/simple-game/internal/imageref"
	"github.com/MikailBag/simple-game/internal/logs"
)

//go:generate mockgen -destination=mocks/docker.go -package=mocks . Docker

// Docker is the slice of the docker client the publisher needs.
type Docker interface {
	BuildImage(ctx context.Context, contextDir, dockerfile, tag string) (string, error)
	PushImage(ctx context.Context, ref string) error
	ImageExists(ctx context.Context, ref string) bool
}

// Unit is one image to publish. The two stock units (server and runner)
// live in DefaultUnits.
type Unit struct {
	// Name identifies the unit in errors and logs ("server", "runner").
	Name string

	// ContextDir is the docker build context directory.
	ContextDir string

	// Dockerfile is the dockerfile path relative to ContextDir.
	// Empty means "Dockerfile".
	Dockerfile string

	// Repository is the registry repository, e.g. "mikailbag/game-server".
	Repository string

	// Version is the tag to build and push, e.g. "v1.0.0".
	Version string
}

// Reference composes and validates the unit's image reference. Both the
// build and the push use this one value, so the two can never drift apart.
func (u Unit) Reference() (imageref.Reference, error) {
	return imageref.ComposeVersioned(u.Repository, u.Version)
}

// Options tweak a single publish run.
type Options struct {
	// SkipPush stops after the build step.
	SkipPush bool

	// ConfirmOverwrite, when set, is asked before building over an image
	// tag that already exists locally. Returning false aborts the unit
	// with ErrAborted.
	ConfirmOverwrite func(ref string) (bool, error)
}

type Publisher struct {
	docker Docker
}

func NewPublisher(docker Docker) *Publisher {
	return &Publisher{docker: docker}
}

// Publish runs one unit to completion: validate, build, push. The first
// failing step aborts the unit; there is no rollback of the local image
// cache or the registry.
func (p *Publisher) Publish(ctx context.Context, unit Unit, opts Options) (imageref.Reference, error) {
	ref, err := unit.Reference()
	if err != nil {
		return imageref.Reference{}, err
	}

	if opts.ConfirmOverwrite != nil && p.docker.ImageExists(ctx, ref.String()) {
		ok, err := opts.ConfirmOverwrite(ref.String())
		if err != nil {
			return ref, err
		}
		if !ok {
			return ref, ErrAborted
		}
	}

	logs.Infof("building %s", ref)
	if _, err := p.docker.BuildImage(ctx, unit.ContextDir, unit.Dockerfile, ref.String()); err != nil {
		return ref, &BuildError{Unit: unit.Name, Ref: ref.String(), Err: err}
	}

	if opts.SkipPush {
		logs.Infof("built %s, push skipped", ref)
		return ref, nil
	}

	logs.Infof("pushing %s", ref)
	if err := p.docker.PushImage(ctx, ref.String()); err != nil {
		return ref, classifyPushError(unit.Name, ref.String(), err)
	}

	logs.Infof("published %s", ref)
	return ref, nil
}

// DefaultVersion tags both stock units; the two images always ship
// the same version.
const DefaultVersion = "v1.0.0"

// DefaultUnits returns the server and runner units for the given version.
func DefaultUnits(version string) []Unit {
	return []Unit{
		{
			Name:       "server",
			ContextDir: ".",
			Dockerfile: "Dockerfile",
			Repository: "mikailbag/game-server",
			Version:    version,
		},
		{
			Name:       "runner",
			ContextDir: ".",
			Dockerfile: "Dockerfile.runner",
			Repository: "mikailbag/game-runner",
			Version:    version,
		},
	}
}
