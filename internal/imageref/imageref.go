// Package imageref models container image references of the form
// <namespace>/<name>:<tag> and validates them against registry naming rules.
package imageref

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/distribution/reference"
)

// Reference is a validated repository + tag pair. The zero value is not
// valid; build one through Compose.
type Reference struct {
	repository string
	tag        string
}

// Compose validates repository (e.g. "mikailbag/game-server") and tag
// (e.g. "v1.0.0") and returns the combined reference.
func Compose(repository, tag string) (Reference, error) {
	if repository == "" {
		return Reference{}, fmt.Errorf("imageref: repository is required")
	}
	if tag == "" {
		return Reference{}, fmt.Errorf("imageref: tag is required")
	}

	named, err := reference.ParseNormalizedNamed(repository)
	if err != nil {
		return Reference{}, fmt.Errorf("imageref: invalid repository %q: %w", repository, err)
	}
	if !reference.IsNameOnly(named) {
		return Reference{}, fmt.Errorf("imageref: repository %q must not carry a tag or digest", repository)
	}

	if _, err := reference.WithTag(named, tag); err != nil {
		return Reference{}, fmt.Errorf("imageref: invalid tag %q: %w", tag, err)
	}

	return Reference{repository: repository, tag: tag}, nil
}

// ComposeVersioned is Compose with the additional requirement that the tag
// parses as a semantic version (a leading "v" is accepted).
func ComposeVersioned(repository, version string) (Reference, error) {
	if _, err := semver.NewVersion(version); err != nil {
		return Reference{}, fmt.Errorf("imageref: version %q is not semver-like: %w", version, err)
	}
	return Compose(repository, version)
}

func (r Reference) Repository() string {
	return r.repository
}

func (r Reference) Tag() string {
	return r.tag
}

// String renders the full reference, e.g. "mikailbag/game-server:v1.0.0".
func (r Reference) String() string {
	return r.repository + ":" + r.tag
}
