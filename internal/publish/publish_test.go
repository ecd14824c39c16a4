// Tests in this file drive the publish pipeline against a mocked docker
// surface, checking ordering, fail-fast behavior, and error classification.
package publish

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/MikailBag/simple-game/internal/publish/mocks"
	"go.uber.org/mock/gomock"
)

func serverUnit() Unit {
	return Unit{
		Name:       "server",
		ContextDir: ".",
		Dockerfile: "Dockerfile",
		Repository: "mikailbag/game-server",
		Version:    "v1.0.0",
	}
}

func TestPublishBuildsThenPushes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	docker := mocks.NewMockDocker(ctrl)

	gomock.InOrder(
		docker.EXPECT().
			BuildImage(gomock.Any(), ".", "Dockerfile", "mikailbag/game-server:v1.0.0").
			Return("mikailbag/game-server:v1.0.0", nil),
		docker.EXPECT().
			PushImage(gomock.Any(), "mikailbag/game-server:v1.0.0").
			Return(nil),
	)

	ref, err := NewPublisher(docker).Publish(context.Background(), serverUnit(), Options{})
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if ref.String() != "mikailbag/game-server:v1.0.0" {
		t.Fatalf("ref = %q", ref.String())
	}
}

func TestPublishBuildFailureSkipsPush(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	docker := mocks.NewMockDocker(ctrl)

	docker.EXPECT().
		BuildImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("COPY failed"))
	// no PushImage expectation: pushing after a failed build must not happen

	_, err := NewPublisher(docker).Publish(context.Background(), serverUnit(), Options{})

	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("error = %v, want *BuildError", err)
	}
	if buildErr.Unit != "server" {
		t.Fatalf("BuildError.Unit = %q", buildErr.Unit)
	}
}

func TestPublishSkipPush(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	docker := mocks.NewMockDocker(ctrl)

	docker.EXPECT().
		BuildImage(gomock.Any(), gomock.Any(), gomock.Any(), "mikailbag/game-server:v1.0.0").
		Return("mikailbag/game-server:v1.0.0", nil)

	_, err := NewPublisher(docker).Publish(context.Background(), serverUnit(), Options{SkipPush: true})
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
}

func TestPublishInvalidVersionTouchesNothing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	docker := mocks.NewMockDocker(ctrl)
	// no expectations: a bad version fails before any docker call

	unit := serverUnit()
	unit.Version = "latest"

	if _, err := NewPublisher(docker).Publish(context.Background(), unit, Options{}); err == nil {
		t.Fatal("expected error for non-semver version")
	}
}

func TestPublishOverwriteDeclined(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	docker := mocks.NewMockDocker(ctrl)

	docker.EXPECT().
		ImageExists(gomock.Any(), "mikailbag/game-server:v1.0.0").
		Return(true)

	opts := Options{
		ConfirmOverwrite: func(ref string) (bool, error) { return false, nil },
	}
	_, err := NewPublisher(docker).Publish(context.Background(), serverUnit(), opts)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("error = %v, want ErrAborted", err)
	}
}

func TestPushErrorClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pushErr error
		check   func(error) bool
	}{
		{
			name:    "auth",
			pushErr: errors.New("unauthorized: authentication required"),
			check: func(err error) bool {
				var e *AuthError
				return errors.As(err, &e)
			},
		},
		{
			name:    "conflict",
			pushErr: errors.New("tag is immutable and already exists"),
			check: func(err error) bool {
				var e *ConflictError
				return errors.As(err, &e)
			},
		},
		{
			name:    "network by message",
			pushErr: errors.New("dial tcp 10.0.0.1:443: connection refused"),
			check: func(err error) bool {
				var e *NetworkError
				return errors.As(err, &e)
			},
		},
		{
			name:    "network by type",
			pushErr: &net.DNSError{Err: "lookup failed", Name: "registry.example", IsTimeout: true},
			check: func(err error) bool {
				var e *NetworkError
				return errors.As(err, &e)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			docker := mocks.NewMockDocker(ctrl)

			gomock.InOrder(
				docker.EXPECT().
					BuildImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("mikailbag/game-server:v1.0.0", nil),
				docker.EXPECT().
					PushImage(gomock.Any(), gomock.Any()).
					Return(tc.pushErr),
			)

			_, err := NewPublisher(docker).Publish(context.Background(), serverUnit(), Options{})
			if !tc.check(err) {
				t.Fatalf("error %v not classified as expected", err)
			}
		})
	}
}

func TestDefaultUnitsReferences(t *testing.T) {
	t.Parallel()

	units := DefaultUnits(DefaultVersion)
	if len(units) != 2 {
		t.Fatalf("len(units) = %d, want 2", len(units))
	}

	wantRefs := []string{
		"mikailbag/game-server:v1.0.0",
		"mikailbag/game-runner:v1.0.0",
	}
	for i, unit := range units {
		ref, err := unit.Reference()
		if err != nil {
			t.Fatalf("unit %s: Reference returned error: %v", unit.Name, err)
		}
		if ref.String() != wantRefs[i] {
			t.Fatalf("unit %s ref = %q, want %q", unit.Name, ref.String(), wantRefs[i])
		}
	}
}

func TestDefaultUnitsVersionDriftImpossible(t *testing.T) {
	t.Parallel()

	for _, unit := range DefaultUnits("v2.0.0") {
		ref, err := unit.Reference()
		if err != nil {
			t.Fatalf("unit %s: Reference returned error: %v", unit.Name, err)
		}
		if ref.Tag() != "v2.0.0" {
			t.Fatalf("unit %s tag = %q, want v2.0.0", unit.Name, ref.Tag())
		}
	}
}

func TestDefaultUnitsAreIndependent(t *testing.T) {
	t.Parallel()

	units := DefaultUnits(DefaultVersion)
	if units[0].Repository == units[1].Repository {
		t.Fatal("units share a repository")
	}
	if units[0].Dockerfile == units[1].Dockerfile {
		t.Fatal("units share a dockerfile")
	}
}
