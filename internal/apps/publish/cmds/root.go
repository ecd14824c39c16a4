// Package publishcmds holds the cobra command tree of the game-publish binary.
package publishcmds

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikailBag/simple-game/internal/dockerclient"
	"github.com/MikailBag/simple-game/internal/logs"
	"github.com/MikailBag/simple-game/internal/publish"
	"github.com/MikailBag/simple-game/internal/runtime"
	"github.com/MikailBag/simple-game/internal/version"
	"github.com/spf13/cobra"
)

type publishOptions struct {
	Version  string
	SkipPush bool
	Yes      bool
}

var verbosity int

func Execute(rt *runtime.Runtime) error {
	opts := &publishOptions{}

	rootCmd := &cobra.Command{
		Use:   "game-publish",
		Short: "Build and push the game's container images",
		Long: `game-publish builds the game-server and game-runner images and pushes
them to the registry. Each unit is build-then-push with no retries: a
failed build never pushes, and a failed unit exits non-zero.`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logs.SetDebugVerbosity(verbosity)
			return nil
		},
		// we will handle that
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pflags := rootCmd.PersistentFlags()
	pflags.CountVarP(&verbosity, "verbose", "v", "increase verbosity level")
	pflags.StringVar(&opts.Version, "tag", publish.DefaultVersion, "Version tag for both images")
	pflags.BoolVar(&opts.SkipPush, "skip-push", false, "Build only, do not push")
	pflags.BoolVarP(&opts.Yes, "yes", "y", false, "Overwrite existing local tags without asking")

	rootCmd.AddCommand(newUnitCmd(opts, "server", "Build and push the game-server image"))
	rootCmd.AddCommand(newUnitCmd(opts, "runner", "Build and push the game-runner image"))
	rootCmd.AddCommand(newAllCmd(opts))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version of game-publish",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s\n", version.Get())
		},
	})

	return rootCmd.ExecuteContext(rt.Ctx())
}

func newUnitCmd(opts *publishOptions, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := unitByName(opts.Version, name)
			if err != nil {
				return err
			}
			return publishUnits(cmd.Context(), opts, unit)
		},
	}
}

func newAllCmd(opts *publishOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Build and push both images",
		Long: `Publish the server and runner units one after the other. The units are
independent: a failed server publish does not stop the runner publish,
but any failure makes the whole command exit non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return publishUnits(cmd.Context(), opts, publish.DefaultUnits(opts.Version)...)
		},
	}
}

func unitByName(versionTag, name string) (publish.Unit, error) {
	for _, unit := range publish.DefaultUnits(versionTag) {
		if unit.Name == name {
			return unit, nil
		}
	}
	return publish.Unit{}, fmt.Errorf("unknown publish unit %q", name)
}

func publishUnits(ctx context.Context, opts *publishOptions, units ...publish.Unit) error {
	docker, err := dockerclient.New()
	if err != nil {
		return err
	}
	publisher := publish.NewPublisher(docker)

	pubOpts := publish.Options{
		SkipPush: opts.SkipPush,
	}
	if !opts.Yes {
		pubOpts.ConfirmOverwrite = func(ref string) (bool, error) {
			return logs.Confirm(fmt.Sprintf("image %s already exists locally, overwrite?", ref), false)
		}
	}

	var errs []error
	for _, unit := range units {
		logs.Banner("publish " + unit.Name)
		if _, err := publisher.Publish(ctx, unit, pubOpts); err != nil {
			logs.Errorf("unit %s failed: %v", unit.Name, err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
