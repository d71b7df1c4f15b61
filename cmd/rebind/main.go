// Package main is the entry point for the rebind tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/rebind/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errCheckFailed marks a check that printed its own report.
var errCheckFailed = errors.New("profile check failed")

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// Flags shared by every subcommand
var (
	flagProfile  string
	flagLogLevel string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rebind",
		Short: "Inspect and try out input binding profiles",
		Long: `rebind maps keyboard, mouse and controller buttons to named actions.

Bindings are read from a TOML or YAML profile and may be overridden with
REBIND_* environment variables (REBIND_VIEWPORT=1280x720,
REBIND_INVERT_Y_MOTION=true, REBIND_LOG_LEVEL=debug, ...).

Examples:
  rebind run                     # Live view using the default profile
  rebind run -p game.toml -w     # Reload the profile when it changes
  rebind show -p game.yaml       # Print the rebind view
  rebind check -p game.toml      # Validate and report conflicts`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&flagProfile, "profile", "p", config.DefaultPath(), "Binding profile (.toml, .yaml, .yml)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug/info/warn/error), overrides the profile")

	root.AddCommand(newRunCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newCheckCmd())
	return root
}

// profilePath returns the profile to load. An unset --profile whose
// default file does not exist means the built-in default profile.
func profilePath(cmd *cobra.Command) string {
	if cmd.Flags().Changed("profile") {
		return flagProfile
	}
	if _, err := os.Stat(flagProfile); err != nil {
		return ""
	}
	return flagProfile
}

// loadProfile loads the selected profile with environment overrides.
func loadProfile(cmd *cobra.Command) (*config.Profile, error) {
	path := profilePath(cmd)
	p, err := config.LoadWithEnv(path)
	if err != nil {
		if path == "" {
			return nil, err
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}
