// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/wikicopy/cmd/wikicopy/commands"
	"github.com/walteh/wikicopy/cmd/wikicopy/opts"
	"github.com/walteh/wikicopy/pkg/config"
	"github.com/walteh/wikicopy/pkg/log"
	"github.com/walteh/wikicopy/pkg/remote"
	"github.com/walteh/wikicopy/pkg/remote/confluence"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are the persistent flags shared by every command
type rootFlags struct {
	configFile string
	envFile    string
	debug      bool
}

// deps are the process-level collaborators, swapped out in tests
type deps struct {
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv config.LookupFunc
	newClient func(cfg *config.Config) remote.Client
}

func defaultDeps() deps {
	return deps{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		lookupEnv: os.LookupEnv,
		newClient: func(cfg *config.Config) remote.Client {
			return confluence.New(cfg.Credentials, cfg.Copy.RequestTimeout)
		},
	}
}

// newRootCmd builds the command tree
func newRootCmd(d deps) *cobra.Command {
	flags := &rootFlags{}
	root := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:           "wikicopy",
		Short:         "Bulk copy and clean page trees on Confluence",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), d.stderr, flags.debug)

			loaded, err := newRootOpts(ctx, flags, !cmd.Flags().Changed("config"), d)
			if err != nil {
				return err
			}
			*root = *loaded

			cmd.SetContext(log.NewContext(ctx, log.New(d.stdout)))
			return nil
		},
	}
	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewRunCmd(root),
		commands.NewCopyCmd(root),
		commands.NewSweepCmd(root),
		commands.NewHomepagesCmd(root),
		commands.NewRestoreCmd(root),
		newVersionCmd(flags, d),
	)

	return cmd
}

// newRootOpts loads the configuration and builds the shared dependencies.
// Configuration errors surface here, before any network activity.
// An explicitly passed settings file must exist; the default one is optional.
func newRootOpts(ctx context.Context, flags *rootFlags, settingsOptional bool, d deps) (*opts.RootOpts, error) {
	cfg, err := config.Load(ctx, flags.configFile, settingsOptional, flags.envFile, d.lookupEnv)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Stringer("credentials", cfg.Credentials).Msg("configuration loaded")

	return &opts.RootOpts{
		Config: cfg,
		Client: d.newClient(cfg),
	}, nil
}

const (
	defaultConfigFile = ".wikicopy.yaml"
	defaultEnvFile    = ".env"
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", defaultConfigFile, "settings file path (.yaml, .json or .hcl)")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", defaultEnvFile, "dotenv file holding USERNAME, API_TOKEN and BASE_URL")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags and attaches the logger to the context
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
