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
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/wikicopy/pkg/config"
	"gitlab.com/tozd/go/errors"
)

const unset = "(unset)"

// 🚀 buildStamp identifies the running binary
type buildStamp struct {
	version  string
	revision string
	modified bool
}

func readBuildStamp() buildStamp {
	stamp := buildStamp{version: "dev"}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return stamp
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		stamp.version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			stamp.revision = s.Value
			if len(stamp.revision) > 7 {
				stamp.revision = stamp.revision[:7]
			}
		case "vcs.modified":
			stamp.modified = s.Value == "true"
		}
	}
	return stamp
}

func (b buildStamp) String() string {
	var extra []string
	if b.revision != "" {
		extra = append(extra, b.revision)
	}
	if b.modified {
		extra = append(extra, "modified")
	}

	s := "wikicopy " + b.version
	if len(extra) > 0 {
		s += " (" + strings.Join(extra, ", ") + ")"
	}
	return s + " " + runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH
}

// newVersionCmd prints the build and the site the next run would target.
// Credentials are read but never required, so it works on an unconfigured machine.
func newVersionCmd(flags *rootFlags, d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build and the configured target",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), d.stderr, flags.debug)

			creds, err := config.LoadCredentials(ctx, flags.envFile, d.lookupEnv)
			if err != nil {
				return errors.Errorf("reading credentials: %w", err)
			}

			settings := flags.configFile
			if _, err := os.Stat(settings); err != nil {
				settings += " (not found, using defaults)"
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "🚀 %s\n", readBuildStamp())
			fmt.Fprintf(w, "   settings  %s\n", settings)
			fmt.Fprintf(w, "   site      %s\n", orUnset(creds.BaseURL))
			fmt.Fprintf(w, "   user      %s\n", orUnset(creds.Username))
			return nil
		},
	}
}

func orUnset(v string) string {
	if v == "" {
		return unset
	}
	return v
}
