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

package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/wikicopy/cmd/wikicopy/opts"
	"github.com/walteh/wikicopy/pkg/log"
	"github.com/walteh/wikicopy/pkg/operation"
	"github.com/walteh/wikicopy/pkg/remote"
)

// NewSweepCmd creates a new sweep command
func NewSweepCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete the children of every unprotected destination",
		Long: `Sweep runs only the deletion pass of run.
Every destination named in the copy operations table loses its child pages,
unless the homepages table marks it protected. Leftover pages are reported
as warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter := log.FromContext(cmd.Context())
			ctx := cmd.Context()

			plan, err := operation.ReadPlan(ctx, opts.Config.Data)
			if err != nil {
				return err
			}

			sweeper := operation.NewSweeper(remote.WithLogging(opts.Client), opts.Config.Sweep)
			report := sweeper.Sweep(ctx, operation.Destinations(plan.Rows), plan.Homepages)

			reporter.Sweep(report)
			if incomplete := report.Incomplete(); len(incomplete) > 0 {
				reporter.Warningf("deletion incomplete under %s", strings.Join(incomplete, ", "))
			} else {
				reporter.Successf("deleted %d pages", report.Deleted())
			}
			return nil
		},
	}

	return cmd
}
