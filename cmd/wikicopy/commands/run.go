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
	"github.com/spf13/cobra"
	"github.com/walteh/wikicopy/cmd/wikicopy/opts"
	"github.com/walteh/wikicopy/pkg/log"
	"github.com/walteh/wikicopy/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	var noSweep bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every pending copy operation",
		Long: `Run executes the copy operations table.
It will:
1. Delete the children of every unprotected destination homepage
2. Check that the destinations are empty
3. Deduplicate the copy operations
4. Copy each source tree under its destination
5. Print a summary and fail if any copy failed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter := log.FromContext(cmd.Context())
			ctx := cmd.Context()

			plan, err := operation.ReadPlan(ctx, opts.Config.Data)
			if err != nil {
				return err
			}

			orch, err := operation.New(operation.Options{
				Client:    opts.Client,
				Config:    opts.Config,
				SkipSweep: noSweep,
			})
			if err != nil {
				return errors.Errorf("creating orchestrator: %w", err)
			}

			reporter.Header("copying " + opts.Config.Data.CopyOperations)

			res := orch.Run(ctx, plan)

			if res.Sweep != nil {
				reporter.Sweep(*res.Sweep)
			}
			reporter.Outcomes(res.Outcomes)
			if err := reporter.Summary(res.Summary); err != nil {
				return errors.Errorf("rendering summary: %w", err)
			}

			if !res.OK() {
				return errors.Errorf("%d of %d copies failed", res.Summary.Failed, res.Summary.Total())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSweep, "no-sweep", false, "skip deleting existing children of the destinations")

	return cmd
}
