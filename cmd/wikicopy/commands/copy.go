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
	"github.com/walteh/wikicopy/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

// NewCopyCmd creates a new copy command
func NewCopyCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <source-id> <destination-id> [prefix]",
		Short: "Copy one page tree",
		Long: `Copy duplicates one page and its descendants under the destination page,
with attachments, permissions and labels. The optional prefix is applied to
every copied title. A title conflict at the destination is not a failure.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter := log.FromContext(cmd.Context())
			req := operation.CopyRequest{Source: args[0], Destination: args[1]}
			if len(args) == 3 {
				req.Prefix = args[2]
			}

			exec := operation.NewExecutor(remote.WithLogging(opts.Client), opts.Config.Copy)
			out := exec.Execute(cmd.Context(), req)
			reporter.Outcome(out)

			if out.Status != operation.StatusSuccess && out.Status != operation.StatusSkippedNonCritical {
				return errors.Errorf("copying %s: %s", req, out.Detail)
			}
			return nil
		},
	}

	return cmd
}
