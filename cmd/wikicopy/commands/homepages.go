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
	"github.com/walteh/wikicopy/pkg/table"
	"gitlab.com/tozd/go/errors"
)

// NewHomepagesCmd creates a new homepages command
func NewHomepagesCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "homepages",
		Short: "List the registered homepages with their titles and children",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter := log.FromContext(cmd.Context())
			homepages, err := table.ReadHomepages(opts.Config.Data.Homepages)
			if err != nil {
				return errors.Errorf("reading homepages: %w", err)
			}

			infos := operation.DescribeHomepages(cmd.Context(), remote.WithLogging(opts.Client), homepages, opts.Config.Sweep.Concurrency)
			return reporter.Homepages(infos)
		},
	}

	return cmd
}
