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

// NewRestoreCmd creates a new restore command
func NewRestoreCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		space    string
		excludes []string
	)

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore trashed pages of a space",
		Long: `Restore brings every trashed page of the space back, except pages whose
title matches one of the exclude patterns. Restores are paced like copies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter := log.FromContext(cmd.Context())
			restorer, err := operation.NewRestorer(remote.WithLogging(opts.Client), excludes, opts.Config.Copy.Pacing)
			if err != nil {
				return err
			}

			report, err := restorer.Restore(cmd.Context(), space)
			if err != nil {
				return errors.Errorf("restoring %s: %w", space, err)
			}

			reporter.Restore(report)
			if !report.OK() {
				return errors.Errorf("%d of %d restores failed", len(report.Failed), len(report.Failed)+len(report.Restored))
			}
			reporter.Successf("restored %d pages, kept %d in the trash", len(report.Restored), len(report.Excluded))
			return nil
		},
	}

	cmd.Flags().StringVar(&space, "space", "", "space key to restore")
	cmd.Flags().StringSliceVar(&excludes, "exclude", operation.DefaultRestoreExcludes, "title globs to keep in the trash")
	_ = cmd.MarkFlagRequired("space")

	return cmd
}
