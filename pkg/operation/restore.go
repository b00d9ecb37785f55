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

package operation

import (
	"context"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/wikicopy/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

// DefaultRestoreExcludes keeps published pages in the trash
var DefaultRestoreExcludes = []string{"*Published*"}

// ♻️ RestoreReport describes a trash restore
type RestoreReport struct {
	Restored []remote.Page
	Excluded []remote.Page
	Failed   []remote.Page
}

// OK reports whether every attempted restore succeeded
func (r RestoreReport) OK() bool {
	return len(r.Failed) == 0
}

// ♻️ Restorer brings trashed pages of a space back
type Restorer struct {
	client   remote.Client
	excludes []string
	pacing   time.Duration
}

// 🏭 NewRestorer creates a new restorer. Pages whose title matches any exclude glob stay in the trash.
func NewRestorer(client remote.Client, excludes []string, pacing time.Duration) (*Restorer, error) {
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return &Restorer{client: client, excludes: excludes, pacing: pacing}, nil
}

// ♻️ Restore restores every non-excluded trashed page of the space, one at a time.
// Only a failure to list the trash is returned; single restore failures land in the report.
func (r *Restorer) Restore(ctx context.Context, spaceKey string) (RestoreReport, error) {
	logger := zerolog.Ctx(ctx).With().Str("space", spaceKey).Logger()
	ctx = logger.WithContext(ctx)

	var report RestoreReport

	trashed, err := r.client.ListTrashedPages(ctx, spaceKey)
	if err != nil {
		return report, errors.Errorf("listing trashed pages: %w", err)
	}
	if len(trashed) == 0 {
		logger.Info().Msg("no trashed pages found")
		return report, nil
	}

	pacer := newPacer(r.pacing)
	for _, page := range trashed {
		if r.excluded(page) {
			logger.Debug().Str("page", page.ID).Str("title", page.Title).Msg("keeping page in trash")
			report.Excluded = append(report.Excluded, page)
			continue
		}

		if err := pacer.Wait(ctx); err != nil {
			return report, errors.Errorf("waiting to restore %s: %w", page.ID, err)
		}

		if err := r.client.RestorePage(ctx, spaceKey, page.ID); err != nil {
			logger.Error().Err(err).Str("page", page.ID).Str("title", page.Title).Msg("restoring page failed")
			report.Failed = append(report.Failed, page)
			continue
		}
		logger.Info().Str("page", page.ID).Str("title", page.Title).Msg("restored page")
		report.Restored = append(report.Restored, page)
	}

	return report, nil
}

func (r *Restorer) excluded(page remote.Page) bool {
	for _, pattern := range r.excludes {
		if ok, _ := doublestar.Match(pattern, page.Title); ok {
			return true
		}
	}
	return false
}
