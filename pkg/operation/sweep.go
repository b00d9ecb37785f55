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
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/wikicopy/pkg/config"
	"github.com/walteh/wikicopy/pkg/remote"
	"github.com/walteh/wikicopy/pkg/table"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// 🧹 SweepStatus is the end state of one destination homepage
type SweepStatus string

const (
	SweepProtected  SweepStatus = "PROTECTED"
	SweepCleared    SweepStatus = "CLEARED"
	SweepIncomplete SweepStatus = "INCOMPLETE"
	SweepError      SweepStatus = "ERROR"
)

// 🏠 HomepageReport describes what the sweeper did under one destination
type HomepageReport struct {
	ID        string
	Protected bool
	Scheduled int
	Deleted   int
	Failed    int
	Kept      []remote.Page
	Remaining []remote.Page
	Status    SweepStatus
	Err       error
}

// 📋 SweepReport collects every homepage report in processing order
type SweepReport struct {
	Homepages []HomepageReport
}

// Deleted returns the number of pages deleted across all homepages
func (r SweepReport) Deleted() int {
	n := 0
	for _, h := range r.Homepages {
		n += h.Deleted
	}
	return n
}

// Incomplete returns the ids of homepages that still hold unexpected children
func (r SweepReport) Incomplete() []string {
	var ids []string
	for _, h := range r.Homepages {
		if h.Status == SweepIncomplete || h.Status == SweepError {
			ids = append(ids, h.ID)
		}
	}
	return ids
}

// 🧹 Sweeper clears the children of destination homepages before a copy run
type Sweeper struct {
	client      remote.Client
	concurrency int
	pacing      time.Duration
	keep        []string
}

// 🏭 NewSweeper creates a new sweeper
func NewSweeper(client remote.Client, settings config.SweepSettings) *Sweeper {
	s := &Sweeper{
		client:      client,
		concurrency: settings.Concurrency,
		pacing:      settings.Pacing,
		keep:        settings.KeepTitles,
	}
	if s.concurrency < 1 {
		s.concurrency = 1
	}
	return s
}

// 🧹 Sweep deletes every direct child (recursively) of each non-protected destination, then
// verifies in a second pass that every swept destination is empty. Protected destinations
// are never touched. Individual failures are logged and reported but never stop the sweep.
func (s *Sweeper) Sweep(ctx context.Context, destinations []string, homepages []table.Homepage) SweepReport {
	logger := zerolog.Ctx(ctx)

	protected := make(map[string]bool, len(homepages))
	for _, h := range homepages {
		if h.Protected {
			protected[h.ID] = true
		}
	}

	// one pacer shared by every deletion of the sweep
	pacer := newPacer(s.pacing)

	var report SweepReport
	seen := map[string]struct{}{}
	for _, id := range destinations {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if protected[id] {
			logger.Info().Str("homepage", id).Msg("skipping protected homepage")
			report.Homepages = append(report.Homepages, HomepageReport{ID: id, Protected: true, Status: SweepProtected})
			continue
		}

		report.Homepages = append(report.Homepages, s.sweepHomepage(ctx, id, pacer))
	}

	// verification runs once every homepage has been swept
	for i := range report.Homepages {
		rep := &report.Homepages[i]
		if rep.Protected || rep.Status == SweepError {
			continue
		}
		s.verify(ctx, rep)
	}

	return report
}

func (s *Sweeper) sweepHomepage(ctx context.Context, id string, pacer *rate.Limiter) HomepageReport {
	logger := zerolog.Ctx(ctx).With().Str("homepage", id).Logger()
	ctx = logger.WithContext(ctx)

	rep := HomepageReport{ID: id}

	children, err := s.client.GetChildPages(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msg("listing children failed, skipping homepage")
		rep.Status = SweepError
		rep.Err = errors.Errorf("listing children of %s: %w", id, err)
		return rep
	}

	var targets []remote.Page
	for _, child := range children {
		if s.kept(child) {
			rep.Kept = append(rep.Kept, child)
			continue
		}
		targets = append(targets, child)
	}
	rep.Scheduled = len(targets)
	logger.Info().Int("children", len(children)).Int("scheduled", len(targets)).Int("kept", len(rep.Kept)).Msg("sweeping homepage")

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, page := range targets {
		if err := pacer.Wait(ctx); err != nil {
			logger.Error().Err(err).Str("page", page.ID).Msg("deletion not submitted")
			mu.Lock()
			rep.Failed++
			mu.Unlock()
			continue
		}
		g.Go(func() error {
			err := s.client.DeletePage(ctx, page.ID, true)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Error().Err(err).Str("page", page.ID).Str("title", page.Title).Msg("deleting page failed")
				rep.Failed++
				return nil
			}
			logger.Debug().Str("page", page.ID).Str("title", page.Title).Msg("deleted page")
			rep.Deleted++
			return nil
		})
	}
	_ = g.Wait()

	return rep
}

// verify re-reads the children of a swept homepage
func (s *Sweeper) verify(ctx context.Context, rep *HomepageReport) {
	logger := zerolog.Ctx(ctx).With().Str("homepage", rep.ID).Logger()

	children, err := s.client.GetChildPages(ctx, rep.ID)
	if err != nil {
		logger.Warn().Err(err).Msg("verifying sweep failed")
		rep.Status = SweepIncomplete
		rep.Err = errors.Errorf("verifying %s: %w", rep.ID, err)
		return
	}

	for _, child := range children {
		if s.kept(child) {
			continue
		}
		rep.Remaining = append(rep.Remaining, child)
	}

	if len(rep.Remaining) > 0 {
		ev := logger.Warn().Int("remaining", len(rep.Remaining))
		titles := make([]string, 0, len(rep.Remaining))
		for _, p := range rep.Remaining {
			titles = append(titles, p.Title)
		}
		ev.Strs("titles", titles).Msg("homepage still has children after sweep")
		rep.Status = SweepIncomplete
		return
	}

	logger.Info().Int("deleted", rep.Deleted).Msg("homepage cleared")
	rep.Status = SweepCleared
}

func (s *Sweeper) kept(page remote.Page) bool {
	for _, pattern := range s.keep {
		if ok, _ := doublestar.Match(pattern, page.Title); ok {
			return true
		}
	}
	return false
}
