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

	"github.com/rs/zerolog"
	"github.com/walteh/wikicopy/pkg/config"
	"github.com/walteh/wikicopy/pkg/remote"
	"github.com/walteh/wikicopy/pkg/table"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the orchestrator
type Options struct {
	// Client talks to the content platform
	Client remote.Client
	// Config holds the run settings
	Config *config.Config
	// SkipSweep disables the deletion pass regardless of the sweep settings
	SkipSweep bool
}

// 📋 Plan is the in-memory state of both tables for one run
type Plan struct {
	Rows      []table.CopyRow
	Homepages []table.Homepage
}

// 📖 ReadPlan reads both tables from disk
func ReadPlan(ctx context.Context, paths config.DataPaths) (Plan, error) {
	rows, err := table.ReadCopyRows(paths.CopyOperations)
	if err != nil {
		return Plan{}, errors.Errorf("reading plan: %w", err)
	}
	homepages, err := table.ReadHomepages(paths.Homepages)
	if err != nil {
		return Plan{}, errors.Errorf("reading plan: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Int("rows", len(rows)).Int("homepages", len(homepages)).Msg("read plan")
	return Plan{Rows: rows, Homepages: homepages}, nil
}

// 🎯 Result is everything one run produced
type Result struct {
	Sweep    *SweepReport
	Outcomes []Outcome
	Summary  Summary
	Duration time.Duration
}

// OK reports whether the run is successful, which only failed copies can prevent
func (r Result) OK() bool {
	return r.Summary.OK()
}

// 🎮 Orchestrator sequences the sweep, the load and the copy run
type Orchestrator struct {
	sweeper  *Sweeper
	executor *Executor
	runner   *Runner
	sweep    bool
}

// 🏭 New creates a new orchestrator with the given options
func New(opts Options) (*Orchestrator, error) {
	if opts.Client == nil {
		return nil, errors.Errorf("client is required")
	}
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	client := remote.WithLogging(opts.Client)
	executor := NewExecutor(client, opts.Config.Copy)

	return &Orchestrator{
		sweeper:  NewSweeper(client, opts.Config.Sweep),
		executor: executor,
		runner:   NewRunner(executor, opts.Config.Copy.Concurrency, opts.Config.Copy.Pacing),
		sweep:    opts.Config.Sweep.Enabled && !opts.SkipSweep,
	}, nil
}

// Executor returns the executor used for single copies
func (o *Orchestrator) Executor() *Executor {
	return o.executor
}

// Sweeper returns the sweeper used before copying
func (o *Orchestrator) Sweeper() *Sweeper {
	return o.sweeper
}

// 🚀 Run sweeps the destinations, loads the requests and runs them. Per-item failures
// land in the result; the summary is always logged.
func (o *Orchestrator) Run(ctx context.Context, plan Plan) Result {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	var res Result

	if o.sweep {
		report := o.sweeper.Sweep(ctx, Destinations(plan.Rows), plan.Homepages)
		res.Sweep = &report
		if incomplete := report.Incomplete(); len(incomplete) > 0 {
			logger.Warn().Strs("homepages", incomplete).Msg("sweep incomplete, continuing with copies")
		}
	} else {
		logger.Info().Msg("sweep disabled")
	}

	requests := Load(ctx, plan.Rows)
	res.Outcomes = o.runner.Run(ctx, requests)
	res.Summary = Summarize(res.Outcomes)
	res.Duration = time.Since(start)

	ev := logger.Info()
	if !res.OK() {
		ev = logger.Error()
	}
	ev.Int("succeeded", res.Summary.Succeeded).
		Int("failed", res.Summary.Failed).
		Int("skipped", res.Summary.Skipped).
		Dur("took", res.Duration).
		Bool("ok", res.OK()).
		Msg("copy run finished")

	return res
}
