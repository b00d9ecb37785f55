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
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// 🏃 Runner executes copy requests on a bounded worker pool with paced submission
type Runner struct {
	exec        CopyExecutor
	concurrency int
	pacing      time.Duration
}

// 🏗️ NewRunner creates a new runner. A pacing of zero submits without delay.
func NewRunner(exec CopyExecutor, concurrency int, pacing time.Duration) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		exec:        exec,
		concurrency: concurrency,
		pacing:      pacing,
	}
}

// newPacer returns a limiter allowing one submission per interval
func newPacer(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// 🏃 Run executes every request and returns exactly one outcome per request, in completion order.
// A failing request never stops the others.
func (r *Runner) Run(ctx context.Context, reqs []CopyRequest) []Outcome {
	logger := zerolog.Ctx(ctx)
	logger.Info().Int("requests", len(reqs)).Int("concurrency", r.concurrency).Dur("pacing", r.pacing).Msg("running copy requests")

	var (
		mu       sync.Mutex
		outcomes = make([]Outcome, 0, len(reqs))
	)
	record := func(o Outcome) {
		mu.Lock()
		defer mu.Unlock()
		outcomes = append(outcomes, o)
	}

	pacer := newPacer(r.pacing)

	var g errgroup.Group
	g.SetLimit(r.concurrency)

	for _, req := range reqs {
		if err := pacer.Wait(ctx); err != nil {
			record(Outcome{Request: req, Status: StatusFailed, Detail: fmt.Sprintf("not submitted: %v", err)})
			continue
		}

		g.Go(func() error {
			defer func() {
				if p := recover(); p != nil {
					logger.Error().Stringer("request", req).Interface("panic", p).Msg("copy worker panicked")
					record(Outcome{Request: req, Status: StatusFailed, Detail: fmt.Sprintf("panic: %v", p)})
				}
			}()
			record(r.exec.Execute(ctx, req))
			return nil
		})
	}

	// workers never return errors
	_ = g.Wait()

	return outcomes
}
