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
	"gitlab.com/tozd/go/errors"
)

var _ CopyExecutor = (*Executor)(nil)

// 📦 Executor performs copy requests against the platform with polling and retries
type Executor struct {
	client       remote.Client
	retries      int
	retryDelay   time.Duration
	pollAttempts int
	pollInterval time.Duration
}

// 🏭 NewExecutor creates a new copy executor
func NewExecutor(client remote.Client, settings config.CopySettings) *Executor {
	e := &Executor{
		client:       client,
		retries:      settings.Retries,
		retryDelay:   settings.RetryDelay,
		pollAttempts: settings.PollAttempts,
		pollInterval: settings.PollInterval,
	}
	if e.retries < 1 {
		e.retries = 1
	}
	if e.pollAttempts < 1 {
		e.pollAttempts = 1
	}
	return e
}

// 🏃 Execute copies one request. Every path returns an outcome; errors never escape.
func (e *Executor) Execute(ctx context.Context, req CopyRequest) Outcome {
	logger := zerolog.Ctx(ctx).With().
		Str("source", req.Source).
		Str("destination", req.Destination).
		Str("prefix", req.Prefix).
		Logger()
	ctx = logger.WithContext(ctx)
	start := time.Now()

	var (
		lastErr  error
		attempts int
	)
	for attempt := 1; attempt <= e.retries; attempt++ {
		attempts = attempt
		logger.Debug().Int("attempt", attempt).Msg("copying page hierarchy")

		out, err := e.attempt(ctx, req)
		if err == nil {
			out.Attempts = attempt
			out.Duration = time.Since(start)
			logger.Info().Stringer("status", out.Status).Int("attempt", attempt).Msg(out.Detail)
			return out
		}

		lastErr = err
		logger.Debug().Err(err).Int("attempt", attempt).Int("retries", e.retries).Msg("copy attempt failed")

		if attempt < e.retries {
			if err := sleep(ctx, e.retryDelay); err != nil {
				lastErr = errors.Errorf("waiting to retry: %w", err)
				break
			}
		}
	}

	out := Outcome{
		Request:  req,
		Status:   StatusFailed,
		Detail:   lastErr.Error(),
		Attempts: attempts,
		Duration: time.Since(start),
	}
	logger.Error().Err(lastErr).Int("attempts", attempts).Msg("copy failed")
	return out
}

// attempt runs one copy attempt; an error means the attempt failed and may be retried
func (e *Executor) attempt(ctx context.Context, req CopyRequest) (Outcome, error) {
	task, err := e.client.CopyPageHierarchy(ctx, req.Source, remote.DefaultCopyOptions(req.Destination, req.Prefix))
	if err != nil {
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) && apiErr.IsConflictingTitles() {
			detail := apiErr.Message
			if detail == "" {
				detail = "conflicting titles"
			}
			return Outcome{Request: req, Status: StatusSkippedNonCritical, Detail: "skipped: " + detail}, nil
		}
		return Outcome{}, errors.Errorf("copying page hierarchy: %w", err)
	}

	if task == nil {
		return Outcome{Request: req, Status: StatusSuccess, Detail: "copied"}, nil
	}

	if err := e.await(ctx, *task); err != nil {
		return Outcome{}, err
	}
	return Outcome{Request: req, Status: StatusSuccess, Detail: "copied (task " + task.String() + ")"}, nil
}

// ⏳ await polls an asynchronous copy until it reaches a terminal state or the poll budget runs out
func (e *Executor) await(ctx context.Context, task remote.TaskHandle) error {
	logger := zerolog.Ctx(ctx)

	for poll := 1; poll <= e.pollAttempts; poll++ {
		state, err := e.client.GetTaskStatus(ctx, task)
		switch {
		case err != nil:
			logger.Debug().Err(err).Stringer("task", task).Int("poll", poll).Msg("task status check failed")
		case state.Terminal():
			if state == remote.TaskFailed {
				return errors.Errorf("task %s: %w", task, ErrTaskFailed)
			}
			return nil
		default:
			logger.Debug().Stringer("task", task).Str("state", string(state)).Int("poll", poll).Msg("task still running")
		}

		if poll < e.pollAttempts {
			if err := sleep(ctx, e.pollInterval); err != nil {
				return errors.Errorf("waiting for task %s: %w", task, err)
			}
		}
	}

	return errors.Errorf("task %s: %w", task, ErrTaskTimeout)
}
