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

package remote

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// 📝 WithLogging wraps a client so that every call is logged with its arguments, result and duration
func WithLogging(c Client) Client {
	if _, ok := c.(*loggingClient); ok {
		return c
	}
	return &loggingClient{next: c}
}

type loggingClient struct {
	next Client
}

func (l *loggingClient) trace(ctx context.Context, method string) (*zerolog.Logger, func(err error, ev func(*zerolog.Event))) {
	logger := zerolog.Ctx(ctx).With().Str("call", method).Logger()
	logger.Debug().Msg("entering")
	start := time.Now()
	return &logger, func(err error, ev func(*zerolog.Event)) {
		if err != nil {
			logger.Debug().Err(err).Dur("took", time.Since(start)).Msg("returned error")
			return
		}
		e := logger.Debug().Dur("took", time.Since(start))
		if ev != nil {
			ev(e)
		}
		e.Msg("returned")
	}
}

func (l *loggingClient) CopyPageHierarchy(ctx context.Context, sourceID string, opts CopyOptions) (*TaskHandle, error) {
	logger, done := l.trace(ctx, "CopyPageHierarchy")
	logger.Trace().Str("source", sourceID).Str("destination", opts.DestinationPageID).Str("prefix", opts.TitlePrefix).Msg("arguments")
	task, err := l.next.CopyPageHierarchy(ctx, sourceID, opts)
	done(err, func(e *zerolog.Event) {
		e.Bool("async", task != nil)
		if task != nil {
			e.Stringer("task", task)
		}
	})
	return task, err
}

func (l *loggingClient) GetTaskStatus(ctx context.Context, task TaskHandle) (TaskState, error) {
	_, done := l.trace(ctx, "GetTaskStatus")
	state, err := l.next.GetTaskStatus(ctx, task)
	done(err, func(e *zerolog.Event) { e.Stringer("task", task).Str("state", string(state)) })
	return state, err
}

func (l *loggingClient) GetChildPages(ctx context.Context, pageID string) ([]Page, error) {
	_, done := l.trace(ctx, "GetChildPages")
	pages, err := l.next.GetChildPages(ctx, pageID)
	done(err, func(e *zerolog.Event) { e.Str("page", pageID).Int("children", len(pages)) })
	return pages, err
}

func (l *loggingClient) DeletePage(ctx context.Context, pageID string, recursive bool) error {
	_, done := l.trace(ctx, "DeletePage")
	err := l.next.DeletePage(ctx, pageID, recursive)
	done(err, func(e *zerolog.Event) { e.Str("page", pageID).Bool("recursive", recursive) })
	return err
}

func (l *loggingClient) GetPage(ctx context.Context, pageID string) (Page, error) {
	_, done := l.trace(ctx, "GetPage")
	page, err := l.next.GetPage(ctx, pageID)
	done(err, func(e *zerolog.Event) { e.Str("page", pageID).Str("title", page.Title) })
	return page, err
}

func (l *loggingClient) ListTrashedPages(ctx context.Context, spaceKey string) ([]Page, error) {
	_, done := l.trace(ctx, "ListTrashedPages")
	pages, err := l.next.ListTrashedPages(ctx, spaceKey)
	done(err, func(e *zerolog.Event) { e.Str("space", spaceKey).Int("pages", len(pages)) })
	return pages, err
}

func (l *loggingClient) RestorePage(ctx context.Context, spaceKey string, pageID string) error {
	_, done := l.trace(ctx, "RestorePage")
	err := l.next.RestorePage(ctx, spaceKey, pageID)
	done(err, func(e *zerolog.Event) { e.Str("space", spaceKey).Str("page", pageID) })
	return err
}
