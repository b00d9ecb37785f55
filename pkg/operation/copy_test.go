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
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/wikicopy/gen/mockery"
	"github.com/walteh/wikicopy/pkg/config"
	"github.com/walteh/wikicopy/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

func fastCopySettings() config.CopySettings {
	return config.CopySettings{
		Retries:      3,
		PollAttempts: 3,
		Concurrency:  2,
	}
}

func TestExecute(t *testing.T) {
	req := CopyRequest{Source: "100", Destination: "200", Prefix: "X-"}
	opts := remote.DefaultCopyOptions("200", "X-")
	task := &remote.TaskHandle{ID: "task-1", StatusPath: "/wiki/rest/api/longtask/task-1"}

	tests := []struct {
		name         string
		settings     func(s *config.CopySettings)
		setupMocks   func(client *mockery.MockClient_remote)
		wantStatus   Status
		wantAttempts int
		wantDetail   string
	}{
		{
			name: "synchronous_success",
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().CopyPageHierarchy(mock.Anything, "100", opts).Return(nil, nil).Once()
			},
			wantStatus:   StatusSuccess,
			wantAttempts: 1,
		},
		{
			name: "conflicting_titles_is_skipped_without_retry",
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().CopyPageHierarchy(mock.Anything, "100", opts).Return(nil, &remote.APIError{
					StatusCode: 400,
					Message:    "Could not copy: conflicting titles found under the destination",
				}).Once()
			},
			wantStatus:   StatusSkippedNonCritical,
			wantAttempts: 1,
			wantDetail:   "conflicting titles",
		},
		{
			name: "server_error_exhausts_retries",
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().CopyPageHierarchy(mock.Anything, "100", opts).Return(nil, &remote.APIError{
					Method:     "POST",
					Path:       "/wiki/rest/api/content/100/pagehierarchy/copy",
					StatusCode: 500,
					Message:    "internal error",
				}).Times(3)
			},
			wantStatus:   StatusFailed,
			wantAttempts: 3,
			wantDetail:   "status 500: internal error",
		},
		{
			name: "bad_request_without_conflict_is_retried",
			settings: func(s *config.CopySettings) {
				s.Retries = 2
			},
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().CopyPageHierarchy(mock.Anything, "100", opts).Return(nil, &remote.APIError{
					StatusCode: 400,
					Message:    "destination not found",
				}).Times(2)
			},
			wantStatus:   StatusFailed,
			wantAttempts: 2,
			wantDetail:   "destination not found",
		},
		{
			name: "async_task_succeeds_on_third_poll",
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().CopyPageHierarchy(mock.Anything, "100", opts).Return(task, nil).Once()
				client.EXPECT().GetTaskStatus(mock.Anything, *task).Return(remote.TaskPending, nil).Times(2)
				client.EXPECT().GetTaskStatus(mock.Anything, *task).Return(remote.TaskSuccess, nil).Once()
			},
			wantStatus:   StatusSuccess,
			wantAttempts: 1,
			wantDetail:   "task-1",
		},
		{
			name: "async_poll_error_keeps_polling",
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().CopyPageHierarchy(mock.Anything, "100", opts).Return(task, nil).Once()
				client.EXPECT().GetTaskStatus(mock.Anything, *task).Return("", errors.New("connection reset")).Once()
				client.EXPECT().GetTaskStatus(mock.Anything, *task).Return(remote.TaskSuccess, nil).Once()
			},
			wantStatus:   StatusSuccess,
			wantAttempts: 1,
		},
		{
			name: "async_task_failed_counts_as_failed_attempt",
			settings: func(s *config.CopySettings) {
				s.Retries = 2
			},
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().CopyPageHierarchy(mock.Anything, "100", opts).Return(task, nil).Times(2)
				client.EXPECT().GetTaskStatus(mock.Anything, *task).Return(remote.TaskFailed, nil).Times(2)
			},
			wantStatus:   StatusFailed,
			wantAttempts: 2,
			wantDetail:   ErrTaskFailed.Error(),
		},
		{
			name: "async_task_never_resolves",
			settings: func(s *config.CopySettings) {
				s.Retries = 1
			},
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().CopyPageHierarchy(mock.Anything, "100", opts).Return(task, nil).Once()
				client.EXPECT().GetTaskStatus(mock.Anything, *task).Return(remote.TaskPending, nil).Times(3)
			},
			wantStatus:   StatusFailed,
			wantAttempts: 1,
			wantDetail:   ErrTaskTimeout.Error(),
		},
		{
			name: "async_unknown_state_is_not_terminal",
			settings: func(s *config.CopySettings) {
				s.Retries = 1
			},
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().CopyPageHierarchy(mock.Anything, "100", opts).Return(task, nil).Once()
				client.EXPECT().GetTaskStatus(mock.Anything, *task).Return(remote.TaskState("RUNNING"), nil).Times(2)
				client.EXPECT().GetTaskStatus(mock.Anything, *task).Return(remote.TaskSuccess, nil).Once()
			},
			wantStatus:   StatusSuccess,
			wantAttempts: 1,
		},
		{
			name: "retry_recovers_after_transient_error",
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().CopyPageHierarchy(mock.Anything, "100", opts).Return(nil, errors.New("timeout")).Once()
				client.EXPECT().CopyPageHierarchy(mock.Anything, "100", opts).Return(nil, nil).Once()
			},
			wantStatus:   StatusSuccess,
			wantAttempts: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			client := mockery.NewMockClient_remote(t)
			tt.setupMocks(client)

			settings := fastCopySettings()
			if tt.settings != nil {
				tt.settings(&settings)
			}

			out := NewExecutor(client, settings).Execute(ctx, req)

			assert.Equal(t, req, out.Request)
			assert.Equal(t, tt.wantStatus, out.Status, "detail: %s", out.Detail)
			assert.Equal(t, tt.wantAttempts, out.Attempts)
			if tt.wantDetail != "" {
				assert.Contains(t, out.Detail, tt.wantDetail)
			}
		})
	}
}

func TestExecutePollsExactlyThreeTimes(t *testing.T) {
	ctx := testContext(t)
	client := mockery.NewMockClient_remote(t)
	task := &remote.TaskHandle{ID: "t"}

	client.EXPECT().CopyPageHierarchy(mock.Anything, "1", mock.Anything).Return(task, nil).Once()
	client.EXPECT().GetTaskStatus(mock.Anything, *task).Return(remote.TaskPending, nil).Times(2)
	client.EXPECT().GetTaskStatus(mock.Anything, *task).Return(remote.TaskSuccess, nil).Once()

	out := NewExecutor(client, fastCopySettings()).Execute(ctx, CopyRequest{Source: "1", Destination: "2"})
	require.Equal(t, StatusSuccess, out.Status)

	client.AssertNumberOfCalls(t, "GetTaskStatus", 3)
	client.AssertNumberOfCalls(t, "CopyPageHierarchy", 1)
}

func TestExecuteWaitsBetweenAttempts(t *testing.T) {
	ctx := testContext(t)
	client := mockery.NewMockClient_remote(t)
	client.EXPECT().CopyPageHierarchy(mock.Anything, "1", mock.Anything).Return(nil, errors.New("boom")).Times(2)

	settings := fastCopySettings()
	settings.Retries = 2
	settings.RetryDelay = 30 * time.Millisecond

	start := time.Now()
	out := NewExecutor(client, settings).Execute(ctx, CopyRequest{Source: "1", Destination: "2"})

	assert.Equal(t, StatusFailed, out.Status)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestExecuteStopsRetryingWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext(t))
	client := mockery.NewMockClient_remote(t)
	client.EXPECT().CopyPageHierarchy(mock.Anything, "1", mock.Anything).RunAndReturn(
		func(context.Context, string, remote.CopyOptions) (*remote.TaskHandle, error) {
			cancel()
			return nil, errors.New("boom")
		}).Once()

	settings := fastCopySettings()
	settings.RetryDelay = time.Hour

	out := NewExecutor(client, settings).Execute(ctx, CopyRequest{Source: "1", Destination: "2"})

	assert.Equal(t, StatusFailed, out.Status)
	assert.Contains(t, out.Detail, "context canceled")
}
