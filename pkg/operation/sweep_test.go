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
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/wikicopy/gen/mockery"
	"github.com/walteh/wikicopy/pkg/config"
	"github.com/walteh/wikicopy/pkg/remote"
	"github.com/walteh/wikicopy/pkg/table"
	"gitlab.com/tozd/go/errors"
)

func fastSweepSettings() config.SweepSettings {
	return config.SweepSettings{Enabled: true, Concurrency: 4}
}

func TestSweep(t *testing.T) {
	children := []remote.Page{{ID: "c1", Title: "Alpha"}, {ID: "c2", Title: "Beta"}, {ID: "c3", Title: "Index"}}

	tests := []struct {
		name         string
		destinations []string
		homepages    []table.Homepage
		keep         []string
		setupMocks   func(client *mockery.MockClient_remote)
		want         []HomepageReport
	}{
		{
			name:         "protected_homepage_is_untouched",
			destinations: []string{"200"},
			homepages:    []table.Homepage{{ID: "200", Protected: true}},
			setupMocks:   func(client *mockery.MockClient_remote) {},
			want:         []HomepageReport{{ID: "200", Protected: true, Status: SweepProtected}},
		},
		{
			name:         "children_are_deleted_and_verified",
			destinations: []string{"200"},
			homepages:    []table.Homepage{{ID: "200"}},
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().GetChildPages(mock.Anything, "200").Return(children, nil).Once()
				client.EXPECT().DeletePage(mock.Anything, "c1", true).Return(nil).Once()
				client.EXPECT().DeletePage(mock.Anything, "c2", true).Return(nil).Once()
				client.EXPECT().DeletePage(mock.Anything, "c3", true).Return(nil).Once()
				client.EXPECT().GetChildPages(mock.Anything, "200").Return(nil, nil).Once()
			},
			want: []HomepageReport{{ID: "200", Scheduled: 3, Deleted: 3, Status: SweepCleared}},
		},
		{
			name:         "failed_deletion_shows_up_in_verification",
			destinations: []string{"200"},
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().GetChildPages(mock.Anything, "200").Return(children[:2], nil).Once()
				client.EXPECT().DeletePage(mock.Anything, "c1", true).Return(nil).Once()
				client.EXPECT().DeletePage(mock.Anything, "c2", true).Return(errors.New("forbidden")).Once()
				client.EXPECT().GetChildPages(mock.Anything, "200").Return(children[1:2], nil).Once()
			},
			want: []HomepageReport{{
				ID:        "200",
				Scheduled: 2,
				Deleted:   1,
				Failed:    1,
				Remaining: []remote.Page{{ID: "c2", Title: "Beta"}},
				Status:    SweepIncomplete,
			}},
		},
		{
			name:         "kept_titles_survive",
			destinations: []string{"200"},
			keep:         []string{"Ind*"},
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().GetChildPages(mock.Anything, "200").Return(children, nil).Once()
				client.EXPECT().DeletePage(mock.Anything, "c1", true).Return(nil).Once()
				client.EXPECT().DeletePage(mock.Anything, "c2", true).Return(nil).Once()
				client.EXPECT().GetChildPages(mock.Anything, "200").Return(children[2:], nil).Once()
			},
			want: []HomepageReport{{
				ID:        "200",
				Scheduled: 2,
				Deleted:   2,
				Kept:      []remote.Page{{ID: "c3", Title: "Index"}},
				Status:    SweepCleared,
			}},
		},
		{
			name:         "duplicate_and_empty_destinations_are_swept_once",
			destinations: []string{"200", "", "300", "200"},
			homepages:    []table.Homepage{{ID: "300", Protected: true}},
			setupMocks: func(client *mockery.MockClient_remote) {
				client.EXPECT().GetChildPages(mock.Anything, "200").Return(nil, nil).Twice()
			},
			want: []HomepageReport{
				{ID: "200", Status: SweepCleared},
				{ID: "300", Protected: true, Status: SweepProtected},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mockery.NewMockClient_remote(t)
			tt.setupMocks(client)

			settings := fastSweepSettings()
			settings.KeepTitles = tt.keep

			report := NewSweeper(client, settings).Sweep(testContext(t), tt.destinations, tt.homepages)
			assert.Equal(t, tt.want, report.Homepages)
		})
	}
}

func TestSweepListingErrorSkipsHomepage(t *testing.T) {
	client := mockery.NewMockClient_remote(t)
	client.EXPECT().GetChildPages(mock.Anything, "200").Return(nil, errors.New("unauthorized")).Once()
	client.EXPECT().GetChildPages(mock.Anything, "201").Return(nil, nil).Twice()

	report := NewSweeper(client, fastSweepSettings()).Sweep(testContext(t), []string{"200", "201"}, nil)

	require.Len(t, report.Homepages, 2)
	assert.Equal(t, SweepError, report.Homepages[0].Status)
	require.Error(t, report.Homepages[0].Err)
	assert.Contains(t, report.Homepages[0].Err.Error(), "unauthorized")
	assert.Equal(t, SweepCleared, report.Homepages[1].Status)
	assert.Equal(t, []string{"200"}, report.Incomplete())
}

func TestSweepBoundsConcurrencyAndDrainsPerHomepage(t *testing.T) {
	var pages []remote.Page
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		pages = append(pages, remote.Page{ID: id, Title: id})
	}

	var running, peak atomic.Int32
	var secondListedWhileRunning atomic.Bool

	client := mockery.NewMockClient_remote(t)
	client.EXPECT().GetChildPages(mock.Anything, "1").Return(pages, nil).Once()
	client.EXPECT().GetChildPages(mock.Anything, "1").Return(nil, nil).Once()
	client.EXPECT().GetChildPages(mock.Anything, "2").RunAndReturn(func(context.Context, string) ([]remote.Page, error) {
		if running.Load() != 0 {
			secondListedWhileRunning.Store(true)
		}
		return nil, nil
	}).Twice()
	client.EXPECT().DeletePage(mock.Anything, mock.Anything, true).RunAndReturn(func(context.Context, string, bool) error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		running.Add(-1)
		return nil
	}).Times(len(pages))

	settings := fastSweepSettings()
	settings.Concurrency = 3

	report := NewSweeper(client, settings).Sweep(testContext(t), []string{"1", "2"}, nil)

	require.Len(t, report.Homepages, 2)
	assert.Equal(t, len(pages), report.Deleted())
	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.False(t, secondListedWhileRunning.Load(), "deletions of one homepage finish before the next homepage starts")
}

func TestSweepVerifiesAfterAllHomepagesAreSwept(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	record := func(call string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, call)
	}

	client := mockery.NewMockClient_remote(t)
	for _, id := range []string{"1", "2"} {
		child := remote.Page{ID: id + "0", Title: "child of " + id}
		client.EXPECT().GetChildPages(mock.Anything, id).RunAndReturn(func(context.Context, string) ([]remote.Page, error) {
			record("list " + id)
			return []remote.Page{child}, nil
		}).Once()
		client.EXPECT().GetChildPages(mock.Anything, id).RunAndReturn(func(context.Context, string) ([]remote.Page, error) {
			record("verify " + id)
			return nil, nil
		}).Once()
		client.EXPECT().DeletePage(mock.Anything, child.ID, true).RunAndReturn(func(context.Context, string, bool) error {
			record("delete " + child.ID)
			return nil
		}).Once()
	}

	report := NewSweeper(client, fastSweepSettings()).Sweep(testContext(t), []string{"1", "2"}, nil)

	assert.Equal(t, []string{"list 1", "delete 10", "list 2", "delete 20", "verify 1", "verify 2"}, calls)
	require.Len(t, report.Homepages, 2)
	for _, h := range report.Homepages {
		assert.Equal(t, SweepCleared, h.Status, h.ID)
	}
}
