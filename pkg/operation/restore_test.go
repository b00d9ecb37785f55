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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/wikicopy/gen/mockery"
	"github.com/walteh/wikicopy/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

func TestRestore(t *testing.T) {
	draft := remote.Page{ID: "1", Title: "Draft notes"}
	published := remote.Page{ID: "2", Title: "Release Published 2024"}
	broken := remote.Page{ID: "3", Title: "Runbook"}

	client := mockery.NewMockClient_remote(t)
	client.EXPECT().ListTrashedPages(mock.Anything, "DOCS").Return([]remote.Page{draft, published, broken}, nil).Once()
	client.EXPECT().RestorePage(mock.Anything, "DOCS", "1").Return(nil).Once()
	client.EXPECT().RestorePage(mock.Anything, "DOCS", "3").Return(errors.New("status 500")).Once()

	restorer, err := NewRestorer(client, DefaultRestoreExcludes, 0)
	require.NoError(t, err)

	report, err := restorer.Restore(testContext(t), "DOCS")
	require.NoError(t, err)

	assert.Equal(t, []remote.Page{draft}, report.Restored)
	assert.Equal(t, []remote.Page{published}, report.Excluded)
	assert.Equal(t, []remote.Page{broken}, report.Failed)
	assert.False(t, report.OK())
}

func TestRestoreEmptyTrash(t *testing.T) {
	client := mockery.NewMockClient_remote(t)
	client.EXPECT().ListTrashedPages(mock.Anything, "DOCS").Return(nil, nil).Once()

	restorer, err := NewRestorer(client, nil, 0)
	require.NoError(t, err)

	report, err := restorer.Restore(testContext(t), "DOCS")
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Empty(t, report.Restored)
}

func TestRestoreListingError(t *testing.T) {
	client := mockery.NewMockClient_remote(t)
	client.EXPECT().ListTrashedPages(mock.Anything, "DOCS").Return(nil, errors.New("forbidden")).Once()

	restorer, err := NewRestorer(client, nil, 0)
	require.NoError(t, err)

	_, err = restorer.Restore(testContext(t), "DOCS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing trashed pages")
}

func TestNewRestorerRejectsBadPattern(t *testing.T) {
	_, err := NewRestorer(nil, []string{"[unterminated"}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}
