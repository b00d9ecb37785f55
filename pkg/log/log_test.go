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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/wikicopy/pkg/operation"
	"github.com/walteh/wikicopy/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

func plain(t *testing.T) {
	color.NoColor = true
	pterm.DisableColor()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableColor()
	})
}

func TestReporterMessages(t *testing.T) {
	plain(t)

	tests := []struct {
		name     string
		op       func(r *Reporter)
		wantLogs []string
	}{
		{
			name: "log_messages",
			op: func(r *Reporter) {
				r.Warning("warning message")
				r.Error("error message")
				r.Success("success message")
			},
			wantLogs: []string{
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(r *Reporter) {
				r.Warningf("warning %s", "test")
				r.Errorf("error %s", "test")
				r.Successf("success %s", "test")
			},
			wantLogs: []string{
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(r *Reporter) {
				r.Header("copying pages")
			},
			wantLogs: []string{
				"wikicopy • copying pages",
			},
		},
		{
			name: "log_restore",
			op: func(r *Reporter) {
				r.Restore(operation.RestoreReport{
					Restored: []remote.Page{{ID: "1", Title: "Back"}},
					Excluded: []remote.Page{{ID: "2", Title: "Published"}},
					Failed:   []remote.Page{{ID: "3", Title: "Stuck"}},
				})
			},
			wantLogs: []string{
				"✓ Back",
				"- Published",
				"✗ Stuck",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.op(New(buf))

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestReporterContext(t *testing.T) {
	r := New(io.Discard)

	ctx := NewContext(context.Background(), r)
	assert.Same(t, r, FromContext(ctx), "reporter from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when reporter is missing")
}

func TestOutcomeFormatting(t *testing.T) {
	plain(t)

	tests := []struct {
		name string
		o    operation.Outcome
		want []string
	}{
		{
			name: "success_with_prefix",
			o: operation.Outcome{
				Request: operation.CopyRequest{Source: "100", Destination: "200", Prefix: "X-"},
				Status:  operation.StatusSuccess,
				Detail:  "copied",
			},
			want: []string{"✓", "100", "→", "200", "SUCCESS", "X-"},
		},
		{
			name: "skipped",
			o: operation.Outcome{
				Request: operation.CopyRequest{Source: "1", Destination: "2"},
				Status:  operation.StatusSkippedNonCritical,
				Detail:  "skipped: conflicting titles",
			},
			want: []string{"•", "1", "→", "2", "SKIPPED_NONCRITICAL"},
		},
		{
			name: "failed_shows_detail",
			o: operation.Outcome{
				Request: operation.CopyRequest{Source: "1", Destination: "2"},
				Status:  operation.StatusFailed,
				Detail:  "boom",
			},
			want: []string{"✗", "1", "→", "2", "FAILED", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := formatOutcome(tt.o)
			assert.True(t, strings.HasPrefix(line, "    "), "outcomes are indented")
			assert.Equal(t, tt.want, strings.Fields(line))
		})
	}
}

func TestSweepFormatting(t *testing.T) {
	plain(t)

	buf := &bytes.Buffer{}
	New(buf).Sweep(operation.SweepReport{Homepages: []operation.HomepageReport{
		{ID: "10", Protected: true, Status: operation.SweepProtected},
		{ID: "20", Scheduled: 3, Deleted: 3, Kept: []remote.Page{{ID: "k"}}, Status: operation.SweepCleared},
		{ID: "30", Scheduled: 2, Deleted: 1, Failed: 1, Remaining: []remote.Page{{ID: "r", Title: "Leftover"}}, Status: operation.SweepIncomplete},
	}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "[sweeping 3 homepages]", lines[0])
	assert.Equal(t, "◆ 10 • PROTECTED", lines[1])
	assert.Equal(t, "◆ 20 • CLEARED deleted 3/3, kept 1", lines[2])
	assert.Equal(t, "◆ 30 • INCOMPLETE deleted 1/2, 1 remaining", lines[3])
	assert.Equal(t, "✗ Leftover", strings.TrimSpace(lines[4]))
}

func TestSummary(t *testing.T) {
	plain(t)

	tests := []struct {
		name    string
		summary operation.Summary
		verdict string
	}{
		{name: "ok", summary: operation.Summary{Succeeded: 3, Skipped: 1}, verdict: "4 of 4 copies done"},
		{name: "failed", summary: operation.Summary{Succeeded: 3, Failed: 2}, verdict: "2 of 5 copies failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, New(buf).Summary(tt.summary))

			out := buf.String()
			assert.Contains(t, out, "SUCCESS")
			assert.Contains(t, out, "SKIPPED_NONCRITICAL")
			assert.Contains(t, out, "FAILED")
			assert.Contains(t, out, tt.verdict)
		})
	}
}

func TestHomepagesTable(t *testing.T) {
	plain(t)

	buf := &bytes.Buffer{}
	require.NoError(t, New(buf).Homepages([]operation.HomepageInfo{
		{ID: "10", Title: "Team Home", Protected: true, Children: []remote.Page{{ID: "a"}, {ID: "b"}}},
		{ID: "20", TitleErr: errors.New("not found"), ListErr: errors.New("not found")},
	}))

	out := buf.String()
	assert.Contains(t, out, "Team Home")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "error: not found")
	assert.Contains(t, out, "?")
}
