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

// Package log renders run results for humans; structured logs go through zerolog.
package log

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/walteh/wikicopy/pkg/operation"
)

// 🎨 Display configuration
const (
	lineIndent  = 4  // spaces to indent entries
	pairWidth   = 24 // width for "source → destination"
	statusWidth = 20 // width for status text
)

// 🎯 Reporter prints copy, sweep and restore results to the console
type Reporter struct {
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new reporter
func New(console io.Writer) *Reporter {
	return &Reporter{
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the reporter from context
func FromContext(ctx context.Context) *Reporter {
	r, ok := ctx.Value(contextKey{}).(*Reporter)
	if !ok {
		panic("reporter not found in context")
	}
	return r
}

// 🎯 NewContext adds the reporter to context
func NewContext(ctx context.Context, r *Reporter) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// 📝 formatOutcome formats one copy outcome for display
func formatOutcome(o operation.Outcome) string {
	var symbol rune
	var symbolColor color.Attribute
	switch o.Status {
	case operation.StatusSuccess:
		symbol = '✓'
		symbolColor = color.FgGreen
	case operation.StatusSkippedNonCritical:
		symbol = '•'
		symbolColor = color.FgYellow
	default:
		symbol = '✗'
		symbolColor = color.FgRed
	}

	pair := o.Request.Source + " → " + o.Request.Destination
	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", lineIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", pairWidth, pair),
		color.New(symbolColor).Sprint(fmt.Sprintf("%-*s", statusWidth, o.Status)))

	if o.Request.Prefix != "" {
		line += color.New(color.FgCyan).Sprint(o.Request.Prefix) + " "
	}
	if o.Status == operation.StatusFailed && o.Detail != "" {
		line += color.New(color.Faint).Sprint(o.Detail)
	}
	return line
}

// 📝 Outcome prints one copy outcome
func (r *Reporter) Outcome(o operation.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.console, formatOutcome(o))
}

// 📝 Outcomes prints every outcome of a run
func (r *Reporter) Outcomes(outcomes []operation.Outcome) {
	for _, o := range outcomes {
		r.Outcome(o)
	}
}

// 📝 formatHomepage formats one swept homepage for display
func formatHomepage(h operation.HomepageReport) string {
	var statusColor color.Attribute
	switch h.Status {
	case operation.SweepCleared:
		statusColor = color.FgGreen
	case operation.SweepProtected:
		statusColor = color.FgCyan
	default:
		statusColor = color.FgRed
	}

	line := fmt.Sprintf("%s %s %s %s",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(h.ID),
		color.New(color.Faint).Sprint("•"),
		color.New(statusColor).Sprint(string(h.Status)))

	if h.Status != operation.SweepProtected {
		line += fmt.Sprintf(" deleted %d/%d", h.Deleted, h.Scheduled)
		if len(h.Kept) > 0 {
			line += fmt.Sprintf(", kept %d", len(h.Kept))
		}
		if len(h.Remaining) > 0 {
			line += fmt.Sprintf(", %d remaining", len(h.Remaining))
		}
	}
	return line
}

// 📝 Sweep prints the result of a sweep, one homepage per line
func (r *Reporter) Sweep(report operation.SweepReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.console, "[sweeping %s]\n", color.New(color.FgCyan).Sprint(strconv.Itoa(len(report.Homepages))+" homepages"))
	for _, h := range report.Homepages {
		fmt.Fprintln(r.console, formatHomepage(h))
		for _, p := range h.Remaining {
			fmt.Fprintf(r.console, "%*s%s %s\n", lineIndent, "", color.New(color.FgRed).Sprint("✗"), p.Title)
		}
	}
}

// 📊 Summary prints the aggregate counts as a table followed by the overall verdict
func (r *Reporter) Summary(s operation.Summary) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"status", "count"},
		{operation.StatusSuccess.String(), strconv.Itoa(s.Succeeded)},
		{operation.StatusSkippedNonCritical.String(), strconv.Itoa(s.Skipped)},
		{operation.StatusFailed.String(), strconv.Itoa(s.Failed)},
	}).Srender()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.console)
	fmt.Fprintln(r.console, table)
	if s.OK() {
		fmt.Fprint(r.console, pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Sprintln(fmt.Sprintf("%d of %d copies done", s.Total()-s.Failed, s.Total())))
	} else {
		fmt.Fprint(r.console, pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Sprintln(fmt.Sprintf("%d of %d copies failed", s.Failed, s.Total())))
	}
	return nil
}

// 🏠 Homepages prints the homepage listing as a table
func (r *Reporter) Homepages(infos []operation.HomepageInfo) error {
	data := pterm.TableData{{"id", "title", "protected", "children"}}
	for _, info := range infos {
		title := info.Title
		if info.TitleErr != nil {
			title = "error: " + info.TitleErr.Error()
		}
		children := strconv.Itoa(len(info.Children))
		if info.ListErr != nil {
			children = "?"
		}
		data = append(data, []string{info.ID, title, strconv.FormatBool(info.Protected), children})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.console, table)
	return nil
}

// ♻️ Restore prints the result of a trash restore
func (r *Reporter) Restore(report operation.RestoreReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range report.Restored {
		fmt.Fprintf(r.console, "%*s%s %s\n", lineIndent, "", color.New(color.FgGreen).Sprint("✓"), p.Title)
	}
	for _, p := range report.Excluded {
		fmt.Fprintf(r.console, "%*s%s %s\n", lineIndent, "", color.New(color.FgYellow).Sprint("-"), p.Title)
	}
	for _, p := range report.Failed {
		fmt.Fprintf(r.console, "%*s%s %s\n", lineIndent, "", color.New(color.FgRed).Sprint("✗"), p.Title)
	}
}

// 📝 Header logs a header
func (r *Reporter) Header(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("wikicopy")
	fmt.Fprintf(r.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
}

// 📝 Success logs a success message
func (r *Reporter) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
}

// 📝 Warning logs a warning message
func (r *Reporter) Warning(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
}

// 📝 Error logs an error message
func (r *Reporter) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
}

// 📝 Successf logs a formatted success message
func (r *Reporter) Successf(format string, args ...interface{}) {
	r.Success(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (r *Reporter) Warningf(format string, args ...interface{}) {
	r.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (r *Reporter) Errorf(format string, args ...interface{}) {
	r.Error(fmt.Sprintf(format, args...))
}
