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
	"time"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrTaskFailed is returned when the platform reports an asynchronous copy as failed
	ErrTaskFailed = errors.New("async task failed")
	// ErrTaskTimeout is returned when an asynchronous copy never resolves within the poll budget
	ErrTaskTimeout = errors.New("async task did not finish within the poll budget")
)

// 📦 CopyRequest asks for the source subtree to be copied under the destination page.
// Identity is the (Source, Destination) pair.
type CopyRequest struct {
	Source      string
	Destination string
	Prefix      string
}

func (r CopyRequest) String() string {
	if r.Prefix == "" {
		return fmt.Sprintf("%s -> %s", r.Source, r.Destination)
	}
	return fmt.Sprintf("%s -> %s (prefix %q)", r.Source, r.Destination, r.Prefix)
}

type requestKey struct {
	source      string
	destination string
}

func (r CopyRequest) key() requestKey {
	return requestKey{source: r.Source, destination: r.Destination}
}

// 📊 Status is the result class of one copy request
type Status int

const (
	StatusUnknown Status = iota
	StatusSuccess
	StatusFailed
	StatusSkippedNonCritical // destination already holds the resulting titles
)

// String returns a string representation of Status
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailed:
		return "FAILED"
	case StatusSkippedNonCritical:
		return "SKIPPED_NONCRITICAL"
	default:
		return "UNKNOWN"
	}
}

// 🎯 Outcome is the result of executing one copy request
type Outcome struct {
	Request  CopyRequest
	Status   Status
	Detail   string
	Attempts int
	Duration time.Duration
}

// 📈 Summary aggregates outcomes by status
type Summary struct {
	Succeeded int
	Failed    int
	Skipped   int
}

// Summarize counts outcomes by status
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Status {
		case StatusSuccess:
			s.Succeeded++
		case StatusSkippedNonCritical:
			s.Skipped++
		default:
			s.Failed++
		}
	}
	return s
}

// Total returns the number of outcomes counted
func (s Summary) Total() int {
	return s.Succeeded + s.Failed + s.Skipped
}

// OK reports whether no outcome failed; skipped outcomes do not count against success
func (s Summary) OK() bool {
	return s.Failed == 0
}

// 🏃 CopyExecutor performs one copy request and always returns an outcome
type CopyExecutor interface {
	Execute(ctx context.Context, req CopyRequest) Outcome
}

// sleep waits for d or until the context is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
