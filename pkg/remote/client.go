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
	"fmt"
	"strings"
)

// Client is the primary interface for interacting with the content platform (e.g. Confluence)
type Client interface {
	// CopyPageHierarchy copies the source page and its descendants under the destination page.
	// A nil handle means the copy finished synchronously.
	CopyPageHierarchy(ctx context.Context, sourceID string, opts CopyOptions) (*TaskHandle, error)
	// GetTaskStatus returns the current state of an asynchronous task
	GetTaskStatus(ctx context.Context, task TaskHandle) (TaskState, error)
	// GetChildPages returns the direct children of a page
	GetChildPages(ctx context.Context, pageID string) ([]Page, error)
	// DeletePage deletes a page, and all of its descendants when recursive is set
	DeletePage(ctx context.Context, pageID string, recursive bool) error
	// GetPage returns a single page
	GetPage(ctx context.Context, pageID string) (Page, error)
	// ListTrashedPages returns the pages currently in the trash of a space
	ListTrashedPages(ctx context.Context, spaceKey string) ([]Page, error)
	// RestorePage restores a trashed page
	RestorePage(ctx context.Context, spaceKey string, pageID string) error
}

// 📄 Page is a page of the content tree
type Page struct {
	ID    string
	Title string
}

// 📦 CopyOptions controls a page hierarchy copy
type CopyOptions struct {
	DestinationPageID string
	TitlePrefix       string
	CopyAttachments   bool
	CopyDescendants   bool
	CopyPermissions   bool
	CopyLabels        bool
}

// DefaultCopyOptions copies everything the platform can copy
func DefaultCopyOptions(destinationID, prefix string) CopyOptions {
	return CopyOptions{
		DestinationPageID: destinationID,
		TitlePrefix:       prefix,
		CopyAttachments:   true,
		CopyDescendants:   true,
		CopyPermissions:   true,
		CopyLabels:        true,
	}
}

// ⏳ TaskHandle references an asynchronous remote operation in progress
type TaskHandle struct {
	ID         string
	StatusPath string
}

func (t TaskHandle) String() string {
	if t.ID != "" {
		return t.ID
	}
	return t.StatusPath
}

// 📊 TaskState is the state reported for an asynchronous task
type TaskState string

const (
	TaskSuccess TaskState = "SUCCESS"
	TaskFailed  TaskState = "FAILED"
	TaskPending TaskState = "PENDING"
)

// Terminal reports whether the task has stopped running
func (s TaskState) Terminal() bool {
	return s == TaskSuccess || s == TaskFailed
}

const conflictingTitles = "conflicting titles"

// ❌ APIError is a non-2xx response from the platform
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// IsConflictingTitles reports whether the copy target already holds a page with the resulting title
func (e *APIError) IsConflictingTitles() bool {
	if e.StatusCode != 400 {
		return false
	}
	return strings.Contains(strings.ToLower(e.Message), conflictingTitles) ||
		strings.Contains(strings.ToLower(e.Body), conflictingTitles)
}
