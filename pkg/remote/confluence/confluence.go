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

package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/wikicopy/pkg/config"
	"github.com/walteh/wikicopy/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

const (
	contentPath = "/wiki/rest/api/content"
	restorePath = "/wiki/pages/dorestoretrashitem.action"
	pageLimit   = 200
)

var _ remote.Client = (*Client)(nil)

// 🎯 Client implements remote.Client against the Confluence Cloud REST API
type Client struct {
	http     *http.Client
	baseURL  string
	username string
	apiToken string
}

// 🏭 New creates a new Confluence client from the run credentials
func New(creds config.Credentials, timeout time.Duration) *Client {
	return NewWithHTTPClient(creds, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient is New with a caller supplied http.Client
func NewWithHTTPClient(creds config.Credentials, hc *http.Client) *Client {
	return &Client{
		http:     hc,
		baseURL:  strings.TrimRight(creds.BaseURL, "/"),
		username: creds.Username,
		apiToken: creds.APIToken,
	}
}

type copyRequest struct {
	CopyAttachments   bool         `json:"copyAttachments"`
	CopyDescendants   bool         `json:"copyDescendants"`
	CopyPermissions   bool         `json:"copyPermissions"`
	CopyLabels        bool         `json:"copyLabels"`
	DestinationPageID string       `json:"destinationPageId"`
	TitleOptions      titleOptions `json:"titleOptions"`
}

type titleOptions struct {
	Prefix string `json:"prefix"`
}

type taskResponse struct {
	ID    string `json:"id"`
	Links struct {
		Status string `json:"status"`
	} `json:"links"`
}

type taskStatusResponse struct {
	State      string `json:"state"`
	Finished   *bool  `json:"finished,omitempty"`
	Successful *bool  `json:"successful,omitempty"`
}

type pageResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type pageListResponse struct {
	Results []pageResponse `json:"results"`
	Size    int            `json:"size"`
	Links   struct {
		Next string `json:"next"`
	} `json:"_links"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// 📦 CopyPageHierarchy starts a page hierarchy copy
func (c *Client) CopyPageHierarchy(ctx context.Context, sourceID string, opts remote.CopyOptions) (*remote.TaskHandle, error) {
	payload, err := json.Marshal(copyRequest{
		CopyAttachments:   opts.CopyAttachments,
		CopyDescendants:   opts.CopyDescendants,
		CopyPermissions:   opts.CopyPermissions,
		CopyLabels:        opts.CopyLabels,
		DestinationPageID: opts.DestinationPageID,
		TitleOptions:      titleOptions{Prefix: opts.TitlePrefix},
	})
	if err != nil {
		return nil, errors.Errorf("encoding copy request: %w", err)
	}

	path := contentPath + "/" + url.PathEscape(sourceID) + "/pagehierarchy/copy"
	status, body, err := c.do(ctx, http.MethodPost, path, nil, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK {
		return nil, nil
	}

	var task taskResponse
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, errors.Errorf("decoding task reference: %w", err)
	}
	if task.Links.Status == "" {
		return nil, errors.Errorf("accepted copy of %s returned no task status link", sourceID)
	}

	return &remote.TaskHandle{ID: task.ID, StatusPath: task.Links.Status}, nil
}

// ⏳ GetTaskStatus polls an asynchronous task
func (c *Client) GetTaskStatus(ctx context.Context, task remote.TaskHandle) (remote.TaskState, error) {
	path, query, err := splitPath(task.StatusPath)
	if err != nil {
		return "", err
	}

	_, body, err := c.do(ctx, http.MethodGet, path, query, "", nil)
	if err != nil {
		return "", err
	}

	var resp taskStatusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Errorf("decoding task status: %w", err)
	}

	switch {
	case resp.State != "":
		return remote.TaskState(strings.ToUpper(resp.State)), nil
	case resp.Finished != nil && *resp.Finished:
		if resp.Successful != nil && !*resp.Successful {
			return remote.TaskFailed, nil
		}
		return remote.TaskSuccess, nil
	default:
		return remote.TaskPending, nil
	}
}

// 📂 GetChildPages returns all direct child pages, following pagination
func (c *Client) GetChildPages(ctx context.Context, pageID string) ([]remote.Page, error) {
	path := contentPath + "/" + url.PathEscape(pageID) + "/child/page"
	return c.listPages(ctx, path, url.Values{})
}

// 🗑️ DeletePage deletes a page; recursive deletes descendants depth first
func (c *Client) DeletePage(ctx context.Context, pageID string, recursive bool) error {
	if recursive {
		children, err := c.GetChildPages(ctx, pageID)
		if err != nil {
			return errors.Errorf("listing children of %s: %w", pageID, err)
		}
		for _, child := range children {
			if err := c.DeletePage(ctx, child.ID, true); err != nil {
				return err
			}
		}
	}

	zerolog.Ctx(ctx).Trace().Str("page", pageID).Msg("deleting page")

	_, _, err := c.do(ctx, http.MethodDelete, contentPath+"/"+url.PathEscape(pageID), nil, "", nil)
	if err != nil {
		return errors.Errorf("deleting page %s: %w", pageID, err)
	}
	return nil
}

// 🔍 GetPage returns the id and title of a page
func (c *Client) GetPage(ctx context.Context, pageID string) (remote.Page, error) {
	_, body, err := c.do(ctx, http.MethodGet, contentPath+"/"+url.PathEscape(pageID), nil, "", nil)
	if err != nil {
		return remote.Page{}, err
	}

	var resp pageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return remote.Page{}, errors.Errorf("decoding page %s: %w", pageID, err)
	}
	return remote.Page{ID: resp.ID, Title: resp.Title}, nil
}

// 🗑️ ListTrashedPages lists pages in the trash of a space
func (c *Client) ListTrashedPages(ctx context.Context, spaceKey string) ([]remote.Page, error) {
	return c.listPages(ctx, contentPath, url.Values{
		"spaceKey": {spaceKey},
		"status":   {"trashed"},
	})
}

// ♻️ RestorePage restores a trashed page through the web action endpoint
func (c *Client) RestorePage(ctx context.Context, spaceKey string, pageID string) error {
	form := url.Values{"key": {spaceKey}, "contentId": {pageID}}
	_, _, err := c.do(ctx, http.MethodPost, restorePath, nil, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Errorf("restoring page %s: %w", pageID, err)
	}
	return nil
}

func (c *Client) listPages(ctx context.Context, path string, query url.Values) ([]remote.Page, error) {
	var pages []remote.Page
	start := 0
	for {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("start", strconv.Itoa(start))
		q.Set("limit", strconv.Itoa(pageLimit))

		_, body, err := c.do(ctx, http.MethodGet, path, q, "", nil)
		if err != nil {
			return nil, err
		}

		var resp pageListResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, errors.Errorf("decoding page list: %w", err)
		}

		for _, p := range resp.Results {
			pages = append(pages, remote.Page{ID: p.ID, Title: p.Title})
		}

		if resp.Links.Next == "" || len(resp.Results) == 0 {
			return pages, nil
		}
		start += len(resp.Results)
	}
}

// 🌐 do sends a request and returns the status and body of any 2xx response.
// Other statuses come back as *remote.APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, nil, errors.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.username, c.apiToken)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, errors.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Errorf("reading response body: %w", err)
	}

	zerolog.Ctx(ctx).Trace().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Msg("response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &remote.APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
		var er errorResponse
		if json.Unmarshal(data, &er) == nil {
			apiErr.Message = er.Message
		}
		return resp.StatusCode, data, apiErr
	}

	return resp.StatusCode, data, nil
}

// splitPath separates a status link returned by the platform into path and query
func splitPath(link string) (string, url.Values, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", nil, errors.Errorf("parsing task link %q: %w", link, err)
	}
	if u.Path == "" {
		return "", nil, errors.Errorf("task link %q has no path", link)
	}
	return u.Path, u.Query(), nil
}
