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

	"github.com/rs/zerolog"
	"github.com/walteh/wikicopy/pkg/table"
)

// 📋 Load turns raw copy rows into an ordered work list.
// Rows missing a source or destination are dropped with a warning. Duplicate
// (source, destination) pairs collapse onto the first occurrence and its prefix.
func Load(ctx context.Context, rows []table.CopyRow) []CopyRequest {
	logger := zerolog.Ctx(ctx)

	seen := make(map[requestKey]struct{}, len(rows))
	requests := make([]CopyRequest, 0, len(rows))
	for _, row := range rows {
		if row.From == "" || row.To == "" {
			logger.Warn().
				Int("line", row.Line).
				Str("from", row.From).
				Str("to", row.To).
				Msg("dropping copy row without source or destination")
			continue
		}

		req := CopyRequest{Source: row.From, Destination: row.To, Prefix: row.Prefix}
		if _, dup := seen[req.key()]; dup {
			logger.Debug().Int("line", row.Line).Stringer("request", req).Msg("dropping duplicate copy row")
			continue
		}
		seen[req.key()] = struct{}{}
		requests = append(requests, req)
	}

	logger.Debug().Int("rows", len(rows)).Int("requests", len(requests)).Msg("loaded copy requests")
	return requests
}

// Destinations returns the unique destination ids of all rows, in first-seen order
func Destinations(rows []table.CopyRow) []string {
	seen := map[string]struct{}{}
	var ids []string
	for _, row := range rows {
		if row.To == "" {
			continue
		}
		if _, ok := seen[row.To]; ok {
			continue
		}
		seen[row.To] = struct{}{}
		ids = append(ids, row.To)
	}
	return ids
}
