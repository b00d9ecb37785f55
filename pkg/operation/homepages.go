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
	"github.com/walteh/wikicopy/pkg/remote"
	"github.com/walteh/wikicopy/pkg/table"
	"golang.org/x/sync/errgroup"
)

// 🏠 HomepageInfo is one line of the homepage listing
type HomepageInfo struct {
	ID        string
	Title     string
	Protected bool
	Children  []remote.Page
	TitleErr  error
	ListErr   error
}

// 🔍 DescribeHomepages looks up the title and direct children of every registered homepage.
// Lookup failures are recorded per homepage and never abort the listing. The result keeps registry order.
func DescribeHomepages(ctx context.Context, client remote.Client, homepages []table.Homepage, concurrency int) []HomepageInfo {
	if concurrency < 1 {
		concurrency = 1
	}

	infos := make([]HomepageInfo, len(homepages))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, h := range homepages {
		g.Go(func() error {
			info := HomepageInfo{ID: h.ID, Protected: h.Protected}

			page, err := client.GetPage(ctx, h.ID)
			if err != nil {
				info.TitleErr = err
			} else {
				info.Title = page.Title
			}

			info.Children, info.ListErr = client.GetChildPages(ctx, h.ID)

			infos[i] = info
			return nil
		})
	}
	_ = g.Wait()

	zerolog.Ctx(ctx).Debug().Int("homepages", len(infos)).Msg("described homepages")
	return infos
}
