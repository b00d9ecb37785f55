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

package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/walteh/wikicopy/cmd/wikicopy/opts"
	"github.com/walteh/wikicopy/gen/mockery"
	"github.com/walteh/wikicopy/pkg/config"
	"github.com/walteh/wikicopy/pkg/log"
)

func TestCopyWritesToContextReporter(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	client := mockery.NewMockClient_remote(t)
	client.EXPECT().CopyPageHierarchy(mock.Anything, "1", mock.Anything).Return(nil, nil).Once()

	cfg := config.Default()
	cfg.Copy.RetryDelay = 0
	cfg.Copy.PollInterval = 0

	var console, stdout bytes.Buffer
	cmd := NewCopyCmd(&opts.RootOpts{Config: cfg, Client: client})
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"1", "2", "P-"})

	err := cmd.ExecuteContext(log.NewContext(context.Background(), log.New(&console)))

	assert.NoError(t, err)
	assert.Contains(t, console.String(), "SUCCESS")
	assert.Contains(t, console.String(), "P-")
	assert.Empty(t, stdout.String(), "output goes through the reporter in the context")
}

func TestCommandsRequireContextReporter(t *testing.T) {
	cmd := NewSweepCmd(&opts.RootOpts{Config: config.Default()})
	cmd.SetArgs([]string{})

	assert.Panics(t, func() {
		_ = cmd.ExecuteContext(context.Background())
	})
}
