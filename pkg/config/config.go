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

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// ErrConfiguration marks every configuration problem; a run never starts with one
var ErrConfiguration = errors.New("configuration error")

// 🔑 Credentials authenticate against the content platform
type Credentials struct {
	Username string
	APIToken string
	BaseURL  string
}

// 📂 DataPaths locates the two persisted tables
type DataPaths struct {
	CopyOperations string
	Homepages      string
}

// 📦 CopySettings tunes the copy executor and its runner
type CopySettings struct {
	Retries        int
	RetryDelay     time.Duration
	PollAttempts   int
	PollInterval   time.Duration
	Concurrency    int
	Pacing         time.Duration
	RequestTimeout time.Duration
}

// 🧹 SweepSettings tunes the deletion sweeper
type SweepSettings struct {
	Enabled     bool
	Concurrency int
	Pacing      time.Duration
	KeepTitles  []string
}

// 📚 Config represents the complete run configuration
type Config struct {
	Credentials Credentials
	Data        DataPaths
	Copy        CopySettings
	Sweep       SweepSettings
}

// 🏭 Default returns a config holding every default value and no credentials
func Default() *Config {
	return &Config{
		Data: DataPaths{
			CopyOperations: "data/copy_operations.csv",
			Homepages:      "data/homepages.csv",
		},
		Copy: CopySettings{
			Retries:        3,
			RetryDelay:     5 * time.Second,
			PollAttempts:   3,
			PollInterval:   5 * time.Second,
			Concurrency:    2,
			Pacing:         time.Second,
			RequestTimeout: 60 * time.Second,
		},
		Sweep: SweepSettings{
			Enabled:     true,
			Concurrency: 4,
			Pacing:      time.Second,
		},
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if err := cfg.Credentials.Validate(); err != nil {
		return err
	}
	return cfg.validateSettings()
}

func (cfg *Config) validateSettings() error {
	if cfg.Data.CopyOperations == "" {
		return invalid("data.copy_operations is required")
	}
	if cfg.Data.Homepages == "" {
		return invalid("data.homepages is required")
	}
	if cfg.Copy.Retries < 1 {
		return invalid("copy.retries must be at least 1, got %d", cfg.Copy.Retries)
	}
	if cfg.Copy.PollAttempts < 1 {
		return invalid("copy.poll_attempts must be at least 1, got %d", cfg.Copy.PollAttempts)
	}
	if cfg.Copy.Concurrency < 1 {
		return invalid("copy.concurrency must be at least 1, got %d", cfg.Copy.Concurrency)
	}
	if cfg.Sweep.Concurrency < 1 {
		return invalid("sweep.concurrency must be at least 1, got %d", cfg.Sweep.Concurrency)
	}
	for name, d := range map[string]time.Duration{
		"copy.retry_delay":     cfg.Copy.RetryDelay,
		"copy.poll_interval":   cfg.Copy.PollInterval,
		"copy.pacing":          cfg.Copy.Pacing,
		"copy.request_timeout": cfg.Copy.RequestTimeout,
		"sweep.pacing":         cfg.Sweep.Pacing,
	} {
		if d < 0 {
			return invalid("%s must not be negative, got %s", name, d)
		}
	}
	for _, pattern := range cfg.Sweep.KeepTitles {
		if !doublestar.ValidatePattern(pattern) {
			return invalid("sweep.keep_titles has an invalid pattern %q", pattern)
		}
	}
	return nil
}

// 🔍 Validate checks that every credential is present and the base URL is usable
func (c Credentials) Validate() error {
	var missing []string
	if c.Username == "" {
		missing = append(missing, EnvUsername)
	}
	if c.APIToken == "" {
		missing = append(missing, EnvAPIToken)
	}
	if c.BaseURL == "" {
		missing = append(missing, EnvBaseURL)
	}
	if len(missing) > 0 {
		return invalid("missing required credentials %v, set them in the environment or the .env file", missing)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid("%s must be an absolute http(s) url, got %q", EnvBaseURL, c.BaseURL)
	}
	return nil
}

// 📝 String returns a string representation of the credentials without the token
func (c Credentials) String() string {
	return c.Username + "@" + c.BaseURL
}

func invalid(format string, args ...any) error {
	return errors.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
