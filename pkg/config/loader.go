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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// settingsFile is the on-disk schema of the settings file, shared by all formats
type settingsFile struct {
	Data  *dataBlock  `json:"data,omitempty" yaml:"data,omitempty" hcl:"data,block"`
	Copy  *copyBlock  `json:"copy,omitempty" yaml:"copy,omitempty" hcl:"copy,block"`
	Sweep *sweepBlock `json:"sweep,omitempty" yaml:"sweep,omitempty" hcl:"sweep,block"`
}

type dataBlock struct {
	CopyOperations string `json:"copy_operations,omitempty" yaml:"copy_operations,omitempty" hcl:"copy_operations,optional"`
	Homepages      string `json:"homepages,omitempty" yaml:"homepages,omitempty" hcl:"homepages,optional"`
}

type copyBlock struct {
	Retries        *int   `json:"retries,omitempty" yaml:"retries,omitempty" hcl:"retries,optional"`
	RetryDelay     string `json:"retry_delay,omitempty" yaml:"retry_delay,omitempty" hcl:"retry_delay,optional"`
	PollAttempts   *int   `json:"poll_attempts,omitempty" yaml:"poll_attempts,omitempty" hcl:"poll_attempts,optional"`
	PollInterval   string `json:"poll_interval,omitempty" yaml:"poll_interval,omitempty" hcl:"poll_interval,optional"`
	Concurrency    *int   `json:"concurrency,omitempty" yaml:"concurrency,omitempty" hcl:"concurrency,optional"`
	Pacing         string `json:"pacing,omitempty" yaml:"pacing,omitempty" hcl:"pacing,optional"`
	RequestTimeout string `json:"request_timeout,omitempty" yaml:"request_timeout,omitempty" hcl:"request_timeout,optional"`
}

type sweepBlock struct {
	Enabled     *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty" hcl:"enabled,optional"`
	Concurrency *int     `json:"concurrency,omitempty" yaml:"concurrency,omitempty" hcl:"concurrency,optional"`
	Pacing      string   `json:"pacing,omitempty" yaml:"pacing,omitempty" hcl:"pacing,optional"`
	KeepTitles  []string `json:"keep_titles,omitempty" yaml:"keep_titles,omitempty" hcl:"keep_titles,optional"`
}

// LoadSettings loads the tuning settings from the given path on top of the defaults.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
// A missing file is not an error when optional is set.
func LoadSettings(ctx context.Context, path string, optional bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no settings file, using defaults")
			return cfg, nil
		}
		return nil, errors.Errorf("%w: reading settings file: %s", ErrConfiguration, err.Error())
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading settings")

	var sf *settingsFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		sf, err = loadJSON(data)
	case ".yaml", ".yml":
		sf, err = loadYAML(data)
	case ".hcl":
		sf, err = loadHCL(data, path)
	default:
		return nil, invalid("unsupported settings file extension %q", ext)
	}
	if err != nil {
		return nil, errors.Errorf("%w: %s", ErrConfiguration, err.Error())
	}

	if err := sf.apply(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validateSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadJSON loads settings from JSON data
func loadJSON(data []byte) (*settingsFile, error) {
	var sf settingsFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sf); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &sf, nil
}

// loadYAML loads settings from YAML data
func loadYAML(data []byte) (*settingsFile, error) {
	var sf settingsFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sf); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &sf, nil
}

// loadHCL loads settings from HCL data
func loadHCL(data []byte, filename string) (*settingsFile, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(),
		},
	}

	var sf settingsFile
	diags = gohcl.DecodeBody(hclFile.Body, ctx, &sf)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}
	return &sf, nil
}

// envObject exposes the process environment to HCL expressions as env.NAME
func envObject() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}

func (sf *settingsFile) apply(cfg *Config) error {
	if sf.Data != nil {
		setString(&cfg.Data.CopyOperations, sf.Data.CopyOperations)
		setString(&cfg.Data.Homepages, sf.Data.Homepages)
	}

	if c := sf.Copy; c != nil {
		setInt(&cfg.Copy.Retries, c.Retries)
		setInt(&cfg.Copy.PollAttempts, c.PollAttempts)
		setInt(&cfg.Copy.Concurrency, c.Concurrency)
		for _, d := range []struct {
			name string
			raw  string
			dst  *time.Duration
		}{
			{"copy.retry_delay", c.RetryDelay, &cfg.Copy.RetryDelay},
			{"copy.poll_interval", c.PollInterval, &cfg.Copy.PollInterval},
			{"copy.pacing", c.Pacing, &cfg.Copy.Pacing},
			{"copy.request_timeout", c.RequestTimeout, &cfg.Copy.RequestTimeout},
		} {
			if err := setDuration(d.dst, d.name, d.raw); err != nil {
				return err
			}
		}
	}

	if s := sf.Sweep; s != nil {
		if s.Enabled != nil {
			cfg.Sweep.Enabled = *s.Enabled
		}
		setInt(&cfg.Sweep.Concurrency, s.Concurrency)
		if err := setDuration(&cfg.Sweep.Pacing, "sweep.pacing", s.Pacing); err != nil {
			return err
		}
		if len(s.KeepTitles) > 0 {
			cfg.Sweep.KeepTitles = append([]string(nil), s.KeepTitles...)
		}
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, name, raw string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return invalid("%s: %s", name, err.Error())
	}
	*dst = d
	return nil
}
