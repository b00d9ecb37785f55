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
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	EnvUsername = "USERNAME"
	EnvAPIToken = "API_TOKEN"
	EnvBaseURL  = "BASE_URL"
)

// LookupFunc resolves an environment variable, os.LookupEnv in production
type LookupFunc func(key string) (string, bool)

// 🔑 LoadCredentials resolves the credentials from the environment, falling back to the dotenv file.
// The process environment wins over the file. A missing dotenv file is not an error.
func LoadCredentials(ctx context.Context, envFile string, lookup LookupFunc) (Credentials, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
			zerolog.Ctx(ctx).Debug().Str("path", envFile).Int("vars", len(vars)).Msg("read dotenv file")
		case errors.Is(err, os.ErrNotExist):
			zerolog.Ctx(ctx).Debug().Str("path", envFile).Msg("no dotenv file")
		default:
			return Credentials{}, errors.Errorf("%w: reading %s: %s", ErrConfiguration, envFile, err.Error())
		}
	}

	get := func(key string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(fileVars[key])
	}

	return Credentials{
		Username: get(EnvUsername),
		APIToken: get(EnvAPIToken),
		BaseURL:  get(EnvBaseURL),
	}, nil
}

// 🎯 Load builds the full run configuration and validates it
func Load(ctx context.Context, settingsPath string, settingsOptional bool, envFile string, lookup LookupFunc) (*Config, error) {
	cfg, err := LoadSettings(ctx, settingsPath, settingsOptional)
	if err != nil {
		return nil, err
	}

	creds, err := LoadCredentials(ctx, envFile, lookup)
	if err != nil {
		return nil, err
	}
	cfg.Credentials = creds

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
