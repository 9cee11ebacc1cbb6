/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads convctl settings with viper: defaults, an optional
// YAML file and CONVCTL_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"google.golang.org/grpc/codes"

	"dirpx.dev/convention/code"
	"dirpx.dev/convention/mapper"
)

// EnvPrefix is the prefix of environment overrides, e.g. CONVCTL_LOG_LEVEL.
const EnvPrefix = "CONVCTL"

// Config holds every convctl setting.
type Config struct {
	LogLevel  string       `mapstructure:"log_level"`
	LogFormat string       `mapstructure:"log_format"`
	Output    string       `mapstructure:"output"`
	Mapper    MapperConfig `mapstructure:"mapper"`
}

// MapperConfig adjusts the status mapper. Codes are given by name
// ("ESTD_ACCES") or value; gRPC codes by name ("UNAVAILABLE") or value.
type MapperConfig struct {
	HTTPOverrides map[string]int    `mapstructure:"http_overrides"`
	GRPCOverrides map[string]string `mapstructure:"grpc_overrides"`
	HTTPPrefixes  []PrefixRule      `mapstructure:"http_prefixes"`
}

// PrefixRule is one reason-prefix rule.
type PrefixRule struct {
	Code   string `mapstructure:"code"`
	Prefix string `mapstructure:"prefix"`
	Status int    `mapstructure:"status"`
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("output", "text")
}

// Load reads path (when not empty) and the environment into a Config.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("config: output must be text, json or yaml, got %q", c.Output)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// MapperOptions translates the mapper section into mapper options.
func (c *Config) MapperOptions() ([]mapper.Option, error) {
	var opts []mapper.Option
	for name, status := range c.Mapper.HTTPOverrides {
		cd, err := code.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("config: mapper.http_overrides: %q: %w", name, err)
		}
		opts = append(opts, mapper.WithHTTPOverride(cd, status))
	}
	for name, g := range c.Mapper.GRPCOverrides {
		cd, err := code.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("config: mapper.grpc_overrides: %q: %w", name, err)
		}
		gc, err := parseGRPCCode(g)
		if err != nil {
			return nil, fmt.Errorf("config: mapper.grpc_overrides: %q: %w", name, err)
		}
		opts = append(opts, mapper.WithGRPCOverride(cd, gc))
	}
	for _, r := range c.Mapper.HTTPPrefixes {
		cd, err := code.Parse(r.Code)
		if err != nil {
			return nil, fmt.Errorf("config: mapper.http_prefixes: %q: %w", r.Code, err)
		}
		opts = append(opts, mapper.WithHTTPPrefix(cd, r.Prefix, r.Status))
	}
	return opts, nil
}

// parseGRPCCode accepts "UNAVAILABLE", "unavailable" or "14".
func parseGRPCCode(s string) (codes.Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	raw := strconv.Quote(s)
	if _, err := strconv.Atoi(s); err == nil {
		raw = s
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(raw)); err != nil {
		return 0, err
	}
	return c, nil
}
